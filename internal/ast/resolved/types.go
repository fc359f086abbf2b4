package resolved

import (
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Type is the shape-preserving resolved form of a written type. It is used
// inside enum declarations, where diagnostics want the type as the user
// wrote it (Int stays Int rather than widening to Int32). Unlike the named
// tree it contains no textual references: primitives carry their written
// name alongside the canonical type, and enum references carry the enum
// symbol.
type Type interface {
	typeNode()
	GetLoc() token.Location
}

// VarType is a type variable, carried through unchanged.
type VarType struct {
	Tvar typesystem.TVar
	Loc  token.Location
}

// UnitType is the written unit type ().
type UnitType struct {
	Loc token.Location
}

// PrimType is a primitive reference, keeping the name as written.
type PrimType struct {
	Name string
	Tpe  typesystem.Type
	Loc  token.Location
}

// EnumType is a resolved enum reference.
type EnumType struct {
	Sym symbols.EnumSym
	Loc token.Location
}

// TupleType is a tuple (t1, ..., tn).
type TupleType struct {
	Elms []Type
	Loc  token.Location
}

// ArrowType is a function type (t1, ..., tn) -> r.
type ArrowType struct {
	Params []Type
	Ret    Type
	Loc    token.Location
}

// ApplyType is a type application base[t1, ..., tn].
type ApplyType struct {
	Base Type
	Args []Type
	Loc  token.Location
}

func (VarType) typeNode()   {}
func (UnitType) typeNode()  {}
func (PrimType) typeNode()  {}
func (EnumType) typeNode()  {}
func (TupleType) typeNode() {}
func (ArrowType) typeNode() {}
func (ApplyType) typeNode() {}

func (t VarType) GetLoc() token.Location   { return t.Loc }
func (t UnitType) GetLoc() token.Location  { return t.Loc }
func (t PrimType) GetLoc() token.Location  { return t.Loc }
func (t EnumType) GetLoc() token.Location  { return t.Loc }
func (t TupleType) GetLoc() token.Location { return t.Loc }
func (t ArrowType) GetLoc() token.Location { return t.Loc }
func (t ApplyType) GetLoc() token.Location { return t.Loc }
