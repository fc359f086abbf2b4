package named

import (
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Type is a type as written in source, before resolution. References are
// still textual; the resolver maps them to canonical typesystem types (or,
// inside enum declarations, to the shape-preserving resolved type tree).
type Type interface {
	typeNode()
	GetLoc() token.Location
}

// VarType is a type variable. It passes through resolution unchanged.
type VarType struct {
	Tvar typesystem.TVar
	Loc  token.Location
}

// UnitType is the written unit type ().
type UnitType struct {
	Loc token.Location
}

// RefType is a textual reference to a primitive or an enum.
type RefType struct {
	Name symbols.QName
	Loc  token.Location
}

// EnumType is a reference to an enum already known by symbol.
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
func (RefType) typeNode()   {}
func (EnumType) typeNode()  {}
func (TupleType) typeNode() {}
func (ArrowType) typeNode() {}
func (ApplyType) typeNode() {}

func (t VarType) GetLoc() token.Location   { return t.Loc }
func (t UnitType) GetLoc() token.Location  { return t.Loc }
func (t RefType) GetLoc() token.Location   { return t.Loc }
func (t EnumType) GetLoc() token.Location  { return t.Loc }
func (t TupleType) GetLoc() token.Location { return t.Loc }
func (t ArrowType) GetLoc() token.Location { return t.Loc }
func (t ApplyType) GetLoc() token.Location { return t.Loc }
