package resolved

import (
	"github.com/veldt-lang/veldt/internal/ast/lit"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Pattern is a pattern of the resolved tree.
type Pattern interface {
	patternNode()
	GetLoc() token.Location
}

// WildcardPattern matches anything without binding.
type WildcardPattern struct {
	Tvar typesystem.TVar
	Loc  token.Location
}

// VarPattern binds the matched value to a variable symbol.
type VarPattern struct {
	Sym  symbols.VarSym
	Tvar typesystem.TVar
	Loc  token.Location
}

// LitPattern matches a literal constant.
type LitPattern struct {
	Value lit.Literal
	Tvar  typesystem.TVar
	Loc   token.Location
}

// TagPattern matches a case of the resolved enum.
type TagPattern struct {
	Enum  symbols.EnumSym
	TagID symbols.Ident
	Pat   Pattern
	Tvar  typesystem.TVar
	Loc   token.Location
}

// TuplePattern matches a tuple element-wise.
type TuplePattern struct {
	Elms []Pattern
	Tvar typesystem.TVar
	Loc  token.Location
}

func (WildcardPattern) patternNode() {}
func (VarPattern) patternNode()      {}
func (LitPattern) patternNode()      {}
func (TagPattern) patternNode()      {}
func (TuplePattern) patternNode()    {}

func (p WildcardPattern) GetLoc() token.Location { return p.Loc }
func (p VarPattern) GetLoc() token.Location      { return p.Loc }
func (p LitPattern) GetLoc() token.Location      { return p.Loc }
func (p TagPattern) GetLoc() token.Location      { return p.Loc }
func (p TuplePattern) GetLoc() token.Location    { return p.Loc }
