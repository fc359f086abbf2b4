package resolved

import (
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Def is a resolved value or function definition. The symbol is the one
// assigned by the naming phase, unchanged.
type Def struct {
	Sym     symbols.DefnSym
	Ident   symbols.Ident
	Tparams []TypeParam
	Params  []FormalParam
	Exp     Expr
	Tpe     typesystem.Type // base type of the declared scheme
	Loc     token.Location
}

// TypeParam is a declared type parameter; resolution passes it through.
type TypeParam struct {
	Ident symbols.Ident
	Tvar  typesystem.TVar
	Loc   token.Location
}

// FormalParam is a formal parameter with its canonical type.
type FormalParam struct {
	Sym symbols.VarSym
	Tpe typesystem.Type
	Loc token.Location
}

// ConstraintParam is a universally quantified parameter of a constraint.
type ConstraintParam struct {
	Sym  symbols.VarSym
	Tvar typesystem.TVar
	Loc  token.Location
}

// Enum is a resolved enum declaration. Case types keep the shape the user
// wrote (see Type in this package).
type Enum struct {
	Sym     symbols.EnumSym
	Ident   symbols.Ident
	Tparams []TypeParam
	Cases   map[string]Case
	Tpe     Type
	Loc     token.Location
}

// Case is a single enum case.
type Case struct {
	Enum symbols.Ident
	Tag  symbols.Ident
	Tpe  Type
}

// Index is a resolved index: the table it indexes, by symbol, and the
// original attribute groups.
type Index struct {
	Table  symbols.TableSym
	Groups [][]symbols.Ident
	Loc    token.Location
}

// BoundedLattice is a resolved lattice declaration: the canonical carrier
// type and the five operator expressions in fixed order.
type BoundedLattice struct {
	Tpe typesystem.Type
	Bot Expr
	Top Expr
	Leq Expr
	Lub Expr
	Glb Expr
	Loc token.Location
}

// Table is a resolved table declaration: a Relation or a LatticeTable.
type Table interface {
	tableNode()
	TableSym() symbols.TableSym
	GetLoc() token.Location
}

// Relation is a table whose rows form a set.
type Relation struct {
	Sym        symbols.TableSym
	Ident      symbols.Ident
	Attributes []Attribute
	Loc        token.Location
}

// LatticeTable is a table whose value column is joined in a lattice.
type LatticeTable struct {
	Sym   symbols.TableSym
	Ident symbols.Ident
	Keys  []Attribute
	Value Attribute
	Loc   token.Location
}

// Attribute is a named table column with its canonical type.
type Attribute struct {
	Ident symbols.Ident
	Tpe   typesystem.Type
}

func (Relation) tableNode()     {}
func (LatticeTable) tableNode() {}

func (t Relation) TableSym() symbols.TableSym     { return t.Sym }
func (t LatticeTable) TableSym() symbols.TableSym { return t.Sym }

func (t Relation) GetLoc() token.Location     { return t.Loc }
func (t LatticeTable) GetLoc() token.Location { return t.Loc }

// Constraint is a resolved Datalog rule.
type Constraint struct {
	CParams []ConstraintParam
	Head    HeadPredicate
	Body    []BodyPredicate
	Loc     token.Location
}

// Property is a law applied to a definition.
type Property struct {
	Law  symbols.DefnSym
	Defn symbols.DefnSym
	Exp  Expr
	Loc  token.Location
}
