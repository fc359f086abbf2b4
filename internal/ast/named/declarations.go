package named

import (
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Def is a named value or function definition.
type Def struct {
	Sym     symbols.DefnSym
	Ident   symbols.Ident
	Tparams []TypeParam
	Params  []FormalParam
	Exp     Expr
	Tpe     Type // base type of the declared scheme
	Loc     token.Location
}

// TypeParam is a declared type parameter with its naming-phase type variable.
type TypeParam struct {
	Ident symbols.Ident
	Tvar  typesystem.TVar
	Loc   token.Location
}

// FormalParam is a formal parameter with its written type.
type FormalParam struct {
	Sym symbols.VarSym
	Tpe Type
	Loc token.Location
}

// ConstraintParam is a universally quantified parameter of a constraint.
type ConstraintParam struct {
	Sym  symbols.VarSym
	Tvar typesystem.TVar
	Loc  token.Location
}

// Enum is a named enum declaration. Cases are keyed by tag name.
type Enum struct {
	Sym     symbols.EnumSym
	Ident   symbols.Ident
	Tparams []TypeParam
	Cases   map[string]Case
	Tpe     Type // the enum's own declared type shape
	Loc     token.Location
}

// Case is a single enum case: the owning enum's name, the tag, and the
// case's inner type.
type Case struct {
	Enum symbols.Ident
	Tag  symbols.Ident
	Tpe  Type
}

// Index declares an index over a table.
type Index struct {
	Table  symbols.QName
	Groups [][]symbols.Ident
	Loc    token.Location
}

// BoundedLattice declares the value algebra of lattice-valued tables over
// a carrier type: bottom, top, and the three lattice operators.
type BoundedLattice struct {
	Tpe Type
	Bot Expr
	Top Expr
	Leq Expr
	Lub Expr
	Glb Expr
	NS  symbols.NName
	Loc token.Location
}

// Table is a named table declaration: a Relation or a LatticeTable.
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

// Attribute is a named, typed table column.
type Attribute struct {
	Ident symbols.Ident
	Tpe   Type
}

func (Relation) tableNode()     {}
func (LatticeTable) tableNode() {}

func (t Relation) TableSym() symbols.TableSym     { return t.Sym }
func (t LatticeTable) TableSym() symbols.TableSym { return t.Sym }

func (t Relation) GetLoc() token.Location     { return t.Loc }
func (t LatticeTable) GetLoc() token.Location { return t.Loc }

// Constraint is a Datalog rule: a head implied by a conjunction of body
// predicates, under the constraint's parameters.
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
