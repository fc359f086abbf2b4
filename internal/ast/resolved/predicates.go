package resolved

import (
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
)

// HeadPredicate is an atom in head position of a constraint.
type HeadPredicate interface {
	headPredicateNode()
	GetLoc() token.Location
}

// TrueHead is the trivially satisfied head.
type TrueHead struct {
	Loc token.Location
}

// FalseHead is the absurd head.
type FalseHead struct {
	Loc token.Location
}

// PositiveHead asserts a fact in the resolved table.
type PositiveHead struct {
	Table symbols.TableSym
	Terms []Expr
	Loc   token.Location
}

// NegativeHead retracts a fact from the resolved table.
type NegativeHead struct {
	Table symbols.TableSym
	Terms []Expr
	Loc   token.Location
}

func (TrueHead) headPredicateNode()     {}
func (FalseHead) headPredicateNode()    {}
func (PositiveHead) headPredicateNode() {}
func (NegativeHead) headPredicateNode() {}

func (p TrueHead) GetLoc() token.Location     { return p.Loc }
func (p FalseHead) GetLoc() token.Location    { return p.Loc }
func (p PositiveHead) GetLoc() token.Location { return p.Loc }
func (p NegativeHead) GetLoc() token.Location { return p.Loc }

// BodyPredicate is an atom in body position of a constraint.
type BodyPredicate interface {
	bodyPredicateNode()
	GetLoc() token.Location
}

// PositiveBody matches rows of the resolved table. Terms are patterns.
type PositiveBody struct {
	Table symbols.TableSym
	Terms []Pattern
	Loc   token.Location
}

// NegativeBody matches the absence of rows. Terms are patterns.
type NegativeBody struct {
	Table symbols.TableSym
	Terms []Pattern
	Loc   token.Location
}

// FilterBody calls a resolved definition to filter derivations.
type FilterBody struct {
	Sym   symbols.DefnSym
	Terms []Expr
	Loc   token.Location
}

// LoopBody binds a pattern over the elements produced by a term.
type LoopBody struct {
	Pat  Pattern
	Term Expr
	Loc  token.Location
}

func (PositiveBody) bodyPredicateNode() {}
func (NegativeBody) bodyPredicateNode() {}
func (FilterBody) bodyPredicateNode()   {}
func (LoopBody) bodyPredicateNode()     {}

func (p PositiveBody) GetLoc() token.Location { return p.Loc }
func (p NegativeBody) GetLoc() token.Location { return p.Loc }
func (p FilterBody) GetLoc() token.Location   { return p.Loc }
func (p LoopBody) GetLoc() token.Location     { return p.Loc }
