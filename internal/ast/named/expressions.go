package named

import (
	"github.com/veldt-lang/veldt/internal/ast"
	"github.com/veldt-lang/veldt/internal/ast/lit"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// Expr is an expression of the named tree. Every node carries its source
// location and the type variable assigned by the naming phase; resolution
// preserves both.
type Expr interface {
	exprNode()
	GetLoc() token.Location
}

// Wild is the wildcard expression _.
type Wild struct {
	Tvar typesystem.TVar
	Loc  token.Location
}

// Var references a local binder by symbol. Already bound by naming.
type Var struct {
	Sym  symbols.VarSym
	Tvar typesystem.TVar
	Loc  token.Location
}

// Ref is a textual reference to a definition or a hook.
type Ref struct {
	Name symbols.QName
	Tvar typesystem.TVar
	Loc  token.Location
}

// Lit is a literal constant.
type Lit struct {
	Value lit.Literal
	Tvar  typesystem.TVar
	Loc   token.Location
}

// Apply is a function application.
type Apply struct {
	Exp  Expr
	Args []Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// Lambda is an anonymous function.
type Lambda struct {
	Params []FormalParam
	Exp    Expr
	Tvar   typesystem.TVar
	Loc    token.Location
}

// Unary applies a unary operator.
type Unary struct {
	Op   string
	Exp  Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// Binary applies a binary operator.
type Binary struct {
	Op   string
	Exp1 Expr
	Exp2 Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// IfThenElse is a conditional expression.
type IfThenElse struct {
	Exp1 Expr
	Exp2 Expr
	Exp3 Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// Let binds a value in a body expression.
type Let struct {
	Sym  symbols.VarSym
	Exp1 Expr
	Exp2 Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// Match scrutinises an expression against a sequence of rules.
type Match struct {
	Exp   Expr
	Rules []MatchRule
	Tvar  typesystem.TVar
	Loc   token.Location
}

// MatchRule is one arm of a match: pattern, guard, and body.
type MatchRule struct {
	Pat   Pattern
	Guard Expr
	Exp   Expr
}

// Switch evaluates the first rule whose condition holds.
type Switch struct {
	Rules []SwitchRule
	Tvar  typesystem.TVar
	Loc   token.Location
}

// SwitchRule is a (condition, body) pair. Rule order is significant.
type SwitchRule struct {
	Cond Expr
	Exp  Expr
}

// Tag constructs an enum case value. Enum is the optional enum qualifier
// written at the use site; nil when the tag is written bare.
type Tag struct {
	Enum  *symbols.QName
	TagID symbols.Ident
	Exp   Expr
	Tvar  typesystem.TVar
	Loc   token.Location
}

// Tuple is a tuple constructor.
type Tuple struct {
	Elms []Expr
	Tvar typesystem.TVar
	Loc  token.Location
}

// Ascribe annotates an expression with a written type.
type Ascribe struct {
	Exp  Expr
	Tpe  Type
	Tvar typesystem.TVar
	Loc  token.Location
}

// Existential quantifies a formal parameter over a boolean body.
type Existential struct {
	Param FormalParam
	Exp   Expr
	Loc   token.Location
}

// Universal quantifies a formal parameter over a boolean body.
type Universal struct {
	Param FormalParam
	Exp   Expr
	Loc   token.Location
}

// NativeConstructor invokes a host constructor.
type NativeConstructor struct {
	Member ast.NativeMember
	Args   []Expr
	Tvar   typesystem.TVar
	Loc    token.Location
}

// NativeMethod invokes a host method.
type NativeMethod struct {
	Member ast.NativeMember
	Args   []Expr
	Tvar   typesystem.TVar
	Loc    token.Location
}

// UserError is the explicit error expression (???).
type UserError struct {
	Tvar typesystem.TVar
	Loc  token.Location
}

func (Wild) exprNode()              {}
func (Var) exprNode()               {}
func (Ref) exprNode()               {}
func (Lit) exprNode()               {}
func (Apply) exprNode()             {}
func (Lambda) exprNode()            {}
func (Unary) exprNode()             {}
func (Binary) exprNode()            {}
func (IfThenElse) exprNode()        {}
func (Let) exprNode()               {}
func (Match) exprNode()             {}
func (Switch) exprNode()            {}
func (Tag) exprNode()               {}
func (Tuple) exprNode()             {}
func (Ascribe) exprNode()           {}
func (Existential) exprNode()       {}
func (Universal) exprNode()         {}
func (NativeConstructor) exprNode() {}
func (NativeMethod) exprNode()      {}
func (UserError) exprNode()         {}

func (e Wild) GetLoc() token.Location              { return e.Loc }
func (e Var) GetLoc() token.Location               { return e.Loc }
func (e Ref) GetLoc() token.Location               { return e.Loc }
func (e Lit) GetLoc() token.Location               { return e.Loc }
func (e Apply) GetLoc() token.Location             { return e.Loc }
func (e Lambda) GetLoc() token.Location            { return e.Loc }
func (e Unary) GetLoc() token.Location             { return e.Loc }
func (e Binary) GetLoc() token.Location            { return e.Loc }
func (e IfThenElse) GetLoc() token.Location        { return e.Loc }
func (e Let) GetLoc() token.Location               { return e.Loc }
func (e Match) GetLoc() token.Location             { return e.Loc }
func (e Switch) GetLoc() token.Location            { return e.Loc }
func (e Tag) GetLoc() token.Location               { return e.Loc }
func (e Tuple) GetLoc() token.Location             { return e.Loc }
func (e Ascribe) GetLoc() token.Location           { return e.Loc }
func (e Existential) GetLoc() token.Location       { return e.Loc }
func (e Universal) GetLoc() token.Location         { return e.Loc }
func (e NativeConstructor) GetLoc() token.Location { return e.Loc }
func (e NativeMethod) GetLoc() token.Location      { return e.Loc }
func (e UserError) GetLoc() token.Location         { return e.Loc }
