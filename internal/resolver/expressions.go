package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
)

// resolveExpr walks a named expression. References, tags, and ascriptions
// invoke the lookup primitives; the remaining cases recurse structurally,
// preserving locations and naming-phase type variables.
func (r *resolver) resolveExpr(exp named.Expr, ns string) (resolved.Expr, bool) {
	switch e := exp.(type) {
	case nil:
		return nil, true
	case named.Wild:
		return resolved.Wild{Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Var:
		return resolved.Var{Sym: e.Sym, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Ref:
		target, err := r.lookupRef(e.Name, ns)
		if err != nil {
			r.addError(err)
			return nil, false
		}
		switch t := target.(type) {
		case DefnTarget:
			return resolved.Ref{Sym: t.Defn.Sym, Tvar: e.Tvar, Loc: e.Loc}, true
		case HookTarget:
			return resolved.HookRef{Hook: t.Hook, Tvar: e.Tvar, Loc: e.Loc}, true
		default:
			panic(fmt.Sprintf("unexpected ref target %T", target))
		}

	case named.Lit:
		return resolved.Lit{Value: e.Value, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Apply:
		fn, fnOk := r.resolveExpr(e.Exp, ns)
		args, argsOk := r.resolveExprs(e.Args, ns)
		if !fnOk || !argsOk {
			return nil, false
		}
		return resolved.Apply{Exp: fn, Args: args, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Lambda:
		params, paramsOk := r.resolveFormalParams(e.Params, ns)
		body, bodyOk := r.resolveExpr(e.Exp, ns)
		if !paramsOk || !bodyOk {
			return nil, false
		}
		return resolved.Lambda{Params: params, Exp: body, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Unary:
		sub, ok := r.resolveExpr(e.Exp, ns)
		if !ok {
			return nil, false
		}
		return resolved.Unary{Op: e.Op, Exp: sub, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Binary:
		e1, ok1 := r.resolveExpr(e.Exp1, ns)
		e2, ok2 := r.resolveExpr(e.Exp2, ns)
		if !ok1 || !ok2 {
			return nil, false
		}
		return resolved.Binary{Op: e.Op, Exp1: e1, Exp2: e2, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.IfThenElse:
		e1, ok1 := r.resolveExpr(e.Exp1, ns)
		e2, ok2 := r.resolveExpr(e.Exp2, ns)
		e3, ok3 := r.resolveExpr(e.Exp3, ns)
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return resolved.IfThenElse{Exp1: e1, Exp2: e2, Exp3: e3, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Let:
		e1, ok1 := r.resolveExpr(e.Exp1, ns)
		e2, ok2 := r.resolveExpr(e.Exp2, ns)
		if !ok1 || !ok2 {
			return nil, false
		}
		return resolved.Let{Sym: e.Sym, Exp1: e1, Exp2: e2, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Match:
		scrutinee, ok := r.resolveExpr(e.Exp, ns)
		rules := make([]resolved.MatchRule, 0, len(e.Rules))
		for _, rule := range e.Rules {
			pat, patOk := r.resolvePattern(rule.Pat, ns)
			var guard resolved.Expr
			guardOk := true
			if rule.Guard != nil {
				guard, guardOk = r.resolveExpr(rule.Guard, ns)
			}
			body, bodyOk := r.resolveExpr(rule.Exp, ns)
			if patOk && guardOk && bodyOk {
				rules = append(rules, resolved.MatchRule{Pat: pat, Guard: guard, Exp: body})
			} else {
				ok = false
			}
		}
		if !ok {
			return nil, false
		}
		return resolved.Match{Exp: scrutinee, Rules: rules, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Switch:
		ok := true
		rules := make([]resolved.SwitchRule, 0, len(e.Rules))
		for _, rule := range e.Rules {
			cond, condOk := r.resolveExpr(rule.Cond, ns)
			body, bodyOk := r.resolveExpr(rule.Exp, ns)
			if condOk && bodyOk {
				rules = append(rules, resolved.SwitchRule{Cond: cond, Exp: body})
			} else {
				ok = false
			}
		}
		if !ok {
			return nil, false
		}
		return resolved.Switch{Rules: rules, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Tag:
		decl, err := r.lookupTag(e.Enum, e.TagID, ns)
		if err != nil {
			r.addError(err)
		}
		var inner resolved.Expr
		innerOk := true
		if e.Exp != nil {
			inner, innerOk = r.resolveExpr(e.Exp, ns)
		}
		if err != nil || !innerOk {
			return nil, false
		}
		return resolved.Tag{Enum: decl.Sym, TagID: e.TagID, Exp: inner, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Tuple:
		elms, ok := r.resolveExprs(e.Elms, ns)
		if !ok {
			return nil, false
		}
		return resolved.Tuple{Elms: elms, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Ascribe:
		sub, subOk := r.resolveExpr(e.Exp, ns)
		tpe, tpeOk := r.lookupType(e.Tpe, ns)
		if !subOk || !tpeOk {
			return nil, false
		}
		return resolved.Ascribe{Exp: sub, Tpe: tpe, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.Existential:
		param, paramOk := r.resolveFormalParam(e.Param, ns)
		body, bodyOk := r.resolveExpr(e.Exp, ns)
		if !paramOk || !bodyOk {
			return nil, false
		}
		return resolved.Existential{Param: param, Exp: body, Loc: e.Loc}, true

	case named.Universal:
		param, paramOk := r.resolveFormalParam(e.Param, ns)
		body, bodyOk := r.resolveExpr(e.Exp, ns)
		if !paramOk || !bodyOk {
			return nil, false
		}
		return resolved.Universal{Param: param, Exp: body, Loc: e.Loc}, true

	case named.NativeConstructor:
		args, ok := r.resolveExprs(e.Args, ns)
		if !ok {
			return nil, false
		}
		return resolved.NativeConstructor{Member: e.Member, Args: args, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.NativeMethod:
		args, ok := r.resolveExprs(e.Args, ns)
		if !ok {
			return nil, false
		}
		return resolved.NativeMethod{Member: e.Member, Args: args, Tvar: e.Tvar, Loc: e.Loc}, true

	case named.UserError:
		return resolved.UserError{Tvar: e.Tvar, Loc: e.Loc}, true

	default:
		panic(fmt.Sprintf("unexpected named expression %T", exp))
	}
}

// resolveExprs resolves a slice of expressions, accumulating errors from
// every element before reporting failure.
func (r *resolver) resolveExprs(exps []named.Expr, ns string) ([]resolved.Expr, bool) {
	out := make([]resolved.Expr, 0, len(exps))
	ok := true
	for _, exp := range exps {
		re, expOk := r.resolveExpr(exp, ns)
		ok = ok && expOk
		if expOk {
			out = append(out, re)
		}
	}
	if !ok {
		return nil, false
	}
	return out, true
}
