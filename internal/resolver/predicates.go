package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/diagnostics"
)

// resolveHead resolves a head atom: the table by table lookup, the terms
// as expressions.
func (r *resolver) resolveHead(pred named.HeadPredicate, ns string) (resolved.HeadPredicate, bool) {
	switch p := pred.(type) {
	case named.TrueHead:
		return resolved.TrueHead{Loc: p.Loc}, true
	case named.FalseHead:
		return resolved.FalseHead{Loc: p.Loc}, true
	case named.PositiveHead:
		table, err := r.lookupTable(p.Table, ns)
		if err != nil {
			r.addError(err)
		}
		terms, termsOk := r.resolveExprs(p.Terms, ns)
		if err != nil || !termsOk {
			return nil, false
		}
		return resolved.PositiveHead{Table: table.TableSym(), Terms: terms, Loc: p.Loc}, true
	case named.NegativeHead:
		table, err := r.lookupTable(p.Table, ns)
		if err != nil {
			r.addError(err)
		}
		terms, termsOk := r.resolveExprs(p.Terms, ns)
		if err != nil || !termsOk {
			return nil, false
		}
		return resolved.NegativeHead{Table: table.TableSym(), Terms: terms, Loc: p.Loc}, true
	default:
		panic(fmt.Sprintf("unexpected head predicate %T", pred))
	}
}

// resolveBody resolves a body atom: tables by table lookup with terms as
// patterns, filters by reference lookup with terms as expressions, loops
// by pattern and source expression.
func (r *resolver) resolveBody(pred named.BodyPredicate, ns string) (resolved.BodyPredicate, bool) {
	switch p := pred.(type) {
	case named.PositiveBody:
		table, err := r.lookupTable(p.Table, ns)
		if err != nil {
			r.addError(err)
		}
		terms, termsOk := r.resolvePatterns(p.Terms, ns)
		if err != nil || !termsOk {
			return nil, false
		}
		return resolved.PositiveBody{Table: table.TableSym(), Terms: terms, Loc: p.Loc}, true
	case named.NegativeBody:
		table, err := r.lookupTable(p.Table, ns)
		if err != nil {
			r.addError(err)
		}
		terms, termsOk := r.resolvePatterns(p.Terms, ns)
		if err != nil || !termsOk {
			return nil, false
		}
		return resolved.NegativeBody{Table: table.TableSym(), Terms: terms, Loc: p.Loc}, true
	case named.FilterBody:
		target, err := r.lookupRef(p.Name, ns)
		if err != nil {
			r.addError(err)
		}
		terms, termsOk := r.resolveExprs(p.Terms, ns)
		if err != nil || !termsOk {
			return nil, false
		}
		switch t := target.(type) {
		case DefnTarget:
			return resolved.FilterBody{Sym: t.Defn.Sym, Terms: terms, Loc: p.Loc}, true
		case HookTarget:
			// A hook has no resolvable body for the solver to call into;
			// reject rather than accept silently.
			r.addError(diagnostics.NewResolverError(diagnostics.ErrR007, p.Loc,
				fmt.Sprintf("hook '%s' cannot be used as a filter", t.Hook.Sym())))
			return nil, false
		default:
			panic(fmt.Sprintf("unexpected ref target %T", target))
		}
	case named.LoopBody:
		pat, patOk := r.resolvePattern(p.Pat, ns)
		term, termOk := r.resolveExpr(p.Term, ns)
		if !patOk || !termOk {
			return nil, false
		}
		return resolved.LoopBody{Pat: pat, Term: term, Loc: p.Loc}, true
	default:
		panic(fmt.Sprintf("unexpected body predicate %T", pred))
	}
}

// resolvePatterns resolves a slice of patterns, accumulating errors from
// every element before reporting failure.
func (r *resolver) resolvePatterns(pats []named.Pattern, ns string) ([]resolved.Pattern, bool) {
	out := make([]resolved.Pattern, 0, len(pats))
	ok := true
	for _, pat := range pats {
		rp, patOk := r.resolvePattern(pat, ns)
		ok = ok && patOk
		if patOk {
			out = append(out, rp)
		}
	}
	if !ok {
		return nil, false
	}
	return out, true
}
