package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
)

// resolvePattern walks a named pattern. Literals, wildcards, and variables
// pass through; tag patterns resolve their owning enum via tag lookup.
func (r *resolver) resolvePattern(pat named.Pattern, ns string) (resolved.Pattern, bool) {
	switch p := pat.(type) {
	case nil:
		return nil, true
	case named.WildcardPattern:
		return resolved.WildcardPattern{Tvar: p.Tvar, Loc: p.Loc}, true
	case named.VarPattern:
		return resolved.VarPattern{Sym: p.Sym, Tvar: p.Tvar, Loc: p.Loc}, true
	case named.LitPattern:
		return resolved.LitPattern{Value: p.Value, Tvar: p.Tvar, Loc: p.Loc}, true
	case named.TagPattern:
		decl, err := r.lookupTag(p.Enum, p.TagID, ns)
		if err != nil {
			r.addError(err)
		}
		var inner resolved.Pattern
		innerOk := true
		if p.Pat != nil {
			inner, innerOk = r.resolvePattern(p.Pat, ns)
		}
		if err != nil || !innerOk {
			return nil, false
		}
		return resolved.TagPattern{Enum: decl.Sym, TagID: p.TagID, Pat: inner, Tvar: p.Tvar, Loc: p.Loc}, true
	case named.TuplePattern:
		elms := make([]resolved.Pattern, 0, len(p.Elms))
		ok := true
		for _, elm := range p.Elms {
			re, elmOk := r.resolvePattern(elm, ns)
			ok = ok && elmOk
			if elmOk {
				elms = append(elms, re)
			}
		}
		if !ok {
			return nil, false
		}
		return resolved.TuplePattern{Elms: elms, Tvar: p.Tvar, Loc: p.Loc}, true
	default:
		panic(fmt.Sprintf("unexpected named pattern %T", pat))
	}
}
