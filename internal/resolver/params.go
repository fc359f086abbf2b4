package resolver

import (
	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
)

// resolveFormalParam resolves a formal parameter's written type. The
// binder symbol and location carry through unchanged.
func (r *resolver) resolveFormalParam(param named.FormalParam, ns string) (resolved.FormalParam, bool) {
	tpe, ok := r.lookupType(param.Tpe, ns)
	if !ok {
		return resolved.FormalParam{}, false
	}
	return resolved.FormalParam{Sym: param.Sym, Tpe: tpe, Loc: param.Loc}, true
}

// resolveFormalParams resolves every parameter, accumulating errors
// across the whole list before reporting failure.
func (r *resolver) resolveFormalParams(params []named.FormalParam, ns string) ([]resolved.FormalParam, bool) {
	out := make([]resolved.FormalParam, 0, len(params))
	ok := true
	for _, param := range params {
		rp, pOk := r.resolveFormalParam(param, ns)
		ok = ok && pOk
		if pOk {
			out = append(out, rp)
		}
	}
	if !ok {
		return nil, false
	}
	return out, true
}

// Type parameters and constraint parameters pass through structurally;
// their full resolution is deferred to kind and type inference.

func resolveTypeParams(tparams []named.TypeParam) []resolved.TypeParam {
	out := make([]resolved.TypeParam, len(tparams))
	for i, tp := range tparams {
		out[i] = resolved.TypeParam{Ident: tp.Ident, Tvar: tp.Tvar, Loc: tp.Loc}
	}
	return out
}

func resolveConstraintParams(cparams []named.ConstraintParam) []resolved.ConstraintParam {
	out := make([]resolved.ConstraintParam, len(cparams))
	for i, cp := range cparams {
		out[i] = resolved.ConstraintParam{Sym: cp.Sym, Tvar: cp.Tvar, Loc: cp.Loc}
	}
	return out
}
