package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// resolveTypeShape resolves a written type into the shape-preserving
// resolved tree used by enum declarations. The scoping rules are the same
// as lookupType, but primitives keep their written name (Int stays Int)
// so diagnostics can show the declaration as the user wrote it.
func (r *resolver) resolveTypeShape(tpe named.Type, ns string) (resolved.Type, bool) {
	switch t := tpe.(type) {
	case nil:
		return nil, true
	case named.VarType:
		return resolved.VarType{Tvar: t.Tvar, Loc: t.Loc}, true
	case named.UnitType:
		return resolved.UnitType{Loc: t.Loc}, true
	case named.RefType:
		name := t.Name
		if !name.IsQualified() {
			if prim, ok := typesystem.Primitives[name.Ident.Name]; ok {
				return resolved.PrimType{Name: name.Ident.Name, Tpe: prim, Loc: t.Loc}, true
			}
			if decl, ok := r.prog.Enums[ns][name.Ident.Name]; ok {
				return resolved.EnumType{Sym: decl.Sym, Loc: t.Loc}, true
			}
			if decl, ok := r.prog.Enums[""][name.Ident.Name]; ok {
				return resolved.EnumType{Sym: decl.Sym, Loc: t.Loc}, true
			}
			r.addError(undefinedType(name, ns))
			return nil, false
		}
		if decl, ok := r.prog.Enums[name.Namespace.Path()][name.Ident.Name]; ok {
			return resolved.EnumType{Sym: decl.Sym, Loc: t.Loc}, true
		}
		r.addError(undefinedType(name, ns))
		return nil, false
	case named.EnumType:
		return resolved.EnumType{Sym: t.Sym, Loc: t.Loc}, true
	case named.TupleType:
		elms := make([]resolved.Type, 0, len(t.Elms))
		ok := true
		for _, elm := range t.Elms {
			re, elmOk := r.resolveTypeShape(elm, ns)
			ok = ok && elmOk
			if elmOk {
				elms = append(elms, re)
			}
		}
		if !ok {
			return nil, false
		}
		return resolved.TupleType{Elms: elms, Loc: t.Loc}, true
	case named.ArrowType:
		params := make([]resolved.Type, 0, len(t.Params))
		ok := true
		for _, p := range t.Params {
			rp, pOk := r.resolveTypeShape(p, ns)
			ok = ok && pOk
			if pOk {
				params = append(params, rp)
			}
		}
		ret, retOk := r.resolveTypeShape(t.Ret, ns)
		if !ok || !retOk {
			return nil, false
		}
		return resolved.ArrowType{Params: params, Ret: ret, Loc: t.Loc}, true
	case named.ApplyType:
		base, baseOk := r.resolveTypeShape(t.Base, ns)
		args := make([]resolved.Type, 0, len(t.Args))
		ok := baseOk
		for _, a := range t.Args {
			ra, aOk := r.resolveTypeShape(a, ns)
			ok = ok && aOk
			if aOk {
				args = append(args, ra)
			}
		}
		if !ok {
			return nil, false
		}
		return resolved.ApplyType{Base: base, Args: args, Loc: t.Loc}, true
	default:
		panic(fmt.Sprintf("unexpected named type %T", tpe))
	}
}
