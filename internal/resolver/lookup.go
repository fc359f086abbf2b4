package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast"
	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/diagnostics"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// RefTarget is the result of a reference lookup: either a user definition
// or a host-provided hook.
type RefTarget interface {
	refTarget()
}

// DefnTarget is a reference resolved to a user definition.
type DefnTarget struct {
	NS   string
	Defn *named.Def
}

// HookTarget is a reference resolved to a host-provided hook.
type HookTarget struct {
	Hook ast.Hook
}

func (DefnTarget) refTarget() {}
func (HookTarget) refTarget() {}

// lookupRef resolves a value reference from the current namespace.
//
// An unqualified name consults the current namespace's definitions and
// hooks; if neither matches, the root namespace's definitions. A
// qualified name consults only the stated namespace, with no root
// fallback. A name matching both a definition and a hook is ambiguous.
func (r *resolver) lookupRef(name symbols.QName, ns string) (RefTarget, *diagnostics.DiagnosticError) {
	targetNs := ns
	if name.IsQualified() {
		targetNs = name.Namespace.Path()
	}

	var defn *named.Def
	if defs, ok := r.prog.Defs[targetNs]; ok {
		defn = defs[name.Ident.Name]
	}
	hook, hasHook := r.prog.Hooks[symbols.DefnSym{Namespace: targetNs, Name: name.Ident.Name}]

	switch {
	case defn != nil && hasHook:
		return nil, diagnostics.NewResolverError(diagnostics.ErrR002, name.Loc(),
			fmt.Sprintf("ambiguous reference '%s': both a definition and a hook exist in namespace '%s'", name, nsName(targetNs)))
	case defn != nil:
		return DefnTarget{NS: targetNs, Defn: defn}, nil
	case hasHook:
		return HookTarget{Hook: hook}, nil
	}

	if !name.IsQualified() {
		if root, ok := r.prog.Defs[""][name.Ident.Name]; ok {
			return DefnTarget{NS: "", Defn: root}, nil
		}
	}
	return nil, diagnostics.NewResolverError(diagnostics.ErrR001, name.Loc(),
		fmt.Sprintf("undefined reference '%s' in namespace '%s'", name, nsName(ns)))
}

// lookupTable resolves a table reference. An unqualified name consults the
// current namespace only, a qualified name the stated namespace only; no
// root fallback either way.
func (r *resolver) lookupTable(name symbols.QName, ns string) (named.Table, *diagnostics.DiagnosticError) {
	targetNs := ns
	if name.IsQualified() {
		targetNs = name.Namespace.Path()
	}
	if table, ok := r.prog.Tables[targetNs][name.Ident.Name]; ok {
		return table, nil
	}
	return nil, diagnostics.NewResolverError(diagnostics.ErrR003, name.Loc(),
		fmt.Sprintf("undefined table '%s' in namespace '%s'", name, nsName(targetNs)))
}

// lookupTag finds the unique enum declaring a case named tag.
//
// A tag unique across the whole program resolves directly, from any
// namespace and without a qualifier. Otherwise the search narrows to a
// scope namespace: the qualifier's namespace when the qualifier is
// qualified, the current namespace otherwise. Multiple candidates in
// scope are ambiguous unless the qualifier names exactly one of them.
func (r *resolver) lookupTag(enum *symbols.QName, tag symbols.Ident, ns string) (*named.Enum, *diagnostics.DiagnosticError) {
	var global []*named.Enum
	for _, enums := range r.prog.Enums {
		for _, decl := range enums {
			if _, ok := decl.Cases[tag.Name]; ok {
				global = append(global, decl)
			}
		}
	}
	if len(global) == 1 {
		return global[0], nil
	}

	scopeNs := ns
	if enum != nil && enum.IsQualified() {
		scopeNs = enum.Namespace.Path()
	}
	var scoped []*named.Enum
	for _, decl := range r.prog.Enums[scopeNs] {
		if _, ok := decl.Cases[tag.Name]; ok {
			scoped = append(scoped, decl)
		}
	}

	switch {
	case len(scoped) == 1:
		return scoped[0], nil
	case len(scoped) == 0:
		return nil, undefinedTag(tag, ns)
	case enum == nil:
		locs := make([]token.Location, len(scoped))
		for i, decl := range scoped {
			locs[i] = decl.Loc
		}
		return nil, diagnostics.NewResolverError(diagnostics.ErrR006, tag.Loc,
			fmt.Sprintf("ambiguous tag '%s' in namespace '%s'", tag.Name, nsName(ns))).
			WithRelated(locs)
	default:
		var match *named.Enum
		count := 0
		for _, decl := range scoped {
			if decl.Ident.Name == enum.Ident.Name {
				match = decl
				count++
			}
		}
		if count == 1 {
			return match, nil
		}
		return nil, undefinedTag(tag, ns)
	}
}

func undefinedTag(tag symbols.Ident, ns string) *diagnostics.DiagnosticError {
	return diagnostics.NewResolverError(diagnostics.ErrR005, tag.Loc,
		fmt.Sprintf("undefined tag '%s' in namespace '%s'", tag.Name, nsName(ns)))
}

// lookupType resolves a written type to its canonical form. Unqualified
// references try the primitive names first (with Int and Float widening
// to Int32 and Float64), then the current namespace's enums, then the
// root namespace's enums. Qualified references consult only the stated
// namespace's enums. Errors accumulate; the bool reports success.
func (r *resolver) lookupType(tpe named.Type, ns string) (typesystem.Type, bool) {
	switch t := tpe.(type) {
	case nil:
		return nil, true
	case named.VarType:
		return t.Tvar, true
	case named.UnitType:
		return typesystem.Unit, true
	case named.RefType:
		name := t.Name
		if !name.IsQualified() {
			if prim, ok := typesystem.Primitives[name.Ident.Name]; ok {
				return prim, true
			}
			if decl, ok := r.prog.Enums[ns][name.Ident.Name]; ok {
				return typesystem.TEnum{Sym: decl.Sym, KindVal: typesystem.Star}, true
			}
			if decl, ok := r.prog.Enums[""][name.Ident.Name]; ok {
				return typesystem.TEnum{Sym: decl.Sym, KindVal: typesystem.Star}, true
			}
			r.addError(undefinedType(name, ns))
			return nil, false
		}
		if decl, ok := r.prog.Enums[name.Namespace.Path()][name.Ident.Name]; ok {
			return typesystem.TEnum{Sym: decl.Sym, KindVal: typesystem.Star}, true
		}
		r.addError(undefinedType(name, ns))
		return nil, false
	case named.EnumType:
		return typesystem.TEnum{Sym: t.Sym, KindVal: typesystem.Star}, true
	case named.TupleType:
		elms := make([]typesystem.Type, 0, len(t.Elms))
		ok := true
		for _, elm := range t.Elms {
			re, elmOk := r.lookupType(elm, ns)
			ok = ok && elmOk
			if elmOk {
				elms = append(elms, re)
			}
		}
		if !ok {
			return nil, false
		}
		return typesystem.TTuple{Elements: elms}, true
	case named.ArrowType:
		params := make([]typesystem.Type, 0, len(t.Params))
		ok := true
		for _, p := range t.Params {
			rp, pOk := r.lookupType(p, ns)
			ok = ok && pOk
			if pOk {
				params = append(params, rp)
			}
		}
		ret, retOk := r.lookupType(t.Ret, ns)
		if !ok || !retOk {
			return nil, false
		}
		return typesystem.TFunc{Params: params, ReturnType: ret}, true
	case named.ApplyType:
		base, baseOk := r.lookupType(t.Base, ns)
		args := make([]typesystem.Type, 0, len(t.Args))
		ok := baseOk
		for _, a := range t.Args {
			ra, aOk := r.lookupType(a, ns)
			ok = ok && aOk
			if aOk {
				args = append(args, ra)
			}
		}
		if !ok {
			return nil, false
		}
		return typesystem.TApp{Constructor: base, Args: args}, true
	default:
		panic(fmt.Sprintf("unexpected named type %T", tpe))
	}
}

func undefinedType(name symbols.QName, ns string) *diagnostics.DiagnosticError {
	return diagnostics.NewResolverError(diagnostics.ErrR004, name.Loc(),
		fmt.Sprintf("undefined type '%s' in namespace '%s'", name, nsName(ns)))
}

func nsName(ns string) string {
	if ns == "" {
		return "<root>"
	}
	return ns
}
