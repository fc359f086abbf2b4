package resolver

import (
	"testing"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/typesystem"
)

// ---------------------------------------------------------------------------
// Reference lookup
// ---------------------------------------------------------------------------

func TestRefLookup_CurrentNamespaceBeforeRoot(t *testing.T) {
	// f exists in both N and the root; an unqualified use inside N must
	// bind to N's definition.
	prog := named.NewProgram()
	addDef(prog, mkDef("N", "f", nil, unitLit(loc(1, 1)), nil, loc(1, 1)))
	addDef(prog, mkDef("", "f", nil, unitLit(loc(2, 1)), nil, loc(2, 1)))
	addDef(prog, mkDef("N", "g", nil, named.Ref{Name: unqualified("f", 3, 5), Loc: loc(3, 5)}, nil, loc(3, 1)))

	res := expectNoResolverErrors(t, prog)
	body := res.Defs["N"]["g"].Exp.(resolved.Ref)
	want := symbols.DefnSym{Namespace: "N", Name: "f"}
	if body.Sym != want {
		t.Errorf("resolved to %s, want %s", body.Sym, want)
	}
}

func TestRefLookup_RootFallbackForUnqualified(t *testing.T) {
	prog := named.NewProgram()
	addDef(prog, mkDef("", "f", nil, unitLit(loc(1, 1)), nil, loc(1, 1)))
	addDef(prog, mkDef("N", "g", nil, named.Ref{Name: unqualified("f", 2, 5), Loc: loc(2, 5)}, nil, loc(2, 1)))

	res := expectNoResolverErrors(t, prog)
	body := res.Defs["N"]["g"].Exp.(resolved.Ref)
	want := symbols.DefnSym{Namespace: "", Name: "f"}
	if body.Sym != want {
		t.Errorf("resolved to %s, want %s", body.Sym, want)
	}
}

func TestRefLookup_QualifiedDoesNotConsultRoot(t *testing.T) {
	// h exists only in the root; the qualified reference N/h must not
	// fall back to it.
	prog := named.NewProgram()
	addDef(prog, mkDef("", "h", nil, unitLit(loc(1, 1)), nil, loc(1, 1)))
	addDef(prog, mkDef("", "g", nil, named.Ref{Name: qualified("N", "h", 2, 5), Loc: loc(2, 5)}, nil, loc(2, 1)))

	err := expectResolverError(t, prog, "R001")
	if err.Loc != loc(2, 5) {
		t.Errorf("error at %s, want %s", err.Loc, loc(2, 5))
	}
}

func TestRefLookup_DefinitionAndHookIsAmbiguous(t *testing.T) {
	prog := named.NewProgram()
	addDef(prog, mkDef("N", "f", nil, unitLit(loc(1, 1)), nil, loc(1, 1)))
	sym := symbols.DefnSym{Namespace: "N", Name: "f"}
	prog.Hooks[sym] = testHook{sym: sym}
	addDef(prog, mkDef("N", "g", nil, named.Ref{Name: unqualified("f", 2, 5), Loc: loc(2, 5)}, nil, loc(2, 1)))

	expectResolverError(t, prog, "R002")
}

func TestRefLookup_HookOnlyResolvesToHookRef(t *testing.T) {
	prog := named.NewProgram()
	sym := symbols.DefnSym{Namespace: "N", Name: "f"}
	prog.Hooks[sym] = testHook{sym: sym}
	addDef(prog, mkDef("N", "g", nil, named.Ref{Name: unqualified("f", 1, 5), Loc: loc(1, 5)}, nil, loc(1, 1)))

	res := expectNoResolverErrors(t, prog)
	body := res.Defs["N"]["g"].Exp.(resolved.HookRef)
	if body.Hook.Sym() != sym {
		t.Errorf("hook bound to %s, want %s", body.Hook.Sym(), sym)
	}
}

func TestRefLookup_RootFallbackIgnoresHooks(t *testing.T) {
	// A hook keyed in the root namespace is not a fallback target for an
	// unqualified reference from another namespace.
	prog := named.NewProgram()
	sym := symbols.DefnSym{Namespace: "", Name: "f"}
	prog.Hooks[sym] = testHook{sym: sym}
	addDef(prog, mkDef("N", "g", nil, named.Ref{Name: unqualified("f", 1, 5), Loc: loc(1, 5)}, nil, loc(1, 1)))

	expectResolverError(t, prog, "R001")
}

// ---------------------------------------------------------------------------
// Table lookup
// ---------------------------------------------------------------------------

func TestTableLookup_NoRootFallback(t *testing.T) {
	// R exists only in the root; an unqualified body atom inside N must
	// not see it.
	prog := named.NewProgram()
	addTable(prog, mkRelation("", "R", loc(1, 1), named.Attribute{Ident: ident("x", 1, 7), Tpe: intType(loc(1, 10))}))
	prog.Constraints["N"] = []*named.Constraint{{
		Head: named.TrueHead{Loc: loc(2, 1)},
		Body: []named.BodyPredicate{
			named.PositiveBody{Table: unqualified("R", 2, 10), Loc: loc(2, 10)},
		},
		Loc: loc(2, 1),
	}}

	expectResolverError(t, prog, "R003")
}

func TestTableLookup_Qualified(t *testing.T) {
	prog := named.NewProgram()
	addTable(prog, mkRelation("N", "R", loc(1, 1), named.Attribute{Ident: ident("x", 1, 7), Tpe: intType(loc(1, 10))}))
	prog.Constraints[""] = []*named.Constraint{{
		Head: named.TrueHead{Loc: loc(2, 1)},
		Body: []named.BodyPredicate{
			named.PositiveBody{Table: qualified("N", "R", 2, 10), Loc: loc(2, 10)},
		},
		Loc: loc(2, 1),
	}}

	res := expectNoResolverErrors(t, prog)
	atom := res.Constraints[""][0].Body[0].(resolved.PositiveBody)
	want := symbols.TableSym{Namespace: "N", Name: "R"}
	if atom.Table != want {
		t.Errorf("table bound to %s, want %s", atom.Table, want)
	}
}

// ---------------------------------------------------------------------------
// Tag lookup
// ---------------------------------------------------------------------------

func TestTagLookup_GloballyUniqueResolvesFromUnrelatedNamespace(t *testing.T) {
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "E", loc(1, 1), "A", "B"))
	addDef(prog, mkDef("M", "f", nil,
		named.Tag{TagID: ident("A", 2, 12), Exp: unitLit(loc(2, 12)), Loc: loc(2, 12)},
		nil, loc(2, 1)))

	res := expectNoResolverErrors(t, prog)
	tag := res.Defs["M"]["f"].Exp.(resolved.Tag)
	want := symbols.EnumSym{Namespace: "N", Name: "E"}
	if tag.Enum != want {
		t.Errorf("tag bound to %s, want %s", tag.Enum, want)
	}
}

func TestTagLookup_ScopedMatchWinsOverForeignDuplicates(t *testing.T) {
	// A appears in two enums: one in N, one in M. From inside N the scoped
	// search finds exactly one candidate.
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "E", loc(1, 1), "A"))
	addEnum(prog, mkEnum("M", "F", loc(2, 1), "A"))
	addDef(prog, mkDef("N", "f", nil,
		named.Tag{TagID: ident("A", 3, 12), Exp: unitLit(loc(3, 12)), Loc: loc(3, 12)},
		nil, loc(3, 1)))

	res := expectNoResolverErrors(t, prog)
	tag := res.Defs["N"]["f"].Exp.(resolved.Tag)
	want := symbols.EnumSym{Namespace: "N", Name: "E"}
	if tag.Enum != want {
		t.Errorf("tag bound to %s, want %s", tag.Enum, want)
	}
}

func TestTagLookup_QualifierNamespaceOverridesCurrent(t *testing.T) {
	// With a qualified enum name M/F, the search scope is M even when the
	// use site sits in N.
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "E", loc(1, 1), "A"))
	addEnum(prog, mkEnum("M", "F", loc(2, 1), "A"))
	enum := qualified("M", "F", 3, 12)
	addDef(prog, mkDef("N", "f", nil,
		named.Tag{Enum: &enum, TagID: ident("A", 3, 14), Exp: unitLit(loc(3, 14)), Loc: loc(3, 14)},
		nil, loc(3, 1)))

	res := expectNoResolverErrors(t, prog)
	tag := res.Defs["N"]["f"].Exp.(resolved.Tag)
	want := symbols.EnumSym{Namespace: "M", Name: "F"}
	if tag.Enum != want {
		t.Errorf("tag bound to %s, want %s", tag.Enum, want)
	}
}

func TestTagLookup_UndefinedTag(t *testing.T) {
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "E", loc(1, 1), "A"))
	addDef(prog, mkDef("N", "f", nil,
		named.Tag{TagID: ident("Z", 2, 12), Exp: unitLit(loc(2, 12)), Loc: loc(2, 12)},
		nil, loc(2, 1)))

	expectResolverError(t, prog, "R005")
}

func TestTagLookup_QualifierMatchingNothingIsUndefined(t *testing.T) {
	// Two candidates in scope but the qualifier names neither.
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "E1", loc(1, 1), "A"))
	addEnum(prog, mkEnum("N", "E2", loc(2, 1), "A"))
	enum := unqualified("E9", 3, 12)
	addDef(prog, mkDef("N", "f", nil,
		named.Tag{Enum: &enum, TagID: ident("A", 3, 15), Exp: unitLit(loc(3, 15)), Loc: loc(3, 15)},
		nil, loc(3, 1)))

	expectResolverError(t, prog, "R005")
}

// ---------------------------------------------------------------------------
// Type lookup
// ---------------------------------------------------------------------------

func TestTypeLookup_UnsizedAliases(t *testing.T) {
	prog := named.NewProgram()
	l := loc(1, 1)
	params := []named.FormalParam{
		{Sym: symbols.FreshVarSym("x"), Tpe: named.RefType{Name: symbols.NewQName(loc(1, 10), "Int"), Loc: loc(1, 10)}, Loc: loc(1, 8)},
		{Sym: symbols.FreshVarSym("y"), Tpe: named.RefType{Name: symbols.NewQName(loc(1, 20), "Float"), Loc: loc(1, 20)}, Loc: loc(1, 18)},
	}
	addDef(prog, mkDef("", "f", params, unitLit(l), nil, l))

	res := expectNoResolverErrors(t, prog)
	got := res.Defs[""]["f"].Params
	if got[0].Tpe != typesystem.Type(typesystem.Int32) {
		t.Errorf("Int resolved to %s, want Int32", got[0].Tpe)
	}
	if got[1].Tpe != typesystem.Type(typesystem.Float64) {
		t.Errorf("Float resolved to %s, want Float64", got[1].Tpe)
	}
}

func TestTypeLookup_UnqualifiedEnumWithRootFallback(t *testing.T) {
	prog := named.NewProgram()
	addEnum(prog, mkEnum("", "E", loc(1, 1), "A"))
	params := []named.FormalParam{
		{Sym: symbols.FreshVarSym("x"), Tpe: named.RefType{Name: symbols.NewQName(loc(2, 10), "E"), Loc: loc(2, 10)}, Loc: loc(2, 8)},
	}
	addDef(prog, mkDef("N", "f", params, unitLit(loc(2, 1)), nil, loc(2, 1)))

	res := expectNoResolverErrors(t, prog)
	tpe := res.Defs["N"]["f"].Params[0].Tpe.(typesystem.TEnum)
	want := symbols.EnumSym{Namespace: "", Name: "E"}
	if tpe.Sym != want {
		t.Errorf("type bound to %s, want %s", tpe.Sym, want)
	}
	if !tpe.Kind().Equal(typesystem.Star) {
		t.Errorf("enum type kind = %s, want *", tpe.Kind())
	}
}

func TestTypeLookup_QualifiedHasNoRootFallback(t *testing.T) {
	prog := named.NewProgram()
	addEnum(prog, mkEnum("", "E", loc(1, 1), "A"))
	params := []named.FormalParam{
		{Sym: symbols.FreshVarSym("x"), Tpe: named.RefType{Name: qualified("N", "E", 2, 10), Loc: loc(2, 10)}, Loc: loc(2, 8)},
	}
	addDef(prog, mkDef("N", "f", params, unitLit(loc(2, 1)), nil, loc(2, 1)))

	expectResolverError(t, prog, "R004")
}

func TestTypeLookup_PrimitiveShadowsSameNamedEnum(t *testing.T) {
	// Primitive names resolve before enums even when an enum of the same
	// name exists in scope.
	prog := named.NewProgram()
	addEnum(prog, mkEnum("N", "Str", loc(1, 1), "S"))
	params := []named.FormalParam{
		{Sym: symbols.FreshVarSym("x"), Tpe: named.RefType{Name: symbols.NewQName(loc(2, 10), "Str"), Loc: loc(2, 10)}, Loc: loc(2, 8)},
	}
	addDef(prog, mkDef("N", "f", params, unitLit(loc(2, 1)), nil, loc(2, 1)))

	res := expectNoResolverErrors(t, prog)
	if res.Defs["N"]["f"].Params[0].Tpe != typesystem.Type(typesystem.Str) {
		t.Errorf("Str resolved to %s, want the primitive", res.Defs["N"]["f"].Params[0].Tpe)
	}
}
