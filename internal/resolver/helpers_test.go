package resolver

import (
	"strings"
	"testing"

	"github.com/veldt-lang/veldt/internal/ast/lit"
	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/diagnostics"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
)

// Builders for named programs. Tests construct programs directly, the way
// the naming phase would hand them over.

func loc(line, col int) token.Location {
	return token.Location{File: "test.veldt", Line: line, Column: col}
}

func ident(name string, line, col int) symbols.Ident {
	return symbols.Ident{Name: name, Loc: loc(line, col)}
}

func unqualified(name string, line, col int) symbols.QName {
	return symbols.NewQName(loc(line, col), name)
}

func qualified(ns, name string, line, col int) symbols.QName {
	return symbols.NewQName(loc(line, col), name, strings.Split(ns, ".")...)
}

func mkDef(ns, name string, params []named.FormalParam, exp named.Expr, tpe named.Type, l token.Location) *named.Def {
	return &named.Def{
		Sym:    symbols.DefnSym{Namespace: ns, Name: name},
		Ident:  symbols.Ident{Name: name, Loc: l},
		Params: params,
		Exp:    exp,
		Tpe:    tpe,
		Loc:    l,
	}
}

func addDef(prog *named.Program, def *named.Def) {
	ns := def.Sym.Namespace
	if prog.Defs[ns] == nil {
		prog.Defs[ns] = make(map[string]*named.Def)
	}
	prog.Defs[ns][def.Sym.Name] = def
}

// mkEnum declares an enum whose cases all have unit inner type.
func mkEnum(ns, name string, l token.Location, tags ...string) *named.Enum {
	cases := make(map[string]named.Case, len(tags))
	for i, tag := range tags {
		cases[tag] = named.Case{
			Enum: symbols.Ident{Name: name, Loc: l},
			Tag:  ident(tag, l.Line, l.Column+i+1),
			Tpe:  named.UnitType{Loc: l},
		}
	}
	return &named.Enum{
		Sym:   symbols.EnumSym{Namespace: ns, Name: name},
		Ident: symbols.Ident{Name: name, Loc: l},
		Cases: cases,
		Tpe:   named.UnitType{Loc: l},
		Loc:   l,
	}
}

func addEnum(prog *named.Program, decl *named.Enum) {
	ns := decl.Sym.Namespace
	if prog.Enums[ns] == nil {
		prog.Enums[ns] = make(map[string]*named.Enum)
	}
	prog.Enums[ns][decl.Sym.Name] = decl
}

func mkRelation(ns, name string, l token.Location, attrs ...named.Attribute) *named.Relation {
	return &named.Relation{
		Sym:        symbols.TableSym{Namespace: ns, Name: name},
		Ident:      symbols.Ident{Name: name, Loc: l},
		Attributes: attrs,
		Loc:        l,
	}
}

func addTable(prog *named.Program, table named.Table) {
	sym := table.TableSym()
	if prog.Tables[sym.Namespace] == nil {
		prog.Tables[sym.Namespace] = make(map[string]named.Table)
	}
	prog.Tables[sym.Namespace][sym.Name] = table
}

func intType(l token.Location) named.Type {
	return named.RefType{Name: symbols.NewQName(l, "Int"), Loc: l}
}

func unitLit(l token.Location) named.Expr {
	return named.Lit{Value: lit.Unit{}, Loc: l}
}

// testHook is a stand-in for a host-provided hook.
type testHook struct {
	sym symbols.DefnSym
}

func (h testHook) Sym() symbols.DefnSym { return h.sym }

// expectResolverError asserts that resolution fails with at least one
// error of the given code, and returns the first such error.
func expectResolverError(t *testing.T, prog *named.Program, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	res, errs := Resolve(prog)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but resolution succeeded", code)
	}
	if res != nil {
		t.Fatalf("expected nil program alongside errors, got %v", res)
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s", code, strings.Join(msgs, "\n"))
	return nil
}

// expectNoResolverErrors asserts that resolution succeeds and returns the
// resolved program.
func expectNoResolverErrors(t *testing.T, prog *named.Program) *resolved.Program {
	t.Helper()
	res, errs := Resolve(prog)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s", strings.Join(msgs, "\n"))
	}
	if res == nil {
		t.Fatal("expected a resolved program, got nil")
	}
	return res
}
