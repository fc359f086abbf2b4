package resolver

import (
	"fmt"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
)

// resolveDef resolves a definition: type parameters, formal parameters,
// body, and declared scheme base type. The definition symbol assigned by
// the naming phase emerges unchanged.
func (r *resolver) resolveDef(def *named.Def, ns string) (*resolved.Def, bool) {
	tparams := resolveTypeParams(def.Tparams)
	params, paramsOk := r.resolveFormalParams(def.Params, ns)
	body, bodyOk := r.resolveExpr(def.Exp, ns)
	tpe, tpeOk := r.lookupType(def.Tpe, ns)
	if !paramsOk || !bodyOk || !tpeOk {
		return nil, false
	}
	return &resolved.Def{
		Sym:     def.Sym,
		Ident:   def.Ident,
		Tparams: tparams,
		Params:  params,
		Exp:     body,
		Tpe:     tpe,
		Loc:     def.Loc,
	}, true
}

// resolveEnum resolves an enum declaration. Case types and the enum's own
// declared shape resolve through the shape-preserving type resolver so
// the declaration keeps its written form for diagnostics.
func (r *resolver) resolveEnum(decl *named.Enum, ns string) (*resolved.Enum, bool) {
	tparams := resolveTypeParams(decl.Tparams)
	ok := true
	cases := make(map[string]resolved.Case, len(decl.Cases))
	for name, c := range decl.Cases {
		tpe, caseOk := r.resolveTypeShape(c.Tpe, ns)
		if caseOk {
			cases[name] = resolved.Case{Enum: c.Enum, Tag: c.Tag, Tpe: tpe}
		} else {
			ok = false
		}
	}
	tpe, tpeOk := r.resolveTypeShape(decl.Tpe, ns)
	if !ok || !tpeOk {
		return nil, false
	}
	return &resolved.Enum{
		Sym:     decl.Sym,
		Ident:   decl.Ident,
		Tparams: tparams,
		Cases:   cases,
		Tpe:     tpe,
		Loc:     decl.Loc,
	}, true
}

// resolveIndex binds an index to the symbol of the table it indexes. The
// attribute groups carry through verbatim.
func (r *resolver) resolveIndex(idx *named.Index, ns string) (*resolved.Index, bool) {
	table, err := r.lookupTable(idx.Table, ns)
	if err != nil {
		r.addError(err)
		return nil, false
	}
	return &resolved.Index{Table: table.TableSym(), Groups: idx.Groups, Loc: idx.Loc}, true
}

// resolveLattice resolves a bounded lattice declaration: the carrier type,
// then the five operators in fixed order: bottom, top, less-or-equal,
// least-upper-bound, greatest-lower-bound.
func (r *resolver) resolveLattice(decl *named.BoundedLattice) (*resolved.BoundedLattice, bool) {
	ns := decl.NS.Path()
	tpe, tpeOk := r.lookupType(decl.Tpe, ns)
	bot, botOk := r.resolveExpr(decl.Bot, ns)
	top, topOk := r.resolveExpr(decl.Top, ns)
	leq, leqOk := r.resolveExpr(decl.Leq, ns)
	lub, lubOk := r.resolveExpr(decl.Lub, ns)
	glb, glbOk := r.resolveExpr(decl.Glb, ns)
	if !tpeOk || !botOk || !topOk || !leqOk || !lubOk || !glbOk {
		return nil, false
	}
	return &resolved.BoundedLattice{Tpe: tpe, Bot: bot, Top: top, Leq: leq, Lub: lub, Glb: glb, Loc: decl.Loc}, true
}

// resolveTable resolves a table declaration's attribute types.
func (r *resolver) resolveTable(table named.Table, ns string) (resolved.Table, bool) {
	switch t := table.(type) {
	case *named.Relation:
		attrs, ok := r.resolveAttributes(t.Attributes, ns)
		if !ok {
			return nil, false
		}
		return &resolved.Relation{Sym: t.Sym, Ident: t.Ident, Attributes: attrs, Loc: t.Loc}, true
	case *named.LatticeTable:
		keys, keysOk := r.resolveAttributes(t.Keys, ns)
		value, valueOk := r.resolveAttribute(t.Value, ns)
		if !keysOk || !valueOk {
			return nil, false
		}
		return &resolved.LatticeTable{Sym: t.Sym, Ident: t.Ident, Keys: keys, Value: value, Loc: t.Loc}, true
	default:
		panic(fmt.Sprintf("unexpected named table %T", table))
	}
}

func (r *resolver) resolveAttribute(attr named.Attribute, ns string) (resolved.Attribute, bool) {
	tpe, ok := r.lookupType(attr.Tpe, ns)
	if !ok {
		return resolved.Attribute{}, false
	}
	return resolved.Attribute{Ident: attr.Ident, Tpe: tpe}, true
}

func (r *resolver) resolveAttributes(attrs []named.Attribute, ns string) ([]resolved.Attribute, bool) {
	out := make([]resolved.Attribute, 0, len(attrs))
	ok := true
	for _, attr := range attrs {
		ra, attrOk := r.resolveAttribute(attr, ns)
		ok = ok && attrOk
		if attrOk {
			out = append(out, ra)
		}
	}
	if !ok {
		return nil, false
	}
	return out, true
}

// resolveConstraint resolves a constraint's parameters, head, and body.
func (r *resolver) resolveConstraint(c *named.Constraint, ns string) (*resolved.Constraint, bool) {
	cparams := resolveConstraintParams(c.CParams)
	head, headOk := r.resolveHead(c.Head, ns)
	ok := headOk
	body := make([]resolved.BodyPredicate, 0, len(c.Body))
	for _, pred := range c.Body {
		rp, predOk := r.resolveBody(pred, ns)
		ok = ok && predOk
		if predOk {
			body = append(body, rp)
		}
	}
	if !ok {
		return nil, false
	}
	return &resolved.Constraint{CParams: cparams, Head: head, Body: body, Loc: c.Loc}, true
}

// resolveProperty resolves the property's expression; law and definition
// are already symbols.
func (r *resolver) resolveProperty(p *named.Property, ns string) (*resolved.Property, bool) {
	exp, ok := r.resolveExpr(p.Exp, ns)
	if !ok {
		return nil, false
	}
	return &resolved.Property{Law: p.Law, Defn: p.Defn, Exp: exp, Loc: p.Loc}, true
}
