package symbols

import (
	"strings"

	"github.com/veldt-lang/veldt/internal/token"
)

// Ident is a single identifier together with its source location.
type Ident struct {
	Name string
	Loc  token.Location
}

func (i Ident) String() string { return i.Name }

// NName is a namespace name: an ordered sequence of identifiers.
// The empty sequence is the root namespace.
type NName struct {
	Idents []Ident
}

// NewNName builds a namespace name from plain identifier parts with a shared location.
func NewNName(loc token.Location, parts ...string) NName {
	idents := make([]Ident, len(parts))
	for i, p := range parts {
		idents[i] = Ident{Name: p, Loc: loc}
	}
	return NName{Idents: idents}
}

// RootNS is the root namespace.
func RootNS() NName { return NName{} }

func (n NName) IsRoot() bool { return len(n.Idents) == 0 }

// Path returns the dotted path of the namespace, "" for the root.
// Program maps are keyed by this form.
func (n NName) Path() string {
	parts := make([]string, len(n.Idents))
	for i, id := range n.Idents {
		parts[i] = id.Name
	}
	return strings.Join(parts, ".")
}

func (n NName) String() string {
	if n.IsRoot() {
		return "<root>"
	}
	return n.Path()
}

// QName is an identifier with an optional namespace path.
// The name is unqualified iff the path is empty.
type QName struct {
	Namespace NName
	Ident     Ident
}

// NewQName builds a qualified name. Pass no namespace parts for an unqualified name.
func NewQName(loc token.Location, name string, nsParts ...string) QName {
	return QName{
		Namespace: NewNName(loc, nsParts...),
		Ident:     Ident{Name: name, Loc: loc},
	}
}

func (q QName) IsQualified() bool { return !q.Namespace.IsRoot() }

// Loc returns the location of the name's identifier.
func (q QName) Loc() token.Location { return q.Ident.Loc }

func (q QName) String() string {
	if !q.IsQualified() {
		return q.Ident.Name
	}
	return q.Namespace.Path() + "/" + q.Ident.Name
}
