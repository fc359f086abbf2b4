package symbols

import (
	"github.com/google/uuid"
)

// Declaration symbols are fully-qualified (namespace path, local name) pairs.
// They are plain comparable values so they can key maps directly; the hooks
// table in particular is keyed by DefnSym. Resolution never mints declaration
// symbols, it only binds references to symbols assigned by the naming phase.

// DefnSym is the canonical symbol of a value definition.
type DefnSym struct {
	Namespace string // dotted path, "" for the root namespace
	Name      string
}

// NewDefnSym builds the definition symbol for a name declared in ns.
func NewDefnSym(ns NName, name string) DefnSym {
	return DefnSym{Namespace: ns.Path(), Name: name}
}

func (s DefnSym) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

// EnumSym is the canonical symbol of an enum declaration.
type EnumSym struct {
	Namespace string
	Name      string
}

func NewEnumSym(ns NName, name string) EnumSym {
	return EnumSym{Namespace: ns.Path(), Name: name}
}

func (s EnumSym) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

// TableSym is the canonical symbol of a table (relation or lattice) declaration.
type TableSym struct {
	Namespace string
	Name      string
}

func NewTableSym(ns NName, name string) TableSym {
	return TableSym{Namespace: ns.Path(), Name: name}
}

func (s TableSym) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

// VarSym is the symbol of a local binder (formal parameter, let binding,
// pattern variable, constraint parameter). Unlike declaration symbols a
// VarSym is identified by a unique id, not by its text: distinct binders
// with the same text (shadowing, reuse across rules) stay distinct.
type VarSym struct {
	Text string
	ID   string
}

// FreshVarSym mints a new variable symbol. Called by the naming phase;
// resolution itself never mints symbols.
func FreshVarSym(text string) VarSym {
	return VarSym{Text: text, ID: uuid.NewString()}
}

func (s VarSym) String() string { return s.Text }
