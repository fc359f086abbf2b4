// Package resolved defines the Resolved Program: the output of name
// resolution. It mirrors the named tree with every textual reference
// replaced by the canonical symbol of the targeted declaration and every
// written type replaced by its canonical form. The resolved program is
// the input of the type checker.
package resolved

import (
	"github.com/veldt-lang/veldt/internal/ast"
	"github.com/veldt-lang/veldt/internal/symbols"
)

// Program is a complete resolved program. The per-namespace maps parallel
// the named program; the by-symbol maps are materialised for direct
// downstream lookup and agree with the per-namespace maps entry for entry.
type Program struct {
	Defs        map[string]map[string]*Def
	Enums       map[string]map[string]*Enum
	Tables      map[string]map[string]Table
	Indexes     map[string]map[string]*Index
	Lattices    map[string]*BoundedLattice // keyed by the canonical carrier type's string form
	Constraints map[string][]*Constraint
	Properties  map[string][]*Property
	Hooks       map[symbols.DefnSym]ast.Hook
	Reachable   map[symbols.DefnSym]struct{}
	Time        any

	DefsBySym   map[symbols.DefnSym]*Def
	EnumsBySym  map[symbols.EnumSym]*Enum
	TablesBySym map[symbols.TableSym]Table
}

// NewProgram returns an empty resolved program with all maps allocated.
func NewProgram() *Program {
	return &Program{
		Defs:        make(map[string]map[string]*Def),
		Enums:       make(map[string]map[string]*Enum),
		Tables:      make(map[string]map[string]Table),
		Indexes:     make(map[string]map[string]*Index),
		Lattices:    make(map[string]*BoundedLattice),
		Constraints: make(map[string][]*Constraint),
		Properties:  make(map[string][]*Property),
		Hooks:       make(map[symbols.DefnSym]ast.Hook),
		Reachable:   make(map[symbols.DefnSym]struct{}),
		DefsBySym:   make(map[symbols.DefnSym]*Def),
		EnumsBySym:  make(map[symbols.EnumSym]*Enum),
		TablesBySym: make(map[symbols.TableSym]Table),
	}
}
