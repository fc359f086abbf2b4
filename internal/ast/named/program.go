// Package named defines the Named Program: the output of the naming phase
// and the input of name resolution. Every declaration already owns its
// canonical symbol; references are still textual QNames.
package named

import (
	"github.com/veldt-lang/veldt/internal/ast"
	"github.com/veldt-lang/veldt/internal/symbols"
)

// Program is a complete named program. The outer maps of each category are
// keyed by namespace path (symbols.NName.Path(), "" for the root), the
// inner maps by local declaration name. The program is immutable during
// resolution.
type Program struct {
	Defs        map[string]map[string]*Def
	Enums       map[string]map[string]*Enum
	Tables      map[string]map[string]Table
	Indexes     map[string]map[string]*Index
	Lattices    map[string]*BoundedLattice // keyed by the written form of the carrier type
	Constraints map[string][]*Constraint
	Properties  map[string][]*Property
	Hooks       map[symbols.DefnSym]ast.Hook
	Reachable   map[symbols.DefnSym]struct{}

	// Time is opaque provenance metadata carried through the phase.
	Time any
}

// NewProgram returns an empty named program with all category maps allocated.
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
	}
}
