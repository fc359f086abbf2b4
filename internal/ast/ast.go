// Package ast holds the pieces of the Veldt syntax trees shared between
// the named (pre-resolution) and resolved (post-resolution) forms.
package ast

import "github.com/veldt-lang/veldt/internal/symbols"

// Hook is a host-provided implementation bound to a fully qualified
// definition symbol. Hooks are pre-compiled and opaque: resolution only
// asks whether a symbol has one and carries the value through verbatim.
type Hook interface {
	Sym() symbols.DefnSym
}

// NativeMember describes a member of a host type referenced from source.
// Resolution keeps the descriptor verbatim; binding against the host
// happens during code generation.
type NativeMember struct {
	Class  string
	Member string
}

func (m NativeMember) String() string {
	if m.Member == "" {
		return m.Class
	}
	return m.Class + "." + m.Member
}
