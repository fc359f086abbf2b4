// Package diagnostics defines the error values produced by the Veldt
// compiler's semantic phases, and their rendering.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/veldt-lang/veldt/internal/token"
)

// ErrorCode identifies a class of diagnostic.
type ErrorCode string

// Resolver error codes, one per resolution error kind.
const (
	ErrR001 ErrorCode = "R001" // undefined reference
	ErrR002 ErrorCode = "R002" // ambiguous reference (definition and hook)
	ErrR003 ErrorCode = "R003" // undefined table
	ErrR004 ErrorCode = "R004" // undefined type
	ErrR005 ErrorCode = "R005" // undefined tag
	ErrR006 ErrorCode = "R006" // ambiguous tag
	ErrR007 ErrorCode = "R007" // hook used in a rule position
)

func (c ErrorCode) String() string { return string(c) }

// DiagnosticError is a single diagnostic with a code, a primary location,
// and optionally a set of related locations (e.g. the candidates of an
// ambiguous tag, in source order).
type DiagnosticError struct {
	Code    ErrorCode
	Loc     token.Location
	Message string
	Related []token.Location
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Loc, e.Message)
}

// NewResolverError creates a resolver diagnostic.
func NewResolverError(code ErrorCode, loc token.Location, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Loc: loc, Message: message}
}

// WithRelated attaches related locations, sorted in source order.
func (e *DiagnosticError) WithRelated(locs []token.Location) *DiagnosticError {
	related := make([]token.Location, len(locs))
	copy(related, locs)
	token.SortLocations(related)
	e.Related = related
	return e
}

// Key returns the deduplication key for the error: two diagnostics with
// the same position and code are the same defect reported twice.
func (e *DiagnosticError) Key() string {
	return fmt.Sprintf("%d:%d:%s:%s", e.Loc.Line, e.Loc.Column, e.Loc.File, e.Code)
}

// SortErrors sorts diagnostics by source position, then code, in place.
// Used to make reported error order deterministic regardless of traversal.
func SortErrors(errs []*DiagnosticError) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Loc != errs[j].Loc {
			return errs[i].Loc.Before(errs[j].Loc)
		}
		return errs[i].Code < errs[j].Code
	})
}
