// Package pipeline sequences the Veldt compiler's phases. Each phase is a
// Processor over a shared Context; the packages for lexing, parsing,
// naming, and type checking plug their own processors into the chain.
package pipeline

import (
	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/diagnostics"
)

// Context carries phase inputs and outputs through the pipeline.
type Context struct {
	// Named is the program produced by the naming phase.
	Named *named.Program

	// Resolved is set by the resolution phase; nil when resolution failed.
	Resolved *resolved.Program

	// Errors accumulates diagnostics across phases.
	Errors []*diagnostics.DiagnosticError
}

// Processor is a single phase of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages.
	}
	return ctx
}
