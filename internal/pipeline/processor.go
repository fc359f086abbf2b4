package pipeline

import (
	"github.com/veldt-lang/veldt/internal/resolver"
)

// ResolverProcessor runs name resolution as a pipeline stage.
type ResolverProcessor struct {
	Opts resolver.Options
}

func (p *ResolverProcessor) Process(ctx *Context) *Context {
	if ctx.Named == nil {
		return ctx
	}
	prog, errs := resolver.ResolveWith(ctx.Named, p.Opts)
	ctx.Resolved = prog
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
