package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veldt-lang/veldt/internal/ast/lit"
	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/diagnostics"
	"github.com/veldt-lang/veldt/internal/resolver"
	"github.com/veldt-lang/veldt/internal/symbols"
	"github.com/veldt-lang/veldt/internal/token"
)

type recordingProcessor struct {
	name  string
	order *[]string
}

func (p *recordingProcessor) Process(ctx *Context) *Context {
	*p.order = append(*p.order, p.name)
	return ctx
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	p := New(
		&recordingProcessor{name: "first", order: &order},
		&recordingProcessor{name: "second", order: &order},
		&recordingProcessor{name: "third", order: &order},
	)
	p.Run(&Context{})
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func namedFixture(broken bool) *named.Program {
	prog := named.NewProgram()
	l := token.Location{File: "main.veldt", Line: 1, Column: 1}
	body := named.Expr(named.Lit{Value: lit.Int32{Value: 1}, Loc: l})
	if broken {
		body = named.Ref{Name: symbols.NewQName(l, "missing"), Loc: l}
	}
	prog.Defs[""] = map[string]*named.Def{
		"main": {
			Sym:   symbols.DefnSym{Name: "main"},
			Ident: symbols.Ident{Name: "main", Loc: l},
			Exp:   body,
			Loc:   l,
		},
	}
	prog.Time = "t0"
	return prog
}

func TestResolverProcessorSuccess(t *testing.T) {
	ctx := New(&ResolverProcessor{}).Run(&Context{Named: namedFixture(false)})
	require.NotNil(t, ctx.Resolved)
	assert.Empty(t, ctx.Errors)
	assert.Equal(t, "t0", ctx.Resolved.Time, "provenance metadata must pass through")
	assert.Contains(t, ctx.Resolved.Defs[""], "main")
}

func TestResolverProcessorSurfacesDiagnostics(t *testing.T) {
	ctx := New(&ResolverProcessor{}).Run(&Context{Named: namedFixture(true)})
	assert.Nil(t, ctx.Resolved)
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, diagnostics.ErrR001, ctx.Errors[0].Code)
}

func TestResolverProcessorSkipsWithoutNamedProgram(t *testing.T) {
	ctx := New(&ResolverProcessor{}).Run(&Context{})
	assert.Nil(t, ctx.Resolved)
	assert.Empty(t, ctx.Errors)
}

func TestResolverProcessorParallelOption(t *testing.T) {
	ctx := New(&ResolverProcessor{Opts: resolver.Options{Parallel: true}}).
		Run(&Context{Named: namedFixture(false)})
	require.NotNil(t, ctx.Resolved)
	assert.Empty(t, ctx.Errors)
}
