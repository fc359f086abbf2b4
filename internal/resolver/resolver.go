// Package resolver implements name resolution: the phase that transforms
// a named program into a resolved program by binding every textual
// reference to the canonical symbol of its declaration, rejecting
// programs with undefined or ambiguous references.
//
// Resolution is a pure function of the named program. Errors accumulate:
// independent sub-resolutions proceed after a failure so a single run
// reports every defect, while dependent sub-resolutions short-circuit
// along their chain.
package resolver

import (
	"sort"
	"sync"

	"github.com/veldt-lang/veldt/internal/ast/named"
	"github.com/veldt-lang/veldt/internal/ast/resolved"
	"github.com/veldt-lang/veldt/internal/config"
	"github.com/veldt-lang/veldt/internal/diagnostics"
)

// Options controls how the driver traverses the program. The result is
// identical under every setting.
type Options struct {
	// Parallel resolves namespaces of each category concurrently. The
	// named program is read-only and per-namespace outputs are disjoint,
	// so the only shared state is the error collector.
	Parallel bool
}

// FromConfig derives driver options from the pipeline configuration.
func FromConfig(cfg *config.Config) Options {
	return Options{Parallel: cfg.Resolver.Parallel}
}

// Resolve transforms prog into a resolved program. On success the error
// slice is empty; otherwise the program is nil and the slice carries
// every accumulated error, sorted by source position.
func Resolve(prog *named.Program) (*resolved.Program, []*diagnostics.DiagnosticError) {
	return ResolveWith(prog, Options{})
}

// ResolveWith is Resolve with explicit driver options.
func ResolveWith(prog *named.Program, opts Options) (*resolved.Program, []*diagnostics.DiagnosticError) {
	r := &resolver{
		prog:     prog,
		opts:     opts,
		errorSet: make(map[string]*diagnostics.DiagnosticError),
	}

	out := resolved.NewProgram()
	r.resolveDefs(out)
	r.resolveEnums(out)
	r.resolveLattices(out)
	r.resolveIndexes(out)
	r.resolveTables(out)
	r.resolveConstraints(out)
	r.resolveProperties(out)

	for sym, hook := range prog.Hooks {
		out.Hooks[sym] = hook
	}
	for sym := range prog.Reachable {
		out.Reachable[sym] = struct{}{}
	}
	out.Time = prog.Time

	if errs := r.getErrors(); len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

type resolver struct {
	prog *named.Program
	opts Options

	mu       sync.Mutex
	errorSet map[string]*diagnostics.DiagnosticError // keyed by position and code for deduplication
}

// addError records an error, deduplicating by position and code.
func (r *resolver) addError(err *diagnostics.DiagnosticError) {
	r.mu.Lock()
	r.errorSet[err.Key()] = err
	r.mu.Unlock()
}

// getErrors returns all unique errors, sorted by position for
// deterministic output.
func (r *resolver) getErrors() []*diagnostics.DiagnosticError {
	result := make([]*diagnostics.DiagnosticError, 0, len(r.errorSet))
	for _, err := range r.errorSet {
		result = append(result, err)
	}
	diagnostics.SortErrors(result)
	return result
}

// forEachNamespace runs fn once per namespace key, concurrently when the
// driver is parallel. fn must confine its writes to the namespace's own
// output slot or the locked error set.
func (r *resolver) forEachNamespace(keys []string, fn func(ns string)) {
	if !r.opts.Parallel {
		for _, ns := range keys {
			fn(ns)
		}
		return
	}
	var wg sync.WaitGroup
	for _, ns := range keys {
		wg.Add(1)
		go func(ns string) {
			defer wg.Done()
			fn(ns)
		}(ns)
	}
	wg.Wait()
}

func (r *resolver) resolveDefs(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Defs))
	for ns := range r.prog.Defs {
		keys = append(keys, ns)
		out.Defs[ns] = make(map[string]*resolved.Def, len(r.prog.Defs[ns]))
	}
	r.forEachNamespace(keys, func(ns string) {
		for name, def := range r.prog.Defs[ns] {
			if rd, ok := r.resolveDef(def, ns); ok {
				out.Defs[ns][name] = rd
			}
		}
	})
	for _, m := range out.Defs {
		for _, rd := range m {
			out.DefsBySym[rd.Sym] = rd
		}
	}
}

func (r *resolver) resolveEnums(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Enums))
	for ns := range r.prog.Enums {
		keys = append(keys, ns)
		out.Enums[ns] = make(map[string]*resolved.Enum, len(r.prog.Enums[ns]))
	}
	r.forEachNamespace(keys, func(ns string) {
		for name, decl := range r.prog.Enums[ns] {
			if re, ok := r.resolveEnum(decl, ns); ok {
				out.Enums[ns][name] = re
			}
		}
	})
	for _, m := range out.Enums {
		for _, re := range m {
			out.EnumsBySym[re.Sym] = re
		}
	}
}

func (r *resolver) resolveLattices(out *resolved.Program) {
	// Lattices are keyed by carrier type; resolve sequentially so the
	// output map needs no lock. The category is small in practice.
	keys := make([]string, 0, len(r.prog.Lattices))
	for k := range r.prog.Lattices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if rl, ok := r.resolveLattice(r.prog.Lattices[k]); ok {
			out.Lattices[rl.Tpe.String()] = rl
		}
	}
}

func (r *resolver) resolveIndexes(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Indexes))
	for ns := range r.prog.Indexes {
		keys = append(keys, ns)
		out.Indexes[ns] = make(map[string]*resolved.Index, len(r.prog.Indexes[ns]))
	}
	r.forEachNamespace(keys, func(ns string) {
		for name, idx := range r.prog.Indexes[ns] {
			if ri, ok := r.resolveIndex(idx, ns); ok {
				out.Indexes[ns][name] = ri
			}
		}
	})
}

func (r *resolver) resolveTables(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Tables))
	for ns := range r.prog.Tables {
		keys = append(keys, ns)
		out.Tables[ns] = make(map[string]resolved.Table, len(r.prog.Tables[ns]))
	}
	r.forEachNamespace(keys, func(ns string) {
		for name, table := range r.prog.Tables[ns] {
			if rt, ok := r.resolveTable(table, ns); ok {
				out.Tables[ns][name] = rt
			}
		}
	})
	for _, m := range out.Tables {
		for _, rt := range m {
			out.TablesBySym[rt.TableSym()] = rt
		}
	}
}

func (r *resolver) resolveConstraints(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Constraints))
	for ns := range r.prog.Constraints {
		keys = append(keys, ns)
	}
	results := make(map[string][]*resolved.Constraint, len(keys))
	var mu sync.Mutex
	r.forEachNamespace(keys, func(ns string) {
		rcs := make([]*resolved.Constraint, 0, len(r.prog.Constraints[ns]))
		for _, c := range r.prog.Constraints[ns] {
			if rc, ok := r.resolveConstraint(c, ns); ok {
				rcs = append(rcs, rc)
			}
		}
		mu.Lock()
		results[ns] = rcs
		mu.Unlock()
	})
	for ns, rcs := range results {
		out.Constraints[ns] = rcs
	}
}

func (r *resolver) resolveProperties(out *resolved.Program) {
	keys := make([]string, 0, len(r.prog.Properties))
	for ns := range r.prog.Properties {
		keys = append(keys, ns)
	}
	results := make(map[string][]*resolved.Property, len(keys))
	var mu sync.Mutex
	r.forEachNamespace(keys, func(ns string) {
		rps := make([]*resolved.Property, 0, len(r.prog.Properties[ns]))
		for _, p := range r.prog.Properties[ns] {
			if rp, ok := r.resolveProperty(p, ns); ok {
				rps = append(rps, rp)
			}
		}
		mu.Lock()
		results[ns] = rps
		mu.Unlock()
	})
	for ns, rps := range results {
		out.Properties[ns] = rps
	}
}
