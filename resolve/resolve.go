/*
Package resolve discovers the transitive dependency closure of a root
package against an asynchronous registry oracle, enforces
single-version-per-name, detects cycles, and folds the result into a
ResolvedPackage describing the commands, entrypoint and filesystem
overlays the root should observe at runtime.
*/
package resolve

import "context"

// ResolveOptions controls resource bounds and diagnostics for a Resolve
// call; the zero value is a valid, fully usable configuration.
type ResolveOptions struct {
	// MaxConcurrency bounds how many Oracle.Latest calls a single
	// frontier batch may have outstanding at once. Zero means use the
	// environment-overridable default (see concurrency.go).
	MaxConcurrency int

	// Logger, if non-nil, receives a trace of discovery progress and the
	// error class that aborted resolution, if any.
	Logger Logger
}

func (o ResolveOptions) concurrency() int {
	if o.MaxConcurrency > 0 {
		return o.MaxConcurrency
	}

	return oracleConcurrency()
}

// Resolution is the output pair produced by Resolve: the graph is a
// witness of every discovered package version and how they relate; the
// package is the runtime-facing fold of that graph.
type Resolution struct {
	Graph   *DependencyGraph
	Package *ResolvedPackage
}

// Resolve discovers rootInfo's transitive dependency closure via oracle,
// checks it for cycles and then for duplicate package versions, and
// folds it into a ResolvedPackage. A graph that is both cyclic and
// carries a duplicate-named package is reported as a CycleError: cycle
// detection falls out of discovery's own topological sort and therefore
// runs before the duplicate-versions check. It returns a ResolveError
// (RegistryError, CycleError or DuplicateVersionsError) on failure; no
// partial Resolution is ever returned.
func Resolve(ctx context.Context, rootID PackageID, rootInfo PackageInfo, oracle Oracle, opts ResolveOptions) (*Resolution, error) {
	log := loggerOrDiscard(opts.Logger)

	g, err := discover(ctx, rootID, rootInfo, oracle, opts)
	if err != nil {
		log.Printf("resolve: discovery failed: %v", err)

		return nil, err
	}

	order, ok := g.TopoSort()
	if !ok {
		err := extractCycle(g)
		log.Printf("resolve: %v", err)

		return nil, err
	}

	if err := checkDuplicateVersions(g); err != nil {
		log.Printf("resolve: %v", err)

		return nil, err
	}

	pkg := fold(g, order)

	log.Printf("resolve: resolved %s to %d packages", rootID, g.NodeCount())

	return &Resolution{Graph: g, Package: pkg}, nil
}
