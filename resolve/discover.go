package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// discover builds the graph by repeatedly popping a dependee off a FIFO
// frontier, resolving each of its declared dependencies against the
// oracle, and integrating the results before moving to the next frontier
// entry.
//
// A dependee's own oracle calls may run concurrently (bounded by
// oracleConcurrency), but the results are always integrated atomically
// and in declared order, and the next frontier entry is never started
// until the current one has been fully integrated — this is what keeps
// node-index assignment and edge-insertion order deterministic.
func discover(ctx context.Context, rootID PackageID, rootInfo PackageInfo, oracle Oracle, opts ResolveOptions) (*DependencyGraph, error) {
	g := newGraph()
	g.rootIndex = g.AddNode(Node{ID: rootID, Pkg: rootInfo})

	log := loggerOrDiscard(opts.Logger)

	frontier := []NodeIndex{g.rootIndex}

	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]

		deps := append([]Dependency(nil), g.Node(u).Pkg.Dependencies...)
		log.Printf("resolve: expanding %s (%d dependencies)", g.Node(u).ID, len(deps))

		summaries, err := fetchDependencies(ctx, oracle, deps, opts)
		if err != nil {
			return nil, err
		}

		for i, dep := range deps {
			sum := summaries[i]
			id := sum.Pkg.ID()

			if _, dup := g.EdgeTo(u, dep.Alias); dup {
				// Duplicate aliases within one manifest are an upstream
				// manifest-validation invariant: the manifest loader is
				// expected to reject them before a PackageInfo ever reaches
				// the resolver.
				panic("resolve: duplicate dependency alias " + dep.Alias + " in " + g.Node(u).ID.String())
			}

			depIdx, known := g.Index(id)
			if !known {
				depIdx = g.AddNode(Node{ID: id, Pkg: sum.Pkg, Dist: sum.Dist})
				frontier = append(frontier, depIdx)
			}

			g.AddEdge(u, depIdx, Edge{Alias: dep.Alias})
		}
	}

	return g, nil
}

// fetchDependencies resolves each of deps against the oracle, running the
// calls concurrently (bounded by oracleConcurrency) but returning results
// in the same order as deps so the caller can integrate them
// deterministically.
func fetchDependencies(ctx context.Context, oracle Oracle, deps []Dependency, opts ResolveOptions) ([]PackageSummary, error) {
	out := make([]PackageSummary, len(deps))

	if len(deps) == 0 {
		return out, nil
	}

	limit := opts.concurrency()

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, limit)

	for i, dep := range deps {
		i, dep := i, dep

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			sum, err := oracle.Latest(gctx, dep.Spec)
			if err != nil {
				return &RegistryError{Package: dep.Spec, Err: err}
			}

			out[i] = sum

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
