package resolve

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// computeCID derives a stable identifier for a manifest by hashing its
// "name@version" id with SHA-256; the rest of the manifest does not
// affect it. The resolver never inspects this value; InMemoryOracle
// populates it purely so DistributionInfo carries recognizable content.
func computeCID(pkg PackageInfo) string {
	sum := sha256.Sum256([]byte(pkg.ID().String()))

	return "sha256:" + hex.EncodeToString(sum[:])
}

// InMemoryOracle is a concurrency-safe Oracle over an in-process package
// universe, intended for tests and for the demo command. Concurrent
// identical lookups are coalesced with a singleflight.Group, the same
// technique a networked oracle would use to avoid hammering a remote
// registry with duplicate requests from sibling dependees.
type InMemoryOracle struct {
	mu     sync.RWMutex
	byReg  map[string][]PackageInfo // name -> versions, kept sorted ascending
	byURL  map[string]PackageInfo
	byPath map[string]PackageInfo

	sf singleflight.Group
}

// NewInMemoryOracle constructs an empty oracle.
func NewInMemoryOracle() *InMemoryOracle {
	return &InMemoryOracle{
		byReg:  make(map[string][]PackageInfo),
		byURL:  make(map[string]PackageInfo),
		byPath: make(map[string]PackageInfo),
	}
}

// AddRegistryVersion publishes a version of a named package into the
// registry-backed universe.
func (o *InMemoryOracle) AddRegistryVersion(pkg PackageInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.byReg[pkg.Name] = append(o.byReg[pkg.Name], pkg)
	sort.Slice(o.byReg[pkg.Name], func(i, j int) bool {
		return o.byReg[pkg.Name][i].Version.Less(o.byReg[pkg.Name][j].Version)
	})
}

// AddURL registers the single package found at url.
func (o *InMemoryOracle) AddURL(url string, pkg PackageInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.byURL[url] = pkg
}

// AddPath registers the single package found at path.
func (o *InMemoryOracle) AddPath(path string, pkg PackageInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.byPath[path] = pkg
}

// Latest implements Oracle.
func (o *InMemoryOracle) Latest(ctx context.Context, spec PackageSpecifier) (PackageSummary, error) {
	select {
	case <-ctx.Done():
		return PackageSummary{}, ctx.Err()
	default:
	}

	key := spec.String() + "|" + spec.Kind.String()

	v, err, _ := o.sf.Do(key, func() (any, error) {
		return o.resolve(spec)
	})
	if err != nil {
		return PackageSummary{}, err
	}

	return v.(PackageSummary), nil
}

func (o *InMemoryOracle) resolve(spec PackageSpecifier) (PackageSummary, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	switch spec.Kind {
	case SpecifierRegistry:
		versions := o.byReg[spec.FullName]
		for i := len(versions) - 1; i >= 0; i-- {
			if spec.Range.Satisfies(versions[i].Version) {
				pkg := versions[i]

				return PackageSummary{Pkg: pkg, Dist: DistributionInfo{CID: computeCID(pkg)}}, nil
			}
		}

		return PackageSummary{}, fmt.Errorf("%s: %w", spec, ErrNotFound)

	case SpecifierURL:
		pkg, ok := o.byURL[spec.URL]
		if !ok {
			return PackageSummary{}, fmt.Errorf("%s: %w", spec, ErrNotFound)
		}

		return PackageSummary{Pkg: pkg, Dist: DistributionInfo{CID: computeCID(pkg)}}, nil

	case SpecifierPath:
		pkg, ok := o.byPath[spec.Path]
		if !ok {
			return PackageSummary{}, fmt.Errorf("%s: %w", spec, ErrNotFound)
		}

		return PackageSummary{Pkg: pkg, Dist: DistributionInfo{CID: computeCID(pkg)}}, nil

	default:
		return PackageSummary{}, fmt.Errorf("%s: %w", spec, ErrNotFound)
	}
}
