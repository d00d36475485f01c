package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound classifies a QueryError as "the oracle has nothing that
// satisfies this specifier", as opposed to a transient or I/O failure.
// Oracle implementations should wrap it with fmt.Errorf("...: %w", ...)
// so that errors.Is(err, ErrNotFound) still reports true.
var ErrNotFound = errors.New("package not found")

// QueryError is what an Oracle returns when it cannot satisfy a specifier.
type QueryError = error

// ResolveError is the taxonomy of failures resolution can produce. It is
// implemented by RegistryError, CycleError and DuplicateVersionsError.
type ResolveError interface {
	error
	resolveError()
}

// RegistryError reports that the oracle could not satisfy a specifier
// encountered during discovery.
type RegistryError struct {
	Package PackageSpecifier
	Err     error
}

func (e *RegistryError) resolveError() {}

func (e *RegistryError) Unwrap() error { return e.Err }

func (e *RegistryError) Error() string {
	switch e.Package.Kind {
	case SpecifierRegistry:
		if e.Package.Range.c == nil {
			return fmt.Sprintf("Unable to find %s", e.Package.FullName)
		}

		return fmt.Sprintf("Unable to find %s@%s", e.Package.FullName, e.Package.Range)
	case SpecifierURL:
		return fmt.Sprintf("Unable to resolve %s", e.Package.URL)
	case SpecifierPath:
		return fmt.Sprintf("Unable to load %s from disk", e.Package.Path)
	default:
		return fmt.Sprintf("Unable to resolve %s", e.Package)
	}
}

// CycleError reports a closed dependency loop discovered in the graph.
// Path reads as a round-trip: Path[0] == Path[len(Path)-1].
type CycleError struct {
	Path []PackageID
}

func (e *CycleError) resolveError() {}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = id.String()
	}

	return strings.Join(parts, " → ")
}

// DuplicateVersionsError reports that more than one version of the same
// package name was discovered in the graph. Versions is sorted ascending.
type DuplicateVersionsError struct {
	PackageName string
	Versions    []Version
}

func (e *DuplicateVersionsError) resolveError() {}

func (e *DuplicateVersionsError) Error() string {
	parts := make([]string, len(e.Versions))
	for i, v := range e.Versions {
		parts[i] = v.String()
	}

	return fmt.Sprintf("duplicate versions of %s: %s", e.PackageName, strings.Join(parts, ", "))
}
