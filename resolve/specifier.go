package resolve

import "fmt"

// SpecifierKind tags which source a PackageSpecifier selects.
type SpecifierKind uint8

const (
	// SpecifierRegistry selects a version of a named package from a
	// registry, constrained by a VersionRange.
	SpecifierRegistry SpecifierKind = iota
	// SpecifierURL selects the single package found at a URL.
	SpecifierURL
	// SpecifierPath selects the single package found at a filesystem path.
	SpecifierPath
)

func (k SpecifierKind) String() string {
	switch k {
	case SpecifierRegistry:
		return "registry"
	case SpecifierURL:
		return "url"
	case SpecifierPath:
		return "path"
	default:
		return "unknown"
	}
}

// PackageSpecifier selects a package source. Only the Registry kind
// participates in version resolution against a range; URL and Path each
// resolve to exactly one candidate.
type PackageSpecifier struct {
	Kind SpecifierKind

	// FullName and Range are set for SpecifierRegistry.
	FullName string
	Range    VersionRange

	// URL is set for SpecifierURL.
	URL string

	// Path is set for SpecifierPath.
	Path string
}

// RegistrySpecifier builds a PackageSpecifier that selects the highest
// version of fullName satisfying r.
func RegistrySpecifier(fullName string, r VersionRange) PackageSpecifier {
	return PackageSpecifier{Kind: SpecifierRegistry, FullName: fullName, Range: r}
}

// URLSpecifier builds a PackageSpecifier that selects the package found at url.
func URLSpecifier(url string) PackageSpecifier {
	return PackageSpecifier{Kind: SpecifierURL, URL: url}
}

// PathSpecifier builds a PackageSpecifier that selects the package found at path.
func PathSpecifier(path string) PackageSpecifier {
	return PackageSpecifier{Kind: SpecifierPath, Path: path}
}

// String renders the specifier for diagnostics.
func (s PackageSpecifier) String() string {
	switch s.Kind {
	case SpecifierRegistry:
		if s.Range.c == nil {
			return s.FullName
		}

		return fmt.Sprintf("%s@%s", s.FullName, s.Range)
	case SpecifierURL:
		return s.URL
	case SpecifierPath:
		return s.Path
	default:
		return "<invalid specifier>"
	}
}

// Dependency is one declared edge from a package to a dependency: the
// alias is the local name used by the declaring package, which may differ
// from the dependency's own package name.
type Dependency struct {
	Alias string
	Spec  PackageSpecifier
}
