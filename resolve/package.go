package resolve

// FileSystemMapping projects a path inside a package's distribution into
// the runtime filesystem. If DependencyName is non-empty it names the
// alias of an outgoing edge whose target supplies the overlay; otherwise
// the declaring package itself is the source.
type FileSystemMapping struct {
	VolumeName     string
	OriginalPath   string
	MountPath      string
	DependencyName string // empty means "this package"
}

// PackageInfo is the declared manifest content relevant to resolution.
// Dependencies, Commands and Filesystem preserve declaration order for
// determinism even though Dependencies is semantically a set keyed by
// Alias (duplicate aliases are rejected by the discoverer).
type PackageInfo struct {
	Name         string
	Version      Version
	Dependencies []Dependency
	Commands     []string
	Entrypoint   string // empty means unset
	Filesystem   []FileSystemMapping
}

// ID returns the PackageID named by this manifest.
func (p PackageInfo) ID() PackageID {
	return PackageID{Name: p.Name, Version: p.Version}
}

// DistributionInfo is an opaque payload a registry oracle attaches to a
// discovered version (artifact location, content hash, ...). The
// resolver stores it verbatim and never inspects it.
type DistributionInfo struct {
	// CID is a content identifier for the distribution artifact, carried
	// through unexamined; InMemoryOracle populates it with a SHA-256 hash
	// of the package's "name@version" id.
	CID string
	// Attributes holds any further registry-specific metadata.
	Attributes map[string]string
}

// PackageSummary is what an Oracle returns for a satisfied specifier: the
// manifest of the selected version plus its distribution payload.
type PackageSummary struct {
	Pkg  PackageInfo
	Dist DistributionInfo
}

// Node is one vertex of a DependencyGraph: a discovered package version,
// its manifest, and the distribution payload the oracle returned for it.
// The root node has no distribution (Dist.CID == "" and Dist.Attributes
// == nil), since it was supplied by the caller rather than discovered.
type Node struct {
	ID   PackageID
	Pkg  PackageInfo
	Dist DistributionInfo
}

// Edge labels a directed arc from a dependee to a dependency with the
// alias the dependee uses to refer to it.
type Edge struct {
	Alias string
}
