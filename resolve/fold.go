package resolve

// ItemLocation names the package that provides a given command.
type ItemLocation struct {
	Name    string
	Package PackageID
}

// ResolvedFileSystemMapping is a FileSystemMapping with its source
// resolved to a concrete package.
type ResolvedFileSystemMapping struct {
	VolumeName   string
	OriginalPath string
	MountPath    string
	Package      PackageID
}

// ResolvedPackage is the topological fold of every node's manifest data
// into the single view the root package should observe at runtime.
type ResolvedPackage struct {
	RootPackage PackageID
	Commands    map[string]ItemLocation
	Entrypoint  string // empty means unset
	Filesystem  []ResolvedFileSystemMapping
}

// fold walks the graph in topological (root-first) order, letting
// ancestors win ties on commands and entrypoint, then reverses the
// accumulated filesystem list once so that deeper dependencies are
// mounted before the ancestors that must shadow them.
func fold(g *DependencyGraph, order []NodeIndex) *ResolvedPackage {
	root := g.Node(g.RootIndex())

	rp := &ResolvedPackage{
		RootPackage: root.ID,
		Commands:    make(map[string]ItemLocation),
	}

	var fs []ResolvedFileSystemMapping

	for _, idx := range order {
		n := g.Node(idx)

		if rp.Entrypoint == "" && n.Pkg.Entrypoint != "" {
			rp.Entrypoint = n.Pkg.Entrypoint
		}

		for _, cmd := range n.Pkg.Commands {
			if _, exists := rp.Commands[cmd]; exists {
				continue
			}

			rp.Commands[cmd] = ItemLocation{Name: cmd, Package: n.ID}
		}

		for _, m := range n.Pkg.Filesystem {
			pkg := n.ID

			if m.DependencyName != "" {
				target, ok := g.EdgeTo(idx, m.DependencyName)
				if !ok {
					// An unresolved dependency_name alias is an
					// upstream-validated invariant: the manifest validator
					// is expected to reject it before resolution ever sees
					// this graph.
					panic("resolve: filesystem mapping on " + n.ID.String() + " names unknown dependency alias " + m.DependencyName)
				}

				pkg = g.Node(target).ID
			}

			fs = append(fs, ResolvedFileSystemMapping{
				VolumeName:   m.VolumeName,
				OriginalPath: m.OriginalPath,
				MountPath:    m.MountPath,
				Package:      pkg,
			})
		}
	}

	for i, j := 0, len(fs)-1; i < j; i, j = i+1, j-1 {
		fs[i], fs[j] = fs[j], fs[i]
	}

	rp.Filesystem = fs

	return rp
}
