package resolve

import "sort"

// checkDuplicateVersions enforces single-version-per-name across the
// discovered graph. Package names are iterated in lexicographic order so
// that, when more than one name has a conflict, the reported error is
// deterministic.
func checkDuplicateVersions(g *DependencyGraph) error {
	byName := make(map[string][]Version)

	for i := 0; i < g.NodeCount(); i++ {
		id := g.Node(NodeIndex(i)).ID
		byName[id.Name] = append(byName[id.Name], id.Version)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		versions := dedupeVersions(byName[name])
		if len(versions) < 2 {
			continue
		}

		sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })

		return &DuplicateVersionsError{PackageName: name, Versions: versions}
	}

	return nil
}

func dedupeVersions(vs []Version) []Version {
	out := make([]Version, 0, len(vs))

	for _, v := range vs {
		found := false

		for _, seen := range out {
			if seen.Equal(v) {
				found = true

				break
			}
		}

		if !found {
			out = append(out, v)
		}
	}

	return out
}

// extractCycle is called once TopoSort has reported that the graph is
// not a DAG. It finds the first strongly-connected component of size > 1
// (in SCC-visit order, which follows the deterministic BFS assignment of
// node indices), rotates it so its lowest index comes first, and returns
// the closed round-trip path of PackageIDs.
func extractCycle(g *DependencyGraph) error {
	for _, comp := range g.StronglyConnectedComponents() {
		if len(comp) < 2 {
			continue
		}

		rotated := rotateToLowestIndex(comp)

		path := make([]PackageID, 0, len(rotated)+1)
		for _, idx := range rotated {
			path = append(path, g.Node(idx).ID)
		}

		path = append(path, g.Node(rotated[0]).ID)

		return &CycleError{Path: path}
	}

	return nil
}

func rotateToLowestIndex(comp []NodeIndex) []NodeIndex {
	minPos := 0

	for i, idx := range comp {
		if idx < comp[minPos] {
			minPos = i
		}
	}

	rotated := make([]NodeIndex, 0, len(comp))
	rotated = append(rotated, comp[minPos:]...)
	rotated = append(rotated, comp[:minPos]...)

	return rotated
}
