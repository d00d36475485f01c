package resolve

// NodeIndex is a stable index into a DependencyGraph's node list. Indices
// are assigned in the order nodes are first discovered and remain valid
// for the life of the graph; there are no removal operations.
type NodeIndex int

// AdjacentEdge pairs an outgoing edge's weight with the index of the node
// it points to.
type AdjacentEdge struct {
	Target NodeIndex
	Edge   Edge
}

// DependencyGraph is a directed multigraph of discovered package
// versions. For every edge u -> v, the edge's alias is unique among u's
// outgoing edges. No two nodes share a package name and the graph is
// acyclic once the consistency checker has run (see consistency.go); the
// store itself enforces neither of those, only index stability.
type DependencyGraph struct {
	nodes     []Node
	out       [][]AdjacentEdge
	index     map[idKey]NodeIndex
	rootIndex NodeIndex
}

// idKey is the map key used to recognize a previously-discovered
// PackageID. PackageID embeds a Version backed by a *semver.Version
// pointer, so two independently-parsed Versions for the same version
// string are never == as Go values even though Version.Equal reports
// them equal; idKey instead derives its version component from
// Version's canonical string form, so identity here tracks semantic
// equality rather than which parse produced the pointer.
type idKey struct {
	name    string
	version string
}

func keyOf(id PackageID) idKey {
	return idKey{name: id.Name, version: id.Version.String()}
}

// newGraph constructs an empty graph.
func newGraph() *DependencyGraph {
	return &DependencyGraph{
		index: make(map[idKey]NodeIndex),
	}
}

// AddNode inserts n and returns its stable index. The caller must ensure
// n.ID is not already present; use Index to check first.
func (g *DependencyGraph) AddNode(n Node) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	g.index[keyOf(n.ID)] = idx

	return idx
}

// AddEdge adds a directed arc from u to v labelled with weight.
func (g *DependencyGraph) AddEdge(u, v NodeIndex, weight Edge) {
	g.out[u] = append(g.out[u], AdjacentEdge{Target: v, Edge: weight})
}

// Index returns the index of the node with the given id, if present.
func (g *DependencyGraph) Index(id PackageID) (NodeIndex, bool) {
	idx, ok := g.index[keyOf(id)]
	return idx, ok
}

// Node returns the node at idx.
func (g *DependencyGraph) Node(idx NodeIndex) Node {
	return g.nodes[idx]
}

// NodeCount returns the number of nodes in the graph.
func (g *DependencyGraph) NodeCount() int { return len(g.nodes) }

// RootIndex returns the index of the root node.
func (g *DependencyGraph) RootIndex() NodeIndex { return g.rootIndex }

// Outgoing returns the outgoing edges of the node at idx, in insertion order.
func (g *DependencyGraph) Outgoing(idx NodeIndex) []AdjacentEdge {
	return g.out[idx]
}

// EdgeTo returns the target index of u's outgoing edge aliased as alias,
// if one exists.
func (g *DependencyGraph) EdgeTo(u NodeIndex, alias string) (NodeIndex, bool) {
	for _, e := range g.out[u] {
		if e.Edge.Alias == alias {
			return e.Target, true
		}
	}

	return 0, false
}

// TopoSort returns the node indices of g in topological order with the
// root first and every node appearing before the dependencies it points
// to (edges run dependee -> dependency, so this is a Kahn sort seeded
// from the in-degree-zero nodes — the root chief among them). ok is
// false if the graph contains a cycle, in which case order is nil.
func (g *DependencyGraph) TopoSort() (order []NodeIndex, ok bool) {
	n := len(g.nodes)
	remaining := make([]int, n)

	for u := 0; u < n; u++ {
		for _, e := range g.out[u] {
			remaining[e.Target]++
		}
	}

	queue := make([]NodeIndex, 0, n)

	for v := 0; v < n; v++ {
		if remaining[v] == 0 {
			queue = append(queue, NodeIndex(v))
		}
	}

	order = make([]NodeIndex, 0, n)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		order = append(order, u)

		for _, e := range g.out[u] {
			remaining[e.Target]--
			if remaining[e.Target] == 0 {
				queue = append(queue, e.Target)
			}
		}
	}

	if len(order) != n {
		return nil, false
	}

	return order, true
}

// StronglyConnectedComponents returns the graph's SCCs computed with
// Tarjan's algorithm, starting a depth-first search from each unvisited
// node in index order. Components are returned in the order Tarjan's
// algorithm completes them, so a component comes after every component
// reachable from it; within a component, nodes are listed in the order
// they were popped off Tarjan's stack.
func (g *DependencyGraph) StronglyConnectedComponents() [][]NodeIndex {
	n := len(g.nodes)

	indices := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)

	for i := range indices {
		indices[i] = -1
	}

	var (
		stack   []NodeIndex
		counter int
		sccs    [][]NodeIndex
	)

	var strongconnect func(v NodeIndex)
	strongconnect = func(v NodeIndex) {
		indices[v] = counter
		low[v] = counter
		counter++

		stack = append(stack, v)
		onStack[v] = true

		for _, e := range g.out[v] {
			w := e.Target
			if indices[w] == -1 {
				strongconnect(w)

				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if indices[w] < low[v] {
					low[v] = indices[w]
				}
			}
		}

		if low[v] == indices[v] {
			var comp []NodeIndex

			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false

				comp = append(comp, w)
				if w == v {
					break
				}
			}

			sccs = append(sccs, comp)
		}
	}

	for v := 0; v < n; v++ {
		if indices[v] == -1 {
			strongconnect(NodeIndex(v))
		}
	}

	return sccs
}
