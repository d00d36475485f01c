package resolve

import "testing"

func buildGraph(t *testing.T, names []string, edges [][3]string) *DependencyGraph {
	t.Helper()

	g := newGraph()
	idx := make(map[string]NodeIndex, len(names))

	for i, n := range names {
		node := Node{ID: id(n, "1.0.0")}
		nodeIdx := g.AddNode(node)
		idx[n] = nodeIdx

		if i == 0 {
			g.rootIndex = nodeIdx
		}
	}

	for _, e := range edges {
		g.AddEdge(idx[e[0]], idx[e[1]], Edge{Alias: e[2]})
	}

	return g
}

func TestDependencyGraph_TopoSortRootFirst(t *testing.T) {
	g := buildGraph(t, []string{"root", "a", "b"}, [][3]string{
		{"root", "a", "a"},
		{"root", "b", "b"},
		{"a", "b", "b"},
	})

	order, ok := g.TopoSort()
	if !ok {
		t.Fatalf("expected acyclic graph to sort")
	}

	if order[0] != g.RootIndex() {
		t.Fatalf("expected root first, got order %v", order)
	}

	pos := make(map[NodeIndex]int, len(order))
	for i, idx := range order {
		pos[idx] = i
	}

	aIdx, _ := g.Index(id("a", "1.0.0"))
	bIdx, _ := g.Index(id("b", "1.0.0"))

	if pos[aIdx] >= pos[bIdx] {
		t.Fatalf("expected a before b: order %v", order)
	}
}

func TestDependencyGraph_TopoSortDetectsCycle(t *testing.T) {
	g := buildGraph(t, []string{"root", "a"}, [][3]string{
		{"root", "a", "a"},
		{"a", "root", "root"},
	})

	if _, ok := g.TopoSort(); ok {
		t.Fatalf("expected cycle to be detected")
	}
}

func TestDependencyGraph_StronglyConnectedComponents(t *testing.T) {
	g := buildGraph(t, []string{"root", "a", "b"}, [][3]string{
		{"root", "a", "a"},
		{"a", "b", "b"},
		{"b", "a", "a-back"},
	})

	var big []NodeIndex

	for _, comp := range g.StronglyConnectedComponents() {
		if len(comp) > 1 {
			big = comp

			break
		}
	}

	if len(big) != 2 {
		t.Fatalf("expected a 2-node SCC, got %v", big)
	}
}
