package graph

import (
	"reflect"
	"testing"
)

func triangle(t *testing.T) *Graph {
	t.Helper()
	g := New(3)
	mustAddEdge(t, g, 0, 1, 3)
	mustAddEdge(t, g, 1, 2, 3)
	mustAddEdge(t, g, 0, 2, 3)
	return g
}

func mustAddEdge(t *testing.T, g *Graph, u, v int, w float64) {
	t.Helper()
	if err := g.AddEdge(u, v, w); err != nil {
		t.Fatalf("AddEdge(%d, %d, %g): %v", u, v, w, err)
	}
}

func TestShortestPathTriangle(t *testing.T) {
	g := triangle(t)
	path, dist, err := g.ShortestPath(0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if dist != 3 {
		t.Fatalf("expected direct distance 3, got %g", dist)
	}
	if len(path) != 2 || path[0] != 0 || path[1] != 2 {
		t.Fatalf("expected direct path [0 2], got %v", path)
	}
}

func TestShortestPathLine(t *testing.T) {
	g := New(3)
	mustAddEdge(t, g, 0, 1, 2)
	mustAddEdge(t, g, 1, 2, 5)

	path, dist, err := g.ShortestPath(0, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if dist != 7 {
		t.Fatalf("expected distance 7, got %g", dist)
	}
	if !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Fatalf("expected path [0 1 2], got %v", path)
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := triangle(t)
	path, dist, err := g.ShortestPath(1, 1)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if dist != 0 || !reflect.DeepEqual(path, []int{1}) {
		t.Fatalf("expected trivial path at 1, got %v dist %g", path, dist)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := New(4)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 2, 3, 1)

	if _, _, err := g.ShortestPath(0, 3); err != ErrNoPath {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestSimplePathsLineHasOneRoute(t *testing.T) {
	g := New(3)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 1)

	paths := g.SimplePaths(0, 2)
	if len(paths) != 1 || !reflect.DeepEqual(paths[0], []int{0, 1, 2}) {
		t.Fatalf("expected single path [0 1 2], got %v", paths)
	}
}

func TestSimplePathsTriangleHasTwoRoutes(t *testing.T) {
	g := triangle(t)
	paths := g.SimplePaths(0, 2)
	if len(paths) != 2 {
		t.Fatalf("expected 2 simple paths in a triangle, got %d: %v", len(paths), paths)
	}
}

func TestConnected(t *testing.T) {
	g := triangle(t)
	if !g.Connected() {
		t.Fatalf("triangle should be connected")
	}

	disconnected := New(4)
	mustAddEdge(t, disconnected, 0, 1, 1)
	mustAddEdge(t, disconnected, 2, 3, 1)
	if disconnected.Connected() {
		t.Fatalf("two disjoint edges should not be connected")
	}
}

func TestAddEdgeUnknownNode(t *testing.T) {
	g := New(2)
	if err := g.AddEdge(0, 5, 1); err == nil {
		t.Fatalf("expected error adding edge to unknown node")
	}
}

func TestEdgesReportsEachPairOnce(t *testing.T) {
	g := triangle(t)
	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges in a triangle, got %d: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.U >= e.V {
			t.Fatalf("expected every edge reported with U < V, got %v", e)
		}
	}
}
