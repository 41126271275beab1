/* ==================================================================================== *\
   graph.go

   A small undirected weighted graph over dense integer node ids.

   Connectivity (is the graph a single component?) is delegated to
   github.com/Emeline-1/basic_graph, the same connected-component walk the
   overlay-processing code uses elsewhere in this lineage. Weighted adjacency,
   Dijkstra and all-simple-paths are not part of that library's surface, so
   they are implemented here directly (see shortest_path.go, simple_paths.go).
\* ==================================================================================== */
package graph

import (
	"fmt"
	"sort"
	"strconv"

	basicgraph "github.com/Emeline-1/basic_graph"
)

// Graph is an undirected weighted graph over node ids [0, Size).
type Graph struct {
	size      int
	adjacency map[int]map[int]float64
	conn      *basicgraph.Graph // unweighted mirror, used only for connectivity checks
	edges     int
}

// New builds an empty graph over `size` nodes with no edges.
func New(size int) *Graph {
	g := &Graph{
		size:      size,
		adjacency: make(map[int]map[int]float64, size),
		conn:      basicgraph.New(),
	}
	for i := 0; i < size; i++ {
		g.adjacency[i] = make(map[int]float64)
	}
	return g
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return g.size }

// HasNode reports whether id names a node of this graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// AddEdge adds an undirected edge of the given weight between u and v.
// Adding an edge that already exists overwrites its weight.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("graph: add edge %d-%d: %w", u, v, ErrUnknownNode)
	}
	if _, existed := g.adjacency[u][v]; !existed {
		g.edges++
	}
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	g.conn.Add_edge(nodeKey(u), nodeKey(v))
	return nil
}

// Weight returns the weight of edge (u, v) and whether it exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	w, ok := g.adjacency[u][v]
	return w, ok
}

// Neighbors returns the neighbors of u in ascending id order (deterministic
// iteration, so path searches and traversals over the graph are
// reproducible per a given seed).
func (g *Graph) Neighbors(u int) []int {
	ns := make([]int, 0, len(g.adjacency[u]))
	for n := range g.adjacency[u] {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

// Edge is one undirected weighted edge, reported once per pair.
type Edge struct {
	U, V   int
	Weight float64
}

// Edges returns every edge exactly once, ordered by (U, V) with U < V.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for u, neighbors := range g.adjacency {
		for v, w := range neighbors {
			if u < v {
				edges = append(edges, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, g.size)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// Connected reports whether the graph is a single connected component.
func (g *Graph) Connected() bool {
	if g.size <= 1 {
		return true
	}
	if g.edges == 0 {
		return false
	}
	for _, neighbors := range g.adjacency {
		if len(neighbors) == 0 {
			return false // an isolated node never reaches the edge-only mirror
		}
	}
	g.conn.Set_iterator()
	components := 0
	for g.conn.Next_connected_component() {
		components++
		if components > 1 {
			return false
		}
	}
	return components <= 1
}

func nodeKey(id int) string {
	return strconv.Itoa(id)
}
