/* ==================================================================================== *\
   topology.go

   BuildFromAdjacency walks a graph.Graph breadth-first from node 0 and
   records every root-to-node path into a Tree, labeling each node with
   its id and the domain it observes. Exercised by the overlay builder's
   optional verbose debug logging path (overlay_builder.go).
\* ==================================================================================== */
package tree

import (
	"fmt"

	"github.com/anaximander-labs/surveillance-overlay/graph"
)

// BuildFromAdjacency inserts a BFS spanning-tree view of `g` into `t`,
// one root-first path per reachable node, labeled "node#<id> (domain
// <observed>)". observed[i] is the domain id overlay node i watches; it
// may be nil, in which case only the node id is shown.
func BuildFromAdjacency(t Tree, g *graph.Graph, observed []int) {
	if g.Size() == 0 {
		return
	}

	label := func(id int) string {
		if observed != nil && id < len(observed) {
			return fmt.Sprintf("node#%d (domain %d)", id, observed[id])
		}
		return fmt.Sprintf("node#%d", id)
	}

	visited := make(map[int]bool, g.Size())
	queue := []int{0}
	paths := map[int][]string{0: {label(0)}}
	visited[0] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t.Insert(paths[cur])

		for _, next := range g.Neighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			path := append(append([]string{}, paths[cur]...), label(next))
			paths[next] = path
			queue = append(queue, next)
		}
	}
}
