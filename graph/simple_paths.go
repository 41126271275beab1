/* ==================================================================================== *\
   simple_paths.go

   Exhaustive enumeration of all simple paths between two nodes,
   used by the overlay builder to find every route between two observed
   domains and then keep only the ones that stay clear of other observed
   domains ("direct" routes).

   Grounded on the original Python find_paths / _find_paths
   (primitives/metrics/paths.py): depth-first walk marking nodes visited
   along the current path only, backtracking on return. Kept recursive,
   same as the source, since graphs here stay small (|V| <= 20) and a
   manual stack would buy nothing.
\* ==================================================================================== */
package graph

// SimplePaths returns every simple path (no repeated node) from src to dst,
// each path given as the ordered node sequence starting at src and ending
// at dst (inclusive of both). If src == dst, the single trivial path
// [src] is returned.
func (g *Graph) SimplePaths(src, dst int) [][]int {
	if !g.HasNode(src) || !g.HasNode(dst) {
		return nil
	}
	if src == dst {
		return [][]int{{src}}
	}

	var paths [][]int
	visited := make(map[int]bool, g.size)
	path := make([]int, 0, g.size)
	g.walkSimplePaths(src, dst, visited, path, &paths)
	return paths
}

func (g *Graph) walkSimplePaths(cur, dst int, visited map[int]bool, path []int, paths *[][]int) {
	visited[cur] = true
	path = append(path, cur)

	if cur == dst {
		found := make([]int, len(path))
		copy(found, path)
		*paths = append(*paths, found)
	} else {
		for _, next := range g.Neighbors(cur) {
			if !visited[next] {
				g.walkSimplePaths(next, dst, visited, path, paths)
			}
		}
	}

	visited[cur] = false
}

// PathLength sums the edge weights along a node sequence produced by
// SimplePaths or ShortestPath.
func (g *Graph) PathLength(path []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, _ := g.Weight(path[i], path[i+1])
		total += w
	}
	return total
}
