/* ==================================================================================== *\
   overlay_builder.go

   OverlayBuilder.Build: sample N = ceil(alpha * |V|) domains, then for
   every unordered pair enumerate simple paths in G and keep the ones
   whose interior avoids every other sampled domain ("direct" routes),
   adding an overlay edge at the minimum direct-route length.

   The O(N^2) all-pairs search is embarrassingly parallel per pair, the
   same shape as anaximander_driver.go's pool.Launch_pool(1, ases_interest,
   f) fan-out over independent units of work. pool.Launch_pool's signature
   is fixed to string items; each pair is encoded as an "i,j" key and
   decoded inside the worker closure, so the real dependency is exercised
   rather than worked around with a hand-rolled goroutine pool.
\* ==================================================================================== */
package surveillance

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	pool "github.com/Emeline-1/pool"

	"github.com/anaximander-labs/surveillance-overlay/graph"
	"github.com/anaximander-labs/surveillance-overlay/tree"
)

// EdgeWeightSet is the learned weight carried by an overlay edge.
type EdgeWeightSet struct {
	Distance float64 // length of the shortest direct path, immutable after build
	MinTime  float64 // smallest observed transit time, +Inf until observed
	Intensity int    // count of observed transits
}

// OverlayBuilder derives the surveillance graph H from a domain graph G
// and a coverage ratio alpha.
type OverlayBuilder struct {
	domains *DomainGraph
	alpha   float64
	rng     *RNG
	workers int
}

// NewOverlayBuilder builds an OverlayBuilder. workers bounds the pool
// fan-out for the all-pairs direct-path search; 0 defaults to 4.
func NewOverlayBuilder(domains *DomainGraph, alpha float64, rng *RNG, workers int) (*OverlayBuilder, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, &ConfigError{Field: "alpha", Reason: "must be in (0, 1]"}
	}
	if workers <= 0 {
		workers = 4
	}
	return &OverlayBuilder{domains: domains, alpha: alpha, rng: rng, workers: workers}, nil
}

// BuildResult is the surveillance overlay graph H plus the mapping from
// overlay node id to the domain it observes.
type BuildResult struct {
	Graph    *graph.Graph
	Observed []DomainID // Observed[i] is the domain overlay node i watches
	Edges    map[[2]NodeID]*EdgeWeightSet
}

type pairResult struct {
	i, j     int
	distance float64
	found    bool
}

// Build samples the observed-domain subset and derives H.
// debugTree, when non-nil, is populated with a spanning-tree view of the
// built overlay for verbose log output (tree.BuildFromAdjacency).
func (b *OverlayBuilder) Build(debugTree tree.Tree) (*BuildResult, error) {
	size := b.domains.Size()
	n := int(ceilRatio(b.alpha, size))
	if n < 1 {
		n = 1
	}
	if n > size {
		n = size
	}

	perm := b.rng.Perm(size)
	observed := make([]DomainID, n)
	for i := 0; i < n; i++ {
		observed[i] = DomainID(perm[i])
	}
	observedSet := make(map[DomainID]bool, n)
	for _, d := range observed {
		observedSet[d] = true
	}

	overlay := graph.New(n)
	edges := make(map[[2]NodeID]*EdgeWeightSet)

	keys := make([]string, 0, n*(n-1)/2)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			keys = append(keys, pairKey(i, j))
		}
	}

	var mu sync.Mutex
	var outcomes []pairResult

	worker := func(key string) {
		i, j := parsePairKey(key)
		distance, found := b.directPathLength(observed[i], observed[j], observedSet)
		mu.Lock()
		outcomes = append(outcomes, pairResult{i: i, j: j, distance: distance, found: found})
		mu.Unlock()
	}

	pool.Launch_pool(b.workers, keys, worker)

	sort.Slice(outcomes, func(a, c int) bool {
		if outcomes[a].i != outcomes[c].i {
			return outcomes[a].i < outcomes[c].i
		}
		return outcomes[a].j < outcomes[c].j
	})

	for _, o := range outcomes {
		if !o.found {
			continue
		}
		weights := &EdgeWeightSet{Distance: o.distance, MinTime: math.Inf(1), Intensity: 0}
		if err := overlay.AddEdge(o.i, o.j, o.distance); err != nil {
			return nil, &GraphIntegrityError{Op: "OverlayBuilder.Build", Detail: err.Error()}
		}
		edges[[2]NodeID{NodeID(o.j), NodeID(o.i)}] = weights
	}

	if debugTree != nil {
		observedInts := make([]int, len(observed))
		for i, d := range observed {
			observedInts[i] = int(d)
		}
		tree.BuildFromAdjacency(debugTree, overlay, observedInts)
	}

	return &BuildResult{Graph: overlay, Observed: observed, Edges: edges}, nil
}

// directPathLength finds the minimum-length simple path between src and
// dst in the domain graph whose interior vertices are disjoint from
// `observed`.
func (b *OverlayBuilder) directPathLength(src, dst DomainID, observed map[DomainID]bool) (float64, bool) {
	paths := b.domains.Underlying().SimplePaths(int(src), int(dst))
	best := math.Inf(1)
	found := false
	for _, path := range paths {
		if !isDirect(path, observed) {
			continue
		}
		length := b.domains.Underlying().PathLength(path)
		if length < best {
			best = length
			found = true
		}
	}
	return best, found
}

// isDirect reports whether every interior vertex of `path` (excluding its
// two endpoints) is outside the observed set.
func isDirect(path []int, observed map[DomainID]bool) bool {
	for _, v := range path[1 : len(path)-1] {
		if observed[DomainID(v)] {
			return false
		}
	}
	return true
}

func ceilRatio(alpha float64, size int) float64 {
	v := alpha * float64(size)
	if v == float64(int(v)) {
		return v
	}
	return float64(int(v) + 1)
}

func pairKey(i, j int) string {
	return strconv.Itoa(i) + "," + strconv.Itoa(j)
}

func parsePairKey(key string) (int, int) {
	parts := strings.SplitN(key, ",", 2)
	i, err1 := strconv.Atoi(parts[0])
	j, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		panic(fmt.Sprintf("[surveillance.OverlayBuilder]: malformed pair key %q", key))
	}
	return i, j
}
