/* ==================================================================================== *\
   reference.go

   The always-on reference system: every node stays active for the
   whole run, no awaiting table, no messaging.
   It reuses OverlayNode's frame/diff primitives directly rather than
   being a parallel implementation, so "always-on" is a policy difference,
   not a second copy of the frame-reading logic.
\* ==================================================================================== */
package surveillance

import "sort"

// ReferenceSystem tracks every observed domain every tick with no
// activation logic — the baseline the adaptive overlay is scored
// against.
type ReferenceSystem struct {
	domains  *DomainGraph
	observed []DomainID
	prev     []map[ObjectID]bool
	targets  map[ObjectID]bool

	history map[ObjectID][]Detection
	stats   []ResourceStatistic
}

// NewReferenceSystem builds a reference system watching the same
// observed-domain subset an overlay builder selected.
func NewReferenceSystem(domains *DomainGraph, observed []DomainID) *ReferenceSystem {
	r := &ReferenceSystem{
		domains:  domains,
		observed: observed,
		prev:     make([]map[ObjectID]bool, len(observed)),
		history:  make(map[ObjectID][]Detection),
		stats:    make([]ResourceStatistic, len(observed)),
	}
	for i := range r.prev {
		r.prev[i] = make(map[ObjectID]bool)
	}
	return r
}

// SetTargets installs the tracked-target subset.
func (r *ReferenceSystem) SetTargets(targets map[ObjectID]bool) { r.targets = targets }

// OnTimeTick processes one frame per observed domain, every tick,
// unconditionally (the "always active" policy — contrast with
// OverlayNode.tickInference, which skips when !active).
func (r *ReferenceSystem) OnTimeTick(t int) {
	for i, domain := range r.observed {
		guests := r.domains.Guests(domain)
		incoming, _ := diff(r.prev[i], guests)
		r.stats[i].FramesProcessed++

		for id := range incoming {
			if r.targets != nil && !r.targets[id] {
				continue
			}
			r.history[id] = append(r.history[id], Detection{Domain: domain, Tick: t})
		}
		r.prev[i] = guests
	}
}

// History returns the detection sequence recorded for `target`.
func (r *ReferenceSystem) History(target ObjectID) []Detection {
	return r.history[target]
}

// ResourceStatistics returns every node's frame counter, keyed the same
// way the adaptive controller's are (node index as NodeID) for use by
// Compare.
func (r *ReferenceSystem) ResourceStatistics() map[NodeID]ResourceStatistic {
	out := make(map[NodeID]ResourceStatistic, len(r.stats))
	ids := make([]int, len(r.stats))
	for i := range ids {
		ids[i] = i
	}
	sort.Ints(ids)
	for _, i := range ids {
		out[NodeID(i)] = r.stats[i]
	}
	return out
}
