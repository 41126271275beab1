/* ==================================================================================== *\
   controller.go

   SurveillanceController: drives the overlay through
   training -> inference, aggregates per-node frame counts and detection
   history, emits the learned-edge training artifact.
\* ==================================================================================== */
package surveillance

import (
	"log"
	"sort"
)

// ResourceStatistic is the per-node cost counter: one frame processed
// counts as one unit of observation work.
type ResourceStatistic struct {
	FramesProcessed int
}

// Detection is one (observed_domain, tick) sighting of a target.
type Detection struct {
	Domain DomainID
	Tick   int
}

// LearnedEdge is one row of the training artifact: (src, dst, distance, intensity, min_time).
type LearnedEdge struct {
	Src, Dst           NodeID
	Distance           float64
	Intensity          int
	MinTime            float64
}

// SurveillanceController owns the overlay nodes and fans out per-tick
// processing to them.
type SurveillanceController struct {
	nodes     map[NodeID]*OverlayNode
	network   *Network
	edgeIndex map[[2]NodeID]*EdgeWeightSet // for the training artifact dump

	training bool
	logger   *log.Logger // nil until SetLogger is called; see logging.go

	history map[ObjectID][]Detection
	stats   map[NodeID]*ResourceStatistic
}

// SetLogger installs the sink mode transitions and the end-of-training
// summary are reported to. Optional: a controller with no logger set
// simply stays silent, same as the teacher's components that never call
// output_msg.
func (c *SurveillanceController) SetLogger(l *log.Logger) { c.logger = l }

// NewSurveillanceController wires one OverlayNode per observed domain in
// `build`, connecting the messaging fabric and sharing one EdgeWeightSet
// cell per overlay edge between its two endpoints.
func NewSurveillanceController(domains *DomainGraph, build *BuildResult) *SurveillanceController {
	network := NewNetwork()
	sender := NewSender(network)

	c := &SurveillanceController{
		nodes:     make(map[NodeID]*OverlayNode, len(build.Observed)),
		network:   network,
		edgeIndex: build.Edges,
		history:   make(map[ObjectID][]Detection),
		stats:     make(map[NodeID]*ResourceStatistic, len(build.Observed)),
	}

	for i, domain := range build.Observed {
		id := NodeID(i)
		node := NewOverlayNode(id, domain, domains, sender)
		node.SetController(c)
		c.nodes[id] = node
		c.stats[id] = &ResourceStatistic{}
		network.Register(id, node)
	}

	for pair, weights := range build.Edges {
		a, b := pair[0], pair[1]
		network.Connect(a, b)
		c.nodes[a].ConnectWeight(b, weights)
		c.nodes[b].ConnectWeight(a, weights)
	}

	return c
}

// SetTargets installs the tracked-target subset on every overlay node.
func (c *SurveillanceController) SetTargets(targets map[ObjectID]bool) {
	for _, n := range c.nodes {
		n.SetTargets(targets)
	}
}

// SetTrainingMode toggles mode; on toggle, every node's awaiting table
// and previous-frame set are cleared.
func (c *SurveillanceController) SetTrainingMode(training bool) {
	c.training = training
	for _, n := range c.nodes {
		n.SetTrainingMode(training)
		n.Reset()
	}
	if c.logger != nil {
		mode := "inference"
		if training {
			mode = "training"
		}
		c.logger.Printf("[controller] entering %s mode over %d nodes", mode, len(c.nodes))
	}
}

// OnTimeTick fans out frame processing to every node; during inference,
// a second pass runs activation status only after every node has
// finished its frame phase.
func (c *SurveillanceController) OnTimeTick(t int) {
	for _, id := range c.sortedNodeIDs() {
		c.nodes[id].OnTimeTick(t)
	}
	if !c.training {
		for _, id := range c.sortedNodeIDs() {
			c.nodes[id].UpdateActiveStatus(t)
		}
	}
}

// sortedNodeIDs gives the deterministic iteration order
// ("Frame-processing order across overlay nodes is deterministic").
func (c *SurveillanceController) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// reportFrame is called by an overlay node once per active tick: bump
// its frame counter, record any detections.
func (c *SurveillanceController) reportFrame(id NodeID, domain DomainID, t int, detected []ObjectID) {
	c.stats[id].FramesProcessed++
	for _, target := range detected {
		c.history[target] = append(c.history[target], Detection{Domain: domain, Tick: t})
	}
}

// OnEndOfTime emits the learned edge table (training only).
func (c *SurveillanceController) OnEndOfTime() []LearnedEdge {
	edges := make([]LearnedEdge, 0, len(c.edgeIndex))
	for pair, w := range c.edgeIndex {
		edges = append(edges, LearnedEdge{
			Src:       pair[0],
			Dst:       pair[1],
			Distance:  w.Distance,
			Intensity: w.Intensity,
			MinTime:   w.MinTime,
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Src != edges[j].Src {
			return edges[i].Src < edges[j].Src
		}
		return edges[i].Dst < edges[j].Dst
	})
	if c.logger != nil {
		c.logger.Printf("[controller] training complete: %d learned edges", len(edges))
	}
	return edges
}

// History returns the detection sequence recorded for `target`.
func (c *SurveillanceController) History(target ObjectID) []Detection {
	return c.history[target]
}

// ResourceStatistics returns a snapshot of every node's frame counter.
func (c *SurveillanceController) ResourceStatistics() map[NodeID]ResourceStatistic {
	out := make(map[NodeID]ResourceStatistic, len(c.stats))
	for id, s := range c.stats {
		out[id] = *s
	}
	return out
}

// NodeCount returns |V_H|.
func (c *SurveillanceController) NodeCount() int { return len(c.nodes) }
