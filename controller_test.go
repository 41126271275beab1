package surveillance

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
)

func buildTwoNodeOverlay(t *testing.T) (*DomainGraph, *BuildResult) {
	t.Helper()
	domains := NewDomainGraph(2)
	if err := domains.AddEdge(0, 1, 4); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	build := &BuildResult{
		Observed: []DomainID{0, 1},
		Edges: map[[2]NodeID]*EdgeWeightSet{
			{0, 1}: {Distance: 4, Intensity: 0, MinTime: math.Inf(1)},
		},
	}
	return domains, build
}

func TestControllerSharesWeightCellBetweenEndpoints(t *testing.T) {
	domains, build := buildTwoNodeOverlay(t)
	c := NewSurveillanceController(domains, build)

	a := c.nodes[0]
	b := c.nodes[1]
	if a.weights[1] != b.weights[0] {
		t.Fatalf("expected both endpoints to share the same EdgeWeightSet cell")
	}
}

func TestControllerOnEndOfTimeReportsLearnedEdges(t *testing.T) {
	domains, build := buildTwoNodeOverlay(t)
	c := NewSurveillanceController(domains, build)
	c.SetTrainingMode(true)

	domains.addGuest(0, 1)
	c.OnTimeTick(0)
	domains.removeGuest(0, 1)
	c.OnTimeTick(1)
	domains.addGuest(1, 1)
	c.OnTimeTick(2)

	edges := c.OnEndOfTime()
	if len(edges) != 1 {
		t.Fatalf("expected one learned edge, got %d", len(edges))
	}
	if edges[0].Intensity != 1 {
		t.Fatalf("expected one observed transit, got intensity %d", edges[0].Intensity)
	}
	if edges[0].MinTime != 1 {
		t.Fatalf("expected min_time 1 (departure recorded at tick 1, arrival at tick 2), got %g", edges[0].MinTime)
	}
}

func TestControllerActivationRunsAfterEveryNodesFramePhase(t *testing.T) {
	domains, build := buildTwoNodeOverlay(t)
	c := NewSurveillanceController(domains, build)
	c.SetTrainingMode(false)
	c.SetTargets(map[ObjectID]bool{1: true})

	// With no guests anywhere and nothing pending, both nodes should
	// deactivate on the very first inference tick.
	c.OnTimeTick(0)
	if c.nodes[0].Active() || c.nodes[1].Active() {
		t.Fatalf("both nodes should deactivate with empty frames and nothing pending")
	}
}

func TestControllerLoggerReportsModeAndSummary(t *testing.T) {
	domains, build := buildTwoNodeOverlay(t)
	c := NewSurveillanceController(domains, build)
	var buf bytes.Buffer
	c.SetLogger(log.New(&buf, "", 0))

	c.SetTrainingMode(true)
	c.OnEndOfTime()

	out := buf.String()
	if !strings.Contains(out, "training mode") {
		t.Fatalf("expected a training mode-toggle line, got %q", out)
	}
	if !strings.Contains(out, "learned edges") {
		t.Fatalf("expected an end-of-training summary line, got %q", out)
	}
}
