package surveillance

import (
	"math"
	"testing"
)

// threeNodeMesh wires overlay nodes A, B, C (ids 0, 1, 2) fully connected,
// each observing its own domain, sharing one EdgeWeightSet cell per pair.
func threeNodeMesh(t *testing.T) (domains *DomainGraph, a, b, c *OverlayNode, weightAB, weightBC, weightAC *EdgeWeightSet) {
	t.Helper()
	domains = NewDomainGraph(3)
	network := NewNetwork()
	sender := NewSender(network)

	a = NewOverlayNode(0, 0, domains, sender)
	b = NewOverlayNode(1, 1, domains, sender)
	c = NewOverlayNode(2, 2, domains, sender)
	network.Register(0, a)
	network.Register(1, b)
	network.Register(2, c)

	weightAB = &EdgeWeightSet{Distance: 1, MinTime: math.Inf(1)}
	weightBC = &EdgeWeightSet{Distance: 1, MinTime: math.Inf(1)}
	weightAC = &EdgeWeightSet{Distance: 1, MinTime: math.Inf(1)}

	network.Connect(0, 1)
	network.Connect(1, 2)
	network.Connect(0, 2)
	a.ConnectWeight(1, weightAB)
	b.ConnectWeight(0, weightAB)
	b.ConnectWeight(2, weightBC)
	c.ConnectWeight(1, weightBC)
	a.ConnectWeight(2, weightAC)
	c.ConnectWeight(0, weightAC)

	a.SetTrainingMode(true)
	b.SetTrainingMode(true)
	c.SetTrainingMode(true)
	return
}

func TestTrainingLearnsMinTimeAndIntensity(t *testing.T) {
	domains, a, b, c, weightAB, _, _ := threeNodeMesh(t)

	const obj ObjectID = 99
	domains.addGuest(0, obj)
	a.OnTimeTick(0)
	b.OnTimeTick(0)
	c.OnTimeTick(0)

	// The object departs A's domain at t=5 (still in transit, observed by
	// no domain).
	domains.removeGuest(0, obj)
	a.OnTimeTick(5)
	b.OnTimeTick(5)
	c.OnTimeTick(5)

	// It surfaces in B's domain at t=8: a three-tick transit.
	domains.addGuest(1, obj)
	a.OnTimeTick(8)
	b.OnTimeTick(8)
	c.OnTimeTick(8)

	if weightAB.Intensity != 1 {
		t.Fatalf("expected intensity 1 after one observed transit, got %d", weightAB.Intensity)
	}
	if weightAB.MinTime != 3 {
		t.Fatalf("expected min_time 3 (8-5), got %g", weightAB.MinTime)
	}
}

func TestTrainingCancelCascadeClearsNeighborAwaiting(t *testing.T) {
	domains, a, b, c, _, _, _ := threeNodeMesh(t)

	const obj ObjectID = 1
	domains.addGuest(0, obj)
	a.OnTimeTick(0)
	b.OnTimeTick(0)
	c.OnTimeTick(0)

	domains.removeGuest(0, obj)
	a.OnTimeTick(1) // broadcasts LEFT to B and C
	b.OnTimeTick(1)
	c.OnTimeTick(1)

	if _, ok := b.awaiting[obj]; !ok {
		t.Fatalf("expected B to be awaiting the departed object after LEFT")
	}
	if _, ok := c.awaiting[obj]; !ok {
		t.Fatalf("expected C to be awaiting the departed object after LEFT")
	}

	domains.addGuest(2, obj)
	c.OnTimeTick(2) // C sees the object enter -> sends ENTERED to A -> A cancels B and C

	if _, ok := b.awaiting[obj]; ok {
		t.Fatalf("expected B's awaiting entry cleared by the cancel cascade")
	}
	if _, ok := c.awaiting[obj]; ok {
		t.Fatalf("expected C's own awaiting entry cleared by the cancel cascade")
	}
}

func TestInferenceWakesOnLeftWithLearnedETA(t *testing.T) {
	domains, a, b, _, weightAB, _, _ := threeNodeMesh(t)
	weightAB.MinTime = 4
	weightAB.Intensity = 1

	a.SetTrainingMode(false)
	b.SetTrainingMode(false)
	a.SetTargets(map[ObjectID]bool{7: true})
	b.SetTargets(map[ObjectID]bool{7: true})

	domains.addGuest(0, 7)
	a.OnTimeTick(0)
	b.OnTimeTick(0)

	domains.removeGuest(0, 7)
	a.OnTimeTick(10) // broadcasts LEFT(7, 10) to B

	entry, ok := b.awaiting[7]
	if !ok {
		t.Fatalf("expected B to record an awaiting entry from the learned edge")
	}
	wantETA := 10 + int(weightAB.MinTime) - 1
	if entry.referenceTick != wantETA {
		t.Fatalf("expected ETA %d, got %d", wantETA, entry.referenceTick)
	}
}

// An edge whose min_time remained +Inf (never observed in training) has
// no effect on awaiting when a LEFT signal arrives during inference.
func TestInferenceNoPriorEdgeIgnoresLeft(t *testing.T) {
	domains, a, b, _, _, _, _ := threeNodeMesh(t)

	a.SetTrainingMode(false)
	b.SetTrainingMode(false)
	a.SetTargets(map[ObjectID]bool{3: true})
	b.SetTargets(map[ObjectID]bool{3: true})

	domains.addGuest(0, 3)
	a.OnTimeTick(0)
	b.OnTimeTick(0)

	domains.removeGuest(0, 3)
	a.OnTimeTick(1)

	if _, ok := b.awaiting[3]; ok {
		t.Fatalf("B has no prior on this edge and must ignore the LEFT signal")
	}
}

func TestUpdateActiveStatusDeactivatesWhenIdleAndNothingPending(t *testing.T) {
	domains := NewDomainGraph(1)
	network := NewNetwork()
	sender := NewSender(network)
	n := NewOverlayNode(0, 0, domains, sender)
	network.Register(0, n)
	n.SetTrainingMode(false)

	n.UpdateActiveStatus(0)
	if n.Active() {
		t.Fatalf("node with an empty frame and no pending awaiting entries should deactivate")
	}

	n.awaiting[42] = awaitingEntry{source: 0, referenceTick: 3}
	n.UpdateActiveStatus(3)
	if !n.Active() {
		t.Fatalf("a pending awaiting entry whose ETA has arrived should keep the node active")
	}
}
