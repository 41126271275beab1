package surveillance

import "testing"

func TestDispatcherResetClearsHistoryAndGuests(t *testing.T) {
	domains := NewDomainGraph(2)
	if err := domains.AddEdge(0, 1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	dispatcher := NewMobilityDispatcher(domains)
	dispatcher.OnDomainEnter(ObjectSnapshot{ID: 1, Domain: 1}, 1, 3)

	if len(dispatcher.History(1)) == 0 {
		t.Fatalf("expected a recorded history entry before reset")
	}

	dispatcher.Reset()

	if len(dispatcher.History(1)) != 0 {
		t.Fatalf("expected history cleared after reset")
	}
	if len(domains.Guests(0)) != 0 || len(domains.Guests(1)) != 0 {
		t.Fatalf("expected every guest set cleared after reset")
	}
}

func TestDispatcherGetRouteUsesShortestPath(t *testing.T) {
	domains := NewDomainGraph(3)
	if err := domains.AddEdge(0, 1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := domains.AddEdge(1, 2, 5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	dispatcher := NewMobilityDispatcher(domains)

	route := dispatcher.GetRoute(0, 2)
	want := []DomainID{0, 1, 2}
	if len(route) != len(want) {
		t.Fatalf("expected route %v, got %v", want, route)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("expected route %v, got %v", want, route)
		}
	}
}
