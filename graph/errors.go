package graph

import "errors"

// ErrUnknownNode is returned when an operation references a node id that
// does not belong to the graph — a graph integrity error per the core's
// error taxonomy: fatal, never recovered locally.
var ErrUnknownNode = errors.New("graph: unknown node")

// ErrNoPath is returned by ShortestPath when src and dst are not connected.
// The domain graph is connected by construction, so this only fires for
// malformed inputs built outside that invariant (e.g. in tests).
var ErrNoPath = errors.New("graph: no path between nodes")
