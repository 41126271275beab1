/* ==================================================================================== *\
   network.go

   The messaging fabric: a Network owns a registry from overlay-node id
   to a Receiver handle; Sender.Send invokes the target's OnReceive.
   Delivery is synchronous, in-process, with no queue, no backpressure,
   no loss — id lookups through a registry rather than direct pointers
   between nodes, so overlay nodes never hold a reference cycle on each
   other.
\* ==================================================================================== */
package surveillance

// NodeID identifies an overlay node.
type NodeID int

// SignalKind discriminates the Signal tagged union.
type SignalKind int

const (
	SignalLeft SignalKind = iota
	SignalEntered
	SignalCancel
)

// Signal is a message exchanged between overlay nodes.
type Signal struct {
	Kind     SignalKind
	ObjectID ObjectID
	Tick     int
	Training bool
}

// Receiver is implemented by anything the network can deliver a signal to.
type Receiver interface {
	OnReceive(src NodeID, sig Signal)
}

// Network is the overlay's message-passing registry.
type Network struct {
	receivers map[NodeID]Receiver
	adjacency map[NodeID][]NodeID
}

// NewNetwork builds an empty network; nodes register themselves with
// Register, edges with Connect.
func NewNetwork() *Network {
	return &Network{
		receivers: make(map[NodeID]Receiver),
		adjacency: make(map[NodeID][]NodeID),
	}
}

// Register associates `id` with a Receiver.
func (n *Network) Register(id NodeID, r Receiver) {
	n.receivers[id] = r
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = nil
	}
}

// Connect records an overlay edge between two node ids, for the benefit
// of broadcast (Neighbors).
func (n *Network) Connect(a, b NodeID) {
	n.adjacency[a] = append(n.adjacency[a], b)
	n.adjacency[b] = append(n.adjacency[b], a)
}

// Neighbors returns the overlay-adjacent node ids of `id`.
func (n *Network) Neighbors(id NodeID) []NodeID {
	return n.adjacency[id]
}

// Sender sends signals through a Network on behalf of one node.
type Sender struct {
	network *Network
}

// NewSender builds a Sender bound to `network`.
func NewSender(network *Network) *Sender {
	return &Sender{network: network}
}

// Send delivers `sig` from src to dst. Fatal if dst is unregistered.
// A node never delivers to itself; Send is a no-op in that case rather
// than a guard at every call site.
func (s *Sender) Send(src, dst NodeID, sig Signal) {
	if src == dst {
		return
	}
	r, ok := s.network.receivers[dst]
	if !ok {
		unknownReceiverError(dst)
	}
	r.OnReceive(src, sig)
}

// Broadcast sends `sig` from src to every overlay-adjacent node, the
// source never delivering to itself.
func (s *Sender) Broadcast(src NodeID, sig Signal) {
	for _, dst := range s.network.Neighbors(src) {
		s.Send(src, dst, sig)
	}
}
