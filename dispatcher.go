/* ==================================================================================== *\
   dispatcher.go

   MobilityDispatcher: hands tasks to objects, tracks guest lists per
   domain, records ground-truth itinerary. Owns the domain graph and the
   shortest-path oracle (graph.Graph.ShortestPath).
\* ==================================================================================== */
package surveillance

// HistoryEntry is one (domain, tick) itinerary record.
type HistoryEntry struct {
	Domain DomainID
	Tick   int
}

// MobilityDispatcher is the non-owning handle objects call back into
// on every domain leave/enter, and that hands out their next task.
type MobilityDispatcher struct {
	domains       *DomainGraph
	generators    map[ObjectID]*TaskGenerator
	matrices      map[ObjectID]*TransitionMatrix
	history       map[ObjectID][]HistoryEntry
	moveCount     map[ObjectID]map[DomainID]int
}

// NewMobilityDispatcher builds a dispatcher over `domains`. Per-object
// task generators and transition matrices are registered via Register
// before that object's first Tick.
func NewMobilityDispatcher(domains *DomainGraph) *MobilityDispatcher {
	return &MobilityDispatcher{
		domains:    domains,
		generators: make(map[ObjectID]*TaskGenerator),
		matrices:   make(map[ObjectID]*TransitionMatrix),
		history:    make(map[ObjectID][]HistoryEntry),
		moveCount:  make(map[ObjectID]map[DomainID]int),
	}
}

// Register associates an object with its task generator and transition
// matrix, and seeds it into its start domain's guest set.
func (d *MobilityDispatcher) Register(id ObjectID, gen *TaskGenerator, matrix *TransitionMatrix, start DomainID) {
	d.generators[id] = gen
	d.matrices[id] = matrix
	d.moveCount[id] = make(map[DomainID]int)
	d.domains.addGuest(start, id)
}

// GetTask delegates to the object's task generator; side-effect:
// increment the per-destination move counter for statistics.
func (d *MobilityDispatcher) GetTask(snapshot ObjectSnapshot, t int) Task {
	task := d.generators[snapshot.ID].CreateTask(snapshot, d.matrices[snapshot.ID])
	if task.Kind == TaskMove {
		d.moveCount[snapshot.ID][task.Destination]++
	}
	return task
}

// GetRoute calls the shortest-path oracle on domain ids and returns the
// ordered node sequence.
func (d *MobilityDispatcher) GetRoute(src, dst DomainID) []DomainID {
	path, _, err := d.domains.Underlying().ShortestPath(int(src), int(dst))
	if err != nil {
		panic(&GraphIntegrityError{Op: "MobilityDispatcher.GetRoute", Detail: err.Error()})
	}
	route := make([]DomainID, len(path))
	for i, n := range path {
		route[i] = DomainID(n)
	}
	return route
}

// OnDomainLeave removes the object from domain_id's guest set. Absence
// is tolerated.
func (d *MobilityDispatcher) OnDomainLeave(snapshot ObjectSnapshot, domainID DomainID, t int) {
	d.domains.removeGuest(domainID, snapshot.ID)
}

// OnDomainEnter adds the object to domain_id's guest set and appends to
// its ground-truth itinerary.
func (d *MobilityDispatcher) OnDomainEnter(snapshot ObjectSnapshot, domainID DomainID, t int) {
	d.domains.addGuest(domainID, snapshot.ID)
	d.history[snapshot.ID] = append(d.history[snapshot.ID], HistoryEntry{Domain: domainID, Tick: t})
}

// History returns the ground-truth itinerary recorded for `id`.
func (d *MobilityDispatcher) History(id ObjectID) []HistoryEntry {
	return d.history[id]
}

// MoveCount returns how many times `id` was dispatched a Move task to
// `dst` — statistics only, not consulted by the core state machines.
func (d *MobilityDispatcher) MoveCount(id ObjectID, dst DomainID) int {
	return d.moveCount[id][dst]
}

// Reset clears all history and all guest sets, returning the simulation
// to t = 0.
func (d *MobilityDispatcher) Reset() {
	d.domains.resetGuests()
	for id := range d.history {
		d.history[id] = nil
	}
}
