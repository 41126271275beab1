/* ==================================================================================== *\
   object.go

   The Object state machine: IDLE or MOVING, driven by its
   task stack, notifying the mobility dispatcher on domain enter/leave so
   guest sets (and the overlay frames derived from them) stay correct.
\* ==================================================================================== */
package surveillance

// ObjectMode is the object's coarse state.
type ObjectMode int

const (
	ObjectIdle ObjectMode = iota
	ObjectMoving
)

// Object is a single simulated moving entity.
type Object struct {
	ID          ObjectID
	Matrix      *TransitionMatrix
	stack       TaskStack
	coordinates Coordinates
	route       []DomainID
	speed       float64
	mode        ObjectMode

	AverageSpeed float64
	TimeStep     float64

	dispatcher *MobilityDispatcher
}

// NewObject seeds an object resident in `start`, with no current task
// (mode IDLE, empty stack) — the first Tick pulls its first task.
func NewObject(id ObjectID, matrix *TransitionMatrix, start DomainID, averageSpeed, timeStep float64, dispatcher *MobilityDispatcher) *Object {
	return &Object{
		ID:           id,
		Matrix:       matrix,
		coordinates:  Coordinates{Domain: start, Offset: 0},
		mode:         ObjectIdle,
		AverageSpeed: averageSpeed,
		TimeStep:     timeStep,
		dispatcher:   dispatcher,
	}
}

// ResetState returns the object to t = 0: empties its task stack, snaps
// coordinates back to `start`, and re-registers it as a guest of that
// domain through the dispatcher.
func (o *Object) ResetState(start DomainID) {
	o.stack = TaskStack{}
	o.coordinates = Coordinates{Domain: start, Offset: 0}
	o.route = nil
	o.speed = 0
	o.mode = ObjectIdle
	o.dispatcher.domains.addGuest(start, o.ID)
}

// Coordinates returns a defensive copy of the object's current position.
func (o *Object) Coordinates() Coordinates { return o.coordinates.Copy() }

// Mode returns the object's current mode.
func (o *Object) Mode() ObjectMode { return o.mode }

// snapshot builds the read-only view passed to the task generator and
// dispatcher.
func (o *Object) snapshot() ObjectSnapshot {
	return ObjectSnapshot{ID: o.ID, Domain: o.coordinates.Domain}
}

// Tick advances the object by one time step.
func (o *Object) Tick(t int) {
	if o.stack.Empty() {
		o.onTaskChanged(t)
	}

	switch o.mode {
	case ObjectIdle:
		// coordinates preserved as-is; nothing to advance.
	case ObjectMoving:
		o.advance(t)
	}

	current, ok := o.stack.Current()
	if ok && current.Completed(o.coordinates, t) {
		o.stack.Pop()
		o.onTaskChanged(t)
	}
}

// onTaskChanged is entered whenever the stack just lost its top task
// (freshly empty, at the very start of a tick or right after a pop) and
// mirrors the source's get_task/push/enter cascade: the replacement
// task is fetched, pushed and entered within the same tick the old one
// completed, stamped with this tick as its start — not deferred to the
// object's next Tick call, which would let every task after the first
// outlive its timeout by one extra tick.
func (o *Object) onTaskChanged(t int) {
	if o.stack.Empty() {
		task := o.dispatcher.GetTask(o.snapshot(), t)
		o.stack.Push(task, t)
		o.enterTask(task, t)
		return
	}
	// The stack still holds a task below the one that just completed
	// (not reachable with the dispatcher's single-task-at-a-time push
	// discipline today, kept for a general LIFO): resume it rather than
	// asking the dispatcher for a new one.
	resumed, _ := o.stack.Current()
	o.enterTask(resumed, t)
}

// enterTask applies the entry transition for a freshly-pushed task.
func (o *Object) enterTask(task Task, t int) {
	switch task.Kind {
	case TaskWait:
		o.speed = 0
		o.route = nil
		o.mode = ObjectIdle
	case TaskMove:
		route := o.dispatcher.GetRoute(o.coordinates.Domain, task.Destination)
		o.route = route
		o.speed = o.AverageSpeed
		o.mode = ObjectMoving
	}
}

// advance moves the object along its route by one tick.
func (o *Object) advance(t int) {
	if len(o.route) < 2 {
		// Zero-length route: destination equals current domain, or the
		// route has already been consumed down to its tail. Nothing left
		// to traverse; completion is checked by the caller.
		return
	}

	current, next := o.route[0], o.route[1]
	if o.coordinates.Offset == 0 {
		o.dispatcher.OnDomainLeave(o.snapshot(), current, t)
	}

	edge, ok := o.dispatcher.domains.Weight(current, next)
	if !ok {
		panic(&GraphIntegrityError{Op: "Object.advance", Detail: "no edge between route hops"})
	}

	nextOffset := o.coordinates.Offset + o.speed*o.TimeStep
	if nextOffset >= edge {
		o.coordinates = Coordinates{Domain: next, Offset: 0}
		o.route = o.route[1:]
		o.dispatcher.OnDomainEnter(o.snapshot(), next, t)
	} else {
		o.coordinates = Coordinates{Domain: current, Offset: nextOffset}
	}
}
