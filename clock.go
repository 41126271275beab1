/* ==================================================================================== *\
   clock.go

   TickLoop: the monotonic driver fanning out to objects and the
   surveillance controller each tick — objects move first (mutating
   guest sets), then the overlay's frame phase, then activation status.
   No goroutines: a tick is indivisible, and every per-tick handler here
   is a plain synchronous call.
\* ==================================================================================== */
package surveillance

// TickLoop drives one phase (training or inference) of the simulation.
type TickLoop struct {
	objects    []*Object
	controller *SurveillanceController
	reference  *ReferenceSystem // nil during training; the comparison baseline during inference
}

// NewTickLoop builds a loop over `objects`, reporting to `controller`
// and, optionally, to a reference system run in parallel for comparison.
func NewTickLoop(objects []*Object, controller *SurveillanceController, reference *ReferenceSystem) *TickLoop {
	return &TickLoop{objects: objects, controller: controller, reference: reference}
}

// Run advances the simulation from t = 0 through time_limit - 1
// inclusive.
func (l *TickLoop) Run(timeLimit int) {
	for t := 0; t < timeLimit; t++ {
		l.Tick(t)
	}
}

// Tick runs a single indivisible tick.
func (l *TickLoop) Tick(t int) {
	for _, o := range l.objects {
		o.Tick(t)
	}
	l.controller.OnTimeTick(t)
	if l.reference != nil {
		l.reference.OnTimeTick(t)
	}
}
