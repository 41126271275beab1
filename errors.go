/* ==================================================================================== *\
   errors.go

   Error taxonomy (kinds, not ad-hoc strings). Configuration and graph
   integrity errors abort the phase that discovers them; task-stack and
   unknown-receiver errors are programming bugs and panic, in the same
   "[Component]: detail" style as WartsReader.Open's fatal paths;
   everything else recoverable is handled locally and never surfaces as
   an error value at all (absent guest on leave, missing prior at
   inference).
\* ==================================================================================== */
package surveillance

import "fmt"

// ConfigError reports a bad simulation knob, caught at setup.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[surveillance.Config]: %s: %s", e.Field, e.Reason)
}

// GraphIntegrityError reports a reference to a node or edge the domain
// graph does not have.
type GraphIntegrityError struct {
	Op     string
	Detail string
}

func (e *GraphIntegrityError) Error() string {
	return fmt.Sprintf("[surveillance.Graph]: %s: %s", e.Op, e.Detail)
}

// taskStackError panics; an empty pop or a nil push is a programming bug,
// never a condition a caller can recover from.
func taskStackError(msg string) {
	panic(fmt.Sprintf("[surveillance.TaskStack]: %s", msg))
}

// unknownReceiverError panics; a send to a non-existent overlay node id
// means the caller built the network wrong.
func unknownReceiverError(id NodeID) {
	panic(fmt.Sprintf("[surveillance.Network]: unknown receiver %d", id))
}
