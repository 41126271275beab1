/* ==================================================================================== *\
   task_generator.go

   TaskGenerator.CreateTask: flip a Bernoulli coin on moving_degree; on
   failure return Wait(uniform(1, max_await)); on success sample a
   destination from the object's transition row by inverse-CDF walk and
   return Move(destination).
\* ==================================================================================== */
package surveillance

// ObjectSnapshot is the read-only view of an object's state a task
// generator and mobility dispatcher need — current domain and id — kept
// deliberately small so callers can't mutate live object state through it.
type ObjectSnapshot struct {
	ID     ObjectID
	Domain DomainID
}

// TaskGenerator samples tasks per object, given that object's transition
// matrix.
type TaskGenerator struct {
	rng          *RNG
	movingDegree float64
	maxAwait     int
}

// NewTaskGenerator builds a TaskGenerator. movingDegree is the Bernoulli
// success probability for issuing a Move over a Wait; maxAwait bounds
// Wait task timeouts.
func NewTaskGenerator(rng *RNG, movingDegree float64, maxAwait int) *TaskGenerator {
	return &TaskGenerator{rng: rng, movingDegree: movingDegree, maxAwait: maxAwait}
}

// CreateTask draws the next task for `snapshot` using `matrix`.
func (g *TaskGenerator) CreateTask(snapshot ObjectSnapshot, matrix *TransitionMatrix) Task {
	if g.rng.Float64() >= g.movingDegree {
		return Task{Kind: TaskWait, Timeout: g.rng.UniformInt(1, g.maxAwait)}
	}

	row, ok := matrix.Row(snapshot.Domain)
	if !ok {
		// The object's current domain isn't in its own transition group —
		// can't happen if the object was seeded inside D_k, but if it did
		// we have no row to sample from; fall back to waiting rather than
		// crashing the whole tick.
		return Task{Kind: TaskWait, Timeout: g.rng.UniformInt(1, g.maxAwait)}
	}

	destination := sampleInverseCDF(g.rng, matrix.Domains(), row)
	return Task{Kind: TaskMove, Destination: destination}
}

// sampleInverseCDF draws u ~ U(0,1) and walks `row` (aligned with
// `domains`) accumulating probability mass until the running sum reaches
// u, returning the matching destination. A rounding tail that leaves u
// above the summed row returns the last column.
func sampleInverseCDF(rng *RNG, domains []DomainID, row []float64) DomainID {
	u := rng.Float64()
	acc := 0.0
	for i, p := range row {
		acc += p
		if acc >= u {
			return domains[i]
		}
	}
	return domains[len(domains)-1]
}
