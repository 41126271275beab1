/* ==================================================================================== *\
   transition.go

   Per-object transition matrix T_k: a row-stochastic table over
   a subset D_k subseteq V, |D_k| >= 2. Construction picks the group size
   via one strategy and shapes each row's probability mass via another,
   mirroring anaximander_parallel.go's generate_weight_functions array-of-
   functions idiom rather than one god-function with a giant switch.
\* ==================================================================================== */
package surveillance

import "sort"

// TransitionMatrix is immutable after construction.
type TransitionMatrix struct {
	domains []DomainID             // D_k, in ascending order
	row     map[DomainID][]float64 // row[s][i] = Pr(next = domains[i] | current = s)
}

// Domains returns D_k in ascending order.
func (t *TransitionMatrix) Domains() []DomainID { return t.domains }

// Row returns the probability row for `s`, aligned with Domains(). ok is
// false if s is not in D_k.
func (t *TransitionMatrix) Row(s DomainID) ([]float64, bool) {
	r, ok := t.row[s]
	return r, ok
}

// groupSizer picks |D_k| given the domain graph size and the configured
// minimum.
type groupSizer func(rng *RNG, domainSize, minGroupSize int) int

var groupSizers = map[TransitionGroupDistribution]groupSizer{
	GroupPlainUniform: func(rng *RNG, domainSize, minGroupSize int) int {
		return rng.UniformInt(minGroupSize, domainSize)
	},
	GroupBinomial: func(rng *RNG, domainSize, minGroupSize int) int {
		n := domainSize - minGroupSize
		count := 0
		for i := 0; i < n; i++ {
			if rng.Float64() < 0.5 {
				count++
			}
		}
		return minGroupSize + count
	},
	GroupGeometric: func(rng *RNG, domainSize, minGroupSize int) int {
		extra := rng.Geometric(0.5, domainSize-minGroupSize)
		size := minGroupSize + extra
		if size > domainSize {
			size = domainSize
		}
		return size
	},
}

// rowShaper distributes probability mass across a row of `n` destinations,
// with sourceIndex marking the position of the row's own source domain
// (monopolar/multipolar shaping concentrates mass near or away from it).
type rowShaper func(rng *RNG, n, sourceIndex int) []float64

var rowShapers = map[TransitionProbabilityDistribution]rowShaper{
	RowPlainUniform: func(rng *RNG, n, sourceIndex int) []float64 {
		row := make([]float64, n)
		p := 1.0 / float64(n)
		for i := range row {
			row[i] = p
		}
		return row
	},
	RowGeometricMonopolar: func(rng *RNG, n, sourceIndex int) []float64 {
		// Mass decays geometrically with distance from sourceIndex: staying
		// close to the current domain is more likely than a far jump.
		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			d := i - sourceIndex
			if d < 0 {
				d = -d
			}
			w := 1.0 / float64(1<<uint(d))
			weights[i] = w
			total += w
		}
		return normalize(weights, total)
	},
	RowGeometricMultipolar: func(rng *RNG, n, sourceIndex int) []float64 {
		// Two independent geometric decay poles (the source, and a second
		// randomly chosen pole) compete for mass, producing a bimodal row.
		pole := rng.Intn(n)
		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			d1 := absInt(i - sourceIndex)
			d2 := absInt(i - pole)
			w := 1.0/float64(1<<uint(d1)) + 1.0/float64(1<<uint(d2))
			weights[i] = w
			total += w
		}
		return normalize(weights, total)
	},
}

func normalize(weights []float64, total float64) []float64 {
	if total <= 0 {
		return weights
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NewTransitionMatrix builds T_k for an object by sampling a group size
// (groupDist) over the domain graph's [0, domainSize) id space, then
// shaping a row for every member of the group (rowDist), each row
// re-centered on its own source position within the sampled group.
func NewTransitionMatrix(rng *RNG, domainSize, minGroupSize int, groupDist TransitionGroupDistribution, rowDist TransitionProbabilityDistribution) (*TransitionMatrix, error) {
	if minGroupSize < 2 {
		return nil, &ConfigError{Field: "minGroupSize", Reason: "must be >= 2"}
	}
	if minGroupSize > domainSize {
		return nil, &ConfigError{Field: "minGroupSize", Reason: "must not exceed domainSize"}
	}

	sizer, ok := groupSizers[groupDist]
	if !ok {
		return nil, &ConfigError{Field: "TransitionGroupDistribution", Reason: "unknown strategy"}
	}
	shaper, ok := rowShapers[rowDist]
	if !ok {
		return nil, &ConfigError{Field: "TransitionProbabilityDistribution", Reason: "unknown strategy"}
	}

	size := sizer(rng, domainSize, minGroupSize)
	perm := rng.Perm(domainSize)
	members := make([]int, size)
	copy(members, perm[:size])
	sort.Ints(members)

	domains := make([]DomainID, size)
	for i, m := range members {
		domains[i] = DomainID(m)
	}

	rows := make(map[DomainID][]float64, size)
	for idx, s := range domains {
		rows[s] = shaper(rng, size, idx)
	}

	t := &TransitionMatrix{domains: domains, row: rows}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate checks every row sums to 1 within numeric tolerance.
func (t *TransitionMatrix) validate() error {
	const tolerance = 1e-6
	for s, row := range t.row {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		if sum < 1-tolerance || sum > 1+tolerance {
			return &ConfigError{Field: "TransitionMatrix", Reason: "row for domain is not stochastic"}
		}
		_ = s
	}
	return nil
}
