package surveillance

import "testing"

func TestTransitionMatrixRowsAreStochastic(t *testing.T) {
	rng := NewRNG(42)
	m, err := NewTransitionMatrix(rng, 6, 3, GroupPlainUniform, RowPlainUniform)
	if err != nil {
		t.Fatalf("NewTransitionMatrix: %v", err)
	}
	if len(m.Domains()) < 3 {
		t.Fatalf("expected at least the configured minimum group size, got %d", len(m.Domains()))
	}
	for _, s := range m.Domains() {
		row, ok := m.Row(s)
		if !ok {
			t.Fatalf("missing row for domain %d", s)
		}
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		if sum < 1-1e-6 || sum > 1+1e-6 {
			t.Fatalf("row for domain %d sums to %g, want ~1", s, sum)
		}
	}
}

func TestTransitionMatrixRejectsBadMinGroupSize(t *testing.T) {
	rng := NewRNG(1)
	if _, err := NewTransitionMatrix(rng, 4, 1, GroupPlainUniform, RowPlainUniform); err == nil {
		t.Fatalf("expected ConfigError for minGroupSize < 2")
	}
	if _, err := NewTransitionMatrix(rng, 4, 5, GroupPlainUniform, RowPlainUniform); err == nil {
		t.Fatalf("expected ConfigError for minGroupSize > domainSize")
	}
}

func TestInverseCDFSampleHandlesRoundingTail(t *testing.T) {
	rng := NewRNG(7)
	domains := []DomainID{0, 1, 2}
	// Row deliberately sums well under 1 (0.3) to exercise the "rounding
	// tail" edge case.
	row := []float64{0.1, 0.1, 0.1}
	for i := 0; i < 50; i++ {
		d := sampleInverseCDF(rng, domains, row)
		found := false
		for _, want := range domains {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("sampled destination %d not among configured domains", d)
		}
	}
}

func TestGroupSizers(t *testing.T) {
	rng := NewRNG(3)
	for kind, sizer := range groupSizers {
		for i := 0; i < 20; i++ {
			size := sizer(rng, 10, 3)
			if size < 3 || size > 10 {
				t.Fatalf("sizer %v produced out-of-range size %d", kind, size)
			}
		}
	}
}
