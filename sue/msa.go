package sue

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MeanAbsDiff computes (1/len(a)) * Σ |a[i]-b[i]|, the convergence test of
// §4.4 step 3. a and b must have equal length.
func MeanAbsDiff(a, b []float64) float64 {
	tmp := make([]float64, len(a))
	for i := range a {
		tmp[i] = math.Abs(a[i] - b[i])
	}
	return floats.Sum(tmp) / float64(len(a))
}

// ShiftFlows applies the fixed-step MSA update flow[i] += lambda*(target[i]
// - flow[i]) in place (§4.4 step 5). lambda=0 is the identity on flows;
// lambda in [0,1] preserves non-negativity given non-negative flow and
// target.
func ShiftFlows(flows, target []float64, lambda float64) {
	diff := make([]float64, len(flows))
	for i := range flows {
		diff[i] = target[i] - flows[i]
	}
	floats.AddScaled(flows, lambda, diff)
}
