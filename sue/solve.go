package sue

import (
	"math/big"
	"time"

	"github.com/sboyles/tapsue/bush"
	"github.com/sboyles/tapsue/dial"
	"github.com/sboyles/tapsue/network"
)

// Diagnostics summarizes a completed (or capped-out) Solve call.
type Diagnostics struct {
	Converged  bool
	Iterations int
	Elapsed    time.Duration
	FinalDiff  float64

	TotalBushLinks int
	TotalBushPaths *big.Int

	// TotalSystemTravelTime is Σ flow*cost over the final arc flows, a
	// convex-combination-style gap diagnostic supplementing the plain MSA
	// diff test (see SPEC_FULL.md "Average Excess Cost style diagnostic").
	TotalSystemTravelTime float64
}

// Solve is the system's entry point (§6): it builds bushes once, then runs
// the MSA outer loop (§4.4) until convergence or a cap fires, leaving final
// flows in net.Arcs[*].Flow.
func Solve(net *network.Network, theta, lambda float64, opts Options) (*Diagnostics, error) {
	if theta <= 0 {
		return nil, ErrBadTheta
	}
	if lambda <= 0 {
		return nil, ErrBadLambda
	}
	opts = opts.withDefaults()
	log := opts.Logger
	start := time.Now()

	s, err := bush.Build(net)
	if err != nil {
		return nil, err
	}

	totalLinks := 0
	totalPaths := new(big.Int)
	for r := 0; r < net.Z; r++ {
		totalLinks += s.NumBushLinks[r]
		totalPaths.Add(totalPaths, s.NumBushPaths[r])
	}
	log.Log(FullNotifications, "bushes built", "totalBushLinks", totalLinks, "totalBushPaths", totalPaths.String())

	// Initial full stochastic loading under free-flow costs (§4.4
	// Initialization).
	target := make([]float64, net.NumArcs)
	dialSum(s, theta, target)
	for ij := range net.Arcs {
		net.Arcs[ij].Flow = target[ij]
	}

	iteration := 0
	converged := false
	var finalDiff float64

	for {
		if err := net.UpdateLinkCosts(); err != nil {
			return nil, err
		}

		dialSum(s, theta, target)

		flows := flowSlice(net)
		finalDiff = MeanAbsDiff(flows, target)

		elapsed := time.Since(start)
		log.Log(FullDebug, "msa iteration", "iteration", iteration, "diff", finalDiff, "elapsedSeconds", elapsed.Seconds())

		if elapsed >= opts.MaxWallClock || iteration >= opts.MaxIterations || finalDiff < opts.Tolerance {
			converged = finalDiff < opts.Tolerance
			break
		}

		ShiftFlows(flows, target, lambda)
		for ij := range net.Arcs {
			net.Arcs[ij].Flow = flows[ij]
		}
		iteration++
	}

	total := 0.0
	for ij := range net.Arcs {
		total += net.Arcs[ij].Flow * net.Arcs[ij].Cost
	}

	level := MediumNotifications
	if !converged {
		level = LowNotifications
	}
	log.Log(level, "msa finished", "converged", converged, "iterations", iteration, "finalDiff", finalDiff)

	return &Diagnostics{
		Converged:             converged,
		Iterations:            iteration,
		Elapsed:               time.Since(start),
		FinalDiff:             finalDiff,
		TotalBushLinks:        totalLinks,
		TotalBushPaths:        totalPaths,
		TotalSystemTravelTime: total,
	}, nil
}

// dialSum sums every origin's Dial contribution into target, processing
// origins in ascending index order (§5 "Ordering guarantees"). Bushes
// themselves are not rebuilt between calls — the reasonable-link set is
// fixed after initialization (§4.4).
func dialSum(s *bush.Set, theta float64, target []float64) {
	for ij := range target {
		target[ij] = 0
	}
	for r := 0; r < s.Net.Z; r++ {
		dial.LoadOrigin(s, r, theta)
		for ij := 0; ij < s.Net.NumArcs; ij++ {
			target[ij] += s.Flow[ij]
		}
	}
}

// flowSlice exposes net's per-arc flows as a contiguous []float64 so
// gonum/floats can operate on them directly; it is rebuilt and copied back
// because Arc.Flow lives inside the Arc struct, not its own slice.
func flowSlice(net *network.Network) []float64 {
	flows := make([]float64, net.NumArcs)
	for ij := range net.Arcs {
		flows[ij] = net.Arcs[ij].Flow
	}
	return flows
}
