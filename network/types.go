package network

import "math"

// MinLinkCost is the floor applied to every arc's cost before the initial,
// free-flow Dijkstra pass that seeds bush construction (§4.2 step 1). It
// guarantees strictly positive costs so free-flow labels come out strictly
// ordered even across zero-length arcs.
const MinLinkCost = 1e-6

// CostKind selects which specialization of the BPR function an arc uses.
// The specializations must agree with GeneralCost at the same β, up to
// floating-point associativity (§4.1).
type CostKind int

const (
	// LinearCost is the β=1 specialization.
	LinearCost CostKind = iota
	// QuarticCost is the β=4 specialization.
	QuarticCost
	// GeneralCost evaluates math.Pow for arbitrary β.
	GeneralCost
)

// CostKindFor chooses a specialization by matching beta against {1, 4, other},
// as required by §6 ("the appropriate cost-function selector chosen per arc
// by matching β to {1, 4, other}").
func CostKindFor(beta float64) CostKind {
	switch beta {
	case 1:
		return LinearCost
	case 4:
		return QuarticCost
	default:
		return GeneralCost
	}
}

// Arc is a directed edge with a BPR congestion function.
//
// Invariants: Capacity > 0, FreeFlowTime >= 0, Flow >= 0 after any driver
// step (§3).
type Arc struct {
	Tail, Head int

	Flow float64
	Cost float64

	FreeFlowTime float64
	Capacity     float64
	Length       float64
	Toll         float64

	Alpha float64 // BPR shape parameter α
	Beta  float64 // BPR shape parameter β

	// FixedCost = DistanceFactor*Length + TollFactor*Toll, computed once by
	// Network.Finalize.
	FixedCost float64

	Kind CostKind
}

// BPRCost evaluates this arc's BPR cost function at the given flow. The
// x <= 0 branch avoids 0^0 and negative-base powers (§4.1).
func (a *Arc) BPRCost(flow float64) float64 {
	if flow <= 0 {
		return a.FreeFlowTime + a.FixedCost
	}
	ratio := flow / a.Capacity
	switch a.Kind {
	case LinearCost:
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*ratio)
	case QuarticCost:
		y := ratio * ratio
		y *= y
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*y)
	default:
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*math.Pow(ratio, a.Beta))
	}
}

// Node holds forward and reverse adjacency in insertion (arc-ID) order,
// stored as arc indices per Design Notes §9 (pointer-into-array arc
// references are re-architected as integer indices).
type Node struct {
	Forward []int // arc indices of arcs leaving this node
	Reverse []int // arc indices of arcs entering this node
}

// Network owns the node array, arc array, and the Z×Z demand matrix.
type Network struct {
	Nodes []Node
	Arcs  []Arc

	// Demand[r][s] is the travel demand from zone r to zone s.
	Demand [][]float64

	N               int // total node count
	NumArcs         int
	Z               int // zone count; nodes [0, Z) are centroids
	FirstThroughNode int

	DistanceFactor float64
	TollFactor     float64
}
