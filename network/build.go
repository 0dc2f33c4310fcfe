package network

import "math"

// New allocates an empty Network sized for n nodes and z zones, with nodes
// [firstThroughNode, n) as through-nodes. Arcs are appended with AddArc;
// call Finalize once all arcs and demand entries are in place.
func New(n, z, firstThroughNode int) (*Network, error) {
	if n < 1 {
		return nil, ErrNoNodes
	}
	if z < 1 {
		return nil, ErrNoZones
	}
	if firstThroughNode < 0 || firstThroughNode >= n {
		return nil, ErrBadFirstThroughNode
	}

	demand := make([][]float64, z)
	for r := range demand {
		demand[r] = make([]float64, z)
	}

	return &Network{
		Nodes:            make([]Node, n),
		N:                n,
		Z:                z,
		FirstThroughNode: firstThroughNode,
		Demand:           demand,
	}, nil
}

// AddArc appends an arc and returns its arc index. Tail/Head must already
// be within [0, N); Capacity must be > 0.
func (net *Network) AddArc(a Arc) (int, error) {
	if a.Tail < 0 || a.Tail >= net.N || a.Head < 0 || a.Head >= net.N {
		return 0, ErrBadArcEndpoint
	}
	if a.Capacity <= 0 {
		return 0, ErrBadCapacity
	}
	a.Kind = CostKindFor(a.Beta)
	idx := len(net.Arcs)
	net.Arcs = append(net.Arcs, a)
	net.NumArcs = len(net.Arcs)
	return idx, nil
}

// SetDemand records demand[r][s], validating non-negativity.
func (net *Network) SetDemand(r, s int, value float64) error {
	if value < 0 {
		return ErrNegativeDemand
	}
	net.Demand[r][s] = value
	return nil
}

// Finalize builds the forward/reverse adjacency lists in arc-ID order and
// computes each arc's FixedCost = DistanceFactor*Length + TollFactor*Toll,
// mirroring finalizeNetwork's single pass over the arc array.
func (net *Network) Finalize() error {
	if net.NumArcs < 1 {
		return ErrNoArcs
	}
	for i := range net.Nodes {
		net.Nodes[i].Forward = net.Nodes[i].Forward[:0]
		net.Nodes[i].Reverse = net.Nodes[i].Reverse[:0]
	}
	for ij := range net.Arcs {
		a := &net.Arcs[ij]
		net.Nodes[a.Tail].Forward = append(net.Nodes[a.Tail].Forward, ij)
		net.Nodes[a.Head].Reverse = append(net.Nodes[a.Head].Reverse, ij)
		a.FixedCost = net.DistanceFactor*a.Length + net.TollFactor*a.Toll
		a.Flow = 0
	}
	return nil
}

// UpdateLinkCosts applies each arc's BPR evaluator to its current flow.
// Idempotent: calling it twice without changing Flow leaves Cost unchanged.
// A NaN/Inf result is a domain violation (§7) and is reported rather than
// silently propagated.
func (net *Network) UpdateLinkCosts() error {
	for ij := range net.Arcs {
		a := &net.Arcs[ij]
		c := a.BPRCost(a.Flow)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNonFiniteResult
		}
		a.Cost = c
	}
	return nil
}

// ClampInitialCosts sets every arc's cost to max(MinLinkCost, freeFlowTime +
// fixedCost), the clamp bush construction relies on (§4.2 step 1) so that
// the free-flow Dijkstra pass yields strict label orderings even across
// zero-length arcs. Per §9's Open Questions, this clamp applies only here,
// never inside UpdateLinkCosts.
func (net *Network) ClampInitialCosts() {
	for ij := range net.Arcs {
		a := &net.Arcs[ij]
		a.Cost = math.Max(MinLinkCost, a.FreeFlowTime+a.FixedCost)
	}
}
