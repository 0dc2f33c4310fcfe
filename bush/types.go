package bush

import (
	"math/big"

	"github.com/sboyles/tapsue/network"
)

// Set is the persistent per-origin bush state for every zone, plus the
// scratch buffers Dial loading shares across origins within one pass (§3).
type Set struct {
	Net *network.Network

	// BushOrder[r] is a permutation of [0, N) giving an inverse topological
	// order for origin r; BushOrder[r][0] == r.
	BushOrder [][]int
	// Position[r][i] is i's index within BushOrder[r] (the inverse of
	// BushOrder[r]), used to check the acyclicity invariant.
	Position [][]int

	// ForwardOffsets[r]/ForwardArcs[r] pack forwardStar[r][*] as a CSR
	// structure: the arcs for node i are ForwardArcs[r][ForwardOffsets[r][i]
	// : ForwardOffsets[r][i+1]], in arc-ID order. ReverseOffsets/ReverseArcs
	// mirror this for reverseStar. This replaces the original's doubly-
	// linked arc list per Design Notes §9.
	ForwardOffsets [][]int
	ForwardArcs    [][]int
	ReverseOffsets [][]int
	ReverseArcs    [][]int

	NumBushLinks []int
	// NumBushPaths is a diagnostic count of reasonable paths to
	// positive-demand destinations; it is stored as a wide integer because
	// it can grow combinatorially on dense grids (§3, §9).
	NumBushPaths []*big.Int

	// Shared scratch state, sized N or NumArcs, overwritten on entry to
	// each per-origin Dial call (§3 "Shared scratch state").
	SPCost     []float64
	Flow       []float64
	Weight     []float64
	NodeWeight []float64
	NodeFlow   []float64
	Likelihood []float64
}

// Forward returns the forward star of node i for origin r, as a slice of
// arc indices in arc-ID order.
func (s *Set) Forward(r, i int) []int {
	off := s.ForwardOffsets[r]
	return s.ForwardArcs[r][off[i]:off[i+1]]
}

// Reverse returns the reverse star of node i for origin r, as a slice of
// arc indices in arc-ID order.
func (s *Set) Reverse(r, i int) []int {
	off := s.ReverseOffsets[r]
	return s.ReverseArcs[r][off[i]:off[i+1]]
}
