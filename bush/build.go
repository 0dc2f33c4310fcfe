package bush

import (
	"math/big"

	"github.com/sboyles/tapsue/internal/fifoqueue"
	"github.com/sboyles/tapsue/network"
)

// Build constructs bushes for every zone in net, per §4.2:
//
//  1. Clamp every arc's cost to max(MinLinkCost, freeFlowTime+fixedCost) so
//     free-flow Dijkstra yields strict label orderings.
//  2. For each origin r, run Dijkstra to obtain free-flow labels.
//  3. Include arc (i,j) in bush r iff label[i] < label[j]; pack forward and
//     reverse stars in arc-ID order.
//  4. Compute bushOrder[r] by Kahn's algorithm, seeded with r first.
//  5. Count reasonable paths to positive-demand destinations.
func Build(net *network.Network) (*Set, error) {
	net.ClampInitialCosts()

	z, n, a := net.Z, net.N, net.NumArcs
	s := &Set{
		Net:            net,
		BushOrder:      make([][]int, z),
		Position:       make([][]int, z),
		ForwardOffsets: make([][]int, z),
		ForwardArcs:    make([][]int, z),
		ReverseOffsets: make([][]int, z),
		ReverseArcs:    make([][]int, z),
		NumBushLinks:   make([]int, z),
		NumBushPaths:   make([]*big.Int, z),
		SPCost:         make([]float64, n),
		Flow:           make([]float64, a),
		Weight:         make([]float64, a),
		NodeWeight:     make([]float64, n),
		NodeFlow:       make([]float64, n),
		Likelihood:     make([]float64, a),
	}

	for r := 0; r < z; r++ {
		label, err := net.Dijkstra(r)
		if err != nil {
			return nil, err
		}

		forwardCount := make([]int, n)
		reverseCount := make([]int, n)
		inBush := make([]bool, a)
		numLinks := 0
		for ij := 0; ij < a; ij++ {
			arc := &net.Arcs[ij]
			if label[arc.Tail] < label[arc.Head] {
				inBush[ij] = true
				numLinks++
				forwardCount[arc.Tail]++
				reverseCount[arc.Head]++
			}
		}
		s.NumBushLinks[r] = numLinks

		forwardOffsets := prefixSum(forwardCount)
		reverseOffsets := prefixSum(reverseCount)
		forwardArcs := make([]int, numLinks)
		reverseArcs := make([]int, numLinks)
		forwardCursor := append([]int(nil), forwardOffsets[:n]...)
		reverseCursor := append([]int(nil), reverseOffsets[:n]...)
		for ij := 0; ij < a; ij++ {
			if !inBush[ij] {
				continue
			}
			arc := &net.Arcs[ij]
			forwardArcs[forwardCursor[arc.Tail]] = ij
			forwardCursor[arc.Tail]++
			reverseArcs[reverseCursor[arc.Head]] = ij
			reverseCursor[arc.Head]++
		}
		s.ForwardOffsets[r] = forwardOffsets
		s.ForwardArcs[r] = forwardArcs
		s.ReverseOffsets[r] = reverseOffsets
		s.ReverseArcs[r] = reverseArcs

		order, position, err := topologicalOrder(r, n, reverseOffsets, forwardOffsets, forwardArcs, net)
		if err != nil {
			return nil, err
		}
		s.BushOrder[r] = order
		s.Position[r] = position

		s.NumBushPaths[r] = countPaths(r, net, s)
	}

	return s, nil
}

func prefixSum(counts []int) []int {
	offsets := make([]int, len(counts)+1)
	for i, c := range counts {
		offsets[i+1] = offsets[i] + c
	}
	return offsets
}

// topologicalOrder runs Kahn's algorithm over bush r, seeding the FIFO
// queue with r first and then every other node whose in-bush reverse star
// is empty (§4.2 step 4).
func topologicalOrder(r, n int, reverseOffsets, forwardOffsets []int, forwardArcs []int, net *network.Network) ([]int, []int, error) {
	indegree := make([]int, n)
	for i := 0; i < n; i++ {
		indegree[i] = reverseOffsets[i+1] - reverseOffsets[i]
	}

	q := fifoqueue.New(n)
	q.Enqueue(r)
	seeded := make([]bool, n)
	seeded[r] = true
	for i := 0; i < n; i++ {
		if i != r && indegree[i] == 0 {
			q.Enqueue(i)
			seeded[i] = true
		}
	}

	order := make([]int, 0, n)
	position := make([]int, n)
	for q.Len() > 0 {
		i := q.Dequeue()
		position[i] = len(order)
		order = append(order, i)
		for _, ij := range forwardArcs[forwardOffsets[i]:forwardOffsets[i+1]] {
			j := net.Arcs[ij].Head
			indegree[j]--
			if indegree[j] == 0 {
				q.Enqueue(j)
			}
		}
	}

	if len(order) < n {
		return nil, nil, &CycleError{Origin: r, Emitted: len(order), NumNodes: n}
	}
	return order, position, nil
}

// countPaths implements §4.2 step 5: pathCount[r]=1, pathCount[other]=0;
// traverse bushOrder[r] from position 1 upward accumulating predecessor
// counts, and sum pathCount[j] into the result for every zone j<Z with
// positive demand from r (the positive-demand-only semantics chosen by
// §9's Open Questions).
func countPaths(r int, net *network.Network, s *Set) *big.Int {
	n := net.N
	pathCount := make([]*big.Int, n)
	for i := range pathCount {
		pathCount[i] = new(big.Int)
	}
	pathCount[r].SetInt64(1)

	total := new(big.Int)
	order := s.BushOrder[r]
	reverseOffsets := s.ReverseOffsets[r]
	reverseArcs := s.ReverseArcs[r]
	for pos := 1; pos < n; pos++ {
		j := order[pos]
		for _, ij := range reverseArcs[reverseOffsets[j]:reverseOffsets[j+1]] {
			i := net.Arcs[ij].Tail
			pathCount[j].Add(pathCount[j], pathCount[i])
		}
		if j < net.Z && net.Demand[r][j] > 0 {
			total.Add(total, pathCount[j])
		}
	}
	return total
}
