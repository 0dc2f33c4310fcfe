package dial

import (
	"math"

	"github.com/sboyles/tapsue/bush"
)

// LoadOrigin runs Dial's method for origin r against s's current bush and
// the network's current arc costs, leaving r's contribution to the target
// flow vector in s.Flow. Call bush.Build once, then call LoadOrigin once
// per origin per MSA iteration (§4.3, §4.4).
func LoadOrigin(s *bush.Set, r int, theta float64) {
	net := s.Net
	n, a := net.N, net.NumArcs
	order := s.BushOrder[r]

	// Step 1: bush shortest path by one forward topological sweep.
	for i := 0; i < n; i++ {
		s.SPCost[i] = math.Inf(1)
	}
	s.SPCost[r] = 0
	for k := 1; k < n; k++ {
		i := order[k]
		best := math.Inf(1)
		for _, hi := range s.Reverse(r, i) {
			h := net.Arcs[hi].Tail
			cand := s.SPCost[h] + net.Arcs[hi].Cost
			if cand < best {
				best = cand
			}
		}
		s.SPCost[i] = best
	}

	// Step 2: link likelihoods over the full network, and reset scratch
	// flow for every arc (including non-reasonable ones) to 0.
	for ij := 0; ij < a; ij++ {
		arc := &net.Arcs[ij]
		if math.IsInf(s.SPCost[arc.Tail], 1) {
			s.Likelihood[ij] = 0
		} else {
			s.Likelihood[ij] = math.Exp(theta * (s.SPCost[arc.Head] - s.SPCost[arc.Tail] - arc.Cost))
		}
		s.Flow[ij] = 0
	}

	// Step 3: node and link weights, forward sweep.
	s.NodeWeight[r] = 1
	for _, ij := range s.Forward(r, r) {
		s.Weight[ij] = s.Likelihood[ij]
	}
	for k := 1; k < n; k++ {
		i := order[k]
		nw := 0.0
		for _, hi := range s.Reverse(r, i) {
			nw += s.Weight[hi]
		}
		s.NodeWeight[i] = nw
		for _, ij := range s.Forward(r, i) {
			s.Weight[ij] = nw * s.Likelihood[ij]
		}
	}

	// Step 4: node and link flows, reverse sweep.
	for k := n - 1; k >= 0; k-- {
		i := order[k]
		nf := 0.0
		if i < net.Z {
			nf = net.Demand[r][i]
		}
		for _, ij := range s.Forward(r, i) {
			nf += s.Flow[ij]
		}
		s.NodeFlow[i] = nf

		nw := s.NodeWeight[i]
		for _, hi := range s.Reverse(r, i) {
			if nw == 0 {
				s.Flow[hi] = 0
				continue
			}
			s.Flow[hi] = nf * s.Weight[hi] / nw
		}
	}
}
