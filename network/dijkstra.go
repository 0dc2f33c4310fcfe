package network

import (
	"math"

	"github.com/sboyles/tapsue/internal/pqueue"
)

// Dijkstra computes free-flow (or current-cost, depending on what
// UpdateLinkCosts last set) shortest-path labels from origin, using the
// network's current arc costs. It is used only during bush initialization
// (§4.1).
//
// Centroid non-transit: relaxing an arc into a node j with
// j < FirstThroughNode updates j's tentative label but does not enqueue j
// for further expansion — centroids may be destinations but never interior
// path nodes (§4.1, §3 Node invariant).
//
// origin must be a zone centroid (0 <= origin < Z); bushes are only ever
// rooted at zones, never at through-nodes.
func (net *Network) Dijkstra(origin int) ([]float64, error) {
	if origin < 0 || origin >= net.Z {
		return nil, ErrOriginNotZone
	}
	label := make([]float64, net.N)
	h := pqueue.New(net.N, math.Inf(1))
	for i := 0; i < net.N; i++ {
		label[i] = math.Inf(1)
	}
	label[origin] = 0
	h.Insert(origin, 0)

	for h.Len() > 0 {
		u := h.DeleteMin()
		cost := label[u]
		for _, ij := range net.Nodes[u].Forward {
			a := &net.Arcs[ij]
			j := a.Head
			tentative := cost + a.Cost
			if tentative < label[j] {
				if j < net.FirstThroughNode {
					label[j] = tentative
					continue
				}
				label[j] = tentative
				if h.Contains(j) {
					h.DecreaseKey(j, tentative)
				} else {
					h.Insert(j, tentative)
				}
			}
		}
	}
	return label, nil
}
