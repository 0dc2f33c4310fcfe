// Package network defines the road-network data model used by the SUE
// equilibration core: zone-indexed nodes, directed arcs with BPR congestion
// functions, a demand matrix, and the global (free-flow) Dijkstra routine
// used once per origin during bush initialization.
//
// What:
//
//   - Network owns Nodes, Arcs, the Z×Z demand matrix, and the scalar toll
//     and distance factors that feed an arc's fixed cost.
//   - Arc carries its BPR shape (α, β), a cost-function selector chosen by
//     matching β against {1, 4, other}, and a precomputed fixed cost.
//   - Dijkstra computes free-flow (or current-cost) shortest-path labels
//     from a single zone-centroid origin, honoring the centroid non-transit
//     rule: a node with index < FirstThroughNode may be a destination but is
//     never relaxed onward. It rejects an origin outside [0, Z).
//
// Why:
//
//   - Bush construction (package bush) needs exact, tie-broken labels to
//     decide which arcs are "reasonable" for an origin.
//   - Dial loading (package dial) needs up-to-date arc costs, recomputed by
//     UpdateLinkCosts after every MSA shift.
//
// Complexity:
//
//   - Dijkstra: O((N + A) log N) per call, using a binary heap.
//   - UpdateLinkCosts: O(A).
package network
