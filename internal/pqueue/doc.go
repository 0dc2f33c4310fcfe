// Package pqueue implements a binary min-heap over node indices keyed by a
// parallel value array, used only by the global Dijkstra routine in package
// network (§4.1, §4.5).
//
// Unlike the teacher library's *nodeItem heaps (lvlath/dijkstra,
// lvlath/graph/algorithms), which key on string vertex IDs and use a lazy
// "push duplicates, skip stale pops" decrease-key, this heap tracks each
// node's current slot with a position index so DecreaseKey runs in true
// O(log N) without leaving stale entries behind — the spec requires both
// DecreaseKey and FindMin in O(log N) (§4.5).
package pqueue
