// Package bush builds and holds the per-origin "reasonable link" DAGs that
// Dial loading runs over (§3 "Bush (per origin r)", §4.2).
//
// What:
//
//   - Build constructs, for every zone r, the bush of arcs (i, j) whose
//     free-flow labels satisfy L_r(i) < L_r(j), a topological order over
//     all N nodes (bushOrder, via Kahn's algorithm), and a diagnostic
//     count of reasonable paths to positive-demand destinations.
//   - Set owns the per-origin forward/reverse star lists as a packed,
//     offsets-plus-arcs representation (Design Notes §9: a contiguous
//     ordered vector replaces the original's doubly-linked arc list) and
//     the shared scratch buffers Dial loading overwrites each pass.
//
// Why:
//
//   - Keeping the DAG and scratch buffers here (rather than in package
//     dial) matches the ownership split in §3: the DAG persists across MSA
//     iterations, the scratch buffers are transient within one Dial call,
//     but both are owned by "the bush container".
//
// Complexity:
//
//   - Build: O(Z * (N + A) log N) total, one free-flow Dijkstra plus one Kahn
//     pass plus one path-count pass per origin.
package bush
