// Package sue drives the Method of Successive Averages outer loop that
// turns per-origin Dial loadings into a converged (or capped-out)
// Stochastic User Equilibrium flow pattern (§4.4).
//
// Solve is the system's single entry point (§6): given a populated
// network, a dispersion parameter θ, and a step size λ, it builds bushes
// once, repeatedly sums per-origin Dial contributions into a target flow
// vector, and shifts the network's arc flows toward that target by a
// fixed step size until the mean-absolute difference falls below a
// tolerance, an iteration cap is reached, or a wall-clock cap is reached.
//
// Diagnostics (total bush links/paths, elapsed time, per-iteration diff)
// are emitted through the Logger interface at the severity levels named in
// §6; the package ships a slog-backed Logger (SlogLogger), uses NopLogger
// when none is supplied, and depends only on the interface.
package sue
