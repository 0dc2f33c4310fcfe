// Package fifoqueue implements the FIFO queue of node indices used by
// Kahn's algorithm during bush topological ordering (§4.2 step 4, §4.5).
//
// It also exposes FrontInsert and per-element history tracking
// (never-in/was-in), mirroring the original's queueDiscipline-parameterized
// search routine (FIFO/LIFO/DEQUE) even though Dial's own pipeline only
// ever exercises the plain FIFO discipline (§5, "Dial's pipeline uses FIFO
// only").
package fifoqueue
