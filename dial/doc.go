// Package dial implements Dial's probabilistic loading algorithm over a
// single origin's bush, producing that origin's contribution to the
// logit-consistent target flow vector (§4.3).
//
// Given current link costs and a fixed bush for origin r, LoadOrigin:
//
//  1. recomputes the bush shortest path by one topological sweep,
//  2. derives per-arc likelihoods exp(θ(L[j]-L[i]-cost(i,j))),
//  3. propagates node and link weights forward through the bush, and
//  4. propagates node and link flows backward through the bush.
//
// All scratch buffers it touches (SPCost, Flow, Weight, NodeWeight,
// NodeFlow, Likelihood) belong to the bush.Set and are overwritten on
// every call — callers must not hold references to them across origins
// (§5 "Shared-resource policy").
package dial
