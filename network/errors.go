package network

import "errors"

var (
	// ErrNoNodes indicates a network with fewer than one node (N < 1).
	ErrNoNodes = errors.New("network: must have at least one node")
	// ErrNoArcs indicates a network with fewer than one arc (A < 1).
	ErrNoArcs = errors.New("network: must have at least one arc")
	// ErrNoZones indicates a network with fewer than one zone (Z < 1).
	ErrNoZones = errors.New("network: must have at least one zone")
	// ErrBadFirstThroughNode indicates FirstThroughNode is outside [0, N).
	ErrBadFirstThroughNode = errors.New("network: firstThroughNode out of range")
	// ErrBadArcEndpoint indicates an arc's tail or head is outside [0, N).
	ErrBadArcEndpoint = errors.New("network: arc endpoint out of range")
	// ErrBadCapacity indicates an arc with non-positive capacity.
	ErrBadCapacity = errors.New("network: arc capacity must be > 0")
	// ErrNegativeDemand indicates a negative entry in the demand matrix.
	ErrNegativeDemand = errors.New("network: demand must be non-negative")
	// ErrNonFiniteResult is a domain violation: a NaN or Inf propagated into
	// a flow or cost value. Per §7, this is always fatal.
	ErrNonFiniteResult = errors.New("network: non-finite flow or cost")
	// ErrOriginNotZone indicates Dijkstra was asked to run from a node that
	// is not a zone centroid.
	ErrOriginNotZone = errors.New("network: origin must be a zone centroid")
)
