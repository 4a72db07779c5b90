package network

import "errors"

// Sentinel errors for the network package. Callers should branch with
// errors.Is, never string comparison, per the lvlath builder error policy.
var (
	// ErrNonPositiveNumNodes indicates New was asked to build a network
	// with zero or fewer nodes.
	ErrNonPositiveNumNodes = errors.New("network: number of nodes must be positive")

	// ErrNodeOutOfRange indicates an option referenced a node index
	// outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("network: node index out of range")
)
