package reduction

import "errors"

// Sentinel errors for the reduction package. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrNegativeLength indicates Build was asked for a path of negative
	// length.
	ErrNegativeLength = errors.New("reduction: length must be >= 0")

	// ErrNoNodes indicates the network has zero nodes, or is nil.
	ErrNoNodes = errors.New("reduction: network has zero nodes")

	// ErrNodeOutOfRange indicates the network's source or destination
	// node is outside [0, NumNodes()).
	ErrNodeOutOfRange = errors.New("reduction: source or destination node out of range")

	// ErrBadOutputLength indicates Decode was given an out slice whose
	// length does not equal L+1 (one Step per position 0..L).
	ErrBadOutputLength = errors.New("reduction: decode output slice length must equal L+1")

	// ErrAmbiguousModel indicates the decoder found zero, or more than
	// one, occupied (node,height) pair at some position — a contract
	// violation that cannot occur for a genuine model of φ(L).
	ErrAmbiguousModel = errors.New("reduction: no unique occupied (node,height) at position")

	// ErrInvalidHeightDelta indicates the decoder found a height delta
	// outside {-1,0,+1} between consecutive positions — also a contract
	// violation.
	ErrInvalidHeightDelta = errors.New("reduction: decoded height delta outside {-1,0,+1}")
)
