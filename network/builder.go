package network

import "fmt"

// NetworkOption mutates a Network during New. Options MUST validate their
// own parameters and return a sentinel error rather than panic, mirroring
// the lvlath/builder error policy: only sentinels are exposed, and callers
// branch on them with errors.Is.
type NetworkOption func(*Network) error

// WithEdge adds a directed edge u->v. Both endpoints must already be in
// range (i.e. less than the numNodes passed to New).
func WithEdge(u, v int) NetworkOption {
	return func(n *Network) error {
		if u < 0 || u >= len(n.edges) || v < 0 || v >= len(n.edges) {
			return fmt.Errorf("WithEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
		}
		n.edges[u][v] = struct{}{}
		return nil
	}
}

// WithAction ORs the given action bit(s) into node u's capability mask.
func WithAction(u int, a Action) NetworkOption {
	return func(n *Network) error {
		if u < 0 || u >= len(n.actions) {
			return fmt.Errorf("WithAction(%d): %w", u, ErrNodeOutOfRange)
		}
		n.actions[u] |= a
		return nil
	}
}

// WithName sets node u's display name, used only by the pretty-printer.
func WithName(u int, name string) NetworkOption {
	return func(n *Network) error {
		if u < 0 || u >= len(n.names) {
			return fmt.Errorf("WithName(%d): %w", u, ErrNodeOutOfRange)
		}
		n.names[u] = name
		return nil
	}
}

// WithEndpoints designates the source and destination nodes of the network.
func WithEndpoints(initial, final int) NetworkOption {
	return func(n *Network) error {
		if initial < 0 || initial >= len(n.names) || final < 0 || final >= len(n.names) {
			return fmt.Errorf("WithEndpoints(%d,%d): %w", initial, final, ErrNodeOutOfRange)
		}
		n.initial = initial
		n.final = final
		return nil
	}
}

// New builds a Network of numNodes nodes (IDs 0..numNodes-1, default names
// "n0".."n<numNodes-1>", no edges, no actions, endpoints both 0) and
// applies each NetworkOption in order. A later WithName or WithEndpoints
// overrides an earlier one for the same field, while WithEdge and
// WithAction accumulate; a nil option is ignored.
//
// Complexity: O(len(opts)) option applications, each O(1).
func New(numNodes int, opts ...NetworkOption) (*Network, error) {
	if numNodes <= 0 {
		return nil, ErrNonPositiveNumNodes
	}
	n := newNetwork(numNodes)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(n); err != nil {
			return nil, fmt.Errorf("network.New: %w", err)
		}
	}
	return n, nil
}
