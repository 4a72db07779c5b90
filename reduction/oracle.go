package reduction

import "github.com/tunnelsat/tunnelsat/network"

// Oracle is the Network collaborator contract (spec §2, §6): total
// functions over an opaque network handle. *network.Network satisfies
// Oracle directly; a caller may also supply any other type with this
// method set (e.g. a test double).
type Oracle interface {
	// NumNodes returns N, the number of nodes in the network (N >= 1 for
	// any network Build will accept).
	NumNodes() int

	// Initial returns the designated source node s0.
	Initial() int

	// Final returns the designated destination node s_f.
	Final() int

	// IsEdge reports whether a directed edge u->v exists.
	IsEdge(u, v int) bool

	// HasAction reports whether node u supports action a.
	HasAction(u int, a network.Action) bool

	// NodeName returns the display name of node u, for diagnostics only.
	NodeName(u int) string
}

// neighbors returns the nodes v such that net has an edge u->v, in
// ascending node-ID order (deterministic, matching the C source's
// ascending-node scan).
func neighbors(net Oracle, u int) []int {
	n := net.NumNodes()
	var out []int
	for v := 0; v < n; v++ {
		if net.IsEdge(u, v) {
			out = append(out, v)
		}
	}
	return out
}
