// Package network is the tunnel-routing core's Network oracle: an
// in-memory, directed graph of nodes, each carrying a bitmask of the ten
// stack-manipulation tags (§3 of the spec) it may perform, plus a
// distinguished source and destination.
//
// network is intentionally thin — it answers the handful of accessor
// questions the reduction package needs (NumNodes, Initial, Final, IsEdge,
// HasAction, NodeName) and nothing more. Construction goes through New plus
// a set of NetworkOption functional options, in the idiom of
// lvlath/builder's BuildGraph(gopts, bopts, cons...).
package network
