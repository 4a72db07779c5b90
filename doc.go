// Package tunnelsat reduces tunnel-routing path existence to
// propositional satisfiability.
//
// 🚀 What is tunnelsat?
//
//	Given a directed network of nodes carrying two wire protocols (P4,
//	P6) and a per-node set of stack actions (transmit, push, pop), does
//	a length-L walk from a source to a destination exist that respects
//	every node's action capabilities and leaves no tunnel unclosed?
//	tunnelsat answers that by building a Boolean formula φ(L) whose
//	satisfiability is equivalent to "yes".
//
// ✨ Package layout
//
//	network/   — the Network oracle: nodes, directed edges, per-node actions
//	engine/    — FormulaEngine/Model, backed by github.com/go-air/gini
//	reduction/ — φ(L) construction, model decoding, pretty-printing
//	pathfind/  — iterative-deepening search for the shortest tunnel route
//
// reduction is the core: it depends only on the FormulaEngine/Model
// interfaces and the Oracle interface, never on a concrete SAT library
// or network representation, so it can be solved by any engine and
// queried against any network implementing those contracts.
//
// Quick ASCII example — a straight wire with one tunnel in the middle:
//
//	  s0 --P4--> A --push--> B --pop--> C --P4--> sf
//
//	represents a route that opens a tunnel at A and closes it at C.
package tunnelsat
