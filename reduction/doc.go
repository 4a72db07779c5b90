// Package reduction builds the propositional formula φ(L) whose models
// correspond one-to-one with valid tunnel paths of length L through a
// Network, and recovers a concrete path from any satisfying model.
//
// The package is a pure formula builder: it holds no state of its own
// beyond what a single Build/Decode/Dump call allocates locally, and it
// never touches a concrete SAT engine — every construction goes through
// the engine.FormulaEngine and engine.Model interfaces, so a caller may
// substitute any engine implementation (engine.GiniEngine is the one this
// module ships).
//
// # Variables
//
// Three Boolean variable families, all fresh per (length, Oracle) call:
//
//	x(u,i,h)   — the token is at node u, position i, stack top at height h.
//	y4(i,h)    — cell h of the stack at position i holds protocol P4.
//	y6(i,h)    — symmetrically, for P6.
//
// # Sub-formulas
//
// φ1 (position occupancy), φ2 (endpoints), φ3 (transition relation), φ4
// (stack well-formedness), φ5 (action preconditions), φ6 (stack
// preservation) — see phi1.go..phi6.go. Build conjoins all six.
//
// # Decoding
//
// Decode walks a satisfying model hop by hop, classifying each hop's
// height delta into transmit (Δ=0), push (Δ=+1), or pop (Δ=−1), and
// reports a contract violation (never attempts repair) if a model
// disagrees with these invariants — which cannot happen for a genuine
// model of φ(L).
package reduction
