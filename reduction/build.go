package reduction

import (
	"fmt"

	"github.com/tunnelsat/tunnelsat/engine"
)

// Build constructs φ(L), the propositional formula whose satisfiability
// is equivalent to the existence of a valid length-L tunnel route
// through net from net.Initial() to net.Final(). φ(L) is the conjunction
// of φ1..φ6 (spec §4); eng accumulates the variables and gates that make
// up the formula, and the returned Atom is the circuit literal
// representing φ(L) as a whole.
//
// Build returns an error, without touching eng, if length is negative or
// net is structurally invalid (no nodes, or endpoints out of range).
// Grounded on the C source's top-level reduce() driver, which performs
// the same validation before invoking create_phi_1..create_phi_6.
func Build(eng engine.FormulaEngine, net Oracle, length int) (engine.Atom, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	if net == nil || net.NumNodes() <= 0 {
		return nil, ErrNoNodes
	}
	n := net.NumNodes()
	if net.Initial() < 0 || net.Initial() >= n || net.Final() < 0 || net.Final() >= n {
		return nil, fmt.Errorf("reduction.Build: initial=%d final=%d numNodes=%d: %w",
			net.Initial(), net.Final(), n, ErrNodeOutOfRange)
	}

	return eng.And(
		buildPhi1(eng, net, length),
		buildPhi2(eng, net, length),
		buildPhi3(eng, net, length),
		buildPhi4(eng, net, length),
		buildPhi5(eng, net, length),
		buildPhi6(eng, net, length),
	), nil
}
