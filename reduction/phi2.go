package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi2 builds φ2, the endpoint invariant: the walk starts at the
// source node with an empty stack holding P4, and ends at the
// destination node with an empty stack also holding P4 (every tunnel
// opened along the way must have been closed again by a matching pop).
//
// Grounded on the C source's create_phi_2 (x[s0][0][0], y4[0][0],
// x[sf][length][0], and y4[length][0] unit clauses).
func buildPhi2(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	start := xVar(eng, net.Initial(), 0, 0)
	startProto := y4Var(eng, 0, 0)
	end := xVar(eng, net.Final(), length, 0)
	endProto := y4Var(eng, length, 0)
	return eng.And(start, startProto, end, endProto)
}
