package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi1 builds φ1, the occupancy invariant: at every position along
// the path, the walk occupies exactly one (node,height) pair.
//
// Grounded on the C source's create_phi_1, which emits one
// Z3_mk_atmost/atleast pair per position over the full node x height
// grid; here collapsed into a single ExactlyOne per position, matching
// the FormulaEngine's cardinality primitive (spec §4, engine.ExactlyOne).
func buildPhi1(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	n := net.NumNodes()
	h := StackHeight(length)

	clauses := make([]engine.Atom, 0, length+1)
	for pos := 0; pos <= length; pos++ {
		atoms := make([]engine.Atom, 0, n*h)
		for node := 0; node < n; node++ {
			for height := 0; height < h; height++ {
				atoms = append(atoms, xVar(eng, node, pos, height))
			}
		}
		clauses = append(clauses, eng.ExactlyOne(atoms...))
	}
	return eng.And(clauses...)
}
