package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi4 builds φ4, stack well-formedness: if the walk's current top
// is at height h at some position, every cell 0..h at that position
// holds exactly one protocol (P4 XOR P6). Cells strictly above h are
// left unconstrained (spec.md §4.F, invariant I2) — they are simply
// irrelevant to decoding, not required to be empty.
//
// Grounded on the C source's create_phi_4, which asserts the same
// cell-exclusivity invariant over the stack-content variables up to and
// including the occupied top cell.
func buildPhi4(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	h := StackHeight(length)
	var clauses []engine.Atom

	for pos := 0; pos <= length; pos++ {
		for node := 0; node < net.NumNodes(); node++ {
			for height := 0; height < h; height++ {
				cur := xVar(eng, node, pos, height)
				for cell := 0; cell <= height; cell++ {
					definedXor := eng.Or(
						eng.And(y4Var(eng, pos, cell), eng.Not(y6Var(eng, pos, cell))),
						eng.And(eng.Not(y4Var(eng, pos, cell)), y6Var(eng, pos, cell)),
					)
					clauses = append(clauses, eng.Implies(cur, definedXor))
				}
			}
		}
	}

	if len(clauses) == 0 {
		return eng.True()
	}
	return eng.And(clauses...)
}
