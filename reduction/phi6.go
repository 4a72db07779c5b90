package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi6 builds φ6, stack preservation: cells untouched by the action
// taken between pos and pos+1 keep their protocol assignment.
//
// Grounded on the C source's create_phi_6_{transmit,push,pop}. The pop
// branch there iterates preserved cells as `cell <= height`, one past
// the top cell actually being removed; this implementation instead
// preserves cells strictly below the popped cell (0..height-1, i.e. up
// to and including the newly exposed cell), per spec §9's correction.
func buildPhi6(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	h := StackHeight(length)
	n := net.NumNodes()
	var clauses []engine.Atom

	for pos := 0; pos < length; pos++ {
		for height := 0; height < h; height++ {
			at := atHeight(eng, n, pos, height)

			// transmit: height unchanged, preserve cells 0..height inclusive.
			same := atHeight(eng, n, pos+1, height)
			clauses = append(clauses, eng.Implies(eng.And(at, same), preserveCells(eng, pos, 0, height)))

			// push: height increases by one, preserve cells 0..height inclusive
			// (the new cell at height+1 is set by φ3's push conjunct).
			if height+1 < h {
				up := atHeight(eng, n, pos+1, height+1)
				clauses = append(clauses, eng.Implies(eng.And(at, up), preserveCells(eng, pos, 0, height)))
			}

			// pop: height decreases by one, preserve cells 0..height-1
			// inclusive (cell height itself is discarded and left free).
			if height > 0 {
				down := atHeight(eng, n, pos+1, height-1)
				clauses = append(clauses, eng.Implies(eng.And(at, down), preserveCells(eng, pos, 0, height-1)))
			}
		}
	}

	if len(clauses) == 0 {
		return eng.True()
	}
	return eng.And(clauses...)
}

// atHeight is true iff the walk occupies some node at the given
// (pos,height), independent of which node.
func atHeight(eng engine.FormulaEngine, numNodes int, pos, height int) engine.Atom {
	atoms := make([]engine.Atom, 0, numNodes)
	for u := 0; u < numNodes; u++ {
		atoms = append(atoms, xVar(eng, u, pos, height))
	}
	return eng.Or(atoms...)
}

// preserveCells asserts that cells lo..hi (inclusive, 0-indexed) carry
// the same protocol at pos and pos+1. An empty range (hi < lo) is
// vacuously true.
func preserveCells(eng engine.FormulaEngine, pos, lo, hi int) engine.Atom {
	if hi < lo {
		return eng.True()
	}
	clauses := make([]engine.Atom, 0, 2*(hi-lo+1))
	for cell := lo; cell <= hi; cell++ {
		clauses = append(clauses, eng.Eq(y4Var(eng, pos, cell), y4Var(eng, pos+1, cell)))
		clauses = append(clauses, eng.Eq(y6Var(eng, pos, cell), y6Var(eng, pos+1, cell)))
	}
	return eng.And(clauses...)
}
