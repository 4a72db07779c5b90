package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi5 builds φ5, the action-availability precondition: for every
// position i (0..length, including the final position) and every node u
// capable of some action, occupying (u,i,h) binds the stack contents at
// that cell to what the action requires — the protocol transmitted, the
// protocol a push expects already on top, or the pair a pop expects
// (exposed, discarded). These are necessary conditions on every capable
// node, independent of which action φ3 actually selects for the hop;
// φ3's own guards already state the same constraint for the node that is
// selected, but φ5 asserts it unconditionally for every capable action a
// node supports, and — unlike φ3, which only walks hops pos<length — it
// also reaches position length, where spec.md §4.D's endpoint pins the
// final cell's protocol.
//
// Grounded on the C source's create_phi_5, which emits the same
// x[u][i][h] => (protocol guard) implications per action kind.
func buildPhi5(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	h := StackHeight(length)
	var clauses []engine.Atom

	for pos := 0; pos <= length; pos++ {
		for u := 0; u < net.NumNodes(); u++ {
			for height := 0; height < h; height++ {
				cur := xVar(eng, u, pos, height)

				for _, spec := range transmitActions {
					if !net.HasAction(u, spec.bit) {
						continue
					}
					clauses = append(clauses, eng.Implies(cur, topProtocolGuard(eng, spec.a, pos, height)))
				}

				for _, spec := range pushActions {
					if !net.HasAction(u, spec.bit) {
						continue
					}
					clauses = append(clauses, eng.Implies(cur, topProtocolGuard(eng, spec.a, pos, height)))
				}

				if height > 0 {
					for _, spec := range popActions {
						if !net.HasAction(u, spec.bit) {
							continue
						}
						popped := yVar(eng, spec.b, pos, height)
						exposed := topProtocolGuard(eng, spec.a, pos, height-1)
						clauses = append(clauses, eng.Implies(cur, eng.And(popped, exposed)))
					}
				}
			}
		}
	}
	if len(clauses) == 0 {
		return eng.True()
	}
	return eng.And(clauses...)
}
