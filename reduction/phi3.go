package reduction

import "github.com/tunnelsat/tunnelsat/engine"

// buildPhi3 builds φ3, the transition relation: for every position pos,
// every occupied state (u,height), and every action u is capable of
// whose guard matches the stack contents there, the walk must reach one
// of u's neighbors at pos+1 in the state that action produces.
//
// Each of the three action families (transmit, push, pop) is its own
// implication, with its own premise (the occupied state ANDed with that
// action's own stack guard) and its own conclusion (the Or of that
// action's possible successors) — matching spec §4.E literally, and the
// C source's per-action create_phi_3_{transmit,push,pop} conjoined via
// Z3_mk_and. A node capable of two simultaneously-guard-satisfiable
// actions (e.g. transmit_P4 and push_P4_P6, both guarded by "P4 exposed")
// must therefore satisfy both implications at once, not merely one of
// them: merging every action into a single Or-of-branches would let the
// solver pick only one and silently discharge the other, which is
// strictly weaker than the spec's conjunction of independent
// implications.
//
// If a capable action's neighbor set is empty, that action's implication
// is omitted entirely (contributes nothing), per spec §4.E's closing
// sentence and §9's "Vacuous conjunctions/disjunctions" note — it is
// never replaced by forcing the premise false, which would wrongly
// forbid occupying a state just because one of several actions happens
// to have no outgoing edge.
//
// In addition, at every position before the last, occupying (u,height)
// requires at least one action u is capable of that can be taken from
// that height (push only below the top height, pop only above 0) and
// whose guard holds there. A node with no such action cannot be occupied
// before the last position, so the walk never leaves a node through an
// action the node does not support.
func buildPhi3(eng engine.FormulaEngine, net Oracle, length int) engine.Atom {
	h := StackHeight(length)
	var clauses []engine.Atom

	for pos := 0; pos < length; pos++ {
		for u := 0; u < net.NumNodes(); u++ {
			vs := neighbors(net, u)
			for height := 0; height < h; height++ {
				cur := xVar(eng, u, pos, height)
				// usable collects the guard of every capable action that can
				// be taken from this height, whether or not it has a successor.
				var usable []engine.Atom

				for _, spec := range transmitActions {
					if !net.HasAction(u, spec.bit) {
						continue
					}
					usable = append(usable, topProtocolGuard(eng, spec.a, pos, height))
					var succs []engine.Atom
					for _, v := range vs {
						succs = append(succs, xVar(eng, v, pos+1, height))
					}
					if len(succs) == 0 {
						continue
					}
					guard := topProtocolGuard(eng, spec.a, pos, height)
					premise := eng.And(cur, guard)
					clauses = append(clauses, eng.Implies(premise, eng.Or(succs...)))
				}

				if height+1 < h {
					for _, spec := range pushActions {
						if !net.HasAction(u, spec.bit) {
							continue
						}
						usable = append(usable, topProtocolGuard(eng, spec.a, pos, height))
						newCell := yVar(eng, spec.b, pos+1, height+1)
						var succs []engine.Atom
						for _, v := range vs {
							succs = append(succs, eng.And(xVar(eng, v, pos+1, height+1), newCell))
						}
						if len(succs) == 0 {
							continue
						}
						guard := topProtocolGuard(eng, spec.a, pos, height)
						premise := eng.And(cur, guard)
						clauses = append(clauses, eng.Implies(premise, eng.Or(succs...)))
					}
				}

				if height > 0 {
					for _, spec := range popActions {
						if !net.HasAction(u, spec.bit) {
							continue
						}
						usable = append(usable, eng.And(yVar(eng, spec.b, pos, height), topProtocolGuard(eng, spec.a, pos, height-1)))
						var succs []engine.Atom
						for _, v := range vs {
							succs = append(succs, xVar(eng, v, pos+1, height-1))
						}
						if len(succs) == 0 {
							continue
						}
						popped := yVar(eng, spec.b, pos, height)
						exposed := topProtocolGuard(eng, spec.a, pos, height-1)
						premise := eng.And(cur, popped, exposed)
						clauses = append(clauses, eng.Implies(premise, eng.Or(succs...)))
					}
				}

				// Occupying (u,pos,height) before the last position requires a
				// usable action whose guard holds; Or() of none is false.
				clauses = append(clauses, eng.Implies(cur, eng.Or(usable...)))
			}
		}
	}
	if len(clauses) == 0 {
		return eng.True()
	}
	return eng.And(clauses...)
}
