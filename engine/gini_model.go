package engine

import "github.com/go-air/gini"

// GiniModel wraps a gini.Gini instance that has already returned
// satisfiable, answering ValueOf queries against its assignment.
type GiniModel struct {
	g *gini.Gini
}

// ValueOf reports whether a evaluates true under this model's assignment.
func (m *GiniModel) ValueOf(a Atom) bool {
	return m.g.Value(asLit(a))
}

// Solve compiles e's circuit to CNF, assumes formula true, and runs the
// solver, grounded on the other_examples formula-builder's
// checkSatisfiability (c.ToCnf(g); g.Assume(formula); g.Solve()).
//
// It returns (model, true, nil) on satisfiable, (nil, false, nil) on
// unsatisfiable, and a non-nil error only if the solver returns neither
// (ErrSolverIndeterminate) — which should not occur for the fully-assumed,
// finite formulas this module builds.
func Solve(e *GiniEngine, formula Atom) (*GiniModel, bool, error) {
	g := gini.New()
	e.Circuit().ToCnf(g)
	g.Assume(asLit(formula))
	switch g.Solve() {
	case 1:
		return &GiniModel{g: g}, true, nil
	case -1:
		return nil, false, nil
	default:
		return nil, false, ErrSolverIndeterminate
	}
}
