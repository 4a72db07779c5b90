package engine

import "errors"

// ErrSolverIndeterminate indicates the underlying SAT solver returned
// neither satisfiable nor unsatisfiable (gini.Gini.Solve's 0 result),
// which should not occur for the finite, fully-assumed formulas this
// module constructs; callers should treat it as a contract violation.
var ErrSolverIndeterminate = errors.New("engine: solver returned an indeterminate result")
