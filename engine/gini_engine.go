package engine

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// GiniEngine implements FormulaEngine over a gini/logic combinational
// circuit. It caches Boolean variables by name in the same way the
// signadot-format schema's formulaBuilder caches (position,type) literals
// in a vars map, so that repeated NewVar calls with the same name return
// the identical literal — the identity guarantee the reduction's
// variable-naming discipline (spec §4.A) relies on.
//
// GiniEngine is not safe for concurrent use; each Build call should use a
// freshly constructed engine, exactly as the reduction's top-level
// assembler expects one context per (network, length) invocation.
type GiniEngine struct {
	c    *logic.C
	vars map[string]z.Lit
}

// NewGiniEngine returns a FormulaEngine backed by a fresh gini circuit.
func NewGiniEngine() *GiniEngine {
	return &GiniEngine{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

// Circuit exposes the underlying combinational circuit, needed by Solve
// to compile the circuit to CNF.
func (e *GiniEngine) Circuit() *logic.C { return e.c }

func asLit(a Atom) z.Lit { return a.(z.Lit) }

func asLits(atoms []Atom) []z.Lit {
	out := make([]z.Lit, len(atoms))
	for i, a := range atoms {
		out[i] = asLit(a)
	}
	return out
}

// NewVar returns the Boolean variable named name, idempotent in name.
func (e *GiniEngine) NewVar(name string) Atom {
	if l, ok := e.vars[name]; ok {
		return l
	}
	l := e.c.Lit()
	e.vars[name] = l
	return l
}

// And returns the conjunction of atoms; And() is True().
func (e *GiniEngine) And(atoms ...Atom) Atom {
	if len(atoms) == 0 {
		return e.True()
	}
	return e.c.Ands(asLits(atoms)...)
}

// Or returns the disjunction of atoms; Or() is the false constant.
func (e *GiniEngine) Or(atoms ...Atom) Atom {
	if len(atoms) == 0 {
		return e.c.F
	}
	return e.c.Ors(asLits(atoms)...)
}

// Not returns the negation of a.
func (e *GiniEngine) Not(a Atom) Atom {
	return asLit(a).Not()
}

// Implies returns a => b, encoded as ¬a ∨ b.
func (e *GiniEngine) Implies(a, b Atom) Atom {
	return e.c.Ors(asLit(a).Not(), asLit(b))
}

// Eq returns a <=> b, encoded as (¬a∨b) ∧ (¬b∨a).
func (e *GiniEngine) Eq(a, b Atom) Atom {
	la, lb := asLit(a), asLit(b)
	return e.c.Ands(e.c.Ors(la.Not(), lb), e.c.Ors(lb.Not(), la))
}

// True returns the circuit's constant-true literal.
func (e *GiniEngine) True() Atom { return e.c.T }

// ExactlyOne returns a constraint satisfied iff exactly one of atoms is
// true: an at-least-one clause ANDed with a pairwise at-most-one clause
// per pair. ExactlyOne() with no atoms is unsatisfiable (the false
// constant), matching "nothing can be the one true atom".
func (e *GiniEngine) ExactlyOne(atoms ...Atom) Atom {
	ls := asLits(atoms)
	if len(ls) == 0 {
		return e.c.F
	}
	parts := make([]z.Lit, 0, 1+len(ls)*(len(ls)-1)/2)
	parts = append(parts, e.c.Ors(ls...))
	for i := 0; i < len(ls); i++ {
		for j := i + 1; j < len(ls); j++ {
			parts = append(parts, e.c.Ors(ls[i].Not(), ls[j].Not()))
		}
	}
	return e.c.Ands(parts...)
}
