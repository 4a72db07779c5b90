package engine

// Atom is an opaque handle to a Boolean variable or a constructed
// sub-formula, as produced by a FormulaEngine. Nothing outside an engine
// implementation inspects an Atom's concrete type; callers only thread
// values returned by one FormulaEngine/Model method into another.
type Atom any

// FormulaEngine is the abstract formula-builder surface the reduction
// core is built over. An implementation owns a context under which every
// Atom it returns is valid; mk_bool_var-style variable creation MUST be
// idempotent in name, so that two calls to NewVar with the same name
// return the same Atom.
type FormulaEngine interface {
	// NewVar returns the Boolean variable named name, creating it on first
	// use and returning the cached Atom on every subsequent call with the
	// same name.
	NewVar(name string) Atom

	// And returns the conjunction of atoms. And() with no arguments
	// returns True().
	And(atoms ...Atom) Atom

	// Or returns the disjunction of atoms. Or() with no arguments returns
	// the false constant.
	Or(atoms ...Atom) Atom

	// Not returns the negation of a.
	Not(a Atom) Atom

	// Implies returns a => b.
	Implies(a, b Atom) Atom

	// Eq returns a <=> b.
	Eq(a, b Atom) Atom

	// True returns the constant true.
	True() Atom

	// ExactlyOne returns a constraint satisfied iff exactly one of atoms
	// is true. The encoding is the obvious at-least-one AND pairwise
	// at-most-one one; spec Non-goals exclude fancier cardinality
	// encodings.
	ExactlyOne(atoms ...Atom) Atom
}

// Model answers whether an Atom evaluates true under one particular
// satisfying assignment.
type Model interface {
	ValueOf(a Atom) bool
}
