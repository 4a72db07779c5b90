// Package engine is the tunnel-routing core's Formula engine and Model
// reader collaborator (§2, §6 of the spec): a context handle, Boolean-
// variable creation by string name, constructors for AND/OR/NOT/IMPLIES/
// EQUIV/TRUE, an exactly-one-of cardinality constraint, and a model reader
// that answers whether a Boolean variable evaluates true under a
// satisfying assignment.
//
// The reduction package depends only on the FormulaEngine and Model
// interfaces declared here, never on a concrete solver — engine supplies
// one concrete adapter, GiniEngine, built on the real SAT solver
// github.com/go-air/gini, in the same style as the production formula
// builder this module is grounded on (a gini/logic combinational circuit
// compiled to CNF and handed to a gini.Gini instance for solving).
package engine
