// Package pathfind drives the reduction package across increasing path
// lengths to answer the practical question spec.md itself leaves open
// (spec §7, Non-goals): not just "does a length-L tunnel route exist",
// but "does any tunnel route exist, and if so how short is the
// shortest one".
//
// This is ambient scaffolding around the core reduction, not part of
// its scope: it calls reduction.Build/Decode once per candidate length,
// exactly the way tsp.SolveWithMatrix sequences independent solver
// passes (bound, heuristic, local search) and reports the first one
// that succeeds.
package pathfind
