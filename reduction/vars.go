package reduction

import (
	"fmt"

	"github.com/tunnelsat/tunnelsat/engine"
	"github.com/tunnelsat/tunnelsat/network"
)

// family tags the three Boolean variable families of spec §3. Each
// family's name carries a distinct prefix, so name sets are disjoint by
// construction across families and, within a family, by the (a,b,c)
// coordinate tuple embedded in the name.
type family uint8

const (
	familyX family = iota
	familyY4
	familyY6
)

// varName is the single pure function mapping (family, coords) to a
// deterministic, collision-free variable name, generalizing the C
// source's three near-duplicate tn_path_variable/tn_4_variable/
// tn_6_variable snprintf helpers into one.
func varName(f family, a, b, c int) string {
	switch f {
	case familyX:
		return fmt.Sprintf("x|node=%d|pos=%d|height=%d", a, b, c)
	case familyY4:
		return fmt.Sprintf("y4|pos=%d|height=%d", a, b)
	case familyY6:
		return fmt.Sprintf("y6|pos=%d|height=%d", a, b)
	default:
		panic("reduction: unknown variable family")
	}
}

// xVar returns x(node,pos,height).
func xVar(eng engine.FormulaEngine, node, pos, height int) engine.Atom {
	return eng.NewVar(varName(familyX, node, pos, height))
}

// y4Var returns y4(pos,height).
func y4Var(eng engine.FormulaEngine, pos, height int) engine.Atom {
	return eng.NewVar(varName(familyY4, pos, height, 0))
}

// y6Var returns y6(pos,height).
func y6Var(eng engine.FormulaEngine, pos, height int) engine.Atom {
	return eng.NewVar(varName(familyY6, pos, height, 0))
}

// yVar returns y4Var or y6Var depending on p, so φ-builders that are
// data-driven over protocols (spec §9's "keep the action set data-driven"
// guidance) need not branch on p themselves.
func yVar(eng engine.FormulaEngine, p network.Protocol, pos, height int) engine.Atom {
	if p == network.ProtoP4 {
		return y4Var(eng, pos, height)
	}
	return y6Var(eng, pos, height)
}

// topProtocolGuard returns the constraint that the stack cell at
// cellIndex carries protocol p, or an unconditional truth when cellIndex
// is negative (no tunnel is open, so there is no top cell to constrain).
func topProtocolGuard(eng engine.FormulaEngine, p network.Protocol, pos, cellIndex int) engine.Atom {
	if cellIndex < 0 {
		return eng.True()
	}
	return yVar(eng, p, pos, cellIndex)
}
