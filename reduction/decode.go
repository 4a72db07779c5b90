package reduction

import (
	"fmt"

	"github.com/tunnelsat/tunnelsat/engine"
	"github.com/tunnelsat/tunnelsat/network"
)

// Step is one position along a decoded tunnel route. Action, together
// with the previous step's Node, gives the hop that arrived here as the
// (action_tag, src_node, tgt_node) triple spec.md §4.J calls for;
// Position 0 has the zero Action, since no hop arrives at the start.
type Step struct {
	Position int            // 0..L
	Node     int            // occupied node at this position
	NodeName string         // net.NodeName(Node), for display
	Height   int            // stack height at this position
	Action   network.Action // action taken on the hop that arrived here (unset at Position 0)
}

// Decode reads a satisfying model of φ(L) back into a sequence of L+1
// steps, the concrete route the model witnesses. out must have length
// L+1; Decode overwrites it in place.
//
// eng must be the same FormulaEngine instance (with the same variable
// names already registered) that built the formula model was drawn
// from — Decode regenerates variable names to query model.ValueOf,
// exactly as the C source's decode_model re-derives
// tn_path_variable/tn_4_variable/tn_6_variable strings from ctx rather
// than caching the literals.
//
// A return of ErrAmbiguousModel or ErrInvalidHeightDelta indicates
// model does not actually satisfy φ(L) as built — a contract violation
// by the caller, not a property of any valid path.
func Decode(eng engine.FormulaEngine, net Oracle, model engine.Model, length int, out []Step) error {
	if len(out) != length+1 {
		return fmt.Errorf("reduction.Decode: len(out)=%d, want %d: %w", len(out), length+1, ErrBadOutputLength)
	}

	h := StackHeight(length)
	for pos := 0; pos <= length; pos++ {
		node, height, err := findOccupied(eng, net, model, pos, h)
		if err != nil {
			return err
		}
		out[pos] = Step{
			Position: pos,
			Node:     node,
			NodeName: net.NodeName(node),
			Height:   height,
		}
	}

	for i := 1; i < len(out); i++ {
		delta := out[i].Height - out[i-1].Height
		if delta < -1 || delta > 1 {
			return fmt.Errorf("reduction.Decode: position %d: height %d -> %d: %w",
				i-1, out[i-1].Height, out[i].Height, ErrInvalidHeightDelta)
		}
		action, err := classifyAction(eng, model, i-1, out[i-1].Height, out[i].Height, delta)
		if err != nil {
			return err
		}
		out[i].Action = action
	}
	return nil
}

// classifyAction implements spec.md §4.J's hop classification: given the
// hop from position srcPos (stack top at srcHeight) to srcPos+1 (stack
// top at tgtHeight), it names the single action tag that hop witnesses.
func classifyAction(eng engine.FormulaEngine, model engine.Model, srcPos, srcHeight, tgtHeight, delta int) (network.Action, error) {
	switch delta {
	case 0:
		p, ok := protoAt(eng, model, srcPos, srcHeight)
		if !ok {
			return 0, fmt.Errorf("reduction.Decode: position %d: %w", srcPos, ErrAmbiguousModel)
		}
		return network.TransmitAction(p), nil
	case 1:
		a, aok := protoAt(eng, model, srcPos, srcHeight)
		b, bok := protoAt(eng, model, srcPos+1, tgtHeight)
		if !aok || !bok {
			return 0, fmt.Errorf("reduction.Decode: position %d: %w", srcPos, ErrAmbiguousModel)
		}
		return network.PushAction(a, b), nil
	case -1:
		a, aok := protoAt(eng, model, srcPos+1, tgtHeight)
		b, bok := protoAt(eng, model, srcPos, srcHeight)
		if !aok || !bok {
			return 0, fmt.Errorf("reduction.Decode: position %d: %w", srcPos, ErrAmbiguousModel)
		}
		return network.PopAction(a, b), nil
	default:
		return 0, fmt.Errorf("reduction.Decode: position %d: delta %d: %w", srcPos, delta, ErrInvalidHeightDelta)
	}
}

// findOccupied returns the unique (node,height) pair with x(node,pos,height)
// true in model, per φ1's exactly-one invariant.
func findOccupied(eng engine.FormulaEngine, net Oracle, model engine.Model, pos, h int) (node, height int, err error) {
	found := false
	for u := 0; u < net.NumNodes(); u++ {
		for ht := 0; ht < h; ht++ {
			if model.ValueOf(xVar(eng, u, pos, ht)) {
				if found {
					return 0, 0, fmt.Errorf("reduction.Decode: position %d: %w", pos, ErrAmbiguousModel)
				}
				node, height, found = u, ht, true
			}
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("reduction.Decode: position %d: %w", pos, ErrAmbiguousModel)
	}
	return node, height, nil
}

// protoAt reports which protocol, if any, occupies stack cell at
// (pos,cell) in model, and whether the cell holds a protocol at all.
func protoAt(eng engine.FormulaEngine, model engine.Model, pos, cell int) (p network.Protocol, ok bool) {
	if model.ValueOf(y4Var(eng, pos, cell)) {
		return network.ProtoP4, true
	}
	if model.ValueOf(y6Var(eng, pos, cell)) {
		return network.ProtoP6, true
	}
	return network.Protocol(0), false
}
