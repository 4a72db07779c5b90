package reduction

import (
	"fmt"
	"io"

	"github.com/tunnelsat/tunnelsat/engine"
)

// Dump writes a human-readable rendering of a satisfying model of φ(L)
// to w: one line per position, showing the occupied node, the stack
// height, and the protocol held by each occupied stack cell.
//
// Grounded on the C source's print_model, reworked to decode through
// Decode and protoAt rather than re-walking the Z3 model directly, so
// Dump and Decode cannot drift out of sync with each other.
func Dump(w io.Writer, eng engine.FormulaEngine, net Oracle, model engine.Model, length int) error {
	steps := make([]Step, length+1)
	if err := Decode(eng, net, model, length, steps); err != nil {
		return err
	}

	for _, step := range steps {
		cells := make([]string, 0, step.Height+1)
		for cell := 0; cell <= step.Height; cell++ {
			p, ok := protoAt(eng, model, step.Position, cell)
			if !ok {
				cells = append(cells, "?")
				continue
			}
			cells = append(cells, p.String())
		}
		action := "-"
		if step.Position > 0 {
			action = step.Action.String()
		}
		if _, err := fmt.Fprintf(w, "pos=%d node=%s height=%d stack=%v via=%s\n",
			step.Position, step.NodeName, step.Height, cells, action); err != nil {
			return fmt.Errorf("reduction.Dump: %w", err)
		}
	}
	return nil
}
