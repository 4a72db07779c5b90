package reduction_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunnelsat/tunnelsat/engine"
	"github.com/tunnelsat/tunnelsat/network"
	"github.com/tunnelsat/tunnelsat/reduction"
)

func TestStackHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		want   int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {6, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, reduction.StackHeight(tc.length))
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	net, err := network.New(2, network.WithEdge(0, 1), network.WithEndpoints(0, 1))
	require.NoError(t, err)

	eng := engine.NewGiniEngine()

	_, err = reduction.Build(eng, net, -1)
	assert.True(t, errors.Is(err, reduction.ErrNegativeLength))

	_, err = reduction.Build(eng, nil, 1)
	assert.True(t, errors.Is(err, reduction.ErrNoNodes))
}

func solveAndDecode(t *testing.T, net *network.Network, length int) (*reduction.Step, []reduction.Step, bool) {
	t.Helper()
	eng := engine.NewGiniEngine()
	formula, err := reduction.Build(eng, net, length)
	require.NoError(t, err)

	model, sat, err := engine.Solve(eng, formula)
	require.NoError(t, err)
	if !sat {
		return nil, nil, false
	}

	steps := make([]reduction.Step, length+1)
	require.NoError(t, reduction.Decode(eng, net, model, length, steps))
	return &steps[0], steps, true
}

func TestScenario_TrivialIdentity(t *testing.T) {
	t.Parallel()

	net, err := network.New(1, network.WithEndpoints(0, 0))
	require.NoError(t, err)

	_, steps, sat := solveAndDecode(t, net, 0)
	require.True(t, sat)
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Node)
	assert.Equal(t, 0, steps[0].Height)
}

func TestScenario_StraightWire(t *testing.T) {
	t.Parallel()

	net, err := network.New(4,
		network.WithEndpoints(0, 3),
		network.WithEdge(0, 1), network.WithAction(0, network.ActionTransmitP4),
		network.WithEdge(1, 2), network.WithAction(1, network.ActionTransmitP4),
		network.WithEdge(2, 3), network.WithAction(2, network.ActionTransmitP4),
	)
	require.NoError(t, err)

	_, steps, sat := solveAndDecode(t, net, 3)
	require.True(t, sat)
	require.Len(t, steps, 4)
	for _, s := range steps {
		assert.Equal(t, 0, s.Height)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, nodesOf(steps))
}

func TestScenario_TunnelPushPop(t *testing.T) {
	t.Parallel()

	net, err := network.New(4,
		network.WithEndpoints(0, 3),
		network.WithEdge(0, 1), network.WithAction(0, network.PushAction(network.ProtoP4, network.ProtoP6)),
		network.WithEdge(1, 2), network.WithAction(1, network.ActionTransmitP6),
		network.WithEdge(2, 3), network.WithAction(2, network.PopAction(network.ProtoP4, network.ProtoP6)),
	)
	require.NoError(t, err)

	_, steps, sat := solveAndDecode(t, net, 3)
	require.True(t, sat)
	require.Len(t, steps, 4)
	assert.Equal(t, 0, steps[0].Height)
	assert.Equal(t, 1, steps[1].Height)
	assert.Equal(t, 1, steps[2].Height)
	assert.Equal(t, 0, steps[3].Height)

	assert.Equal(t, network.PushAction(network.ProtoP4, network.ProtoP6), steps[1].Action)
	assert.Equal(t, network.ActionTransmitP6, steps[2].Action)
	assert.Equal(t, network.PopAction(network.ProtoP4, network.ProtoP6), steps[3].Action)
}

func TestScenario_ProtocolMismatch_Unsatisfiable(t *testing.T) {
	t.Parallel()

	net, err := network.New(4,
		network.WithEndpoints(0, 3),
		network.WithEdge(0, 1), network.WithAction(0, network.PushAction(network.ProtoP6, network.ProtoP6)),
		network.WithEdge(1, 2), network.WithAction(1, network.ActionTransmitP6),
		network.WithEdge(2, 3), network.WithAction(2, network.PopAction(network.ProtoP4, network.ProtoP6)),
	)
	require.NoError(t, err)

	for length := 0; length <= 5; length++ {
		_, _, sat := solveAndDecode(t, net, length)
		assert.Falsef(t, sat, "length %d unexpectedly satisfiable", length)
	}
}

func TestScenario_HeightExhausted(t *testing.T) {
	t.Parallel()

	net, err := network.New(5,
		network.WithEndpoints(0, 4),
		network.WithEdge(0, 1), network.WithAction(0, network.PushAction(network.ProtoP4, network.ProtoP4)),
		network.WithEdge(1, 2), network.WithAction(1, network.PushAction(network.ProtoP4, network.ProtoP4)),
		network.WithEdge(2, 3), network.WithAction(2, network.PopAction(network.ProtoP4, network.ProtoP4)),
		network.WithEdge(3, 4), network.WithAction(3, network.PopAction(network.ProtoP4, network.ProtoP4)),
	)
	require.NoError(t, err)

	_, _, sat := solveAndDecode(t, net, 2)
	assert.False(t, sat, "length 2 gives H=2, too small for two simultaneous pushes")

	_, steps, sat := solveAndDecode(t, net, 4)
	require.True(t, sat)
	assert.Equal(t, 2, steps[2].Height)
}

func TestScenario_DualCapableActionsAreIndependentlyRequired(t *testing.T) {
	t.Parallel()

	// A single self-looped node supports both transmit_P4 and
	// push_P4_P6, and both actions' guards ("P4 exposed") are satisfied
	// simultaneously by the forced starting state. Per spec §4.E, each
	// action's implication is independent, so BOTH must fire on the
	// first hop: the walk is forced to occupy height 0 (transmit's
	// conclusion) AND height 1 (push's conclusion) at position 1, which
	// contradicts φ1's exactly-one invariant there. The formula must
	// therefore be UNSAT, not merely "pick one branch".
	net, err := network.New(1,
		network.WithEndpoints(0, 0),
		network.WithEdge(0, 0),
		network.WithAction(0, network.ActionTransmitP4|network.PushAction(network.ProtoP4, network.ProtoP6)),
	)
	require.NoError(t, err)

	_, _, sat := solveAndDecode(t, net, 2)
	assert.False(t, sat, "both simultaneously-guarded actions must be required at once, forcing UNSAT")
}

func TestScenario_CapableActionWithNoOutgoingEdgeIsOmittedNotForbidden(t *testing.T) {
	t.Parallel()

	// A single node with no outgoing edge at all (not even a self-loop)
	// that is both source and destination. Per spec §4.E's closing
	// sentence, an action with no matching neighbor contributes no
	// implication at all — it must not be replaced by forcing the node's
	// occupancy false, which would make even the trivial self-to-self
	// route unsatisfiable.
	net, err := network.New(1,
		network.WithEndpoints(0, 0),
		network.WithAction(0, network.ActionTransmitP4),
	)
	require.NoError(t, err)

	_, steps, sat := solveAndDecode(t, net, 1)
	require.True(t, sat, "a capable action with no outgoing edge must be omitted, not forced false")
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].Node)
	assert.Equal(t, 0, steps[1].Node)
}

func TestDump(t *testing.T) {
	t.Parallel()

	net, err := network.New(4,
		network.WithEndpoints(0, 3),
		network.WithEdge(0, 1), network.WithAction(0, network.PushAction(network.ProtoP4, network.ProtoP6)),
		network.WithEdge(1, 2), network.WithAction(1, network.ActionTransmitP6),
		network.WithEdge(2, 3), network.WithAction(2, network.PopAction(network.ProtoP4, network.ProtoP6)),
	)
	require.NoError(t, err)

	eng := engine.NewGiniEngine()
	formula, err := reduction.Build(eng, net, 3)
	require.NoError(t, err)
	model, sat, err := engine.Solve(eng, formula)
	require.NoError(t, err)
	require.True(t, sat)

	var buf bytes.Buffer
	require.NoError(t, reduction.Dump(&buf, eng, net, model, 3))
	assert.Contains(t, buf.String(), "pos=0")
	assert.Contains(t, buf.String(), "pos=3")
}

func nodesOf(steps []reduction.Step) []int {
	out := make([]int, len(steps))
	for i, s := range steps {
		out[i] = s.Node
	}
	return out
}
