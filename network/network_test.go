package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunnelsat/tunnelsat/network"
)

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		opts    []network.NetworkOption
		wantErr error
	}{
		{"zero nodes", 0, nil, network.ErrNonPositiveNumNodes},
		{"negative nodes", -1, nil, network.ErrNonPositiveNumNodes},
		{"edge out of range", 2, []network.NetworkOption{network.WithEdge(0, 5)}, network.ErrNodeOutOfRange},
		{"action out of range", 2, []network.NetworkOption{network.WithAction(9, network.ActionTransmitP4)}, network.ErrNodeOutOfRange},
		{"endpoints out of range", 2, []network.NetworkOption{network.WithEndpoints(0, 9)}, network.ErrNodeOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.n, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want wrapping %v", err, tc.wantErr)
		})
	}
}

func TestNew_Accessors(t *testing.T) {
	t.Parallel()

	net, err := network.New(3,
		network.WithEdge(0, 1),
		network.WithEdge(1, 2),
		network.WithAction(0, network.ActionTransmitP4),
		network.WithName(2, "dest"),
		network.WithEndpoints(0, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, net.NumNodes())
	assert.Equal(t, 0, net.Initial())
	assert.Equal(t, 2, net.Final())
	assert.True(t, net.IsEdge(0, 1))
	assert.False(t, net.IsEdge(1, 0))
	assert.True(t, net.HasAction(0, network.ActionTransmitP4))
	assert.False(t, net.HasAction(1, network.ActionTransmitP4))
	assert.Equal(t, "dest", net.NodeName(2))
	assert.Equal(t, "n0", net.NodeName(0))
}

func TestActionHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, network.ActionTransmitP4, network.TransmitAction(network.ProtoP4))
	assert.Equal(t, network.ActionTransmitP6, network.TransmitAction(network.ProtoP6))
	assert.Equal(t, network.ActionPushP4P6, network.PushAction(network.ProtoP4, network.ProtoP6))
	assert.Equal(t, network.ActionPopP6P4, network.PopAction(network.ProtoP6, network.ProtoP4))
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "transmit_P4", network.ActionTransmitP4.String())
	assert.Equal(t, "push_P4_P6", network.PushAction(network.ProtoP4, network.ProtoP6).String())
	assert.Equal(t, "pop_P6_P4", network.PopAction(network.ProtoP6, network.ProtoP4).String())
	assert.Contains(t, (network.ActionTransmitP4 | network.ActionTransmitP6).String(), "action(")
}
