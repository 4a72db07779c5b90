package reduction

import "github.com/tunnelsat/tunnelsat/network"

// actionSpec describes one of the ten stack actions: its capability bit,
// and the protocol(s) it involves. For transmit, a == b is the protocol
// forwarded unchanged. For push, a is the precondition (top before the
// push) and b is the protocol pushed above it. For pop, a is the protocol
// exposed after the pop and b is the protocol discarded.
//
// Factoring the action set into this table, rather than the C source's
// six near-identical nested if/else-if chains across
// create_phi_{3,5,6}_{push,pop}, is a direct application of spec §9's
// note that implementers "should keep the action set data-driven".
type actionSpec struct {
	bit  network.Action
	a, b network.Protocol
}

var protocols = [2]network.Protocol{network.ProtoP4, network.ProtoP6}

var transmitActions = buildTransmitActions()
var pushActions = buildPushActions()
var popActions = buildPopActions()

func buildTransmitActions() []actionSpec {
	out := make([]actionSpec, 0, len(protocols))
	for _, p := range protocols {
		out = append(out, actionSpec{bit: network.TransmitAction(p), a: p, b: p})
	}
	return out
}

func buildPushActions() []actionSpec {
	out := make([]actionSpec, 0, len(protocols)*len(protocols))
	for _, a := range protocols {
		for _, b := range protocols {
			out = append(out, actionSpec{bit: network.PushAction(a, b), a: a, b: b})
		}
	}
	return out
}

func buildPopActions() []actionSpec {
	out := make([]actionSpec, 0, len(protocols)*len(protocols))
	for _, a := range protocols {
		for _, b := range protocols {
			out = append(out, actionSpec{bit: network.PopAction(a, b), a: a, b: b})
		}
	}
	return out
}
