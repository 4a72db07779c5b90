package network

import "fmt"

// Protocol identifies one of the two header protocols carried on a node's
// stack. The reduction never models more than these two (spec Non-goals).
type Protocol uint8

const (
	// ProtoP4 is the first tunneled protocol.
	ProtoP4 Protocol = iota
	// ProtoP6 is the second tunneled protocol.
	ProtoP6
)

// String renders the protocol tag for diagnostics.
func (p Protocol) String() string {
	if p == ProtoP4 {
		return "P4"
	}
	return "P6"
}

// Action is a bitmask over the ten stack actions a node may support:
// transmit_P4, transmit_P6, and the four push_A_B / four pop_A_B
// combinations of {P4,P6}×{P4,P6}.
type Action uint16

// The ten action bits, one per tag named in spec §3.
const (
	ActionTransmitP4 Action = 1 << iota
	ActionTransmitP6
	ActionPushP4P4
	ActionPushP4P6
	ActionPushP6P4
	ActionPushP6P6
	ActionPopP4P4
	ActionPopP4P6
	ActionPopP6P4
	ActionPopP6P6
)

// TransmitAction returns the bit for forwarding protocol p unchanged.
func TransmitAction(p Protocol) Action {
	if p == ProtoP4 {
		return ActionTransmitP4
	}
	return ActionTransmitP6
}

// PushAction returns the bit for pushing protocol b above a on the stack.
func PushAction(a, b Protocol) Action {
	switch {
	case a == ProtoP4 && b == ProtoP4:
		return ActionPushP4P4
	case a == ProtoP4 && b == ProtoP6:
		return ActionPushP4P6
	case a == ProtoP6 && b == ProtoP4:
		return ActionPushP6P4
	default:
		return ActionPushP6P6
	}
}

// PopAction returns the bit for popping b off of a, exposing a.
func PopAction(a, b Protocol) Action {
	switch {
	case a == ProtoP4 && b == ProtoP4:
		return ActionPopP4P4
	case a == ProtoP4 && b == ProtoP6:
		return ActionPopP4P6
	case a == ProtoP6 && b == ProtoP4:
		return ActionPopP6P4
	default:
		return ActionPopP6P6
	}
}

// String renders a single action tag the way spec.md §3/§4.J names it
// (e.g. "transmit_P4", "push_P4_P6", "pop_P6_P4"). Action is a bitmask in
// general, but the decoder only ever asks for the name of one bit at a
// time, so a multi-bit value falls back to a numeric rendering.
func (a Action) String() string {
	switch a {
	case ActionTransmitP4:
		return "transmit_P4"
	case ActionTransmitP6:
		return "transmit_P6"
	case ActionPushP4P4:
		return "push_P4_P4"
	case ActionPushP4P6:
		return "push_P4_P6"
	case ActionPushP6P4:
		return "push_P6_P4"
	case ActionPushP6P6:
		return "push_P6_P6"
	case ActionPopP4P4:
		return "pop_P4_P4"
	case ActionPopP4P6:
		return "pop_P4_P6"
	case ActionPopP6P4:
		return "pop_P6_P4"
	case ActionPopP6P6:
		return "pop_P6_P6"
	default:
		return fmt.Sprintf("action(%#04x)", uint16(a))
	}
}
