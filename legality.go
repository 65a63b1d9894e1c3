package rtspclient

import "github.com/streamkit-go/rtspclient/pkg/base"

// legal reports whether method may be sent from state, per the table in
// spec.md §4.5. PlayNotify and Redirect are server-originated and never
// checked here — a caller never builds them.
func legal(method base.Method, state State) bool {
	if state == StateClosed {
		return false
	}

	switch method {
	case base.Options, base.Describe, base.GetParameter, base.SetParameter:
		return true
	case base.Announce:
		return state == StateInit || state == StateReady
	case base.Setup:
		return state == StateInit || state == StateReady
	case base.Play:
		return state == StateReady || state == StatePlaying
	case base.Pause:
		return state == StatePlaying || state == StateRecording
	case base.Record:
		return state == StateReady || state == StateRecording
	case base.Teardown:
		return state == StateReady || state == StatePlaying || state == StateRecording
	default:
		return false
	}
}

// nextState returns the state to move to after a 2xx response to method,
// sent from state "from". Methods with no arrow in spec.md §4.5 (OPTIONS,
// DESCRIBE, ANNOUNCE, GET_PARAMETER, SET_PARAMETER) leave the state
// unchanged.
func nextState(method base.Method, from State) State {
	switch method {
	case base.Setup:
		return StateReady
	case base.Play:
		return StatePlaying
	case base.Pause:
		return StateReady
	case base.Record:
		return StateRecording
	case base.Teardown:
		return StateClosed
	default:
		return from
	}
}
