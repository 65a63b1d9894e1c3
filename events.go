package rtspclient

import "github.com/streamkit-go/rtspclient/pkg/base"

// EventKind distinguishes the two things that can arrive on a Session's
// Events channel without being solicited by an in-flight request.
type EventKind int

const (
	// EventUnsolicitedResponse is a response whose CSeq matched no pending
	// slot (already timed out, or a server bug).
	EventUnsolicitedResponse EventKind = iota
	// EventServerPush is a request the server sent us, typically
	// PLAY_NOTIFY or REDIRECT (spec.md §4.2 "Server push"). It is relayed
	// whether its request line says RTSP/1.0 or RTSP/2.0.
	EventServerPush
)

// Event is one item off a Session's Events channel.
type Event struct {
	Kind     EventKind
	Response *base.Response
	Request  *base.Request
}

// relayEvents drains the correlator's Unsolicited channel into a typed
// Events channel until done is closed.
func relayEvents(in <-chan any, out chan<- Event, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case v := <-in:
			var ev Event
			switch m := v.(type) {
			case *base.Response:
				ev = Event{Kind: EventUnsolicitedResponse, Response: m}
			case *base.Request:
				ev = Event{Kind: EventServerPush, Request: m}
			default:
				continue
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}
}
