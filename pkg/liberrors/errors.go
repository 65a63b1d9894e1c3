// Package liberrors is the closed error taxonomy of the RTSP core,
// spec.md §7. Each kind is a struct implementing error, following the
// teacher's Err<Name> convention (pkg/liberrors/client.go) rather than a
// single generic error wrapped with varying messages, so callers can
// switch on kind with errors.As.
package liberrors

import (
	"fmt"

	"github.com/streamkit-go/rtspclient/pkg/base"
)

// ErrInvalidURL means a URL failed to parse. Caller fixes the input.
type ErrInvalidURL struct {
	Reason error
}

func (e ErrInvalidURL) Error() string { return fmt.Sprintf("invalid URL: %v", e.Reason) }
func (e ErrInvalidURL) Unwrap() error { return e.Reason }

// ErrTransportFailure means connect/read/write failed. Fatal for the
// connection.
type ErrTransportFailure struct {
	Cause error
}

func (e ErrTransportFailure) Error() string { return fmt.Sprintf("transport failure: %v", e.Cause) }
func (e ErrTransportFailure) Unwrap() error { return e.Cause }

// ErrConnectionClosed means the peer closed the connection, or it was
// closed locally. Fatal; every pending request fails with this.
type ErrConnectionClosed struct {
	Cause error // non-nil when the close was triggered by a read/write error
}

func (e ErrConnectionClosed) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection closed: %v", e.Cause)
	}
	return "connection closed"
}

func (e ErrConnectionClosed) Unwrap() error { return e.Cause }

// ErrMalformedStatusLine means the codec could not parse a response status
// line. Non-fatal; the frame is dropped.
type ErrMalformedStatusLine struct {
	Reason string
}

func (e ErrMalformedStatusLine) Error() string {
	return fmt.Sprintf("malformed status line: %s", e.Reason)
}

// ErrMalformedHeaders means the codec could not parse the header block
// (including invalid UTF-8). Non-fatal unless resynchronization is
// impossible.
type ErrMalformedHeaders struct {
	Reason string
}

func (e ErrMalformedHeaders) Error() string {
	return fmt.Sprintf("malformed headers: %s", e.Reason)
}

// ErrIncompleteMessage surfaces an internal NeedMore state observed at
// shutdown; the caller sees ErrConnectionClosed instead.
type ErrIncompleteMessage struct{}

func (e ErrIncompleteMessage) Error() string { return "incomplete message at shutdown" }

// ErrIllegalState means the session rejected a method in its current
// state. Caller-visible; no bytes are written.
type ErrIllegalState struct {
	From   fmt.Stringer
	Method base.Method
}

func (e ErrIllegalState) Error() string {
	return fmt.Sprintf("illegal state: cannot %s from %v", e.Method, e.From)
}

// ErrCSeqMismatch means a response's CSeq didn't match the request it was
// matched to. Should never occur; fatal for that one request.
type ErrCSeqMismatch struct {
	Sent     string
	Received string
}

func (e ErrCSeqMismatch) Error() string {
	return fmt.Sprintf("CSeq mismatch: sent %s, received %s", e.Sent, e.Received)
}

// ErrCSeqCollision means the correlator was asked to register a CSeq that
// already has a pending slot. Should not happen in normal use.
type ErrCSeqCollision struct {
	CSeq int
}

func (e ErrCSeqCollision) Error() string {
	return fmt.Sprintf("CSeq %d already has a pending request", e.CSeq)
}

// ErrProtocolError means a 4xx/5xx status was returned. Caller-visible;
// session state is left unchanged.
type ErrProtocolError struct {
	Response *base.Response
}

func (e ErrProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %d %s", e.Response.StatusCode, e.Response.StatusMessage)
}

// ErrSessionIDDrift means a later response carried a session id different
// from the one the session captured on SETUP. Caller decides; state is
// preserved.
type ErrSessionIDDrift struct {
	Expected string
	Got      string
}

func (e ErrSessionIDDrift) Error() string {
	return fmt.Sprintf("session id drift: expected %s, got %s", e.Expected, e.Got)
}

// ErrTimeout means a response wasn't received within the caller's
// deadline. The caller may retry with a new CSeq.
type ErrTimeout struct {
	CSeq int
}

func (e ErrTimeout) Error() string {
	return fmt.Sprintf("timeout waiting for response to CSeq %d", e.CSeq)
}
