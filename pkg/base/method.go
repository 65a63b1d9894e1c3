// Package base contains the base wire-level elements of the RTSP protocol:
// methods, status codes, headers, URLs and the Request/Response structs.
package base

// Method is the method of a RTSP request.
type Method string

// Standard RTSP/1.0 and RTSP/2.0 methods.
const (
	Announce     Method = "ANNOUNCE"
	Describe     Method = "DESCRIBE"
	GetParameter Method = "GET_PARAMETER"
	Options      Method = "OPTIONS"
	Pause        Method = "PAUSE"
	Play         Method = "PLAY"
	// PlayNotify is a server-to-client request, RTSP/2.0 only.
	PlayNotify   Method = "PLAY_NOTIFY"
	Record       Method = "RECORD"
	// Redirect is a server-to-client request.
	Redirect     Method = "REDIRECT"
	Setup        Method = "SETUP"
	SetParameter Method = "SET_PARAMETER"
	Teardown     Method = "TEARDOWN"
	// Unknown is a sentinel for a parsed method that isn't one of the above.
	Unknown Method = ""
)

// ProtoVersion is the RTSP protocol version on the request/status line.
type ProtoVersion string

// Supported protocol versions.
const (
	Proto10 ProtoVersion = "RTSP/1.0"
	Proto20 ProtoVersion = "RTSP/2.0"
)

// IsServerPush reports whether m is a method the server, rather than the
// client, is expected to originate.
func IsServerPush(m Method) bool {
	return m == PlayNotify || m == Redirect
}
