package base

// Response is a RTSP response: protocol version, status code, reason
// phrase, headers and an optional body.
//
// Invariants: StatusCode is in [100, 599]; a CSeq header is required to
// correlate a response to its request; if Content-Length is present, Body
// is exactly that many bytes (enforced by pkg/codec, which is the only
// producer of a Response parsed off the wire).
type Response struct {
	Proto         ProtoVersion
	StatusCode    StatusCode
	StatusMessage string
	Header        Header
	Body          []byte
}

// NewResponse allocates a Response with an initialized Header map, filling
// in the default reason phrase for code if one is known.
func NewResponse(proto ProtoVersion, code StatusCode) *Response {
	msg := StatusMessages[code]
	return &Response{
		Proto:         proto,
		StatusCode:    code,
		StatusMessage: msg,
		Header:        make(Header),
	}
}

// CSeq returns the response's CSeq header, and whether it was set.
func (r *Response) CSeq() (string, bool) {
	return r.Header.Get("cseq")
}
