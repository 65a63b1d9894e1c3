package base

// Request is a RTSP request: method, target URI, protocol version, headers
// and an optional body.
//
// Invariant: if Body is non-empty, the Content-Length written on the wire
// equals len(Body) (pkg/codec computes it when rendering); CSeq is always
// present before the request is written (Session.Send stamps it in, using
// the correlator's next CSeq).
type Request struct {
	Method Method
	URL    *URL
	Proto  ProtoVersion
	Header Header
	Body   []byte
}

// NewRequest allocates a Request with an initialized Header map.
func NewRequest(method Method, url *URL, proto ProtoVersion) *Request {
	return &Request{
		Method: method,
		URL:    url,
		Proto:  proto,
		Header: make(Header),
	}
}

// CSeq returns the request's CSeq header as a string, and whether it was
// set.
func (r *Request) CSeq() (string, bool) {
	return r.Header.Get("cseq")
}
