package codec

import (
	"strconv"
	"strings"

	"github.com/streamkit-go/rtspclient/pkg/base"
)

// WriteRequest renders a request to wire bytes. CSeq is always written
// first when present, then the rest of the headers in canonical casing,
// then Content-Length (recomputed from the body, overriding whatever the
// caller set), then the body verbatim.
func WriteRequest(r *base.Request) []byte {
	var b strings.Builder

	b.WriteString(string(r.Method))
	b.WriteByte(' ')
	b.WriteString(r.URL.CloneWithoutCredentials().String())
	b.WriteByte(' ')
	b.WriteString(string(r.Proto))
	b.WriteString("\r\n")

	writeHeader(&b, r.Header, len(r.Body))

	b.WriteString("\r\n")

	out := make([]byte, 0, b.Len()+len(r.Body))
	out = append(out, []byte(b.String())...)
	out = append(out, r.Body...)
	return out
}

// WriteResponse renders a response to wire bytes, mirroring WriteRequest.
func WriteResponse(r *base.Response) []byte {
	var b strings.Builder

	b.WriteString(string(r.Proto))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(r.StatusCode)))
	b.WriteByte(' ')
	b.WriteString(r.StatusMessage)
	b.WriteString("\r\n")

	writeHeader(&b, r.Header, len(r.Body))

	b.WriteString("\r\n")

	out := make([]byte, 0, b.Len()+len(r.Body))
	out = append(out, []byte(b.String())...)
	out = append(out, r.Body...)
	return out
}

func writeHeader(b *strings.Builder, h base.Header, bodyLen int) {
	if cseq, ok := h.Get("cseq"); ok {
		b.WriteString("CSeq: " + cseq + "\r\n")
	}

	for name, value := range h {
		if name == "cseq" || name == "content-length" {
			continue
		}
		b.WriteString(base.CanonicalName(name) + ": " + value + "\r\n")
	}

	if bodyLen > 0 || h.Has("content-length") {
		b.WriteString("Content-Length: " + strconv.Itoa(bodyLen) + "\r\n")
	}
}
