// Package codec turns wire bytes into parsed RTSP messages and back.
// Parsing is a pure function over a byte buffer — see ParseMessage — so
// the connection's read loop can call it in a plain for-loop as bytes
// accumulate, instead of the recursive re-entry pattern the source used
// (spec.md §9, Design Note "Coroutine control flow").
package codec

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/streamkit-go/rtspclient/pkg/base"
)

// Result is the outcome of one ParseMessage call.
type Result int

const (
	// ResultNeedMore means buf doesn't yet contain a complete message;
	// call again once more bytes have arrived.
	ResultNeedMore Result = iota
	// ResultComplete means a message was parsed; Consumed bytes should be
	// dropped from the front of buf before parsing continues.
	ResultComplete
	// ResultInvalidSkip means the frame was malformed but its length is
	// known (Consumed bytes); drop it and keep parsing. Non-fatal.
	ResultInvalidSkip
	// ResultInvalidFatal means the parser cannot determine where the
	// malformed frame ends (e.g. invalid UTF-8 in the header block) and
	// cannot resynchronize; the caller should close the connection.
	ResultInvalidFatal
)

// MessageKind distinguishes a parsed server response from a parsed
// server-to-client request (PLAY_NOTIFY / REDIRECT, RTSP/2.0).
type MessageKind int

const (
	MessageKindResponse MessageKind = iota
	MessageKindRequest
)

// ParsedMessage is the result of a successful parse.
type ParsedMessage struct {
	Kind     MessageKind
	Response *base.Response
	Request  *base.Request
	// Warnings collects non-fatal issues noticed while parsing, e.g.
	// header lines with no colon (spec.md §4.2 step 5: "skipped with a
	// warning").
	Warnings []string
}

const crlfcrlf = "\r\n\r\n"

// ParseMessage attempts to parse one complete message (a response, or in
// RTSP/2.0 an inbound server request) from the front of buf.
func ParseMessage(buf []byte) (*ParsedMessage, int, Result, error) {
	idx := bytes.Index(buf, []byte(crlfcrlf))
	if idx < 0 {
		return nil, 0, ResultNeedMore, nil
	}

	headerBlock := buf[:idx]
	if !utf8.Valid(headerBlock) {
		return nil, 0, ResultInvalidFatal, errMalformedHeaders("invalid UTF-8 in header block")
	}

	lines := strings.Split(string(headerBlock), "\r\n")
	firstLine := lines[0]

	fields := strings.Fields(firstLine)
	if len(fields) < 3 {
		return nil, idx + 4, ResultInvalidSkip, errMalformedStatusLine(firstLine)
	}

	msg := &ParsedMessage{}

	if strings.HasPrefix(fields[0], "RTSP/") {
		res, err := parseStatusLine(fields)
		if err != nil {
			return nil, idx + 4, ResultInvalidSkip, err
		}
		msg.Kind = MessageKindResponse
		msg.Response = res
	} else if strings.HasPrefix(fields[2], "RTSP/") {
		req, err := parseRequestLine(fields)
		if err != nil {
			return nil, idx + 4, ResultInvalidSkip, err
		}
		msg.Kind = MessageKindRequest
		msg.Request = req
	} else {
		return nil, idx + 4, ResultInvalidSkip, errMalformedStatusLine(firstLine)
	}

	header := make(base.Header)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			msg.Warnings = append(msg.Warnings, "header line without colon: "+line)
			continue
		}
		name := strings.ToLower(strings.TrimSpace(line[:colon]))
		value := strings.TrimSpace(line[colon+1:])
		if _, exists := header[name]; exists {
			// first occurrence wins (spec.md §4.2 step 5, §8)
			continue
		}
		header[name] = value
	}

	bodyLen := 0
	if cl, ok := header.Get("content-length"); ok {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return nil, idx + 4, ResultInvalidSkip, errMalformedHeaders("invalid Content-Length: " + cl)
		}
		bodyLen = n
	}

	total := idx + 4 + bodyLen
	if len(buf) < total {
		return nil, 0, ResultNeedMore, nil
	}

	body := buf[idx+4 : total]
	var bodyCopy []byte
	if len(body) > 0 {
		bodyCopy = make([]byte, len(body))
		copy(bodyCopy, body)
	}

	switch msg.Kind {
	case MessageKindResponse:
		msg.Response.Header = header
		msg.Response.Body = bodyCopy
	case MessageKindRequest:
		msg.Request.Header = header
		msg.Request.Body = bodyCopy
	}

	return msg, total, ResultComplete, nil
}

func parseStatusLine(fields []string) (*base.Response, error) {
	proto := base.ProtoVersion(fields[0])
	if proto != base.Proto10 && proto != base.Proto20 {
		return nil, errMalformedStatusLine(strings.Join(fields, " "))
	}

	codeN, err := strconv.Atoi(fields[1])
	if err != nil || len(fields[1]) != 3 || codeN < 100 || codeN > 599 {
		return nil, errMalformedStatusLine(strings.Join(fields, " "))
	}

	return &base.Response{
		Proto:         proto,
		StatusCode:    base.StatusCode(codeN),
		StatusMessage: strings.Join(fields[2:], " "),
	}, nil
}

func parseRequestLine(fields []string) (*base.Request, error) {
	method := base.Method(fields[0])

	u, err := base.ParseURL(fields[1])
	if err != nil {
		return nil, errInvalidURL(err)
	}

	proto := base.ProtoVersion(fields[2])
	if proto != base.Proto10 && proto != base.Proto20 {
		return nil, errMalformedStatusLine(strings.Join(fields, " "))
	}

	return &base.Request{
		Method: method,
		URL:    u,
		Proto:  proto,
	}, nil
}
