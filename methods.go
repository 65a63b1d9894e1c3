package rtspclient

import (
	"context"
	"strings"

	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/headers"
)

// Options sends OPTIONS to the session's base URL and returns the methods
// the server advertises in its Public header, alongside the raw response.
func (s *Session) Options(ctx context.Context) (*base.Response, []base.Method, error) {
	res, err := s.Send(ctx, base.Options, s.baseURL, nil, nil)
	if err != nil {
		return res, nil, err
	}

	var methods []base.Method
	if v, ok := res.Header.Get("public"); ok {
		for _, m := range strings.Split(v, ",") {
			methods = append(methods, base.Method(strings.TrimSpace(m)))
		}
	}
	return res, methods, nil
}

// Describe sends DESCRIBE to the session's base URL. The response body
// (typically an SDP description) is returned unparsed — SDP parsing is
// out of scope here; see TrackMap.
func (s *Session) Describe(ctx context.Context) (*base.Response, error) {
	h := base.Header{}
	h.Set("Accept", "application/sdp")
	return s.Send(ctx, base.Describe, s.baseURL, h, nil)
}

// Announce sends ANNOUNCE with a pre-built SDP body, prior to RECORD.
func (s *Session) Announce(ctx context.Context, sdpBody []byte) (*base.Response, error) {
	h := base.Header{}
	h.Set("Content-Type", "application/sdp")
	return s.Send(ctx, base.Announce, s.baseURL, h, sdpBody)
}

// Setup sends SETUP for a single track's control URL with the given
// transport. On 2xx it captures the server's Session header and the
// server's chosen transport parameters.
func (s *Session) Setup(ctx context.Context, trackURL *base.URL, t headers.Transport) (*base.Response, *headers.Transport, error) {
	h := base.Header{}
	h.Set("Transport", t.Write())

	res, err := s.Send(ctx, base.Setup, trackURL, h, nil)
	if err != nil {
		return res, nil, err
	}

	var serverTransport *headers.Transport
	if v, ok := res.Header.Get("transport"); ok {
		parsed := &headers.Transport{}
		if perr := parsed.Read(v); perr == nil {
			serverTransport = parsed
		}
	}
	return res, serverTransport, nil
}

// Play sends PLAY against the session's base URL. A nil rng omits the
// Range header (resume/play-all); otherwise it requests that range.
func (s *Session) Play(ctx context.Context, rng *headers.Range) (*base.Response, error) {
	h := base.Header{}
	if rng != nil {
		h.Set("Range", rng.Write())
	}
	return s.Send(ctx, base.Play, s.baseURL, h, nil)
}

// Pause sends PAUSE against the session's base URL.
func (s *Session) Pause(ctx context.Context) (*base.Response, error) {
	return s.Send(ctx, base.Pause, s.baseURL, nil, nil)
}

// Record sends RECORD against the session's base URL.
func (s *Session) Record(ctx context.Context, rng *headers.Range) (*base.Response, error) {
	h := base.Header{}
	if rng != nil {
		h.Set("Range", rng.Write())
	}
	return s.Send(ctx, base.Record, s.baseURL, h, nil)
}

// Teardown sends TEARDOWN against the session's base URL.
func (s *Session) Teardown(ctx context.Context) (*base.Response, error) {
	return s.Send(ctx, base.Teardown, s.baseURL, nil, nil)
}

// GetParameter sends GET_PARAMETER, optionally with a body listing the
// parameters of interest (an empty body means "used as a keepalive").
func (s *Session) GetParameter(ctx context.Context, body []byte) (*base.Response, error) {
	return s.Send(ctx, base.GetParameter, s.baseURL, nil, body)
}

// SetParameter sends SET_PARAMETER with the given body.
func (s *Session) SetParameter(ctx context.Context, body []byte) (*base.Response, error) {
	h := base.Header{}
	h.Set("Content-Type", "text/parameters")
	return s.Send(ctx, base.SetParameter, s.baseURL, h, body)
}
