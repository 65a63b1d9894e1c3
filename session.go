// Package rtspclient is a client-side RTSP/1.0 and RTSP/2.0 core: message
// codec, session state machine and CSeq correlator. It does not move RTP
// or RTCP media (pkg/conn only carries the control channel) and does not
// parse SDP bodies — see TrackMap.
package rtspclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/streamkit-go/rtspclient/pkg/auth"
	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/codec"
	"github.com/streamkit-go/rtspclient/pkg/conn"
	"github.com/streamkit-go/rtspclient/pkg/correlator"
	"github.com/streamkit-go/rtspclient/pkg/headers"
	"github.com/streamkit-go/rtspclient/pkg/liberrors"
)

// UserAgent is stamped on every outgoing request that doesn't already set
// one.
const UserAgent = "rtspclient"

// TrackMap is the external collaborator that resolves a track's control
// URL. This package never parses an SDP body itself (spec.md Non-goals).
// No function in this package takes a TrackMap: Setup takes the resolved
// track URL directly.
type TrackMap interface {
	// ControlURL returns the absolute control URL for track index i.
	ControlURL(i int) (*base.URL, error)
}

// Session owns one RTSP control connection's lifecycle state: the state
// machine, the session id, and the CSeq counter (via its correlator). A
// Session borrows its Connection to transmit; it does not own the byte
// stream (spec.md §4.5).
type Session struct {
	mu sync.Mutex

	baseURL *base.URL
	proto   base.ProtoVersion
	state   State
	session *headers.Session

	conn       *conn.Connection
	correlator *correlator.Correlator
	logger     logrus.FieldLogger

	// Events surfaces server-push requests (PLAY_NOTIFY / REDIRECT,
	// RTSP/2.0) and responses that matched no pending slot.
	Events chan Event

	closeOnce sync.Once
	done      chan struct{}
}

// NewSession wraps an already-dialed Connection/Correlator pair with
// session-lifecycle state. baseURL is the session's target; it is always
// caller-supplied and never inferred from a prior response (spec.md §9:
// the source hardcodes this and that bug is not reproduced here).
func NewSession(baseURL *base.URL, proto base.ProtoVersion, c *conn.Connection, corr *correlator.Correlator, logger logrus.FieldLogger) *Session {
	s := &Session{
		baseURL:    baseURL,
		proto:      proto,
		state:      StateInit,
		conn:       c,
		correlator: corr,
		logger:     defaultLogger(logger),
		Events:     make(chan Event, 32),
		done:       make(chan struct{}),
	}
	go relayEvents(corr.Unsolicited, s.Events, s.done)
	return s
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the server-assigned session id, and whether SETUP has
// completed at least once.
func (s *Session) ID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return "", false
	}
	return s.session.ID, true
}

// Close tears the session down locally: pending requests fail with
// ErrConnectionClosed, the underlying Connection is closed, and Events is
// no longer fed. It does not send TEARDOWN — call Teardown first if the
// server should be informed.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.conn.Close()
}

// Send builds and transmits method against targetURL with the given extra
// headers and body, blocking for the matching response. It enforces
// method legality (spec.md §4.5) before writing any bytes, stamps CSeq,
// Session and Authorization headers, and applies the session-state
// transition on a 2xx response.
func (s *Session) Send(ctx context.Context, method base.Method, targetURL *base.URL, extra base.Header, body []byte) (*base.Response, error) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	if !legal(method, state) {
		return nil, liberrors.ErrIllegalState{From: state, Method: method}
	}

	req := base.NewRequest(method, targetURL, s.proto)
	for k, v := range extra {
		req.Header[k] = v
	}
	req.Body = body

	cseq := s.correlator.NextCSeq()
	req.Header.Set("CSeq", fmt.Sprintf("%d", cseq))
	if !req.Header.Has("user-agent") {
		req.Header.Set("User-Agent", UserAgent)
	}

	s.mu.Lock()
	if s.session != nil {
		req.Header.Set("Session", s.session.ID)
	}
	s.mu.Unlock()

	if targetURL.HasUser && !req.Header.Has("authorization") {
		req.Header.Set("Authorization", auth.BasicHeader(targetURL.User, targetURL.Password))
	}

	slot, err := s.correlator.Register(cseq)
	if err != nil {
		return nil, err
	}

	if err := s.conn.Write(codec.WriteRequest(req)); err != nil {
		return nil, err
	}

	res, err := slot.Wait(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.applyResponse(method, state, res); err != nil {
		return res, err
	}
	return res, nil
}

// applyResponse drives the state machine and session-id bookkeeping off
// a response that has already been matched to its request. Only 2xx
// responses move state; everything else surfaces ErrProtocolError with
// state left unchanged (spec.md §4.5, §4.6).
func (s *Session) applyResponse(method base.Method, from State, res *base.Response) error {
	if !res.StatusCode.IsSuccess() {
		return liberrors.ErrProtocolError{Response: res}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := res.Header.Get("session"); ok {
		parsed, err := headers.ReadSession(v)
		if err == nil {
			// A SETUP response may legitimately re-negotiate the session id
			// (spec.md §4.5); every other method must carry the id already
			// captured.
			if method != base.Setup && s.session != nil && s.session.ID != parsed.ID {
				s.logger.WithFields(logrus.Fields{
					"expected": s.session.ID,
					"got":      parsed.ID,
				}).Warn("session id drift")
				return liberrors.ErrSessionIDDrift{Expected: s.session.ID, Got: parsed.ID}
			}
			s.session = parsed
		}
	}

	s.state = nextState(method, from)
	if method == base.Teardown {
		s.session = nil
	}
	return nil
}
