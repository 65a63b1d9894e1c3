// Package correlator matches responses to requests by CSeq, including
// pipelined requests whose responses may arrive out of order (spec.md
// §4.4). The teacher correlates a single request in flight at a time via
// one channel per call (client.go's do(), cseq incremented synchronously
// before write); this generalizes that to a pending-request map so
// multiple requests can be in flight concurrently.
package correlator

import (
	"context"
	"errors"
	"sync"

	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/liberrors"
)

// Slot is handed back by Register; the caller blocks on Wait for the
// matching response (or ctx cancellation, or CancelAll).
type Slot struct {
	cseq int
	corr *Correlator
	ch   chan result
}

type result struct {
	res *base.Response
	err error
}

// Wait blocks until a response arrives for this slot's CSeq, ctx is done,
// or the correlator is cancelled. If ctx's deadline expires before a
// response arrives, the slot is deregistered so a response that shows up
// later falls through to Unsolicited instead of being matched to an
// abandoned slot (spec.md §5: no resource leaks, late responses become
// unsolicited).
func (s *Slot) Wait(ctx context.Context) (*base.Response, error) {
	select {
	case r := <-s.ch:
		return r.res, r.err
	case <-ctx.Done():
		s.corr.Deregister(s.cseq)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, liberrors.ErrTimeout{CSeq: s.cseq}
		}
		return nil, ctx.Err()
	}
}

// Correlator owns the next-CSeq counter and the map of in-flight requests
// awaiting a response.
type Correlator struct {
	mu      sync.Mutex
	cseq    int
	pending map[int]*Slot
	// Unsolicited receives any response whose CSeq has no pending slot
	// (already timed out, or a duplicate), and any server-push request
	// (RTSP/2.0 PLAY_NOTIFY / REDIRECT). Buffered so Dispatch never blocks
	// on a caller who isn't draining it.
	Unsolicited chan any
}

// New returns an empty Correlator.
func New() *Correlator {
	return &Correlator{
		pending:     make(map[int]*Slot),
		Unsolicited: make(chan any, 32),
	}
}

// NextCSeq returns the next CSeq to stamp onto an outgoing request. CSeqs
// are monotonically increasing and never reused within a connection's
// lifetime, per spec.md §4.4.
func (c *Correlator) NextCSeq() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cseq++
	return c.cseq
}

// Register reserves cseq for a pending response. It fails with
// ErrCSeqCollision if cseq already has a slot (the caller reused a CSeq
// that hasn't been answered yet, which should not happen when CSeqs come
// from NextCSeq).
func (c *Correlator) Register(cseq int) (*Slot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pending[cseq]; exists {
		return nil, liberrors.ErrCSeqCollision{CSeq: cseq}
	}

	slot := &Slot{cseq: cseq, corr: c, ch: make(chan result, 1)}
	c.pending[cseq] = slot
	return slot, nil
}

// Deregister removes cseq's pending slot without failing it, if one is
// still registered. Called by Slot.Wait on timeout/cancellation so a
// response that arrives afterward is treated as unsolicited rather than
// delivered to a channel nobody is reading anymore. Returns whether a slot
// was actually removed.
func (c *Correlator) Deregister(cseq int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pending[cseq]; !exists {
		return false
	}
	delete(c.pending, cseq)
	return true
}

// Dispatch delivers res to the slot registered for its CSeq. If the
// response has no CSeq, can't be parsed as one, or no slot is pending for
// it, it is forwarded to Unsolicited instead.
func (c *Correlator) Dispatch(res *base.Response) {
	cseq, ok := cseqOf(res)
	if !ok {
		c.forwardUnsolicited(res)
		return
	}

	c.mu.Lock()
	slot, exists := c.pending[cseq]
	if exists {
		delete(c.pending, cseq)
	}
	c.mu.Unlock()

	if !exists {
		c.forwardUnsolicited(res)
		return
	}

	slot.ch <- result{res: res}
}

// DispatchServerPush forwards a server-to-client request (RTSP/2.0
// PLAY_NOTIFY / REDIRECT) straight to Unsolicited; it never correlates to
// a pending slot.
func (c *Correlator) DispatchServerPush(req *base.Request) {
	select {
	case c.Unsolicited <- req:
	default:
	}
}

func (c *Correlator) forwardUnsolicited(res *base.Response) {
	select {
	case c.Unsolicited <- res:
	default:
	}
}

// CancelAll fails every pending slot with err and clears the pending map.
// Called once, when the connection closes.
func (c *Correlator) CancelAll(err error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[int]*Slot)
	c.mu.Unlock()

	for _, slot := range pending {
		slot.ch <- result{err: err}
	}
}

func cseqOf(res *base.Response) (int, bool) {
	v, ok := res.CSeq()
	if !ok {
		return 0, false
	}
	n, err := parseCSeq(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseCSeq(v string) (int, error) {
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, liberrors.ErrCSeqMismatch{Sent: "", Received: v}
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
