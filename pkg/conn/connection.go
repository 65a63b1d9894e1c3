// Package conn owns the byte stream to an RTSP server: dialing, writing
// under a mutex, and a read loop that feeds arriving bytes through
// pkg/codec until full messages fall out, dispatching each to a
// correlator. Grounded on the teacher's connOpen/connCloser pair
// (client.go) and, for the HTTP tunnel transport, client_http_tunnel.go.
package conn

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/codec"
	"github.com/streamkit-go/rtspclient/pkg/correlator"
	"github.com/streamkit-go/rtspclient/pkg/liberrors"
)

const readChunkSize = 4096

// byteStream is the minimal surface Connection needs from the underlying
// transport; both a plain net.Conn and the HTTP tunnel satisfy it.
type byteStream = io.ReadWriteCloser

// Connection owns a byte stream exclusively: one goroutine reads from it
// and feeds pkg/codec, every Write is serialized behind writeMu.
type Connection struct {
	stream     byteStream
	correlator *correlator.Correlator
	logger     logrus.FieldLogger

	writeMu sync.Mutex

	closeOnce sync.Once
	closed    chan struct{}

	readBuf []byte
}

// Dial opens a plain TCP (rtsp://) or TLS (rtsps://) connection to u's
// host, and starts the read loop.
func Dial(ctx context.Context, u *base.URL, tlsConfig *tls.Config, corr *correlator.Correlator, logger logrus.FieldLogger) (*Connection, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if u.Scheme == "rtsps" && tlsConfig == nil {
		tlsConfig = &tls.Config{}
	}

	addr := fmt.Sprintf("%s:%d", u.Host, u.Port)

	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, liberrors.ErrTransportFailure{Cause: err}
	}

	var stream byteStream = nc
	if u.Scheme == "rtsps" {
		cfg := tlsConfig.Clone()
		cfg.ServerName = u.Host
		tc := tls.Client(nc, cfg)
		if err := tc.HandshakeContext(ctx); err != nil {
			nc.Close()
			return nil, liberrors.ErrTransportFailure{Cause: err}
		}
		stream = tc
	}

	return New(stream, corr, logger), nil
}

// New wraps an already-established byte stream (a net.Conn, a net.Pipe
// half, the HTTP tunnel, anything satisfying io.ReadWriteCloser) as a
// Connection and starts its read loop. Exposed primarily for tests that
// don't want to open a real socket.
func New(stream io.ReadWriteCloser, corr *correlator.Correlator, logger logrus.FieldLogger) *Connection {
	c := &Connection{
		stream:     stream,
		correlator: corr,
		logger:     logger,
		closed:     make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Write sends b over the stream, serialized against concurrent writers.
func (c *Connection) Write(b []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.closed:
		return liberrors.ErrConnectionClosed{}
	default:
	}

	if _, err := c.stream.Write(b); err != nil {
		closeErr := liberrors.ErrConnectionClosed{Cause: err}
		c.shutdown(closeErr)
		return closeErr
	}
	return nil
}

// Close shuts the connection down idempotently, failing every request the
// correlator has pending with ErrConnectionClosed.
func (c *Connection) Close() error {
	c.shutdown(liberrors.ErrConnectionClosed{})
	return nil
}

func (c *Connection) shutdown(err error) {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.stream.Close()
		c.correlator.CancelAll(err)
	})
}

// readLoop reads chunks from the stream and calls codec.ParseMessage in a
// plain for-loop, accumulating bytes that don't yet form a complete
// message. It never recurses — see spec's "Coroutine control flow" note.
func (c *Connection) readLoop() {
	chunk := make([]byte, readChunkSize)

	for {
		n, err := c.stream.Read(chunk)
		if n > 0 {
			c.readBuf = append(c.readBuf, chunk[:n]...)
			c.drainBuffer()
		}
		if err != nil {
			if len(c.readBuf) > 0 {
				c.logger.WithError(liberrors.ErrIncompleteMessage{}).Warn("stream closed mid-message")
			}
			c.shutdown(liberrors.ErrConnectionClosed{Cause: err})
			return
		}
	}
}

func (c *Connection) drainBuffer() {
	for {
		msg, consumed, result, err := codec.ParseMessage(c.readBuf)

		switch result {
		case codec.ResultNeedMore:
			return

		case codec.ResultInvalidFatal:
			c.logger.WithError(err).Error("unrecoverable parse failure, closing connection")
			c.shutdown(liberrors.ErrConnectionClosed{Cause: err})
			return

		case codec.ResultInvalidSkip:
			c.logger.WithError(err).Warn("dropping malformed frame")
			c.readBuf = dropFront(c.readBuf, consumed)
			continue

		case codec.ResultComplete:
			for _, w := range msg.Warnings {
				c.logger.Warn(w)
			}
			c.readBuf = dropFront(c.readBuf, consumed)
			c.dispatch(msg)
			continue
		}
	}
}

func (c *Connection) dispatch(msg *codec.ParsedMessage) {
	switch msg.Kind {
	case codec.MessageKindResponse:
		c.correlator.Dispatch(msg.Response)
	case codec.MessageKindRequest:
		c.correlator.DispatchServerPush(msg.Request)
	}
}

func dropFront(buf []byte, n int) []byte {
	remaining := len(buf) - n
	if remaining <= 0 {
		return buf[:0]
	}
	out := make([]byte, remaining)
	copy(out, buf[n:])
	return out
}
