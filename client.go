package rtspclient

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/conn"
	"github.com/streamkit-go/rtspclient/pkg/correlator"
)

// Options configures Connect. A zero value is a reasonable default: plain
// TCP, RTSP/1.0, the standard logger.
type Options struct {
	Proto     base.ProtoVersion
	TLSConfig *tls.Config
	Logger    logrus.FieldLogger
	// Tunnel requests the Apple/QuickTime-style HTTP tunnel transport
	// instead of a raw TCP/TLS socket (spec.md §4.3 supplement).
	Tunnel bool
}

// Connect dials targetURL's host and returns a ready Session in state
// Init. targetURL's scheme selects the transport: "rtsp" plain TCP,
// "rtsps" TLS. "rtspu" parses (base.ParseURL accepts it) but has no
// transport to open here — unreliable/multicast delivery is out of scope
// (spec.md Non-goals) — so Connect rejects it.
func Connect(ctx context.Context, targetURL *base.URL, opts Options) (*Session, error) {
	if targetURL.Scheme == "rtspu" {
		return nil, fmt.Errorf("rtspu: no unreliable transport is implemented")
	}

	if opts.Proto == "" {
		opts.Proto = base.Proto10
	}
	logger := defaultLogger(opts.Logger)

	corr := correlator.New()

	var c *conn.Connection
	var err error
	if opts.Tunnel {
		host := fmt.Sprintf("%s:%d", targetURL.Host, targetURL.Port)
		c, err = conn.DialTunnel(ctx, host, opts.TLSConfig, corr, logger)
	} else {
		c, err = conn.Dial(ctx, targetURL, opts.TLSConfig, corr, logger)
	}
	if err != nil {
		return nil, err
	}

	return NewSession(targetURL, opts.Proto, c, corr, logger), nil
}
