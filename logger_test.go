package rtspclient

import (
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/rtspclient/pkg/base"
	"github.com/streamkit-go/rtspclient/pkg/conn"
	"github.com/streamkit-go/rtspclient/pkg/correlator"
)

func TestDefaultLoggerFallsBackToStandardLogger(t *testing.T) {
	require.Equal(t, logrus.StandardLogger(), defaultLogger(nil))
}

func TestDefaultLoggerPassesThroughNonNil(t *testing.T) {
	l := logrus.New()
	require.Equal(t, l, defaultLogger(l))
}

func TestNewSessionWithNilLoggerDoesNotPanic(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	corr := correlator.New()
	c := conn.New(client, corr, logrus.StandardLogger())

	u, err := base.ParseURL("rtsp://example.com/media")
	require.NoError(t, err)

	require.NotPanics(t, func() {
		s := NewSession(u, base.Proto10, c, corr, nil)
		defer s.Close()
	})
}
