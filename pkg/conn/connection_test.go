package conn

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/rtspclient/pkg/correlator"
)

func ctxWithTimeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// pipeStream adapts a net.Conn half of a net.Pipe to byteStream.
type pipeStream struct {
	net.Conn
}

func newPipePair(corr *correlator.Correlator) (*Connection, net.Conn) {
	server, client := net.Pipe()
	logger := logrus.New()
	logger.SetOutput(testDiscard{})
	c := New(pipeStream{server}, corr, logger)
	return c, client
}

type testDiscard struct{}

func (testDiscard) Write(p []byte) (int, error) { return len(p), nil }

func TestConnectionDispatchesResponseToCorrelator(t *testing.T) {
	corr := correlator.New()
	c, client := newPipePair(corr)
	defer client.Close()
	defer c.Close()

	slot, err := corr.Register(1)
	require.NoError(t, err)

	go func() {
		client.Write([]byte("RTSP/1.0 200 OK\r\nCSeq: 1\r\n\r\n"))
	}()

	res, err := slot.Wait(ctxWithTimeout(t))
	require.NoError(t, err)
	cseq, _ := res.CSeq()
	require.Equal(t, "1", cseq)
}

func TestConnectionCloseCancelsPending(t *testing.T) {
	corr := correlator.New()
	c, client := newPipePair(corr)
	defer client.Close()

	slot, err := corr.Register(1)
	require.NoError(t, err)

	require.NoError(t, c.Close())

	_, err = slot.Wait(ctxWithTimeout(t))
	require.Error(t, err)
}

func TestConnectionWriteAfterCloseFails(t *testing.T) {
	corr := correlator.New()
	c, client := newPipePair(corr)
	defer client.Close()

	require.NoError(t, c.Close())
	err := c.Write([]byte("OPTIONS * RTSP/1.0\r\nCSeq: 1\r\n\r\n"))
	require.Error(t, err)
}

func TestConnectionServerPushGoesToUnsolicited(t *testing.T) {
	corr := correlator.New()
	c, client := newPipePair(corr)
	defer client.Close()
	defer c.Close()

	go func() {
		client.Write([]byte("PLAY_NOTIFY rtsp://example.com/media RTSP/2.0\r\nCSeq: 1\r\n\r\n"))
	}()

	select {
	case <-corr.Unsolicited:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server push")
	}
}
