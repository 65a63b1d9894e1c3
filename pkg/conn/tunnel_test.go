package conn

import (
	"encoding/base64"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/rtspclient/pkg/correlator"
)

// mockTunnelServer hijacks the GET and POST legs a DialTunnel client opens,
// keyed by HTTP method rather than the URL the teacher's mock used (this
// tunnel always targets "/"). Grounded on the teacher's
// client_http_tunnel_test.go mockHTTPServer.
type mockTunnelServer struct {
	t        *testing.T
	listener net.Listener
	server   *http.Server

	getConn  chan net.Conn
	postConn chan net.Conn
	cookie   string
}

func newMockTunnelServer(t *testing.T) (*mockTunnelServer, string) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &mockTunnelServer{
		t:        t,
		listener: listener,
		getConn:  make(chan net.Conn, 1),
		postConn: make(chan net.Conn, 1),
	}

	s.server = &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie := r.Header.Get(tunnelCookieName)
			require.NotEmpty(s.t, cookie)
			s.cookie = cookie

			hijacker := w.(http.Hijacker)
			c, _, err := hijacker.Hijack()
			require.NoError(s.t, err)

			switch r.Method {
			case http.MethodGet:
				c.Write([]byte("HTTP/1.1 200 OK\r\n\r\n"))
				s.getConn <- c
			case http.MethodPost:
				s.postConn <- c
			default:
				c.Close()
				require.Fail(s.t, "unexpected method", r.Method)
			}
		}),
	}
	go s.server.Serve(listener)

	return s, listener.Addr().String()
}

func (s *mockTunnelServer) close() {
	s.server.Close()
	s.listener.Close()
}

func TestDialTunnelRoundTrip(t *testing.T) {
	server, addr := newMockTunnelServer(t)
	defer server.close()

	corr := correlator.New()
	logger := logrus.New()
	logger.SetOutput(testDiscard{})

	connected := make(chan *Connection, 1)
	errCh := make(chan error, 1)
	go func() {
		c, err := DialTunnel(ctxWithTimeout(t), addr, nil, corr, logger)
		if err != nil {
			errCh <- err
			return
		}
		connected <- c
	}()

	var get, post net.Conn
	select {
	case get = <-server.getConn:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for GET leg")
	}
	select {
	case post = <-server.postConn:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for POST leg")
	}
	defer get.Close()
	defer post.Close()

	var c *Connection
	select {
	case c = <-connected:
	case err := <-errCh:
		t.Fatalf("DialTunnel failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for DialTunnel")
	}
	defer c.Close()

	slot, err := corr.Register(1)
	require.NoError(t, err)

	resp := []byte("RTSP/1.0 200 OK\r\nCSeq: 1\r\n\r\n")
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(resp)))
	base64.StdEncoding.Encode(encoded, resp)
	_, err = get.Write(encoded)
	require.NoError(t, err)

	res, err := slot.Wait(ctxWithTimeout(t))
	require.NoError(t, err)
	cseq, _ := res.CSeq()
	require.Equal(t, "1", cseq)

	require.NoError(t, c.Write([]byte("OPTIONS * RTSP/1.0\r\nCSeq: 2\r\n\r\n")))

	post.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 4096)
	n, err := post.Read(buf)
	require.NoError(t, err)

	decoded := make([]byte, base64.StdEncoding.DecodedLen(n))
	dn, err := base64.StdEncoding.Decode(decoded, buf[:n])
	require.NoError(t, err)
	require.Contains(t, string(decoded[:dn]), "CSeq: 2")
}
