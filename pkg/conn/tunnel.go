package conn

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/streamkit-go/rtspclient/pkg/correlator"
	"github.com/streamkit-go/rtspclient/pkg/liberrors"

	"github.com/sirupsen/logrus"
)

const (
	tunnelCookieName = "X-Sessioncookie"
	tunnelGetSuffix  = ""
	tunnelPostSuffix = ""
)

// httpTunnel implements the Apple/QuickTime RTSP-over-HTTP tunnel: one
// GET connection carries base64-encoded server->client bytes, a separate
// POST connection carries base64-encoded client->server bytes, tied
// together by a shared X-Sessioncookie. Grounded on the teacher's
// clientHTTPTunnel (client_http_tunnel.go); the session cookie here is a
// uuid rather than raw crypto/rand bytes.
type httpTunnel struct {
	getConn  net.Conn
	postConn net.Conn
	cookie   string
}

// DialTunnel opens both legs of an HTTP tunnel to host (host:port, no
// scheme) and returns a Connection built on top of it.
func DialTunnel(ctx context.Context, host string, tlsConfig *tls.Config, corr *correlator.Correlator, logger logrus.FieldLogger) (*Connection, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	t := &httpTunnel{cookie: uuid.New().String()}

	var d net.Dialer
	dial := func() (net.Conn, error) {
		nc, err := d.DialContext(ctx, "tcp", host)
		if err != nil {
			return nil, err
		}
		if tlsConfig != nil {
			hostOnly, _, _ := net.SplitHostPort(host)
			cfg := tlsConfig.Clone()
			cfg.ServerName = hostOnly
			tc := tls.Client(nc, cfg)
			if err := tc.HandshakeContext(ctx); err != nil {
				nc.Close()
				return nil, err
			}
			return tc, nil
		}
		return nc, nil
	}

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		c, err := dial()
		if err != nil {
			return err
		}
		if err := t.openGet(c, host); err != nil {
			c.Close()
			return err
		}
		t.getConn = c
		return nil
	})
	group.Go(func() error {
		c, err := dial()
		if err != nil {
			return err
		}
		if err := t.openPost(c, host); err != nil {
			c.Close()
			return err
		}
		t.postConn = c
		return nil
	})

	if err := group.Wait(); err != nil {
		if t.getConn != nil {
			t.getConn.Close()
		}
		if t.postConn != nil {
			t.postConn.Close()
		}
		return nil, liberrors.ErrTransportFailure{Cause: err}
	}

	return New(t, corr, logger), nil
}

func (t *httpTunnel) openGet(c net.Conn, host string) error {
	req, err := http.NewRequest(http.MethodGet, "http://"+host+"/"+tunnelGetSuffix, nil)
	if err != nil {
		return err
	}
	req.Header.Set(tunnelCookieName, t.cookie)
	req.Header.Set("Accept", "application/x-rtsp-tunnelled")
	if err := req.Write(c); err != nil {
		return err
	}

	resp, err := http.ReadResponse(bufio.NewReader(c), req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tunnel GET: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (t *httpTunnel) openPost(c net.Conn, host string) error {
	line := fmt.Sprintf("POST http://%s/%s HTTP/1.1\r\n", host, tunnelPostSuffix)
	line += fmt.Sprintf("Host: %s\r\n", host)
	line += fmt.Sprintf("%s: %s\r\n", tunnelCookieName, t.cookie)
	line += "Content-Type: application/x-rtsp-tunnelled\r\n"
	line += "Content-Length: 32767\r\n"
	line += "\r\n"
	_, err := c.Write([]byte(line))
	return err
}

// Read decodes base64 from the GET leg.
func (t *httpTunnel) Read(b []byte) (int, error) {
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	n, err := t.getConn.Read(enc)
	if n == 0 {
		return 0, err
	}
	valid := (n / 4) * 4
	if valid == 0 {
		return 0, err
	}
	decoded, decErr := base64.StdEncoding.Decode(b, enc[:valid])
	if decErr != nil {
		return 0, decErr
	}
	return decoded, err
}

// Write base64-encodes b and sends it on the POST leg.
func (t *httpTunnel) Write(b []byte) (int, error) {
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(enc, b)
	if _, err := t.postConn.Write(enc); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Close closes both legs of the tunnel.
func (t *httpTunnel) Close() error {
	var firstErr error
	if t.getConn != nil {
		if err := t.getConn.Close(); err != nil {
			firstErr = err
		}
	}
	if t.postConn != nil {
		if err := t.postConn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
