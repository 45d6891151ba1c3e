package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 15 * time.Second

// chromeTransport speaks HTTP/2 over a Chrome-fingerprinted TLS connection
// and retries over HTTP/1.1 when h2 cannot be negotiated.
type chromeTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func newChromeTransport() *chromeTransport {
	return &chromeTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, network, addr, nil)
			},
			DisableCompression: true,
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, network, addr, []string{"http/1.1"})
			},
			DisableCompression: true,
			IdleConnTimeout:    30 * time.Second,
		},
	}
}

func (t *chromeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// bodies cannot be replayed without GetBody
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, err
		}
		req = req.Clone(req.Context())
		req.Body = body
	}

	resp, h1err := t.h1.RoundTrip(req)
	if h1err != nil {
		return nil, fmt.Errorf("h2: %v; http/1.1: %w", err, h1err)
	}
	return resp, nil
}

// dialChrome opens a TLS connection with a Chrome 120 ClientHello. A nil
// protos keeps the hello's own ALPN list (h2 and http/1.1).
func dialChrome(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	if protos == nil && tlsConn.ConnectionState().NegotiatedProtocol != http2.NextProtoTLS {
		_ = tlsConn.Close()
		return nil, fmt.Errorf("%s did not negotiate h2", host)
	}

	return tlsConn, nil
}
