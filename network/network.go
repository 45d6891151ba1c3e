// Package network builds the outbound HTTP clients used to reach the upstream APIs.
package network

import (
	"fmt"
	"net/http"
	"time"
)

// Fingerprint selects how the client presents itself at the TLS layer.
type Fingerprint string

const (
	// Standard uses Go's own TLS stack.
	Standard Fingerprint = "standard"
	// Chrome mimics a Chrome 120 ClientHello.
	Chrome Fingerprint = "chrome"
	// Profile routes requests through a full browser profile client.
	Profile Fingerprint = "profile"
)

// Fingerprints lists the accepted fingerprint names.
func Fingerprints() []Fingerprint {
	return []Fingerprint{Standard, Chrome, Profile}
}

// Options configures NewClient.
type Options struct {
	Timeout     time.Duration
	Fingerprint Fingerprint
}

// NewClient returns an *http.Client that never decompresses bodies on its own.
// Callers that set Accept-Encoding are expected to use DecodeBody.
func NewClient(opts Options) (*http.Client, error) {
	var (
		rt  http.RoundTripper
		err error
	)

	switch opts.Fingerprint {
	case Standard, "":
		rt = NewTransport()
	case Chrome:
		rt = newChromeTransport()
	case Profile:
		rt, err = newProfileTransport(opts.Timeout)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown fingerprint %q", opts.Fingerprint)
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: rt,
	}, nil
}

// NewTransport returns a tuned clone of the default transport.
func NewTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	t.ExpectContinueTimeout = time.Second
	t.DisableCompression = true
	return t
}
