// Package bilibili resolves bilibili video pages into direct playable stream URLs.
//
// Resolution runs in three steps: the public identifier is extracted from the
// page URL, the view API maps it to routing identifiers, and the playurl API
// returns the media URL in the format chosen by the configured Strategy.
package bilibili

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kipdayo/kipdayo/log"
	"github.com/kipdayo/kipdayo/network"
)

const (
	DefaultAPIBase  = "https://api.bilibili.com"
	DefaultSiteBase = "https://www.bilibili.com"
	DefaultTimeout  = 15 * time.Second
	DefaultQuality  = 80

	viewPath     = "/x/web-interface/view"
	playbackPath = "/x/player/playurl"

	maxBodySize = 10 * 1024 * 1024
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Zero fields fall back to the defaults above.
type Options struct {
	APIBase    string
	SiteBase   string
	Timeout    time.Duration
	Quality    int
	Strategy   Strategy
	HTTPClient Doer
}

// Client talks to the view and playurl APIs. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	apiBase  string
	siteBase string
	timeout  time.Duration
	quality  int
	strategy Strategy
	http     Doer
}

// New returns a Client configured by opts.
func New(opts Options) *Client {
	c := &Client{
		apiBase:  strings.TrimRight(opts.APIBase, "/"),
		siteBase: strings.TrimRight(opts.SiteBase, "/"),
		timeout:  opts.Timeout,
		quality:  opts.Quality,
		strategy: opts.Strategy,
		http:     opts.HTTPClient,
	}

	if c.apiBase == "" {
		c.apiBase = DefaultAPIBase
	}
	if c.siteBase == "" {
		c.siteBase = DefaultSiteBase
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.quality <= 0 {
		c.quality = DefaultQuality
	}
	if c.strategy == nil {
		c.strategy = SingleFormat{CDN: DefaultCDN}
	}
	if c.http == nil {
		c.http = &http.Client{Transport: network.NewTransport()}
	}

	return c
}

// Strategy returns the playback strategy in use.
func (c *Client) Strategy() Strategy {
	return c.strategy
}

// Referer returns the canonical page URL for bvid.
func (c *Client) Referer(bvid BVID) string {
	return c.siteBase + "/video/" + bvid.String()
}

// get performs one bounded GET against the API and decodes the body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, bvid BVID, sessdata string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.apiBase + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Kind: Transport, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header = Headers(sessdata, c.Referer(bvid))

	log.Debugf("GET %s (authenticated: %t)", endpoint, sessdata != "")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: Transport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Kind: Transport, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := network.DecodeBody(resp)
	if err != nil {
		return &Error{Kind: Decode, Err: err}
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return &Error{Kind: Transport, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: Decode, Err: err}
	}

	return nil
}
