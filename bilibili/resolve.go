package bilibili

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/kipdayo/kipdayo/log"
	"github.com/samber/mo"
)

// JSON serializes p as {"url":...,"format":...} without HTML escaping.
func (p *PlayURL) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// resolve runs extraction, the view call and the playback call in order,
// stopping at the first failure.
func (c *Client) resolve(ctx context.Context, pageURL, sessdata string) mo.Result[*PlayURL] {
	if strings.TrimSpace(sessdata) == "" {
		sessdata = ""
	}

	bvid, err := ExtractBVID(pageURL)
	if err != nil {
		return mo.Err[*PlayURL](err)
	}
	log.Infof("resolving %s", bvid)

	info, err := c.View(ctx, bvid, sessdata)
	if err != nil {
		return mo.Err[*PlayURL](err)
	}

	return mo.TupleToResult(c.Playback(ctx, bvid, info, sessdata)).Map(func(play *PlayURL) (*PlayURL, error) {
		play.BVID = bvid
		return play, nil
	})
}

// ResolvePlayURL resolves pageURL for in-process callers. Failures are
// *Error values so callers can inspect their Kind.
func (c *Client) ResolvePlayURL(ctx context.Context, pageURL, sessdata string) (*PlayURL, error) {
	res := c.resolve(ctx, pageURL, sessdata)
	if res.IsError() {
		log.Warnf("resolution failed: %s", res.Error())
	}
	return res.Get()
}

// Resolve is the external entry point: it returns the JSON encoding of the
// resolved PlayURL, or an error that carries only a display message.
func (c *Client) Resolve(ctx context.Context, pageURL, sessdata string) (string, error) {
	play, err := c.ResolvePlayURL(ctx, pageURL, sessdata)
	if err != nil {
		return "", errors.New(err.Error())
	}

	out, err := play.JSON()
	if err != nil {
		return "", errors.New(err.Error())
	}

	return out, nil
}
