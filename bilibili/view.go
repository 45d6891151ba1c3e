package bilibili

import (
	"context"
	"net/url"

	"github.com/kipdayo/kipdayo/log"
)

// VideoInfo holds the routing identifiers the playurl API needs.
type VideoInfo struct {
	CID uint64
	AID uint64
}

// viewData is the wire shape of the view payload. Both identifiers are
// required, so absence is kept distinguishable from zero.
type viewData struct {
	CID *uint64 `json:"cid"`
	AID *uint64 `json:"aid"`
}

// View maps bvid to its routing identifiers.
func (c *Client) View(ctx context.Context, bvid BVID, sessdata string) (*VideoInfo, error) {
	var env envelope[viewData]
	query := url.Values{"bvid": {bvid.String()}}

	if err := c.get(ctx, viewPath, query, bvid, sessdata, &env); err != nil {
		return nil, err
	}

	data, err := env.unwrap()
	if err != nil {
		return nil, err
	}

	switch {
	case data.CID == nil:
		return nil, &Error{Kind: Decode, Message: "view payload has no cid"}
	case data.AID == nil:
		return nil, &Error{Kind: Decode, Message: "view payload has no aid"}
	}

	info := &VideoInfo{CID: *data.CID, AID: *data.AID}
	log.Debugf("%s: cid=%d aid=%d", bvid, info.CID, info.AID)
	return info, nil
}
