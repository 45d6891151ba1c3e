package bilibili

import (
	"context"
	"strconv"

	"github.com/kipdayo/kipdayo/log"
)

// Format is the representation of a resolved stream.
type Format string

const (
	// DASH is a multi-stream adaptive representation.
	DASH Format = "DASH"
	// MP4 is a single directly playable file.
	MP4 Format = "MP4"
)

// PlayURL is the result of a resolution.
type PlayURL struct {
	URL    string `json:"url" jsonschema:"format=uri,description=Direct media URL"`
	Format Format `json:"format" jsonschema:"enum=DASH,enum=MP4"`
	// BVID is the identifier the URL was resolved from. Not serialized.
	BVID BVID `json:"-"`
}

// PlaybackData is the payload of the playurl API.
type PlaybackData struct {
	Dash *Dash  `json:"dash"`
	Durl []Durl `json:"durl"`
}

// Dash lists adaptive streams.
type Dash struct {
	Video []DashStream `json:"video"`
}

// DashStream is one adaptive video stream. The API spells the URL field
// either way depending on the endpoint revision.
type DashStream struct {
	BaseURL    string `json:"baseUrl"`
	BaseURLAlt string `json:"base_url"`
}

// URL returns the stream URL, checking baseUrl first and base_url second.
func (s DashStream) URL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return s.BaseURLAlt
}

// Durl is one single-file segment.
type Durl struct {
	URL string `json:"url"`
}

// firstURL returns the URL of the first adaptive stream. Later streams are
// never consulted.
func (d *Dash) firstURL() (string, bool) {
	if d == nil || len(d.Video) == 0 {
		return "", false
	}
	u := d.Video[0].URL()
	return u, u != ""
}

func (d *PlaybackData) firstDurl() (string, bool) {
	if len(d.Durl) == 0 || d.Durl[0].URL == "" {
		return "", false
	}
	return d.Durl[0].URL, true
}

// Playback queries the playurl API for bvid and lets the client's Strategy pick the stream.
func (c *Client) Playback(ctx context.Context, bvid BVID, info *VideoInfo, sessdata string) (*PlayURL, error) {
	query := c.strategy.Params(c.quality)
	query.Set("bvid", bvid.String())
	query.Set("cid", strconv.FormatUint(info.CID, 10))

	var env envelope[PlaybackData]
	if err := c.get(ctx, playbackPath, query, bvid, sessdata, &env); err != nil {
		return nil, err
	}

	data, err := env.unwrap()
	if err != nil {
		return nil, err
	}

	play, err := c.strategy.Select(data)
	if err != nil {
		return nil, err
	}

	log.Infof("%s resolved as %s via %s strategy", bvid, play.Format, c.strategy.Name())
	return play, nil
}
