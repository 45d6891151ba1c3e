package bilibili

import (
	"fmt"
	"net/url"
	"strconv"
)

// Strategy decides which playurl flags to send and which stream to return.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string
	// Params returns the negotiation flags for the requested quality tier.
	Params(quality int) url.Values
	// Select picks the stream from a successful payload.
	Select(data *PlaybackData) (*PlayURL, error)
}

const (
	ModeMulti  = "multi"
	ModeSingle = "single"
)

// Modes lists the accepted strategy names.
func Modes() []string {
	return []string{ModeSingle, ModeMulti}
}

// NewStrategy returns the strategy registered under mode.
func NewStrategy(mode string, cdn CDN) (Strategy, error) {
	switch mode {
	case ModeMulti:
		return MultiFormat{}, nil
	case ModeSingle:
		return SingleFormat{CDN: cdn}, nil
	default:
		return nil, fmt.Errorf("unknown resolve mode %q (valid: %s, %s)", mode, ModeSingle, ModeMulti)
	}
}

// MultiFormat asks for both adaptive and single-file streams and prefers adaptive.
type MultiFormat struct{}

func (MultiFormat) Name() string { return ModeMulti }

func (MultiFormat) Params(quality int) url.Values {
	return url.Values{
		"qn":    {strconv.Itoa(quality)},
		"fnval": {"16"},
		"fourk": {"1"},
	}
}

func (MultiFormat) Select(data *PlaybackData) (*PlayURL, error) {
	if u, ok := data.Dash.firstURL(); ok {
		return &PlayURL{URL: u, Format: DASH}, nil
	}

	if u, ok := data.firstDurl(); ok {
		return &PlayURL{URL: u, Format: MP4}, nil
	}

	return nil, &Error{Kind: NoStreamFound}
}

// SingleFormat asks only for a single-file stream and rewrites its CDN host.
type SingleFormat struct {
	CDN CDN
}

func (SingleFormat) Name() string { return ModeSingle }

func (SingleFormat) Params(quality int) url.Values {
	return url.Values{
		"qn":           {strconv.Itoa(quality)},
		"fnval":        {"1"},
		"fnver":        {"0"},
		"fourk":        {"1"},
		"platform":     {"html5"},
		"high_quality": {"1"},
	}
}

func (s SingleFormat) Select(data *PlaybackData) (*PlayURL, error) {
	u, ok := data.firstDurl()
	if !ok {
		e := &Error{Kind: NoStreamFound}
		if _, dash := data.Dash.firstURL(); dash {
			e.Message = "video is only available as adaptive (DASH) streams"
		}
		return nil, e
	}

	return &PlayURL{URL: s.CDN.Rewrite(u), Format: MP4}, nil
}
