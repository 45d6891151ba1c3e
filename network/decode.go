package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// DecodeBody returns a reader over the decoded response body according to
// its Content-Encoding. Closing the returned reader does not close resp.Body.
func DecodeBody(resp *http.Response) (io.ReadCloser, error) {
	if resp.Uncompressed {
		return io.NopCloser(resp.Body), nil
	}

	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))

	switch encoding {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return r, nil
	case "deflate":
		return inflate(resp.Body)
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// inflate accepts both zlib-wrapped and raw deflate streams.
func inflate(body io.Reader) (io.ReadCloser, error) {
	buf, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}

	if zr, err := zlib.NewReader(bytes.NewReader(buf)); err == nil {
		return zr, nil
	}

	return flate.NewReader(bytes.NewReader(buf)), nil
}
