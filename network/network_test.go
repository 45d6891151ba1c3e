package network

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	. "github.com/smartystreets/goconvey/convey"
)

const payload = `{"code":0,"data":{"cid":1}}`

func encoded(t *testing.T, encoding string) []byte {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch encoding {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "zlib":
		w = zlib.NewWriter(&buf)
	case "flate":
		fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			t.Fatal(err)
		}
		w = fw
	case "br":
		w = brotli.NewWriter(&buf)
	default:
		t.Fatalf("unknown encoding %s", encoding)
	}

	if _, err := w.Write([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func response(body []byte, encoding string) *http.Response {
	h := make(http.Header)
	if encoding != "" {
		h.Set("Content-Encoding", encoding)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     h,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func read(resp *http.Response) (string, error) {
	r, err := DecodeBody(resp)
	if err != nil {
		return "", err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	return string(b), err
}

func TestDecodeBody(t *testing.T) {
	Convey("Given a response body", t, func() {
		Convey("When it is not encoded", func() {
			Convey("Then it should be passed through", func() {
				s, err := read(response([]byte(payload), ""))
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})
		})

		Convey("When it is gzip encoded", func() {
			Convey("Then it should be decompressed", func() {
				s, err := read(response(encoded(t, "gzip"), "gzip"))
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})
		})

		Convey("When it is brotli encoded", func() {
			Convey("Then it should be decompressed", func() {
				s, err := read(response(encoded(t, "br"), "br"))
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})
		})

		Convey("When it is deflate encoded", func() {
			Convey("Then zlib-wrapped streams should be decompressed", func() {
				s, err := read(response(encoded(t, "zlib"), "deflate"))
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})

			Convey("Then raw streams should be decompressed", func() {
				s, err := read(response(encoded(t, "flate"), "deflate"))
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})
		})

		Convey("When the transport already decompressed it", func() {
			Convey("Then the header should be ignored", func() {
				resp := response([]byte(payload), "gzip")
				resp.Uncompressed = true
				s, err := read(resp)
				So(err, ShouldBeNil)
				So(s, ShouldEqual, payload)
			})
		})

		Convey("When the gzip header is corrupt", func() {
			Convey("Then an error should be returned", func() {
				_, err := DecodeBody(response([]byte("not gzip"), "gzip"))
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the encoding is unknown", func() {
			Convey("Then an error should be returned", func() {
				_, err := DecodeBody(response([]byte(payload), "zstd-custom"))
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "zstd-custom")
			})
		})
	})
}

func TestNewClient(t *testing.T) {
	Convey("Given client options", t, func() {
		Convey("When the fingerprint is standard", func() {
			c, err := NewClient(Options{Timeout: time.Second, Fingerprint: Standard})

			Convey("Then a tuned transport should be used", func() {
				So(err, ShouldBeNil)
				So(c.Timeout, ShouldEqual, time.Second)
				tr, ok := c.Transport.(*http.Transport)
				So(ok, ShouldBeTrue)
				So(tr.DisableCompression, ShouldBeTrue)
			})
		})

		Convey("When the fingerprint is chrome", func() {
			c, err := NewClient(Options{Fingerprint: Chrome})

			Convey("Then the chrome transport should be used", func() {
				So(err, ShouldBeNil)
				_, ok := c.Transport.(*chromeTransport)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When the fingerprint is unknown", func() {
			_, err := NewClient(Options{Fingerprint: "netscape"})

			Convey("Then an error should be returned", func() {
				So(err, ShouldNotBeNil)
				So(strings.Contains(err.Error(), "netscape"), ShouldBeTrue)
			})
		})
	})
}
