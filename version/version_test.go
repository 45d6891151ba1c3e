package version

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "0.9.9", 1},
			{"v0.3.0", "0.3.0", 0},
			{"0.2.9", "0.3.0", -1},
			{"0.10.0", "0.9.0", 1},
		}

		Convey("Then they should be ordered numerically", func() {
			for _, c := range cases {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Then malformed versions should fail", func() {
			_, err := Compare("latest", "0.3.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"tag_name":"v9.9.9"}`))
		}))
		defer srv.Close()

		prev := ReleasesURL
		ReleasesURL = srv.URL
		defer func() { ReleasesURL = prev }()
		_ = cacher().Set("")

		Convey("Then the tag should be returned without its prefix", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "9.9.9")
		})

		Convey("Then the second lookup should be served from cache", func() {
			_, _ = Latest(context.Background())
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "9.9.9")
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Then Notify should announce the newer release", func() {
			viper.Set(key.CliVersionCheck, true)
			var buf bytes.Buffer
			Notify(context.Background(), &buf)
			So(buf.String(), ShouldContainSubstring, "9.9.9")
			So(buf.String(), ShouldContainSubstring, constant.Version)
		})
	})
}
