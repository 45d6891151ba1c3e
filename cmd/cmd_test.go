package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kipdayo/kipdayo/config"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/query"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func fakeAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/x/web-interface/view":
			_, _ = w.Write([]byte(`{"code":0,"data":{"cid":111,"aid":222}}`))
		case "/x/player/playurl":
			_, _ = w.Write([]byte(`{"code":0,"data":{"durl":[{"url":"http://a.akamaized.net/v.mp4"}],"dash":{"video":[{"base_url":"https://x/dash.m4s"}]}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func execute(args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	So(rootCmd.ExecuteContext(context.Background()), ShouldBeNil)
	return out.String()
}

func TestResolveCommand(t *testing.T) {
	Convey("Given a configured CLI", t, func() {
		viper.Reset()
		So(config.Setup(), ShouldBeNil)
		srv := fakeAPI()
		defer srv.Close()
		viper.Set(key.APIBaseURL, srv.URL)
		viper.Set(key.HistoryRemember, true)
		viper.Set(key.AuthKeyring, false)
		So(query.Forget(), ShouldBeNil)

		Convey("When a page is resolved in the default mode", func() {
			out := execute("resolve", "https://www.bilibili.com/video/BV1xx411c7mD?p=1")

			Convey("Then the rewritten single file should be printed as JSON", func() {
				So(out, ShouldEqual, `{"url":"http://upos-sz-mirror08c.bilivideo.com/v.mp4","format":"MP4"}`+"\n")
			})

			Convey("Then the identifier should be remembered", func() {
				So(query.Suggest("BV1xx"), ShouldResemble, []string{"BV1xx411c7mD"})
			})
		})

		Convey("When the mode flag selects multi", func() {
			out := execute("resolve", "--mode", "multi", "--json", "BV1xx411c7mD")

			Convey("Then the adaptive stream should be printed", func() {
				So(out, ShouldEqual, `{"url":"https://x/dash.m4s","format":"DASH"}`+"\n")
			})
		})

		Convey("When the schema is requested", func() {
			out := execute("resolve", "--schema")

			Convey("Then it should describe both fields", func() {
				var schema struct {
					Properties map[string]any `json:"properties"`
				}
				So(json.Unmarshal([]byte(out), &schema), ShouldBeNil)
				So(schema.Properties, ShouldContainKey, "url")
				So(schema.Properties, ShouldContainKey, "format")
			})
		})

		Reset(func() {
			resolveCmd.Flags().VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		})
	})
}

func TestClosestKey(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		Convey("Then the nearest registered key should be suggested", func() {
			So(closestKey("resolve.mdoe"), ShouldEqual, key.ResolveMode)
			So(closestKey("cdn.mirror_hots"), ShouldEqual, key.MirrorHost)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given raw values", t, func() {
		Convey("Then they should take the default's type", func() {
			v, err := parseValue(key.ResolveQuality, "64")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 64)

			v, err = parseValue(key.HistoryRemember, "false")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = parseValue(key.ResolveMode, "multi")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "multi")
		})

		Convey("Then malformed numbers should fail", func() {
			_, err := parseValue(key.ResolveTimeout, "soon")
			So(err, ShouldNotBeNil)
		})
	})
}
