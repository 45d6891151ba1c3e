package log

import (
	"bytes"
	"testing"

	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Then Setup should not create any file", func() {
			So(Setup(), ShouldBeNil)
			entries, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		defer viper.Set(key.LogsWrite, false)

		Convey("Then Setup should create today's file", func() {
			So(Setup(), ShouldBeNil)
			entries, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 1)
		})
	})
}

func TestProxies(t *testing.T) {
	Convey("Given a configured logger", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsLevel, "info")
		viper.Set(key.LogsJson, false)
		So(configure(&buf), ShouldBeNil)
		defer func() { enabled = false; logger = newDiscard() }()

		Convey("When messages of several levels are logged", func() {
			Infof("resolving %s", "BV1xx411c7mD")
			Debug("hidden")
			WithFields(map[string]any{"status": 200}).Info("request")

			Convey("Then only those at or above the level should be written", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "resolving BV1xx411c7mD")
				So(out, ShouldContainSubstring, "status=200")
				So(out, ShouldNotContainSubstring, "hidden")
			})
		})
	})
}
