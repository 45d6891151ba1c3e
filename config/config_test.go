package config

import (
	"os"
	"testing"

	"github.com/kipdayo/kipdayo/bilibili"
	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/network"
	"github.com/kipdayo/kipdayo/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func reset() {
	viper.Reset()
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given no config file", t, func() {
		reset()

		Convey("Then Setup should succeed with defaults", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})
	})

	Convey("Given a config file", t, func() {
		reset()
		path := where.Config() + "/kipdayo.toml"
		So(filesystem.API().WriteFile(path, []byte("[resolve]\nmode = \"multi\"\nquality = 64\n"), 0o644), ShouldBeNil)

		Convey("Then its values should override the defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ResolveMode), ShouldEqual, "multi")
			So(viper.GetInt(key.ResolveQuality), ShouldEqual, 64)
			So(viper.GetInt(key.ResolveTimeout), ShouldEqual, 15)
		})
	})

	Convey("Given a .env file", t, func() {
		reset()
		So(filesystem.API().WriteFile(DotEnv, []byte("KIPDAYO_RESOLVE_TIMEOUT=30\nKIPDAYO_SESSDATA=from-dotenv\n"), 0o644), ShouldBeNil)
		os.Unsetenv("KIPDAYO_RESOLVE_TIMEOUT")
		os.Unsetenv("KIPDAYO_SESSDATA")
		defer os.Unsetenv("KIPDAYO_RESOLVE_TIMEOUT")
		defer os.Unsetenv("KIPDAYO_SESSDATA")

		Convey("Then its variables should be bound", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.ResolveTimeout), ShouldEqual, 30)
			So(viper.GetString(key.AuthSessdata), ShouldEqual, "from-dotenv")
		})

		Convey("Then the process environment should win", func() {
			os.Setenv("KIPDAYO_RESOLVE_TIMEOUT", "5")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.ResolveTimeout), ShouldEqual, 5)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		f := Default[key.ResolveMode]

		Convey("Then its env name should be prefixed", func() {
			So(f.Env(), ShouldEqual, "KIPDAYO_RESOLVE_MODE")
		})

		Convey("Then EnvKeyReplacer should convert dots", func() {
			So(EnvKeyReplacer.Replace("cdn.mirror_host"), ShouldEqual, "cdn_mirror_host")
		})

		Convey("Then it should render", func() {
			So(f.Pretty(), ShouldContainSubstring, key.ResolveMode)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given default settings", t, func() {
		reset()
		So(Setup(), ShouldBeNil)

		Convey("Then they should be valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("When the mode is unknown", func() {
			viper.Set(key.ResolveMode, "triple")

			Convey("Then validation should name the key", func() {
				So(Validate().Error(), ShouldContainSubstring, key.ResolveMode)
			})
		})

		Convey("When several settings are invalid", func() {
			viper.Set(key.ResolveTimeout, 0)
			viper.Set(key.APIBaseURL, "")
			viper.Set(key.NetworkFingerprint, "netscape")

			Convey("Then every problem should be reported", func() {
				msg := Validate().Error()
				So(msg, ShouldContainSubstring, key.ResolveTimeout)
				So(msg, ShouldContainSubstring, key.APIBaseURL)
				So(msg, ShouldContainSubstring, key.NetworkFingerprint)
			})
		})

		Convey("When each registered mode and fingerprint is set", func() {
			Convey("Then every one should be accepted", func() {
				for _, mode := range bilibili.Modes() {
					for _, fp := range network.Fingerprints() {
						viper.Set(key.ResolveMode, mode)
						viper.Set(key.NetworkFingerprint, string(fp))
						So(Validate(), ShouldBeNil)
					}
				}
			})
		})

		Convey("When a base URL is relative", func() {
			viper.Set(key.APISiteURL, "www.bilibili.com")

			Convey("Then it should be rejected", func() {
				So(Validate().Error(), ShouldContainSubstring, "not an absolute URL")
			})
		})
	})
}
