package config

import (
	"testing"

	"github.com/codeit-cli/codeit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.seek.step")
			So(result, ShouldEqual, "player_seek_step")
		})

		Convey("Env should prefix and uppercase the key", func() {
			f := Default["api.base_url"]
			So(f.Env(), ShouldEqual, "CODEIT_API_BASE_URL")
		})
	})
}
