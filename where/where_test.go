package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codeit-cli/codeit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestConfig(t *testing.T) {
	Convey("Config", t, func() {
		Convey("Should respect the environment override", func() {
			custom := filepath.Join(os.TempDir(), "codeit-test-config")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
		})
	})
}

func TestPaths(t *testing.T) {
	Convey("Path resolvers", t, func() {
		Convey("History lives inside the config dir", func() {
			So(History(), ShouldEqual, filepath.Join(Config(), "history.json"))
		})
		Convey("Profile lives inside the config dir", func() {
			So(Profile(), ShouldEqual, filepath.Join(Config(), "profile.json"))
		})
		Convey("Queries live inside the cache dir", func() {
			So(Queries(), ShouldEqual, filepath.Join(Cache(), "queries.json"))
		})
	})
}
