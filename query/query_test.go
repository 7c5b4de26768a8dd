package query

import (
	"testing"

	"github.com/codeit-cli/codeit/filesystem"
	"github.com/codeit-cli/codeit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered catalog searches", t, func() {
		So(Remember("golang", 1), ShouldBeNil)
		So(Remember("go concurrency", 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("go")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "go concurrency")
		})

		Convey("Suggest returns the top match", func() {
			top := Suggest("go")
			So(top.IsPresent(), ShouldBeTrue)
			So(top.MustGet(), ShouldEqual, "go concurrency")
		})

		Convey("No match yields no suggestion", func() {
			So(Suggest("rust").IsPresent(), ShouldBeFalse)
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("go"), ShouldBeEmpty)
			viper.Set(key.SearchShowQuerySuggestions, true)
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  GoLang  "), ShouldEqual, "golang")
		})
	})
}
