package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version comparison", t, func() {
		Convey("Equal versions", func() {
			result, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("Greater and lesser versions", func() {
			result, err := Compare("1.3.0", "1.2.9")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)

			result, err = Compare("0.9.9", "1.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)
		})

		Convey("The v prefix is tolerated", func() {
			result, err := Compare("v2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("Malformed versions yield an error", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
