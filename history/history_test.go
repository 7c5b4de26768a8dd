package history

import (
	"testing"

	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/filesystem"
	"github.com/codeit-cli/codeit/track"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a video track of a course", t, func() {
		video := track.NewVideo("v1", "Intro", "", "https://cdn.example.com/1.mp4")
		c := &course.Course{
			ID:     "c1",
			Title:  "Go from scratch",
			Tracks: []*track.Track{video},
		}

		Convey("When saving its progress", func() {
			record := NewSavedTrack(c, video)

			// The registry persists across branches, wipe the record so
			// every branch starts from a fresh save.
			Reset(func() {
				So(Remove(record), ShouldBeNil)
			})

			So(Save(record, 40), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved["c1/v1"], ShouldNotBeNil)
			So(saved["c1/v1"].WatchedPercentage, ShouldEqual, 40)
			So(saved["c1/v1"].CourseTitle, ShouldEqual, "Go from scratch")

			Convey("A higher percentage advances the record", func() {
				So(Save(NewSavedTrack(c, video), 80), ShouldBeNil)

				saved, _ := Get()
				So(saved["c1/v1"].WatchedPercentage, ShouldEqual, 80)
			})

			Convey("A lower percentage never regresses it", func() {
				So(Save(NewSavedTrack(c, video), 80), ShouldBeNil)
				So(Save(NewSavedTrack(c, video), 10), ShouldBeNil)

				saved, _ := Get()
				So(saved["c1/v1"].WatchedPercentage, ShouldEqual, 80)
			})

			Convey("Removing deletes the record", func() {
				So(Remove(record), ShouldBeNil)

				saved, _ := Get()
				So(saved["c1/v1"], ShouldBeNil)
			})
		})
	})
}
