package course

import (
	"encoding/json"
	"testing"

	"github.com/codeit-cli/codeit/track"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCourse(t *testing.T) {
	Convey("Given a course with a curriculum", t, func() {
		c := &Course{
			ID:     "c1",
			Title:  "Go from scratch",
			Price:  499,
			Status: StatusPublished,
			Tracks: []*track.Track{
				track.NewFolder("f1", "Section 1", "",
					track.NewVideo("v1", "Intro", "", "https://cdn.example.com/1.mp4"),
					track.NewText("t1", "Notes", "", "notes"),
				),
				track.NewVideo("v2", "Outro", "", "https://cdn.example.com/2.mp4"),
			},
		}

		Convey("Videos should flatten the whole curriculum", func() {
			videos := c.Videos()
			So(len(videos), ShouldEqual, 2)
			So(videos[0].ID, ShouldEqual, "v1")
			So(videos[1].ID, ShouldEqual, "v2")
		})

		Convey("FindTrack should search nested folders", func() {
			found, ok := c.FindTrack("t1")
			So(ok, ShouldBeTrue)
			So(found.Title, ShouldEqual, "Notes")

			_, ok = c.FindTrack("missing")
			So(ok, ShouldBeFalse)
		})

		Convey("The category decodes into the taxonomy type", func() {
			var decoded Course
			So(json.Unmarshal([]byte(`{"_id":"c9","title":"DL","category":"programming"}`), &decoded), ShouldBeNil)
			So(decoded.Category, ShouldEqual, CategoryProgramming)
			So(decoded.Category.DisplayName(), ShouldEqual, "Programming")
		})

		Convey("Status helpers", func() {
			So(c.IsPublished(), ShouldBeTrue)
			So(c.IsFree(), ShouldBeFalse)

			free := &Course{Price: 0, Status: StatusDraft}
			So(free.IsPublished(), ShouldBeFalse)
			So(free.IsFree(), ShouldBeTrue)
		})
	})
}

func TestResolveCategory(t *testing.T) {
	Convey("Known categories resolve as-is", t, func() {
		c, err := ResolveCategory("programming")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, CategoryProgramming)
		So(c.DisplayName(), ShouldEqual, "Programming")
	})

	Convey("Unknown categories suggest the closest match", t, func() {
		_, err := ResolveCategory("programing")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "programming")
	})

	Convey("Every category has a display name", t, func() {
		for _, c := range Categories {
			So(c.DisplayName(), ShouldNotBeEmpty)
		}
	})
}
