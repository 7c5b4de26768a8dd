package track

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleTree() *Track {
	return NewFolder("f1", "Section 1", "intro section",
		NewVideo("v1", "Welcome", "", "https://cdn.example.com/welcome.mp4"),
		NewText("t1", "Syllabus", "", "read this first"),
		NewFolder("f2", "Basics", "",
			NewVideo("v2", "Variables", "", "https://cdn.example.com/vars.mp4"),
		),
	)
}

func TestTrack(t *testing.T) {
	Convey("Given a curriculum tree", t, func() {
		root := sampleTree()

		Convey("Accessors should respect node types", func() {
			subs, ok := root.SubTracks()
			So(ok, ShouldBeTrue)
			So(len(subs), ShouldEqual, 3)

			_, ok = root.VideoURL()
			So(ok, ShouldBeFalse)
			_, ok = root.Content()
			So(ok, ShouldBeFalse)

			url, ok := subs[0].VideoURL()
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "https://cdn.example.com/welcome.mp4")
			So(subs[0].IsPlayable(), ShouldBeTrue)

			content, ok := subs[1].Content()
			So(ok, ShouldBeTrue)
			So(content, ShouldEqual, "read this first")
			So(subs[1].IsPlayable(), ShouldBeFalse)
		})

		Convey("Videos should flatten playable nodes depth-first", func() {
			videos := root.Videos()
			So(len(videos), ShouldEqual, 2)
			So(videos[0].ID, ShouldEqual, "v1")
			So(videos[1].ID, ShouldEqual, "v2")
		})

		Convey("JSON round trip should preserve the tree", func() {
			data, err := json.Marshal(root)
			So(err, ShouldBeNil)

			var decoded Track
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded.Type(), ShouldEqual, TypeFolder)
			So(len(decoded.Videos()), ShouldEqual, 2)
		})
	})

	Convey("Given malformed wire nodes", t, func() {
		Convey("Unknown type should be rejected", func() {
			var tr Track
			err := json.Unmarshal([]byte(`{"_id":"x","title":"x","type":"quiz"}`), &tr)
			So(err, ShouldNotBeNil)
		})

		Convey("Video without a source should be rejected", func() {
			var tr Track
			err := json.Unmarshal([]byte(`{"_id":"x","title":"x","type":"video"}`), &tr)
			So(err, ShouldNotBeNil)
		})

		Convey("Text without content should be rejected", func() {
			var tr Track
			err := json.Unmarshal([]byte(`{"_id":"x","title":"x","type":"text"}`), &tr)
			So(err, ShouldNotBeNil)
		})

		Convey("Empty folder should be accepted", func() {
			var tr Track
			err := json.Unmarshal([]byte(`{"_id":"x","title":"New Section","type":"folder"}`), &tr)
			So(err, ShouldBeNil)
			subs, ok := tr.SubTracks()
			So(ok, ShouldBeTrue)
			So(len(subs), ShouldEqual, 0)
		})
	})
}

func TestVideoURL(t *testing.T) {
	Convey("YouTube detection", t, func() {
		So(IsYouTube("https://www.youtube.com/watch?v=dQw4w9WgXcQ"), ShouldBeTrue)
		So(IsYouTube("https://youtu.be/dQw4w9WgXcQ"), ShouldBeTrue)
		So(IsYouTube("https://cdn.example.com/video.mp4"), ShouldBeFalse)
	})

	Convey("YouTube id extraction", t, func() {
		id, ok := YouTubeID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		So(ok, ShouldBeTrue)
		So(id, ShouldEqual, "dQw4w9WgXcQ")

		id, ok = YouTubeID("https://youtu.be/dQw4w9WgXcQ?t=42")
		So(ok, ShouldBeTrue)
		So(id, ShouldEqual, "dQw4w9WgXcQ")

		id, ok = YouTubeID("https://www.youtube.com/embed/dQw4w9WgXcQ")
		So(ok, ShouldBeTrue)
		So(id, ShouldEqual, "dQw4w9WgXcQ")

		_, ok = YouTubeID("https://www.youtube.com/watch?v=short")
		So(ok, ShouldBeFalse)
	})

	Convey("Playable URL normalization", t, func() {
		So(
			PlayableURL("https://youtu.be/dQw4w9WgXcQ?t=42"),
			ShouldEqual,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		)
		So(
			PlayableURL("https://cdn.example.com/video.mp4"),
			ShouldEqual,
			"https://cdn.example.com/video.mp4",
		)
	})
}
