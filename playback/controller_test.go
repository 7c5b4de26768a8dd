package playback

import (
	"errors"
	"testing"

	"github.com/codeit-cli/codeit/track"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeElement records commands instead of driving a real backend.
type fakeElement struct {
	loadedURL   string
	loadedTitle string
	paused      bool
	position    float64
	volume      float64
	muted       bool
	speed       float64
	fullscreen  bool
	pipToggles  int

	failFullscreen bool
	failPiP        bool
}

func (f *fakeElement) Load(url, title string) error {
	f.loadedURL = url
	f.loadedTitle = title
	return nil
}

func (f *fakeElement) SetPaused(paused bool) error {
	f.paused = paused
	return nil
}

func (f *fakeElement) SeekTo(seconds float64) error {
	f.position = seconds
	return nil
}

func (f *fakeElement) SetVolume(level float64) error {
	f.volume = level
	return nil
}

func (f *fakeElement) SetMuted(muted bool) error {
	f.muted = muted
	return nil
}

func (f *fakeElement) SetSpeed(multiplier float64) error {
	f.speed = multiplier
	return nil
}

func (f *fakeElement) SetFullscreen(on bool) error {
	if f.failFullscreen {
		return errors.New("fullscreen denied")
	}
	f.fullscreen = on
	return nil
}

func (f *fakeElement) TogglePictureInPicture() error {
	if f.failPiP {
		return errors.New("pip unsupported")
	}
	f.pipToggles++
	return nil
}

func (f *fakeElement) Close() error { return nil }

func newBoundController() (*Controller, *fakeElement) {
	element := &fakeElement{}
	controller := NewController(nil, nil)
	controller.Bind(element)
	return controller, element
}

func TestSelectTrack(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Selecting a video binds it and resets position", func() {
			video := track.NewVideo("a", "T1", "D1", "https://cdn.example.com/u1.mp4")
			controller.SelectTrack(video)

			state := controller.State()
			So(state.SelectedTrack.ID, ShouldEqual, "a")
			So(state.CurrentTime, ShouldEqual, 0)
			So(state.Duration, ShouldEqual, 0)
			So(state.IsLoading, ShouldBeTrue)
			So(element.loadedURL, ShouldEqual, "https://cdn.example.com/u1.mp4")
			So(element.loadedTitle, ShouldEqual, "T1")
		})

		Convey("Selecting a folder leaves the previous selection", func() {
			video := track.NewVideo("a", "T1", "", "https://cdn.example.com/u1.mp4")
			controller.SelectTrack(video)

			folder := track.NewFolder("f", "Section", "")
			controller.SelectTrack(folder)

			So(controller.State().SelectedTrack.ID, ShouldEqual, "a")
		})

		Convey("Selecting a text node leaves the previous selection", func() {
			video := track.NewVideo("a", "T1", "", "https://cdn.example.com/u1.mp4")
			controller.SelectTrack(video)

			controller.SelectTrack(track.NewText("t", "Notes", "", "body"))

			So(controller.State().SelectedTrack.ID, ShouldEqual, "a")
		})
	})
}

func TestTogglePlayPause(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Toggling flips the playing state and commands the element", func() {
			So(controller.State().IsPlaying, ShouldBeFalse)

			controller.TogglePlayPause()
			So(controller.State().IsPlaying, ShouldBeTrue)
			So(element.paused, ShouldBeFalse)
			So(controller.GlyphVisible(), ShouldBeTrue)

			controller.TogglePlayPause()
			So(controller.State().IsPlaying, ShouldBeFalse)
			So(element.paused, ShouldBeTrue)
		})

		Convey("A toggle pair returns to the original state", func() {
			before := controller.State().IsPlaying
			controller.TogglePlayPause()
			controller.TogglePlayPause()
			So(controller.State().IsPlaying, ShouldEqual, before)
		})
	})
}

func TestSeek(t *testing.T) {
	Convey("Given a bound controller with a known duration", t, func() {
		controller, element := newBoundController()
		controller.HandleEvent(Event{Kind: EventDurationChange, Float: 120})

		Convey("In-range seeks apply directly", func() {
			controller.Seek(42)
			So(controller.State().CurrentTime, ShouldEqual, 42)
			So(element.position, ShouldEqual, 42)
		})

		Convey("Seeks beyond the end clamp to the duration", func() {
			controller.Seek(500)
			So(controller.State().CurrentTime, ShouldEqual, 120)
		})

		Convey("Negative seeks clamp to zero", func() {
			controller.Seek(-30)
			So(controller.State().CurrentTime, ShouldEqual, 0)
		})

		Convey("Rapid rewinds never go below zero", func() {
			controller.Seek(5)
			for i := 0; i < 3; i++ {
				controller.SeekBy(-10)
			}
			So(controller.State().CurrentTime, ShouldEqual, 0)
		})
	})
}

func TestVolumeAndMute(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Volume clamps into the unit interval", func() {
			controller.SetVolume(1.7)
			So(controller.State().Volume, ShouldEqual, 1)

			controller.SetVolume(-0.3)
			So(controller.State().Volume, ShouldEqual, 0)
		})

		Convey("Zero volume mutes", func() {
			controller.SetVolume(0)
			state := controller.State()
			So(state.IsMuted, ShouldBeTrue)
			So(element.muted, ShouldBeTrue)
		})

		Convey("Positive volume while muted unmutes", func() {
			controller.SetVolume(0)
			controller.SetVolume(0.4)

			state := controller.State()
			So(state.IsMuted, ShouldBeFalse)
			So(state.Volume, ShouldEqual, 0.4)
			So(element.muted, ShouldBeFalse)
		})

		Convey("A mute toggle pair restores the exact volume", func() {
			controller.SetVolume(0.63)

			controller.ToggleMute()
			state := controller.State()
			So(state.IsMuted, ShouldBeTrue)
			So(state.Volume, ShouldEqual, 0)

			controller.ToggleMute()
			state = controller.State()
			So(state.IsMuted, ShouldBeFalse)
			So(state.Volume, ShouldEqual, 0.63)
		})
	})
}

func TestSetSpeed(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Accepted multipliers apply without interrupting position", func() {
			controller.HandleEvent(Event{Kind: EventTimeUpdate, Float: 33})

			So(controller.SetSpeed(1.5), ShouldBeNil)
			state := controller.State()
			So(state.Speed, ShouldEqual, 1.5)
			So(state.CurrentTime, ShouldEqual, 33)
			So(element.speed, ShouldEqual, 1.5)
		})

		Convey("Multipliers outside the set are rejected with state unchanged", func() {
			So(controller.SetSpeed(3), ShouldNotBeNil)
			So(controller.State().Speed, ShouldEqual, 1)
		})
	})
}

func TestFullscreenMirroring(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Requesting fullscreen does not flip the flag directly", func() {
			controller.RequestFullscreen()
			So(element.fullscreen, ShouldBeTrue)
			So(controller.State().IsFullScreen, ShouldBeFalse)
		})

		Convey("The flag follows the platform notification", func() {
			controller.RequestFullscreen()
			controller.HandleEvent(Event{Kind: EventFullscreenChange, Bool: true})
			So(controller.State().IsFullScreen, ShouldBeTrue)

			controller.HandleEvent(Event{Kind: EventFullscreenChange, Bool: false})
			So(controller.State().IsFullScreen, ShouldBeFalse)
		})

		Convey("A rejection surfaces a notification instead of flipping state", func() {
			var messages []string
			controller = NewController(nil, func(msg string) { messages = append(messages, msg) })
			controller.Bind(&fakeElement{failFullscreen: true})

			controller.RequestFullscreen()
			So(controller.State().IsFullScreen, ShouldBeFalse)
			So(len(messages), ShouldEqual, 1)
		})
	})
}

func TestPictureInPicture(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, element := newBoundController()

		Convey("Toggling is fire-and-forget", func() {
			before := controller.State()
			controller.TogglePictureInPicture()
			So(element.pipToggles, ShouldEqual, 1)
			So(controller.State(), ShouldResemble, before)
		})

		Convey("An unsupported platform surfaces a notification", func() {
			var messages []string
			controller = NewController(nil, func(msg string) { messages = append(messages, msg) })
			controller.Bind(&fakeElement{failPiP: true})

			controller.TogglePictureInPicture()
			So(len(messages), ShouldEqual, 1)
		})
	})
}

func TestEventMirroring(t *testing.T) {
	Convey("Given a bound controller", t, func() {
		controller, _ := newBoundController()

		Convey("Buffering flags follow waiting/can-play", func() {
			controller.HandleEvent(Event{Kind: EventWaiting})
			So(controller.State().IsLoading, ShouldBeTrue)

			controller.HandleEvent(Event{Kind: EventCanPlay})
			So(controller.State().IsLoading, ShouldBeFalse)
		})

		Convey("Pause notifications drive the playing flag", func() {
			controller.HandleEvent(Event{Kind: EventPauseChange, Bool: false})
			So(controller.State().IsPlaying, ShouldBeTrue)

			controller.HandleEvent(Event{Kind: EventPauseChange, Bool: true})
			So(controller.State().IsPlaying, ShouldBeFalse)
		})

		Convey("End of media stops playback", func() {
			controller.HandleEvent(Event{Kind: EventPauseChange, Bool: false})
			controller.HandleEvent(Event{Kind: EventEnded})
			So(controller.State().IsPlaying, ShouldBeFalse)
		})
	})
}

func TestUnboundController(t *testing.T) {
	Convey("Given a controller without an element", t, func() {
		controller := NewController(nil, nil)

		Convey("Transport commands are silent no-ops", func() {
			before := controller.State()

			controller.TogglePlayPause()
			controller.Seek(10)
			controller.SetVolume(0.5)
			controller.ToggleMute()
			controller.RequestFullscreen()
			controller.TogglePictureInPicture()
			controller.SelectTrack(track.NewVideo("a", "T", "", "u"))

			So(controller.State(), ShouldResemble, before)
		})

		Convey("Quality selection is inert label state", func() {
			So(controller.SetQuality("720p"), ShouldBeNil)
			So(controller.State().Quality, ShouldEqual, "720p")

			So(controller.SetQuality("8k"), ShouldNotBeNil)
			So(controller.State().Quality, ShouldEqual, "720p")
		})
	})
}
