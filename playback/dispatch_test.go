package playback

import (
	"testing"

	"github.com/codeit-cli/codeit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDispatcher(t *testing.T) {
	viper.Set(key.PlayerSeekStep, 10)
	viper.Set(key.PlayerVolumeStep, 5)

	Convey("Given a dispatcher over a bound controller", t, func() {
		controller, element := newBoundController()
		controller.HandleEvent(Event{Kind: EventDurationChange, Float: 300})
		dispatcher := NewDispatcher(controller)

		Convey("Seek commands move by the configured step", func() {
			controller.Seek(50)

			dispatcher.Dispatch(CommandSeekForward)
			So(controller.State().CurrentTime, ShouldEqual, 60)

			dispatcher.Dispatch(CommandSeekBackward)
			dispatcher.Dispatch(CommandSeekBackward)
			So(controller.State().CurrentTime, ShouldEqual, 40)
		})

		Convey("Rewinding near the start clamps at zero", func() {
			controller.Seek(5)
			for i := 0; i < 3; i++ {
				dispatcher.Dispatch(CommandSeekBackward)
			}
			So(controller.State().CurrentTime, ShouldEqual, 0)
		})

		Convey("Volume commands move by the configured step", func() {
			dispatcher.SetVolume(0.5)

			dispatcher.Dispatch(CommandVolumeUp)
			So(controller.State().Volume, ShouldEqual, 0.55)

			dispatcher.Dispatch(CommandVolumeDown)
			dispatcher.Dispatch(CommandVolumeDown)
			So(controller.State().Volume, ShouldEqual, 0.45)
		})

		Convey("Play/pause toggling goes through the controller", func() {
			dispatcher.Dispatch(CommandTogglePlayPause)
			So(controller.State().IsPlaying, ShouldBeTrue)
			So(element.paused, ShouldBeFalse)
		})

		Convey("Fullscreen toggling respects the mirrored flag", func() {
			dispatcher.Dispatch(CommandToggleFullscreen)
			So(element.fullscreen, ShouldBeTrue)

			controller.HandleEvent(Event{Kind: EventFullscreenChange, Bool: true})
			dispatcher.Dispatch(CommandToggleFullscreen)
			So(element.fullscreen, ShouldBeFalse)
		})
	})
}

func TestFormatTime(t *testing.T) {
	Convey("Time readouts use m:ss with padded seconds", t, func() {
		So(FormatTime(0), ShouldEqual, "0:00")
		So(FormatTime(7), ShouldEqual, "0:07")
		So(FormatTime(65), ShouldEqual, "1:05")
		So(FormatTime(600), ShouldEqual, "10:00")
		So(FormatTime(3671), ShouldEqual, "61:11")
		So(FormatTime(-5), ShouldEqual, "0:00")
	})

	Convey("Progress pairs position and duration", t, func() {
		So(FormatProgress(65, 300), ShouldEqual, "1:05 / 5:00")
	})
}
