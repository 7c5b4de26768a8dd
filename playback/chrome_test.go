package playback

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// testTimings keeps chrome tests fast while preserving the ordering
// between the title and controls timeouts.
var testTimings = ChromeTimings{
	TitleHide:    40 * time.Millisecond,
	ControlsHide: 80 * time.Millisecond,
	LeaveHide:    20 * time.Millisecond,
}

func TestChrome(t *testing.T) {
	Convey("Given a chrome visibility controller", t, func() {
		chrome := NewChrome(testTimings, nil)
		defer chrome.Stop()

		Convey("Both overlays start visible", func() {
			state := chrome.State()
			So(state.ShowTitle, ShouldBeTrue)
			So(state.ShowControls, ShouldBeTrue)
		})

		Convey("After a move the title hides first, then the controls", func() {
			chrome.PointerMove()

			// between the two timeouts: title gone, controls still up
			time.Sleep(testTimings.TitleHide + 20*time.Millisecond)
			state := chrome.State()
			So(state.ShowTitle, ShouldBeFalse)
			So(state.ShowControls, ShouldBeTrue)

			time.Sleep(testTimings.ControlsHide)
			state = chrome.State()
			So(state.ShowControls, ShouldBeFalse)
		})

		Convey("A new move cancels the pending hides", func() {
			chrome.PointerMove()
			time.Sleep(testTimings.TitleHide / 2)
			chrome.PointerMove()
			time.Sleep(testTimings.TitleHide / 2)

			// the first timer would have fired by now if it had not been
			// replaced
			So(chrome.State().ShowTitle, ShouldBeTrue)
		})

		Convey("Pointer leave hides both after the short delay", func() {
			chrome.PointerMove()
			chrome.PointerLeave()

			time.Sleep(testTimings.LeaveHide + 30*time.Millisecond)
			state := chrome.State()
			So(state.ShowTitle, ShouldBeFalse)
			So(state.ShowControls, ShouldBeFalse)
		})

		Convey("Stop freezes the flags", func() {
			chrome.PointerMove()
			chrome.Stop()

			time.Sleep(testTimings.ControlsHide + 30*time.Millisecond)
			state := chrome.State()
			So(state.ShowTitle, ShouldBeTrue)
			So(state.ShowControls, ShouldBeTrue)
		})
	})
}
