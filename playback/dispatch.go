package playback

import (
	"fmt"
	"math"

	"github.com/codeit-cli/codeit/key"
	"github.com/spf13/viper"
)

// Command is a discrete transport intent from a key binding or control.
type Command int

const (
	CommandTogglePlayPause Command = iota
	CommandSeekForward
	CommandSeekBackward
	CommandVolumeUp
	CommandVolumeDown
	CommandToggleMute
	CommandToggleFullscreen
	CommandTogglePictureInPicture
)

// Dispatcher translates discrete transport commands into controller
// operations. It carries no state of its own beyond the configured step
// sizes.
type Dispatcher struct {
	controller *Controller
	seekStep   float64
	volumeStep float64
}

// NewDispatcher wires a dispatcher to the controller using the configured
// seek and volume steps.
func NewDispatcher(controller *Controller) *Dispatcher {
	return &Dispatcher{
		controller: controller,
		seekStep:   viper.GetFloat64(key.PlayerSeekStep),
		volumeStep: viper.GetFloat64(key.PlayerVolumeStep) / 100,
	}
}

// Dispatch executes a discrete transport command.
func (d *Dispatcher) Dispatch(cmd Command) {
	switch cmd {
	case CommandTogglePlayPause:
		d.controller.TogglePlayPause()
	case CommandSeekForward:
		d.controller.SeekBy(d.seekStep)
	case CommandSeekBackward:
		d.controller.SeekBy(-d.seekStep)
	case CommandVolumeUp:
		d.controller.SetVolume(d.controller.State().Volume + d.volumeStep)
	case CommandVolumeDown:
		d.controller.SetVolume(d.controller.State().Volume - d.volumeStep)
	case CommandToggleMute:
		d.controller.ToggleMute()
	case CommandToggleFullscreen:
		if d.controller.State().IsFullScreen {
			d.controller.ExitFullscreen()
		} else {
			d.controller.RequestFullscreen()
		}
	case CommandTogglePictureInPicture:
		d.controller.TogglePictureInPicture()
	}
}

// SeekTo forwards an absolute position from a slider drag.
func (d *Dispatcher) SeekTo(seconds float64) {
	d.controller.Seek(seconds)
}

// SetVolume forwards a volume level from a slider drag.
func (d *Dispatcher) SetVolume(level float64) {
	d.controller.SetVolume(level)
}

// SetSpeed forwards a rate selection from the speed menu.
func (d *Dispatcher) SetSpeed(multiplier float64) error {
	return d.controller.SetSpeed(multiplier)
}

// SetQuality forwards a label selection from the quality menu.
func (d *Dispatcher) SetQuality(label string) error {
	return d.controller.SetQuality(label)
}

// FormatTime renders raw seconds as m:ss for the transport readout.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatProgress renders the position/duration pair of the readout.
func FormatProgress(currentTime, duration float64) string {
	return fmt.Sprintf("%s / %s", FormatTime(currentTime), FormatTime(duration))
}
