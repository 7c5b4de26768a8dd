package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/track"
	"github.com/codeit-cli/codeit/util"
	"github.com/samber/lo"
)

// Speeds enumerates the accepted playback rate multipliers.
var Speeds = []float64{0.5, 1, 1.25, 1.5, 1.75, 2}

// Qualities enumerates the selectable quality labels. The selection is
// cosmetic: no alternate source is loaded for it.
var Qualities = []string{"auto", "1080p", "720p", "480p"}

// glyphPulseDuration is how long the play/pause feedback glyph stays visible.
const glyphPulseDuration = time.Second

// State is the transport state snapshot owned by the controller.
type State struct {
	SelectedTrack *track.Track
	IsPlaying     bool
	IsLoading     bool
	CurrentTime   float64
	Duration      float64
	Volume        float64
	IsMuted       bool
	Speed         float64
	IsFullScreen  bool
	Quality       string
}

// Controller is the single source of truth for transport state and the only
// component allowed to command the bound media element.
//
// Position, duration and fullscreen mirrors are updated from element events
// through HandleEvent, so they always reflect the last observed platform
// state. Commands against an unbound element are silent no-ops.
type Controller struct {
	mu      sync.Mutex
	element Element
	state   State

	// last non-zero volume, restored on unmute
	lastVolume float64

	glyphVisible bool
	glyphTimer   *time.Timer

	onChange func(State)
	notify   func(message string)
}

// NewController creates a controller with the default transport state.
// Both callbacks may be nil: onChange is invoked after every state change,
// notify surfaces platform rejections (fullscreen denied, PiP unsupported)
// as non-blocking messages.
func NewController(onChange func(State), notify func(message string)) *Controller {
	return &Controller{
		state: State{
			Volume:  1,
			Speed:   1,
			Quality: Qualities[0],
		},
		lastVolume: 1,
		onChange:   onChange,
		notify:     notify,
	}
}

// Bind attaches the media element the controller commands.
func (c *Controller) Bind(element Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.element = element
}

// State returns a snapshot of the current transport state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GlyphVisible reports whether the transient play/pause feedback glyph is
// currently shown.
func (c *Controller) GlyphVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.glyphVisible
}

// SelectTrack rebinds the media element to the given video node.
// Non-video nodes are refused silently and the previous selection stays.
func (c *Controller) SelectTrack(t *track.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil || t == nil || !t.IsPlayable() {
		return
	}

	url, ok := t.VideoURL()
	if !ok {
		return
	}

	if err := c.element.Load(track.PlayableURL(url), t.Title); err != nil {
		log.Errorf("load track %s: %v", t.ID, err)
		c.notifyLocked(fmt.Sprintf("could not load %s", t.Title))
		return
	}

	c.state.SelectedTrack = t
	c.state.CurrentTime = 0
	c.state.Duration = 0
	c.state.IsLoading = true
	c.changedLocked()
}

// TogglePlayPause flips the playing state and pulses the feedback glyph.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	playing := !c.state.IsPlaying
	if err := c.element.SetPaused(!playing); err != nil {
		log.Warnf("toggle pause: %v", err)
		return
	}

	c.state.IsPlaying = playing
	c.pulseGlyphLocked()
	c.changedLocked()
}

// Seek moves playback to an absolute position, clamped into [0, duration].
// Out-of-range requests are clamped, never rejected.
func (c *Controller) Seek(toSeconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	clamped := util.Clamp(toSeconds, 0, c.state.Duration)
	if err := c.element.SeekTo(clamped); err != nil {
		log.Warnf("seek: %v", err)
		return
	}

	c.state.CurrentTime = clamped
	c.changedLocked()
}

// SeekBy moves playback relative to the current position.
func (c *Controller) SeekBy(deltaSeconds float64) {
	c.mu.Lock()
	target := c.state.CurrentTime + deltaSeconds
	c.mu.Unlock()

	c.Seek(target)
}

// SetVolume applies a volume level clamped into [0, 1]. Zero volume mutes;
// any positive level while muted unmutes.
func (c *Controller) SetVolume(level float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	clamped := util.Clamp(level, 0, 1)
	if err := c.element.SetVolume(clamped); err != nil {
		log.Warnf("set volume: %v", err)
		return
	}

	c.state.Volume = clamped

	if clamped == 0 {
		c.state.IsMuted = true
		_ = c.element.SetMuted(true)
	} else {
		c.lastVolume = clamped
		if c.state.IsMuted {
			c.state.IsMuted = false
			_ = c.element.SetMuted(false)
		}
	}

	c.changedLocked()
}

// ToggleMute flips the muted state. Unmuting restores the last non-zero
// volume rather than a fixed default.
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	if c.state.IsMuted {
		if err := c.element.SetMuted(false); err != nil {
			log.Warnf("unmute: %v", err)
			return
		}
		c.state.IsMuted = false
		c.state.Volume = c.lastVolume
		_ = c.element.SetVolume(c.lastVolume)
	} else {
		if err := c.element.SetMuted(true); err != nil {
			log.Warnf("mute: %v", err)
			return
		}
		if c.state.Volume > 0 {
			c.lastVolume = c.state.Volume
		}
		c.state.IsMuted = true
		c.state.Volume = 0
	}

	c.changedLocked()
}

// SetSpeed applies a playback rate multiplier. Values outside the accepted
// set are rejected with the state unchanged.
func (c *Controller) SetSpeed(multiplier float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !lo.Contains(Speeds, multiplier) {
		return fmt.Errorf("unsupported playback speed %v", multiplier)
	}

	if c.element == nil {
		return nil
	}

	if err := c.element.SetSpeed(multiplier); err != nil {
		log.Warnf("set speed: %v", err)
		return nil
	}

	c.state.Speed = multiplier
	c.changedLocked()
	return nil
}

// SetQuality records a quality label selection. The selection has no effect
// on the bound source.
func (c *Controller) SetQuality(label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !lo.Contains(Qualities, label) {
		return fmt.Errorf("unknown quality %q", label)
	}

	c.state.Quality = label
	c.changedLocked()
	return nil
}

// RequestFullscreen asks the platform to enter fullscreen. The mirrored flag
// is updated only when the platform reports the change back.
func (c *Controller) RequestFullscreen() {
	c.setFullscreen(true)
}

// ExitFullscreen asks the platform to leave fullscreen.
func (c *Controller) ExitFullscreen() {
	c.setFullscreen(false)
}

func (c *Controller) setFullscreen(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	if err := c.element.SetFullscreen(on); err != nil {
		log.Warnf("fullscreen request: %v", err)
		c.notifyLocked("fullscreen is not available")
	}
}

// TogglePictureInPicture flips the platform's floating window mode.
// Fire-and-forget, no local state is tracked.
func (c *Controller) TogglePictureInPicture() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == nil {
		return
	}

	if err := c.element.TogglePictureInPicture(); err != nil {
		log.Warnf("picture-in-picture: %v", err)
		c.notifyLocked("picture-in-picture is not available")
	}
}

// HandleEvent mirrors an element notification into transport state.
// This is the only path that updates position, duration and the fullscreen
// flag, which keeps the mirrors consistent with the platform.
func (c *Controller) HandleEvent(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch event.Kind {
	case EventTimeUpdate:
		c.state.CurrentTime = event.Float
	case EventDurationChange:
		c.state.Duration = event.Float
	case EventPauseChange:
		c.state.IsPlaying = !event.Bool
	case EventWaiting:
		c.state.IsLoading = true
	case EventCanPlay:
		c.state.IsLoading = false
	case EventFullscreenChange:
		c.state.IsFullScreen = event.Bool
	case EventEnded:
		c.state.IsPlaying = false
	}

	c.changedLocked()
}

// Close cancels pending timers and detaches the element.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.glyphTimer != nil {
		c.glyphTimer.Stop()
		c.glyphTimer = nil
	}
	c.glyphVisible = false
	c.element = nil
}

// pulseGlyphLocked shows the feedback glyph and schedules its hide,
// cancelling any previous pulse first.
func (c *Controller) pulseGlyphLocked() {
	if c.glyphTimer != nil {
		c.glyphTimer.Stop()
	}

	c.glyphVisible = true
	c.glyphTimer = time.AfterFunc(glyphPulseDuration, func() {
		c.mu.Lock()
		c.glyphVisible = false
		c.mu.Unlock()

		if c.onChange != nil {
			c.onChange(c.State())
		}
	})
}

func (c *Controller) changedLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func (c *Controller) notifyLocked(message string) {
	if c.notify != nil {
		c.notify(message)
	}
}
