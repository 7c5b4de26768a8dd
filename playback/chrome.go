package playback

import (
	"sync"
	"time"
)

// ChromeState holds the visibility flags of the overlay UI drawn atop the
// media surface.
type ChromeState struct {
	ShowControls bool
	ShowTitle    bool
}

// ChromeTimings configures the idle timeouts of the visibility flags.
type ChromeTimings struct {
	// TitleHide is the idle delay after a pointer move before the title
	// overlay hides.
	TitleHide time.Duration
	// ControlsHide is the idle delay after a pointer move before the
	// control bar hides.
	ControlsHide time.Duration
	// LeaveHide is the delay after the pointer leaves the surface before
	// both flags hide.
	LeaveHide time.Duration
}

// DefaultChromeTimings matches the familiar player feel: the title goes
// first, the controls linger a bit longer.
var DefaultChromeTimings = ChromeTimings{
	TitleHide:    2 * time.Second,
	ControlsHide: 3 * time.Second,
	LeaveHide:    time.Second,
}

// Chrome drives the show/hide state of the title overlay and control bar
// from pointer activity. Each flag owns a single cancellable hide timer, so
// a new pointer event always replaces the pending hide instead of stacking
// another one.
type Chrome struct {
	mu      sync.Mutex
	state   ChromeState
	timings ChromeTimings

	titleTimer    *time.Timer
	controlsTimer *time.Timer

	onChange func(ChromeState)
	stopped  bool
}

// NewChrome creates a visibility controller with both flags shown.
// onChange may be nil.
func NewChrome(timings ChromeTimings, onChange func(ChromeState)) *Chrome {
	return &Chrome{
		state:    ChromeState{ShowControls: true, ShowTitle: true},
		timings:  timings,
		onChange: onChange,
	}
}

// State returns a snapshot of the visibility flags.
func (c *Chrome) State() ChromeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PointerMove shows both overlays and restarts their hide timers.
func (c *Chrome) PointerMove() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.state.ShowControls = true
	c.state.ShowTitle = true
	c.changedLocked()

	c.scheduleTitleHideLocked(c.timings.TitleHide)
	c.scheduleControlsHideLocked(c.timings.ControlsHide)
}

// PointerLeave hides both overlays after a short delay, cancelling any
// pending hide timers first.
func (c *Chrome) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}

	c.scheduleTitleHideLocked(c.timings.LeaveHide)
	c.scheduleControlsHideLocked(c.timings.LeaveHide)
}

// Stop cancels all pending timers. The controller ignores pointer events
// afterwards, so no flag flips after teardown.
func (c *Chrome) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.titleTimer != nil {
		c.titleTimer.Stop()
		c.titleTimer = nil
	}
	if c.controlsTimer != nil {
		c.controlsTimer.Stop()
		c.controlsTimer = nil
	}
}

func (c *Chrome) scheduleTitleHideLocked(after time.Duration) {
	if c.titleTimer != nil {
		c.titleTimer.Stop()
	}
	c.titleTimer = time.AfterFunc(after, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.stopped {
			return
		}
		c.state.ShowTitle = false
		c.changedLocked()
	})
}

func (c *Chrome) scheduleControlsHideLocked(after time.Duration) {
	if c.controlsTimer != nil {
		c.controlsTimer.Stop()
	}
	c.controlsTimer = time.AfterFunc(after, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.stopped {
			return
		}
		c.state.ShowControls = false
		c.changedLocked()
	})
}

func (c *Chrome) changedLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}
