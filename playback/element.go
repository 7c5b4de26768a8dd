// Package playback implements the media playback control surface: the
// transport state controller, the chrome visibility timers, and the command
// dispatcher that sits between key bindings and the bound media element.
//
// The underlying media surface is abstracted behind the Element interface.
// The primary implementation drives mpv through its JSON-IPC protocol.
package playback

// EventKind identifies a platform notification mirrored into transport state.
type EventKind int

const (
	// EventTimeUpdate carries the current playback position in seconds.
	EventTimeUpdate EventKind = iota
	// EventDurationChange carries the media duration in seconds.
	EventDurationChange
	// EventPauseChange carries the element's paused flag.
	EventPauseChange
	// EventWaiting fires when the element stalls on buffering.
	EventWaiting
	// EventCanPlay fires when buffering resolves.
	EventCanPlay
	// EventFullscreenChange carries the platform fullscreen flag.
	EventFullscreenChange
	// EventEnded fires when the media reaches its end.
	EventEnded
)

// Event is a single platform notification from the bound element.
type Event struct {
	Kind  EventKind
	Float float64
	Bool  bool
}

// EventHandler receives element notifications on a background goroutine.
type EventHandler func(Event)

// Element is the media surface commanded by the controller.
//
// All operations are best-effort against a live backend. Implementations
// report platform rejections through errors; they never block on playback
// progress itself, which is observed through the event handler instead.
type Element interface {
	// Load binds a media source, replacing any current one.
	Load(url, title string) error

	// SetPaused suspends or resumes playback.
	SetPaused(paused bool) error

	// SeekTo moves playback to an absolute position in seconds.
	SeekTo(seconds float64) error

	// SetVolume applies a volume level in [0, 1].
	SetVolume(level float64) error

	// SetMuted toggles audio output without touching the volume level.
	SetMuted(muted bool) error

	// SetSpeed applies a playback rate multiplier.
	SetSpeed(multiplier float64) error

	// SetFullscreen asks the platform to enter or leave fullscreen.
	// The resulting state arrives as an EventFullscreenChange, not here.
	SetFullscreen(on bool) error

	// TogglePictureInPicture flips the platform's floating window mode.
	// Fire-and-forget: no state is tracked for it.
	TogglePictureInPicture() error

	// Close tears down the backend and releases its resources.
	Close() error
}
