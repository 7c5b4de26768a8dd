package tui

import (
	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/auth"
	"github.com/codeit-cli/codeit/cart"
	"github.com/codeit-cli/codeit/checkout"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/history"
	"github.com/codeit-cli/codeit/internal/ui"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/playback"
	"github.com/codeit-cli/codeit/style"
	"github.com/codeit-cli/codeit/track"
	"github.com/codeit-cli/codeit/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// statefulBubble is the central bubbletea model. A single bubble drives every
// screen, switching behavior on its current state.
type statefulBubble struct {
	state         state
	statesHistory *util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	historyC  list.Model
	coursesC  list.Model
	tracksC   list.Model
	cartC     list.Model
	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Model

	// streams fed by playback callbacks
	playerStateChannel  chan playback.State
	chromeStateChannel  chan playback.ChromeState
	notificationChannel chan string

	// domain
	client  *api.Client
	cartBag *cart.Cart
	session *checkout.Session

	lastSearchQuery string
	selectedCourse  *course.Course
	folderTrail     *util.Stack[[]list.Item]
	selectedTrack   *track.Track

	controller  *playback.Controller
	chrome      *playback.Chrome
	dispatcher  *playback.Dispatcher
	mpv         *playback.MPV
	playerState playback.State
	chromeState playback.ChromeState

	initialCmds []tea.Cmd

	textContent         string
	lastRemovedID       string
	resumePercentage    float64
	lastSavedPercentage float64
	lastError           error

	width, height int
}

func (b *statefulBubble) newState(s state) {
	// do not push state if it is the same as the current state
	if b.state != s {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) setState(s state) {
	if b.state == watchState && s != watchState {
		b.leaveWatch()
	}

	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width, b.height = width, height

	listWidth := width - x
	listHeight := height - y

	b.historyC.SetSize(listWidth, listHeight)
	b.coursesC.SetSize(listWidth, listHeight)
	b.tracksC.SetSize(listWidth, listHeight)
	b.cartC.SetSize(listWidth, listHeight)
	b.progressC.Width = util.Min(listWidth, 80)
	b.helpC.Width = listWidth
}

// arrived replaces a transient loading screen with the state that its
// result belongs to, so that going back skips the spinner.
func (b *statefulBubble) arrived(s state) {
	if b.state == loadingState {
		b.setState(b.statesHistory.Pop())
	}
	b.newState(s)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.arrived(errorState)
}

// leaveWatch tears the player session down and persists final progress.
func (b *statefulBubble) leaveWatch() {
	b.saveProgress(true)

	if b.chrome != nil {
		b.chrome.Stop()
		b.chrome = nil
	}

	if b.mpv != nil {
		if err := b.mpv.Close(); err != nil {
			log.Warnf("closing player: %s", err)
		}
		b.mpv = nil
	}

	if b.controller != nil {
		b.controller.Close()
		b.controller = nil
		b.dispatcher = nil
	}
}

// saveProgress records how much of the selected video was watched. Tracks
// past the completion threshold leave the history instead.
func (b *statefulBubble) saveProgress(force bool) {
	if !viper.GetBool(key.HistorySaveOnWatch) {
		return
	}

	if b.selectedCourse == nil || b.selectedTrack == nil || !b.selectedTrack.IsPlayable() {
		return
	}

	s := b.playerState
	if s.Duration <= 0 {
		return
	}

	percentage := s.CurrentTime / s.Duration * 100
	record := history.NewSavedTrack(b.selectedCourse, b.selectedTrack)

	if percentage >= viper.GetFloat64(key.PlayerCompletionPercentage) {
		if err := history.Remove(record); err != nil {
			log.Warnf("removing finished track from history: %s", err)
		}
		b.lastSavedPercentage = percentage
		return
	}

	// Throttle disk writes while the position advances second by second.
	if !force && percentage-b.lastSavedPercentage < 5 {
		return
	}

	if err := history.Save(record, percentage); err != nil {
		log.Warnf("saving watch history: %s", err)
	} else {
		b.lastSavedPercentage = percentage
	}
}

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func newBubble() *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: &util.Stack[state]{},
		folderTrail:   &util.Stack[[]list.Item]{},
		keymap:        keymap,
		notifier:      &ui.Model{},

		playerStateChannel:  make(chan playback.State, 64),
		chromeStateChannel:  make(chan playback.ChromeState, 16),
		notificationChannel: make(chan string, 16),
	}

	bubble.client = api.NewClient(auth.Provider())
	bubble.cartBag = cart.New(bubble.client)

	makeList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))

		l := list.New(nil, delegate, 0, 0)
		l.KeyMap = keymap.forList()
		l.Title = title
		l.DisableQuitKeybindings()
		l.SetShowHelp(false)
		l.Styles.Title = lipgloss.NewStyle().
			Background(style.AccentColor).
			Foreground(style.Base).
			Padding(0, 1)
		return l
	}

	bubble.historyC = makeList("Continue Watching")
	bubble.coursesC = makeList("Courses")
	bubble.tracksC = makeList("Curriculum")
	bubble.cartC = makeList("Cart")

	input := textinput.New()
	input.Prompt = viper.GetString(key.TUISearchPromptString)
	input.Placeholder = "Search courses..."
	input.CharLimit = 60
	bubble.inputC = input

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(style.AccentColor)
	bubble.spinnerC = spin

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bubble.helpC = help.New()

	bubble.keymap.setState(searchState)
	bubble.state = searchState

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}

// wirePlayer creates a fresh playback pipeline for the watch screen. Events
// flow from mpv into the controller and surface as bubbletea messages.
func (b *statefulBubble) wirePlayer() {
	b.controller = playback.NewController(
		func(s playback.State) {
			select {
			case b.playerStateChannel <- s:
			default:
			}
		},
		func(message string) {
			select {
			case b.notificationChannel <- message:
			default:
			}
		},
	)

	b.chrome = playback.NewChrome(playback.DefaultChromeTimings, func(s playback.ChromeState) {
		select {
		case b.chromeStateChannel <- s:
		default:
		}
	})

	b.mpv = playback.NewMPV(b.controller.HandleEvent)
	b.controller.Bind(b.mpv)
	b.dispatcher = playback.NewDispatcher(b.controller)

	b.playerState = b.controller.State()
	b.chromeState = b.chrome.State()
	b.lastSavedPercentage = 0
}
