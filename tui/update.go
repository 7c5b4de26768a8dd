package tui

import (
	"context"
	"fmt"

	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/history"
	"github.com/codeit-cli/codeit/internal/ui"
	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/open"
	"github.com/codeit-cli/codeit/playback"
	"github.com/codeit-cli/codeit/query"
	"github.com/codeit-cli/codeit/track"
	"github.com/codeit-cli/codeit/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, b.shutdown()
		}

	case spinner.TickMsg:
		if b.loading || b.playerState.IsLoading {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			return b, cmd
		}
		return b, nil

	case watchStartedMsg:
		b.playerState = playback.State(msg)
		return b, b.spinnerC.Tick

	case playback.State:
		return b, b.handlePlayerState(msg)

	case playback.ChromeState:
		b.chromeState = msg
		return b, b.waitForChromeState()

	case channelNotificationMsg:
		cmd := b.notifier.Update(string(msg))
		return b, tea.Batch(cmd, b.waitForNotification())

	case string:
		return b, b.notifier.Update(msg)

	case ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)

	case errMsg:
		b.loading = false
		b.raiseError(msg)
		return b, nil

	case coursesMsg:
		b.loading = false
		b.coursesC.SetItems(coursesToItems(msg, b.cartBag))
		b.coursesC.ResetSelected()
		if b.lastSearchQuery != "" {
			b.coursesC.Title = fmt.Sprintf("Courses · %s", b.lastSearchQuery)
		}
		b.arrived(coursesState)
		return b, nil

	case curriculumMsg:
		b.loading = false
		b.folderTrail = &util.Stack[[]list.Item]{}
		b.tracksC.SetItems(tracksToItems(msg))
		b.tracksC.ResetSelected()
		b.arrived(tracksState)
		return b, nil

	case textMsg:
		b.loading = false
		b.textContent = string(msg)
		b.arrived(textState)
		return b, nil

	case historyMsg:
		b.loading = false
		b.historyC.SetItems(historyToItems(msg))
		b.historyC.ResetSelected()
		b.arrived(historyState)
		return b, nil

	case cartItemsMsg:
		b.loading = false
		b.cartC.SetItems(coursesToItems(msg, nil))
		b.cartC.ResetSelected()
		b.arrived(cartState)
		return b, nil

	case sessionMsg:
		b.loading = false
		b.session = msg
		b.arrived(checkoutState)
		return b, nil

	case purchasedMsg:
		b.loading = false
		b.session = nil
		b.statesHistory = &util.Stack[state]{}
		b.setState(searchState)
		refresh := func() tea.Msg {
			if err := b.cartBag.Refresh(context.Background()); err != nil {
				log.Warnf("refreshing cart after purchase: %s", err)
			}
			return nil
		}
		return b, tea.Batch(
			ui.Notify(fmt.Sprintf("purchased %d course(s), happy learning!", int(msg))),
			refresh,
		)
	}

	switch b.state {
	case searchState:
		return b.updateSearch(msg)
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case coursesState:
		return b.updateCourses(msg)
	case tracksState:
		return b.updateTracks(msg)
	case textState:
		return b.updateText(msg)
	case watchState:
		return b.updateWatch(msg)
	case cartState:
		return b.updateCart(msg)
	case checkoutState:
		return b.updateCheckout(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

// shutdown flushes pending cart removals and tears the player down before
// the program exits.
func (b *statefulBubble) shutdown() tea.Cmd {
	b.leaveWatch()
	b.cartBag.Flush(context.Background())
	return tea.Quit
}

func (b *statefulBubble) handlePlayerState(s playback.State) tea.Cmd {
	previousDuration := b.playerState.Duration
	b.playerState = s

	// Resuming from history needs the duration before it can seek.
	if b.resumePercentage > 0 && s.Duration > 0 && previousDuration == 0 && b.dispatcher != nil {
		b.dispatcher.SeekTo(s.Duration * b.resumePercentage / 100)
		b.resumePercentage = 0
	}

	b.saveProgress(false)

	return tea.Batch(b.waitForPlayerState(), b.spinnerC.Tick)
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			q := b.inputC.Value()
			if q == "" {
				return b, nil
			}

			b.lastSearchQuery = q
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.searchCourses(q), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion := query.Suggest(b.inputC.Value()); suggestion.IsPresent() {
				b.inputC.SetValue(suggestion.MustGet())
				b.inputC.CursorEnd()
			}
			return b, nil

		case key.Matches(msg, b.keymap.openCart):
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.refreshCart(), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.openHistory):
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.loadHistory(), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.openLibrary):
			b.loading = true
			b.lastSearchQuery = ""
			b.coursesC.Title = "My Learning"
			b.newState(loadingState)
			return b, tea.Batch(b.loadMyLearning(), b.spinnerC.Tick)
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, b.keymap.back) {
		b.loading = false
		b.previousState()
	}
	return b, nil
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			record, ok := selectedInternal[*history.SavedTrack](&b.historyC)
			if !ok {
				return b, nil
			}

			b.selectedCourse = &course.Course{ID: record.CourseID, Title: record.CourseTitle}
			b.selectedTrack = track.NewVideo(record.TrackID, record.TrackTitle, "", record.VideoURL)
			b.resumePercentage = record.WatchedPercentage
			b.newState(watchState)
			return b, tea.Batch(b.startWatch(b.selectedTrack), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.remove):
			record, ok := selectedInternal[*history.SavedTrack](&b.historyC)
			if !ok {
				return b, nil
			}

			if err := history.Remove(record); err != nil {
				log.Warnf("removing watch record: %s", err)
			}
			b.historyC.RemoveItem(b.historyC.Index())
			return b, nil

		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateCourses(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			selected, ok := selectedInternal[*course.Course](&b.coursesC)
			if !ok {
				return b, nil
			}

			b.selectedCourse = selected
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.loadCurriculum(selected), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.addToCart):
			selected, ok := selectedInternal[*course.Course](&b.coursesC)
			if !ok {
				return b, nil
			}
			return b, b.addToCart(selected)

		case key.Matches(msg, b.keymap.openCart):
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.refreshCart(), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.coursesC, cmd = b.coursesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateTracks(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			selected, ok := selectedInternal[*track.Track](&b.tracksC)
			if !ok {
				return b, nil
			}

			switch selected.Type() {
			case track.TypeFolder:
				subs, _ := selected.SubTracks()
				b.folderTrail.Push(b.tracksC.Items())
				b.tracksC.SetItems(tracksToItems(subs))
				b.tracksC.ResetSelected()
				return b, nil

			case track.TypeVideo:
				b.selectedTrack = selected
				b.resumePercentage = 0
				b.newState(watchState)
				return b, tea.Batch(b.startWatch(selected), b.spinnerC.Tick)

			default:
				b.selectedTrack = selected
				b.loading = true
				b.newState(loadingState)
				return b, tea.Batch(b.loadTextContent(selected), b.spinnerC.Tick)
			}

		case key.Matches(msg, b.keymap.openURL):
			selected, ok := selectedInternal[*track.Track](&b.tracksC)
			if !ok {
				return b, nil
			}

			if rawURL, hasVideo := selected.VideoURL(); hasVideo {
				if err := open.Start(track.PlayableURL(rawURL)); err != nil {
					return b, ui.Notify("could not open the browser")
				}
			}
			return b, nil

		case key.Matches(msg, b.keymap.back):
			if b.folderTrail.Len() > 0 {
				b.tracksC.SetItems(b.folderTrail.Pop())
				b.tracksC.ResetSelected()
				return b, nil
			}

			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.tracksC, cmd = b.tracksC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateText(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.previousState()
		case key.Matches(msg, b.keymap.quit):
			return b, b.shutdown()
		}
	}
	return b, nil
}

func (b *statefulBubble) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.dispatcher == nil {
		if key.Matches(keyMsg, b.keymap.back) {
			b.previousState()
		}
		return b, nil
	}

	// Any transport interaction counts as pointer activity for the chrome.
	if b.chrome != nil {
		b.chrome.PointerMove()
		b.chromeState = b.chrome.State()
	}

	switch {
	case key.Matches(keyMsg, b.keymap.playPause):
		b.dispatcher.Dispatch(playback.CommandTogglePlayPause)
	case key.Matches(keyMsg, b.keymap.seekForward):
		b.dispatcher.Dispatch(playback.CommandSeekForward)
	case key.Matches(keyMsg, b.keymap.seekBackward):
		b.dispatcher.Dispatch(playback.CommandSeekBackward)
	case key.Matches(keyMsg, b.keymap.volumeUp):
		b.dispatcher.Dispatch(playback.CommandVolumeUp)
	case key.Matches(keyMsg, b.keymap.volumeDown):
		b.dispatcher.Dispatch(playback.CommandVolumeDown)
	case key.Matches(keyMsg, b.keymap.mute):
		b.dispatcher.Dispatch(playback.CommandToggleMute)
	case key.Matches(keyMsg, b.keymap.fullscreen):
		b.dispatcher.Dispatch(playback.CommandToggleFullscreen)
	case key.Matches(keyMsg, b.keymap.pictureInPicture):
		b.dispatcher.Dispatch(playback.CommandTogglePictureInPicture)
	case key.Matches(keyMsg, b.keymap.speedUp):
		b.stepSpeed(1)
	case key.Matches(keyMsg, b.keymap.speedDown):
		b.stepSpeed(-1)
	case key.Matches(keyMsg, b.keymap.back):
		b.previousState()
	}

	return b, nil
}

func (b *statefulBubble) stepSpeed(direction int) {
	index := lo.IndexOf(playback.Speeds, b.playerState.Speed)
	if index < 0 {
		index = lo.IndexOf(playback.Speeds, 1)
	}

	next := index + direction
	if next < 0 || next >= len(playback.Speeds) {
		return
	}

	if err := b.dispatcher.SetSpeed(playback.Speeds[next]); err != nil {
		log.Warnf("changing playback speed: %s", err)
	}
}

func (b *statefulBubble) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.remove):
			selected, ok := selectedInternal[*course.Course](&b.cartC)
			if !ok {
				return b, nil
			}

			b.cartBag.Remove(selected.ID)
			b.lastRemovedID = selected.ID
			b.cartC.RemoveItem(b.cartC.Index())
			return b, ui.Notify(fmt.Sprintf("removed %s, press u to undo", selected.Title))

		case key.Matches(msg, b.keymap.undoRemove):
			if b.lastRemovedID == "" || !b.cartBag.Undo(b.lastRemovedID) {
				return b, nil
			}

			b.lastRemovedID = ""
			b.cartC.SetItems(coursesToItems(b.cartBag.Items(), nil))
			return b, ui.Notify("removal undone")

		case key.Matches(msg, b.keymap.buy):
			if len(b.cartBag.Items()) == 0 {
				return b, ui.Notify("the cart is empty")
			}

			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.beginCheckout(), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.cartC, cmd = b.cartC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			b.loading = true
			b.newState(loadingState)
			return b, tea.Batch(b.confirmPurchase(), b.spinnerC.Tick)

		case key.Matches(msg, b.keymap.back):
			b.session = nil
			b.previousState()
		}
	}
	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.previousState()
		case key.Matches(msg, b.keymap.quit):
			return b, b.shutdown()
		}
	}
	return b, nil
}

func selectedInternal[T any](l *list.Model) (value T, ok bool) {
	item, isItem := l.SelectedItem().(*listItem)
	if !isItem {
		return
	}

	value, ok = item.internal.(T)
	return
}

func coursesToItems(courses []*course.Course, bag interface{ Contains(string) bool }) []list.Item {
	return lo.Map(courses, func(c *course.Course, _ int) list.Item {
		item := &listItem{internal: c}
		if bag != nil && bag.Contains(c.ID) {
			item.selected = true
		}
		return item
	})
}

func tracksToItems(tracks []*track.Track) []list.Item {
	return lo.Map(tracks, func(t *track.Track, _ int) list.Item {
		return &listItem{internal: t}
	})
}

func historyToItems(records []*history.SavedTrack) []list.Item {
	return lo.Map(records, func(r *history.SavedTrack, _ int) list.Item {
		return &listItem{internal: r}
	})
}
