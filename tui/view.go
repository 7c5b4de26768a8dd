package tui

import (
	"fmt"
	"strings"

	"github.com/codeit-cli/codeit/icon"
	"github.com/codeit-cli/codeit/playback"
	"github.com/codeit-cli/codeit/query"
	"github.com/codeit-cli/codeit/style"
	"github.com/codeit-cli/codeit/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

func (b *statefulBubble) View() string {
	var view string

	switch b.state {
	case searchState:
		view = b.viewSearch()
	case loadingState:
		view = b.viewLoading()
	case errorState:
		view = b.viewError()
	case textState:
		view = b.viewText()
	case watchState:
		view = b.viewWatch()
	case checkoutState:
		view = b.viewCheckout()
	case historyState:
		view = b.historyC.View() + "\n" + b.helpC.View(b.keymap)
	case coursesState:
		view = b.coursesC.View() + "\n" + b.helpC.View(b.keymap)
	case tracksState:
		view = b.tracksC.View() + "\n" + b.helpC.View(b.keymap)
	case cartState:
		view = b.viewCart()
	}

	return b.notifier.View(paddingStyle.Render(view))
}

func (b *statefulBubble) viewSearch() string {
	var sb strings.Builder

	sb.WriteString(style.Title("CODEIT"))
	sb.WriteString(" ")
	sb.WriteString(style.Faint("learn something new today"))
	sb.WriteString("\n\n")
	sb.WriteString(b.inputC.View())
	sb.WriteString("\n")

	if typed := b.inputC.Value(); typed != "" {
		if suggestion := query.Suggest(typed); suggestion.IsPresent() && suggestion.MustGet() != typed {
			sb.WriteString(style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Search), suggestion.MustGet())))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(b.helpC.View(b.keymap))
	return sb.String()
}

func (b *statefulBubble) viewLoading() string {
	return fmt.Sprintf("%s Loading...\n\n%s", b.spinnerC.View(), b.helpC.View(b.keymap))
}

func (b *statefulBubble) viewError() string {
	message := "something went wrong"
	if b.lastError != nil {
		message = b.lastError.Error()
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		style.ErrorTitle("Error"),
		style.Fg(style.ErrorColor)(wordwrap.String(message, util.Min(b.width-4, 80))),
		b.helpC.View(b.keymap),
	)
}

func (b *statefulBubble) viewText() string {
	var sb strings.Builder

	if b.selectedTrack != nil {
		sb.WriteString(style.Title(b.selectedTrack.Title))
		sb.WriteString("\n\n")
	}

	sb.WriteString(wordwrap.String(b.textContent, util.Min(b.width-4, 100)))
	sb.WriteString("\n\n")
	sb.WriteString(b.helpC.View(b.keymap))
	return sb.String()
}

// viewWatch renders the playback control surface. The title overlay and the
// control bar come and go with the chrome state while the video keeps
// playing in the external window.
func (b *statefulBubble) viewWatch() string {
	var sb strings.Builder
	s := b.playerState

	if b.chromeState.ShowTitle && b.selectedTrack != nil {
		sb.WriteString(style.Title(b.selectedTrack.Title))
		if b.selectedCourse != nil {
			sb.WriteString(" ")
			sb.WriteString(style.Faint(b.selectedCourse.Title))
		}
	}
	sb.WriteString("\n\n")

	switch {
	case s.IsLoading:
		sb.WriteString(fmt.Sprintf("%s buffering", b.spinnerC.View()))
	case b.controller != nil && b.controller.GlyphVisible():
		glyph := lo.Ternary(s.IsPlaying, icon.Get(icon.Play), icon.Get(icon.Pause))
		sb.WriteString(style.Bold(glyph))
	default:
		sb.WriteString(" ")
	}
	sb.WriteString("\n\n")

	if s.Duration > 0 {
		sb.WriteString(b.progressC.ViewAs(s.CurrentTime / s.Duration))
		sb.WriteString("\n")
	}
	sb.WriteString(style.Faint(playback.FormatProgress(s.CurrentTime, s.Duration)))
	sb.WriteString("\n\n")

	if b.chromeState.ShowControls {
		sb.WriteString(b.viewControlBar())
		sb.WriteString("\n")
		sb.WriteString(b.helpC.View(b.keymap))
	}

	return sb.String()
}

func (b *statefulBubble) viewControlBar() string {
	s := b.playerState

	volumeIcon := lo.Ternary(s.IsMuted, icon.Get(icon.Muted), icon.Get(icon.Volume))
	parts := []string{
		fmt.Sprintf("%s %3.0f%%", volumeIcon, s.Volume*100),
		fmt.Sprintf("%gx", s.Speed),
		s.Quality,
	}

	if s.IsFullScreen {
		parts = append(parts, "fullscreen")
	}

	return style.Faint(strings.Join(parts, "  "))
}

func (b *statefulBubble) viewCart() string {
	var sb strings.Builder

	sb.WriteString(b.cartC.View())
	sb.WriteString("\n")
	sb.WriteString(style.Bold(fmt.Sprintf("Total: ₹%.2f", b.cartBag.Total())))
	sb.WriteString("\n")
	sb.WriteString(b.helpC.View(b.keymap))
	return sb.String()
}

func (b *statefulBubble) viewCheckout() string {
	var sb strings.Builder

	sb.WriteString(style.Title("Checkout"))
	sb.WriteString("\n\n")

	for _, item := range b.cartBag.Items() {
		sb.WriteString(fmt.Sprintf("%s %s\n", item.Title, style.Faint(item.PrettyPrice())))
	}

	sb.WriteString("\n")
	sb.WriteString(style.Bold(fmt.Sprintf("Total: ₹%.2f", b.cartBag.Total())))
	sb.WriteString("\n\n")

	if b.session != nil && !b.session.IsFree() {
		sb.WriteString(icon.Get(icon.Link))
		sb.WriteString(" ")
		sb.WriteString(style.Fg(style.SecondaryColor)(b.session.PaymentURL()))
		sb.WriteString("\n")
		sb.WriteString(style.Faint("complete the payment in the browser, then confirm"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(b.helpC.View(b.keymap))
	return sb.String()
}
