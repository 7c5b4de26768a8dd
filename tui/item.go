package tui

import (
	"fmt"
	"strings"

	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/history"
	"github.com/codeit-cli/codeit/icon"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/style"
	"github.com/codeit-cli/codeit/track"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type listItem struct {
	selected bool
	internal interface{}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *course.Course:
		title = e.Title
		if viper.GetBool(key.TUIShowPrices) {
			title = fmt.Sprintf("%s %s", e.Title, style.Faint(e.PrettyPrice()))
		}
	case *track.Track:
		title = fmt.Sprintf("%s %s", trackIcon(e), e.Title)
	case *history.SavedTrack:
		title = e.String()
	case fmt.Stringer:
		title = e.String()
	case string:
		title = e
	default:
		title = fmt.Sprintf("%v", e)
	}

	if t.selected {
		title = fmt.Sprintf("%s %s", icon.Get(icon.Cart), title)
	}

	return
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *course.Course:
		var parts []string
		parts = append(parts, e.Category.DisplayName())
		if e.AverageRating > 0 {
			parts = append(parts, fmt.Sprintf("%.1f%s", e.AverageRating, icon.Get(icon.Mark)))
		}
		if count := len(e.StudentsEnrolled); count > 0 {
			parts = append(parts, lo.Ternary(count == 1, "1 student", fmt.Sprintf("%d students", count)))
		}
		return strings.Join(parts, " · ")
	case *track.Track:
		if e.Description != "" {
			return e.Description
		}
		if subs, ok := e.SubTracks(); ok {
			return fmt.Sprintf("%d items", len(subs))
		}
		return string(e.Type())
	case *history.SavedTrack:
		return e.CourseTitle
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	return t.Title()
}

func trackIcon(tr *track.Track) string {
	switch tr.Type() {
	case track.TypeFolder:
		return icon.Get(icon.Folder)
	case track.TypeVideo:
		return icon.Get(icon.Video)
	default:
		return icon.Get(icon.Text)
	}
}
