package tui

import (
	"context"
	"strings"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/auth"
	"github.com/codeit-cli/codeit/checkout"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/history"
	"github.com/codeit-cli/codeit/internal/cache"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/playback"
	"github.com/codeit-cli/codeit/query"
	"github.com/codeit-cli/codeit/track"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type coursesMsg []*course.Course
type curriculumMsg []*track.Track
type textMsg string
type historyMsg []*history.SavedTrack
type cartItemsMsg []*course.Course
type sessionMsg *checkout.Session
type purchasedMsg int
type errMsg error
type watchStartedMsg playback.State
type channelNotificationMsg string

// searchCourses resolves a query against the catalog. A query naming a known
// category narrows to that category, anything else fuzzy-matches the whole
// catalog. Results are cached on disk to spare the backend repeated trips.
func (b *statefulBubble) searchCourses(q string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		cacheKey := cache.GenerateKey(q, "search")
		var cached []*course.Course
		if cache.Read(cacheKey, &cached) {
			return coursesMsg(cached)
		}

		var (
			found []*course.Course
			err   error
		)

		if category, categoryErr := course.ResolveCategory(q); categoryErr == nil {
			found, err = b.client.CoursesByCategory(ctx, category.String())
		} else {
			found, err = b.client.Courses(ctx, 1, viper.GetInt(key.CatalogPageSize))
			if err == nil {
				found = lo.Filter(found, func(c *course.Course, _ int) bool {
					return fuzzy.MatchFold(q, c.Title) ||
						fuzzy.MatchFold(q, c.Description) ||
						lo.ContainsBy(c.Tags, func(tag string) bool {
							return strings.EqualFold(tag, q)
						})
				})
			}
		}

		if err != nil {
			return errMsg(err)
		}

		if len(found) > 0 {
			if err := query.Remember(q, len(found)); err != nil {
				log.Warnf("remembering query: %s", err)
			}
			if err := cache.Write(cacheKey, found); err != nil {
				log.Warnf("caching search results: %s", err)
			}
		}

		return coursesMsg(found)
	}
}

// loadCurriculum fetches the track tree of a course.
func (b *statefulBubble) loadCurriculum(c *course.Course) tea.Cmd {
	return func() tea.Msg {
		if len(c.Tracks) > 0 {
			return curriculumMsg(c.Tracks)
		}

		tracks, err := b.client.CourseContent(context.Background(), c.ID)
		if err != nil {
			return errMsg(err)
		}
		return curriculumMsg(tracks)
	}
}

// loadTextContent resolves the body of a text track, fetching it from the
// backend when the curriculum payload carried only the track skeleton.
func (b *statefulBubble) loadTextContent(t *track.Track) tea.Cmd {
	return func() tea.Msg {
		if content, ok := t.Content(); ok {
			return textMsg(content)
		}

		full, err := b.client.TrackContent(context.Background(), t.ID)
		if err != nil {
			return errMsg(err)
		}

		content, _ := full.Content()
		return textMsg(content)
	}
}

// startWatch spins up the player and points it at the selected video track.
func (b *statefulBubble) startWatch(t *track.Track) tea.Cmd {
	b.wirePlayer()
	b.chrome.PointerMove()

	controller := b.controller
	return func() tea.Msg {
		controller.SelectTrack(t)
		return watchStartedMsg(controller.State())
	}
}

func (b *statefulBubble) loadHistory() tea.Cmd {
	return func() tea.Msg {
		saved, err := history.Get()
		if err != nil {
			return errMsg(err)
		}

		records := lo.Values(saved)
		return historyMsg(records)
	}
}

func (b *statefulBubble) loadMyLearning() tea.Cmd {
	return func() tea.Msg {
		courses, err := b.client.MyCourses(context.Background(), 1, viper.GetInt(key.CatalogPageSize))
		if err != nil {
			return errMsg(err)
		}
		return coursesMsg(courses)
	}
}

func (b *statefulBubble) refreshCart() tea.Cmd {
	return func() tea.Msg {
		if err := b.cartBag.Refresh(context.Background()); err != nil {
			return errMsg(err)
		}
		return cartItemsMsg(b.cartBag.Items())
	}
}

func (b *statefulBubble) addToCart(c *course.Course) tea.Cmd {
	return func() tea.Msg {
		var owner *api.User
		if profile := auth.CachedProfile(); profile.IsPresent() {
			owner = profile.MustGet()
		}

		if err := b.cartBag.Add(context.Background(), c, owner); err != nil {
			return err.Error()
		}
		return "added " + c.Title + " to the cart"
	}
}

func (b *statefulBubble) beginCheckout() tea.Cmd {
	return func() tea.Msg {
		session, err := checkout.Begin(context.Background(), b.client, b.cartBag.Items())
		if err != nil {
			return errMsg(err)
		}

		if !session.IsFree() {
			if err := session.OpenPaymentPage(); err != nil {
				log.Warnf("opening payment page: %s", err)
			}
		}

		return sessionMsg(session)
	}
}

func (b *statefulBubble) confirmPurchase() tea.Cmd {
	session := b.session
	return func() tea.Msg {
		if session == nil {
			return nil
		}

		count := len(b.cartBag.Items())
		if err := session.Confirm(context.Background()); err != nil {
			return errMsg(err)
		}

		return purchasedMsg(count)
	}
}

func (b *statefulBubble) waitForPlayerState() tea.Cmd {
	return func() tea.Msg {
		return <-b.playerStateChannel
	}
}

func (b *statefulBubble) waitForChromeState() tea.Cmd {
	return func() tea.Msg {
		return <-b.chromeStateChannel
	}
}

func (b *statefulBubble) waitForNotification() tea.Cmd {
	return func() tea.Msg {
		return channelNotificationMsg(<-b.notificationChannel)
	}
}
