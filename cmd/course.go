// Package cmd implements the command-line interface for codeit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/auth"
	"github.com/codeit-cli/codeit/color"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/icon"
	"github.com/codeit-cli/codeit/style"
	"github.com/codeit-cli/codeit/track"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(courseCmd)
}

// courseCmd serves as the parent command for course management.
var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse and manage courses from the command line",
}

// requireClient returns an authenticated API client or exits.
func requireClient() *api.Client {
	if !auth.LoggedIn() {
		handleErr(errors.New("not logged in, run `codeit login` first"))
	}
	return api.NewClient(auth.Provider())
}

func printCourses(courses []*course.Course) {
	if len(courses) == 0 {
		fmt.Println(style.Faint("nothing here yet"))
		return
	}

	for _, c := range courses {
		fmt.Printf(
			"%s %s %s\n  %s\n",
			style.Fg(color.Yellow)(c.ID),
			style.Bold(c.Title),
			c.PrettyPrice(),
			style.Faint(c.Category.DisplayName()),
		)
	}
}

func init() {
	courseCmd.AddCommand(coursePurchasedCmd)
}

// coursePurchasedCmd lists the courses the user has bought.
var coursePurchasedCmd = &cobra.Command{
	Use:     "purchased",
	Short:   "List the courses you own",
	Aliases: []string{"my"},
	Run: func(cmd *cobra.Command, args []string) {
		courses, err := requireClient().MyCourses(context.Background(), 1, 100)
		handleErr(err)
		printCourses(courses)
	},
}

func init() {
	courseCmd.AddCommand(courseMineCmd)
}

// courseMineCmd lists the courses the user teaches.
var courseMineCmd = &cobra.Command{
	Use:   "teaching",
	Short: "List the courses you publish as an instructor",
	Run: func(cmd *cobra.Command, args []string) {
		courses, err := requireClient().InstructorCourses(context.Background())
		handleErr(err)
		printCourses(courses)
	},
}

func init() {
	courseCmd.AddCommand(courseCreateCmd)
}

// courseCreateCmd interactively drafts a new course listing.
var courseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new course listing as a draft",
	Run: func(cmd *cobra.Command, args []string) {
		client := requireClient()

		if profile := auth.CachedProfile(); profile.IsPresent() && !profile.MustGet().CanPublish() {
			handleErr(errors.New("your account has no instructor role"))
		}

		categoryNames := lo.Map(course.Categories, func(c course.Category, _ int) string {
			return c.DisplayName()
		})

		answers := struct {
			Title       string
			Description string
			Price       float64
			Category    string
			Thumbnail   string
			Tags        string
		}{}

		questions := []*survey.Question{
			{Name: "title", Prompt: &survey.Input{Message: "Title:"}, Validate: survey.Required},
			{Name: "description", Prompt: &survey.Multiline{Message: "Description:"}, Validate: survey.Required},
			{Name: "price", Prompt: &survey.Input{Message: "Price (0 for free):", Default: "0"}},
			{Name: "category", Prompt: &survey.Select{Message: "Category:", Options: categoryNames}},
			{Name: "thumbnail", Prompt: &survey.Input{Message: "Thumbnail URL:"}},
			{Name: "tags", Prompt: &survey.Input{Message: "Tags (comma separated):"}},
		}
		handleErr(survey.Ask(questions, &answers))

		category, err := course.ResolveCategory(answers.Category)
		handleErr(err)

		var subCategory string
		if subs, ok := course.SubCategories[category]; ok && len(subs) > 0 {
			options := lo.Map(subs, func(s course.SubCategory, _ int) string {
				return s.DisplayName
			})

			var picked string
			handleErr(survey.AskOne(&survey.Select{Message: "Subcategory:", Options: options}, &picked))

			if match, found := lo.Find(subs, func(s course.SubCategory) bool {
				return s.DisplayName == picked
			}); found {
				subCategory = match.Key
			}
		}

		tags := lo.FilterMap(strings.Split(answers.Tags, ","), func(tag string, _ int) (string, bool) {
			trimmed := strings.TrimSpace(tag)
			return trimmed, trimmed != ""
		})

		created, err := client.CreateCourse(context.Background(), course.CreateData{
			Title:       answers.Title,
			Description: answers.Description,
			Price:       answers.Price,
			Category:    category.String(),
			SubCategory: subCategory,
			Tags:        tags,
			Thumbnail:   answers.Thumbnail,
		})
		handleErr(err)

		fmt.Printf(
			"%s created draft %s (%s)\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(created.Title),
			style.Fg(color.Yellow)(created.ID),
		)
	},
}

func init() {
	courseCmd.AddCommand(coursePublishCmd)
	coursePublishCmd.Flags().BoolP("draft", "d", false, "Move the course back to draft instead")
}

// coursePublishCmd flips the publication status of a course.
var coursePublishCmd = &cobra.Command{
	Use:   "publish [course-id]",
	Short: "Publish a drafted course, or unpublish it with --draft",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status := string(course.StatusPublished)
		if lo.Must(cmd.Flags().GetBool("draft")) {
			status = string(course.StatusDraft)
		}

		handleErr(requireClient().UpdateCourseStatus(context.Background(), args[0], status))
		fmt.Printf(
			"%s course %s is now %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(args[0]),
			style.Bold(status),
		)
	},
}

func init() {
	courseCmd.AddCommand(courseAddTrackCmd)
}

// courseAddTrackCmd interactively appends a curriculum node to a course.
var courseAddTrackCmd = &cobra.Command{
	Use:   "add-track [course-id]",
	Short: "Append a new curriculum track to a course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := requireClient()

		answers := struct {
			Title       string
			Description string
			Kind        string
			VideoURL    string
			Content     string
		}{}

		questions := []*survey.Question{
			{Name: "title", Prompt: &survey.Input{Message: "Title:"}, Validate: survey.Required},
			{Name: "description", Prompt: &survey.Input{Message: "Description:"}},
			{Name: "kind", Prompt: &survey.Select{
				Message: "Type:",
				Options: []string{string(track.TypeFolder), string(track.TypeVideo), string(track.TypeText)},
			}},
		}
		handleErr(survey.Ask(questions, &answers))

		var node *track.Track
		switch track.Type(answers.Kind) {
		case track.TypeVideo:
			handleErr(survey.AskOne(&survey.Input{Message: "Video URL:"}, &answers.VideoURL, survey.WithValidator(survey.Required)))
			node = track.NewVideo("", answers.Title, answers.Description, answers.VideoURL)
		case track.TypeText:
			handleErr(survey.AskOne(&survey.Editor{Message: "Content:"}, &answers.Content, survey.WithValidator(survey.Required)))
			node = track.NewText("", answers.Title, answers.Description, answers.Content)
		default:
			node = track.NewFolder("", answers.Title, answers.Description)
		}

		created, err := client.AddTrack(context.Background(), args[0], node)
		handleErr(err)

		fmt.Printf(
			"%s added track %s (%s)\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(created.Title),
			style.Fg(color.Yellow)(created.ID),
		)
	},
}

func init() {
	courseCmd.AddCommand(courseRemoveTrackCmd)
}

// courseRemoveTrackCmd deletes a curriculum node from a course.
var courseRemoveTrackCmd = &cobra.Command{
	Use:   "remove-track [course-id] [track-id]",
	Short: "Remove a curriculum track from a course",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(requireClient().RemoveTrack(context.Background(), args[0], args[1]))
		fmt.Printf(
			"%s removed track %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(args[1]),
		)
	},
}

func init() {
	courseCmd.AddCommand(courseAddTextCmd)
}

// courseAddTextCmd attaches text content to a curriculum track.
var courseAddTextCmd = &cobra.Command{
	Use:   "add-text [track-id]",
	Short: "Attach text content to a curriculum track",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var content string
		handleErr(survey.AskOne(&survey.Editor{Message: "Track content:"}, &content, survey.WithValidator(survey.Required)))

		handleErr(requireClient().AddTrackContent(context.Background(), args[0], content))
		fmt.Printf("%s content saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	courseCmd.AddCommand(courseDashboardCmd)
}

// courseDashboardCmd shows the instructor earnings summary.
var courseDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Display the instructor dashboard summary",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := requireClient().InstructorDashboard(context.Background())
		handleErr(err)

		fmt.Printf(
			"%s %s\n\n%s %d\n%s %d\n%s ₹%.2f\n",
			style.Bold(data.Username), style.Faint(data.Email),
			style.Faint("Published courses:"), data.PublishedCourses,
			style.Faint("Total students:   "), data.TotalStudents,
			style.Faint("Total earnings:   "), data.TotalEarnings,
		)
	},
}
