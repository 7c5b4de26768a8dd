// Package course holds the marketplace course model and the category taxonomy.
package course

import (
	"fmt"

	"github.com/codeit-cli/codeit/style"
	"github.com/codeit-cli/codeit/track"
	"github.com/samber/lo"
)

// Status of a course in the marketplace lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Creator identifies the account that authored a course.
type Creator struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Review is a student rating attached to a course.
type Review struct {
	ID        string  `json:"_id"`
	Student   string  `json:"student"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}

// Course is a marketplace listing together with its curriculum tree.
type Course struct {
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Price            float64        `json:"price"`
	Thumbnail        string         `json:"thumbnail"`
	Category         Category       `json:"category"`
	Tags             []string       `json:"tags"`
	CreatedBy        Creator        `json:"createdBy"`
	Tracks           []*track.Track `json:"tracks"`
	StudentsEnrolled []string       `json:"studentsEnrolled"`
	Reviews          []Review       `json:"reviews"`
	AverageRating    float64        `json:"averageRating"`
	Status           string         `json:"status"`
	UpdatedAt        string         `json:"updatedAt"`
}

// String returns the course title.
func (c *Course) String() string {
	return c.Title
}

// IsPublished reports whether the course is visible in the public catalog.
func (c *Course) IsPublished() bool {
	return c.Status == StatusPublished
}

// IsFree reports whether the course can be acquired without a payment order.
func (c *Course) IsFree() bool {
	return c.Price == 0
}

// PrettyPrice renders the price for list views.
func (c *Course) PrettyPrice() string {
	if c.IsFree() {
		return style.Faint("free")
	}
	return fmt.Sprintf("₹%.0f", c.Price)
}

// Videos flattens the playable nodes of the whole curriculum in order.
func (c *Course) Videos() []*track.Track {
	return lo.FlatMap(c.Tracks, func(t *track.Track, _ int) []*track.Track {
		return t.Videos()
	})
}

// FindTrack searches the curriculum tree for a node by id.
func (c *Course) FindTrack(id string) (*track.Track, bool) {
	var find func(nodes []*track.Track) (*track.Track, bool)
	find = func(nodes []*track.Track) (*track.Track, bool) {
		for _, node := range nodes {
			if node.ID == id {
				return node, true
			}
			if subs, ok := node.SubTracks(); ok {
				if found, ok := find(subs); ok {
					return found, true
				}
			}
		}
		return nil, false
	}

	return find(c.Tracks)
}

// CreateData is the payload for publishing a new course listing.
type CreateData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
}

// InstructorData aggregates the creator-side dashboard numbers.
type InstructorData struct {
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	Avatar           string  `json:"avatar"`
	PublishedCourses int     `json:"publishedCourses"`
	TotalStudents    int     `json:"totalStudents"`
	TotalEarnings    float64 `json:"totalEarnings"`
}
