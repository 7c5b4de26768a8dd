package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/track"
)

func pagedQuery(page, limit int) url.Values {
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

// Courses fetches a page of the public catalog.
func (c *Client) Courses(ctx context.Context, page, limit int) ([]*course.Course, error) {
	var courses []*course.Course
	if err := c.get(ctx, "/course/getAll", pagedQuery(page, limit), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// MyCourses fetches a page of the courses owned by the current account.
func (c *Client) MyCourses(ctx context.Context, page, limit int) ([]*course.Course, error) {
	var courses []*course.Course
	if err := c.get(ctx, "/course/my", pagedQuery(page, limit), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches a single listing by id.
func (c *Client) Course(ctx context.Context, id string) (*course.Course, error) {
	var result course.Course
	if err := c.get(ctx, "/course/get", url.Values{"courseId": {id}}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CoursesByCategory fetches the catalog slice for a taxonomy key.
// Display names are normalized into keys the backend expects.
func (c *Client) CoursesByCategory(ctx context.Context, category string) ([]*course.Course, error) {
	normalized := strings.ReplaceAll(strings.ToLower(category), " ", "-")

	var courses []*course.Course
	if err := c.get(ctx, "/course/category", url.Values{"category": {normalized}}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// InstructorCourses fetches every listing authored by the current account.
func (c *Client) InstructorCourses(ctx context.Context) ([]*course.Course, error) {
	var courses []*course.Course
	if err := c.get(ctx, "/course/instructor", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse publishes a new draft listing.
func (c *Client) CreateCourse(ctx context.Context, data course.CreateData) (*course.Course, error) {
	var created course.Course
	if err := c.post(ctx, "/course/add", data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCourseStatus moves a listing between draft and published.
func (c *Client) UpdateCourseStatus(ctx context.Context, courseID, status string) error {
	query := url.Values{"courseId": {courseID}}
	return c.put(ctx, "/course/status", query, map[string]string{"status": status}, nil)
}

// CourseContent fetches the full curriculum tree of a purchased course.
func (c *Client) CourseContent(ctx context.Context, courseID string) ([]*track.Track, error) {
	var tracks []*track.Track
	if err := c.get(ctx, "/course/content", url.Values{"courseId": {courseID}}, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// TrackContent fetches a single track node, including its text body or
// media source.
func (c *Client) TrackContent(ctx context.Context, trackID string) (*track.Track, error) {
	var result track.Track
	if err := c.get(ctx, "/course/content/track", url.Values{"trackId": {trackID}}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddTrack appends a new curriculum node to a course.
func (c *Client) AddTrack(ctx context.Context, courseID string, t *track.Track) (*track.Track, error) {
	body := map[string]any{"courseId": courseID, "track": t}

	var created track.Track
	if err := c.post(ctx, "/course/content/add", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveTrack deletes a curriculum node from a course.
func (c *Client) RemoveTrack(ctx context.Context, courseID, trackID string) error {
	body := map[string]string{"courseId": courseID, "trackId": trackID}
	return c.post(ctx, "/course/content/remove", body, nil)
}

// AddTrackContent attaches a text body to a track node.
func (c *Client) AddTrackContent(ctx context.Context, trackID, content string) error {
	body := map[string]string{"trackId": trackID, "content": content}
	return c.post(ctx, "/course/content/track/add", body, nil)
}

// PaymentProof is handed back by the hosted checkout page after a
// successful payment.
type PaymentProof struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Signature string `json:"signature"`
}

// Purchase finalizes a checkout, granting access to the given courses.
// The proof is nil for free carts.
func (c *Client) Purchase(ctx context.Context, items []*course.Course, proof *PaymentProof) error {
	body := map[string]any{"items": items}
	if proof != nil {
		body["payment"] = proof
	}
	return c.post(ctx, "/course/purchase", body, nil)
}

// InstructorDashboard fetches the creator-side aggregate numbers.
func (c *Client) InstructorDashboard(ctx context.Context) (*course.InstructorData, error) {
	var data course.InstructorData
	if err := c.get(ctx, "/dashboard", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
