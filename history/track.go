package history

import (
	"fmt"

	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/track"
)

// SavedTrack is a single watch progress entry in the user's history.
type SavedTrack struct {
	CourseID          string  `json:"course_id"`
	CourseTitle       string  `json:"course_title"`
	TrackID           string  `json:"track_id"`
	TrackTitle        string  `json:"track_title"`
	VideoURL          string  `json:"video_url"`
	VideosTotal       int     `json:"videos_total"`
	WatchedPercentage float64 `json:"watched_percentage"`
}

func (s *SavedTrack) encode() string {
	return fmt.Sprintf("%s/%s", s.CourseID, s.TrackID)
}

func (s *SavedTrack) String() string {
	return fmt.Sprintf("%s : %s (%.0f%%)", s.CourseTitle, s.TrackTitle, s.WatchedPercentage)
}

// NewSavedTrack builds a history record for a video node of a course.
func NewSavedTrack(c *course.Course, t *track.Track) *SavedTrack {
	url, _ := t.VideoURL()
	return &SavedTrack{
		CourseID:    c.ID,
		CourseTitle: c.Title,
		TrackID:     t.ID,
		TrackTitle:  t.Title,
		VideoURL:    url,
		VideosTotal: len(c.Videos()),
	}
}
