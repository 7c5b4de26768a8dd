package track

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codeit-cli/codeit/util"
)

// youtubeIDPattern extracts the 11-character video identifier from the common YouTube URL shapes.
var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)(?P<id>[^#&?]{11})`)

// IsYouTube reports whether the URL points at YouTube rather than a directly streamable file.
func IsYouTube(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// YouTubeID extracts the video identifier from a YouTube URL.
func YouTubeID(url string) (string, bool) {
	groups := util.ReGroups(youtubeIDPattern, url)
	id, ok := groups["id"]
	return id, ok && len(id) == 11
}

// PlayableURL normalizes a track's media source for the player backend.
// YouTube links are rewritten to their canonical watch URL (mpv resolves
// these through yt-dlp); anything else is passed through untouched.
func PlayableURL(url string) string {
	if !IsYouTube(url) {
		return url
	}

	if id, ok := YouTubeID(url); ok {
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
	}
	return url
}
