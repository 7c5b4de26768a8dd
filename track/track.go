// Package track defines the recursive content-node model for course curricula.
//
// A track is either a folder (a pure container of sub-tracks), a video, or a
// text page. Exactly one of the type-specific payloads is populated, and the
// accessors force consumers to branch on the node type before reaching it.
package track

import (
	"encoding/json"
	"fmt"
)

// Type discriminates the behavior of a content node.
type Type string

const (
	TypeFolder Type = "folder"
	TypeVideo  Type = "video"
	TypeText   Type = "text"
)

// Track represents a single content node within a course's curriculum tree.
// Identity is by ID. The type-specific payload is reachable only through the
// checked accessors, which keeps the exactly-one-of invariant at the API
// boundary instead of relying on callers to not touch the wrong field.
type Track struct {
	ID          string
	Title       string
	Description string

	kind      Type
	videoURL  string
	content   string
	subTracks []*Track
}

// NewFolder creates a container node holding the given sub-tracks.
func NewFolder(id, title, description string, subTracks ...*Track) *Track {
	return &Track{
		ID:          id,
		Title:       title,
		Description: description,
		kind:        TypeFolder,
		subTracks:   subTracks,
	}
}

// NewVideo creates a playable video node.
func NewVideo(id, title, description, videoURL string) *Track {
	return &Track{
		ID:          id,
		Title:       title,
		Description: description,
		kind:        TypeVideo,
		videoURL:    videoURL,
	}
}

// NewText creates a text-page node.
func NewText(id, title, description, content string) *Track {
	return &Track{
		ID:          id,
		Title:       title,
		Description: description,
		kind:        TypeText,
		content:     content,
	}
}

// Type returns the node's discriminator.
func (t *Track) Type() Type {
	return t.kind
}

// IsPlayable reports whether the node can be bound to a media element.
func (t *Track) IsPlayable() bool {
	return t.kind == TypeVideo
}

// VideoURL returns the media source of a video node.
// The second return is false for any other node type.
func (t *Track) VideoURL() (string, bool) {
	if t.kind != TypeVideo {
		return "", false
	}
	return t.videoURL, true
}

// Content returns the body of a text node.
// The second return is false for any other node type.
func (t *Track) Content() (string, bool) {
	if t.kind != TypeText {
		return "", false
	}
	return t.content, true
}

// SubTracks returns the ordered children of a folder node.
// The second return is false for any other node type.
func (t *Track) SubTracks() ([]*Track, bool) {
	if t.kind != TypeFolder {
		return nil, false
	}
	return t.subTracks, true
}

// Videos collects the playable descendants of the node in depth-first order.
// A video node yields itself; folders recurse; text nodes yield nothing.
func (t *Track) Videos() []*Track {
	switch t.kind {
	case TypeVideo:
		return []*Track{t}
	case TypeFolder:
		var videos []*Track
		for _, sub := range t.subTracks {
			videos = append(videos, sub.Videos()...)
		}
		return videos
	default:
		return nil
	}
}

// String returns the display title of the node.
func (t *Track) String() string {
	return t.Title
}

// wireTrack is the JSON shape used by the marketplace API.
type wireTrack struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        Type         `json:"type"`
	VideoURL    string       `json:"videoUrl,omitempty"`
	Content     string       `json:"content,omitempty"`
	SubTracks   []*wireTrack `json:"subTracks,omitempty"`
}

// decode validates a wire node and builds the typed track. Video and text
// nodes must carry their payload. A folder may be empty: instructors create
// the section first and fill it with sub-tracks afterwards.
func (w *wireTrack) decode() (*Track, error) {
	switch w.Type {
	case TypeFolder:
		subs := make([]*Track, 0, len(w.SubTracks))
		for _, sw := range w.SubTracks {
			sub, err := sw.decode()
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		return NewFolder(w.ID, w.Title, w.Description, subs...), nil
	case TypeVideo:
		if w.VideoURL == "" {
			return nil, fmt.Errorf("track %s: video node without videoUrl", w.ID)
		}
		return NewVideo(w.ID, w.Title, w.Description, w.VideoURL), nil
	case TypeText:
		if w.Content == "" {
			return nil, fmt.Errorf("track %s: text node without content", w.ID)
		}
		return NewText(w.ID, w.Title, w.Description, w.Content), nil
	default:
		return nil, fmt.Errorf("track %s: unknown type %q", w.ID, w.Type)
	}
}

func (t *Track) encode() *wireTrack {
	w := &wireTrack{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.kind,
		VideoURL:    t.videoURL,
		Content:     t.content,
	}
	for _, sub := range t.subTracks {
		w.SubTracks = append(w.SubTracks, sub.encode())
	}
	return w
}

// UnmarshalJSON decodes a wire node, rejecting nodes that violate the
// exactly-one-of payload invariant.
func (t *Track) UnmarshalJSON(data []byte) error {
	var w wireTrack
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	decoded, err := w.decode()
	if err != nil {
		return err
	}

	*t = *decoded
	return nil
}

// MarshalJSON encodes the node back into the wire shape.
func (t *Track) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.encode())
}
