// Package history tracks and persists watch progress for course tracks.
package history

import (
	"github.com/codeit-cli/codeit/filesystem"
	"github.com/codeit-cli/codeit/where"
	"github.com/metafates/gache"
)

// cacher is the disk-backed registry of watch progress records.
var cacher = gache.New[map[string]*SavedTrack](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of watch records from the persistent store.
func Get() (map[string]*SavedTrack, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedTrack), nil
	}
	return cached, nil
}

// Save persists the watch progress of a track.
// Progress only ever moves forward: a re-watch at a lower percentage never
// regresses an existing record.
func Save(record *SavedTrack, percentage float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, exists := saved[record.encode()]; exists {
		if percentage < existing.WatchedPercentage {
			percentage = existing.WatchedPercentage
		}
	}
	record.WatchedPercentage = percentage

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a watch record.
func Remove(record *SavedTrack) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}
