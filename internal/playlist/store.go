// Copyright (c) 2026 Melody. All rights reserved.

package playlist

import (
	"context"

	"github.com/chorogi/melody/internal/catalog/track"
)

type Repository interface {
	Create(context context.Context, p *Playlist) error
	FindByID(context context.Context, id int64) (*Playlist, error)
	ListByOwner(context context.Context, ownerID int64, limit, offset int) ([]*Playlist, int, error)

	// AddTrack appends the track to the playlist. Re-adding an existing
	// member is a no-op, not an error.
	AddTrack(context context.Context, playlistID, trackID int64) error

	ListTracks(context context.Context, playlistID int64) ([]*track.Track, error)
	TrackExists(context context.Context, trackID int64) (bool, error)
}
