// Copyright (c) 2026 Melody. All rights reserved.

package stream

import (
	"context"

	"github.com/chorogi/melody/internal/catalog/track"
)

// MediaResolver maps a track to its playable media file.
type MediaResolver interface {
	// ResolveMedia returns the first registered media file for the track,
	// or a not-found error when the track has no media.
	ResolveMedia(context context.Context, trackID int64) (*track.MediaFile, error)
}

// TrackChecker reports whether a track exists in the catalog.
type TrackChecker interface {
	TrackExists(context context.Context, trackID int64) (bool, error)
}

// PlaybackLogStore persists the playback audit trail.
type PlaybackLogStore interface {
	InsertPlaybackLog(context context.Context, entry *PlaybackLog) error
}
