// Copyright (c) 2026 Melody. All rights reserved.

/*
Package playlist manages user-owned track collections.

Ownership is fixed at creation: owner_id is written once and never updated.
Mutating operations look the playlist up before checking ownership, so a
missing playlist is reported as absent rather than as denied.
*/
package playlist

import (
	"time"

	"github.com/chorogi/melody/internal/catalog/track"
)

// Playlist is a named, ordered collection of tracks owned by one user.
type Playlist struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`

	// Populated on detail reads only.
	Tracks []*track.Track `json:"tracks,omitempty"`
}

const (
	FieldName    = "name"
	FieldTrackID = "track_id"
)
