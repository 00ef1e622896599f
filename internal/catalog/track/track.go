// Copyright (c) 2026 Melody. All rights reserved.

/*
Package track manages the audio catalog: track metadata, uploaded media
files, and their storage locations.

A Track is pure metadata; the playable bytes live in one or more MediaFile
rows pointing at relative storage paths under the configured upload
directory. The delivery path (internal/stream) resolves the first registered
media file for a track.
*/
package track

import "time"

// Track represents one recording in the catalog.
type Track struct {
	ID          int64     `json:"id"`
	ArtistID    int64     `json:"artist_id"`
	AlbumID     *int64    `json:"album_id"`
	Title       string    `json:"title"`
	DurationSec *int      `json:"duration_sec"`
	ISRC        *string   `json:"isrc"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated by list joins
	ArtistName string  `json:"artist_name,omitempty"`
	AlbumTitle *string `json:"album_title,omitempty"`
}

// MediaFile is the stored binary payload backing a track.
//
// StoragePath is relative to the upload root so the database stays portable
// across deployments.
type MediaFile struct {
	ID          int64   `json:"-"`
	TrackID     int64   `json:"-"`
	StoragePath string  `json:"storage_path"`
	MIMEType    *string `json:"mime_type"`
	BitrateKbps *int    `json:"bitrate_kbps"`
}

const (
	FieldArtistID = "artist_id"
	FieldTitle    = "title"
	FieldAudio    = "audio"
)
