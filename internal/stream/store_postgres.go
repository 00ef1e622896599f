// Copyright (c) 2026 Melody. All rights reserved.

package stream

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/dberr"
)

// PostgresStore implements [MediaResolver], [TrackChecker] and
// [PlaybackLogStore] against the catalog and streams tables.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// ResolveMedia picks the earliest registered file per track. Later uploads
// for the same track are ignored until the first row is removed.
func (store *PostgresStore) ResolveMedia(context context.Context, trackID int64) (*track.MediaFile, error) {
	const query = `
		SELECT id, track_id, storage_path, mime_type, bitrate_kbps
		FROM track_files
		WHERE track_id = $1
		ORDER BY id ASC
		LIMIT 1`

	media := &track.MediaFile{}
	err := store.db.QueryRow(context, query, trackID).
		Scan(&media.ID, &media.TrackID, &media.StoragePath, &media.MIMEType, &media.BitrateKbps)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_media")
	}
	return media, nil
}

func (store *PostgresStore) TrackExists(context context.Context, trackID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM tracks WHERE id = $1)`

	var exists bool
	if err := store.db.QueryRow(context, query, trackID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "track_exists")
	}
	return exists, nil
}

func (store *PostgresStore) InsertPlaybackLog(context context.Context, entry *PlaybackLog) error {
	const query = `
		INSERT INTO streams (user_id, track_id, played_ms, client_ip)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := store.db.QueryRow(context, query, entry.UserID, entry.TrackID, entry.PlayedMs, entry.ClientIP).
		Scan(&entry.ID, &entry.CreatedAt)
	return dberr.Wrap(err, "insert_playback_log")
}
