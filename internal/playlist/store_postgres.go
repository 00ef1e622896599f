// Copyright (c) 2026 Melody. All rights reserved.

package playlist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, p *Playlist) error {
	const query = `
		INSERT INTO playlists (owner_id, name, is_public)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := repository.db.QueryRow(context, query, p.OwnerID, p.Name, p.IsPublic).Scan(&p.ID, &p.CreatedAt)
	return dberr.Wrap(err, "create_playlist")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Playlist, error) {
	const query = `
		SELECT id, owner_id, name, is_public, created_at
		FROM playlists
		WHERE id = $1`

	p := &Playlist{}
	err := repository.db.QueryRow(context, query, id).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.IsPublic, &p.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_playlist")
	}
	return p, nil
}

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID int64, limit, offset int) ([]*Playlist, int, error) {
	const countQuery = `SELECT count(*) FROM playlists WHERE owner_id = $1`
	const query = `
		SELECT id, owner_id, name, is_public, created_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`

	var total int
	if err := repository.db.QueryRow(context, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_playlists")
	}

	rows, err := repository.db.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	var playlists []*Playlist
	for rows.Next() {
		p := &Playlist{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.IsPublic, &p.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, p)
	}

	return playlists, total, nil
}

// AddTrack appends a membership row at the next position. The unique
// constraint plus ON CONFLICT DO NOTHING makes re-adding idempotent.
func (repository *PostgresRepository) AddTrack(context context.Context, playlistID, trackID int64) error {
	const query = `
		INSERT INTO playlist_tracks (playlist_id, track_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1
		FROM playlist_tracks
		WHERE playlist_id = $1
		ON CONFLICT (playlist_id, track_id) DO NOTHING`

	_, err := repository.db.Exec(context, query, playlistID, trackID)
	return dberr.Wrap(err, "add_playlist_track")
}

func (repository *PostgresRepository) ListTracks(context context.Context, playlistID int64) ([]*track.Track, error) {
	const query = `
		SELECT t.id, t.artist_id, t.album_id, t.title, t.duration_sec, t.isrc, t.created_at,
		       ar.name, al.title
		FROM playlist_tracks pt
		JOIN tracks t ON t.id = pt.track_id
		JOIN artists ar ON ar.id = t.artist_id
		LEFT JOIN albums al ON al.id = t.album_id
		WHERE pt.playlist_id = $1
		ORDER BY pt.position ASC`

	rows, err := repository.db.Query(context, query, playlistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlist_tracks")
	}
	defer rows.Close()

	var tracks []*track.Track
	for rows.Next() {
		t := &track.Track{}
		if err := rows.Scan(&t.ID, &t.ArtistID, &t.AlbumID, &t.Title, &t.DurationSec, &t.ISRC, &t.CreatedAt, &t.ArtistName, &t.AlbumTitle); err != nil {
			return nil, dberr.Wrap(err, "scan_playlist_track")
		}
		tracks = append(tracks, t)
	}

	return tracks, nil
}

func (repository *PostgresRepository) TrackExists(context context.Context, trackID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM tracks WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, trackID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "track_exists")
	}
	return exists, nil
}
