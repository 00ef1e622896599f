package track

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chorogi/melody/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTracks(context context.Context, limit, offset int) ([]*Track, int, error) {
	const countQuery = `SELECT count(*) FROM tracks`
	const query = `
		SELECT t.id, t.artist_id, t.album_id, t.title, t.duration_sec, t.isrc, t.created_at,
		       ar.name, al.title
		FROM tracks t
		JOIN artists ar ON ar.id = t.artist_id
		LEFT JOIN albums al ON al.id = t.album_id
		ORDER BY t.id DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tracks")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tracks")
	}
	defer rows.Close()

	var tracks []*Track
	for rows.Next() {
		t := &Track{}
		if err := rows.Scan(&t.ID, &t.ArtistID, &t.AlbumID, &t.Title, &t.DurationSec, &t.ISRC, &t.CreatedAt, &t.ArtistName, &t.AlbumTitle); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_track")
		}
		tracks = append(tracks, t)
	}

	return tracks, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Track, error) {
	const query = `
		SELECT t.id, t.artist_id, t.album_id, t.title, t.duration_sec, t.isrc, t.created_at,
		       ar.name, al.title
		FROM tracks t
		JOIN artists ar ON ar.id = t.artist_id
		LEFT JOIN albums al ON al.id = t.album_id
		WHERE t.id = $1`

	t := &Track{}
	err := repository.db.QueryRow(context, query, id).
		Scan(&t.ID, &t.ArtistID, &t.AlbumID, &t.Title, &t.DurationSec, &t.ISRC, &t.CreatedAt, &t.ArtistName, &t.AlbumTitle)
	if err != nil {
		return nil, dberr.Wrap(err, "find_track")
	}
	return t, nil
}

// CreateWithMedia inserts both rows in one transaction so the catalog never
// exposes a track that has no playable media.
func (repository *PostgresRepository) CreateWithMedia(context context.Context, t *Track, media *MediaFile) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_track")
	}
	defer tx.Rollback(context)

	const insertTrack = `
		INSERT INTO tracks (artist_id, album_id, title, duration_sec, isrc)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	if err := tx.QueryRow(context, insertTrack, t.ArtistID, t.AlbumID, t.Title, t.DurationSec, t.ISRC).
		Scan(&t.ID, &t.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_track")
	}

	const insertMedia = `
		INSERT INTO track_files (track_id, storage_path, mime_type, bitrate_kbps)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	media.TrackID = t.ID
	if err := tx.QueryRow(context, insertMedia, media.TrackID, media.StoragePath, media.MIMEType, media.BitrateKbps).
		Scan(&media.ID); err != nil {
		return dberr.Wrap(err, "create_track_file")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_track")
	}
	return nil
}
