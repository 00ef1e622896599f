package artist

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

func (repository *PostgresRepository) ListArtists(context context.Context, limit, offset int) ([]*Artist, int, error) {
	const countQuery = `SELECT count(*) FROM artists`
	const query = `
		SELECT id, name, bio, created_at
		FROM artists
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, total, nil
}

func (repository *PostgresRepository) GetArtist(context context.Context, id int64) (*Artist, error) {
	const query = `
		SELECT id, name, bio, created_at
		FROM artists
		WHERE id = $1`

	a := &Artist{}
	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt)

	return a, dberr.Wrap(err, "get_artist")
}

func (repository *PostgresRepository) CreateArtist(context context.Context, a *Artist) error {
	const query = `
		INSERT INTO artists (name, bio)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := repository.db.QueryRow(context, query, a.Name, a.Bio).Scan(&a.ID, &a.CreatedAt)
	return dberr.Wrap(err, "create_artist")
}
