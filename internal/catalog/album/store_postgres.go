package album

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

func (repository *PostgresRepository) ListAlbums(context context.Context, limit, offset int) ([]*Album, int, error) {
	const countQuery = `SELECT count(*) FROM albums`
	const query = `
		SELECT al.id, al.artist_id, ar.name, al.title, al.cover_url, al.release_date, al.created_at
		FROM albums al
		JOIN artists ar ON ar.id = al.artist_id
		ORDER BY al.id DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_albums")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		a := &Album{}
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.ArtistName, &a.Title, &a.CoverURL, &a.ReleaseDate, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, a)
	}

	return albums, total, nil
}

func (repository *PostgresRepository) CreateAlbum(context context.Context, a *Album) error {
	const query = `
		INSERT INTO albums (artist_id, title, cover_url, release_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := repository.db.QueryRow(context, query, a.ArtistID, a.Title, a.CoverURL, a.ReleaseDate).Scan(&a.ID, &a.CreatedAt)
	return dberr.Wrap(err, "create_album")
}
