package album

import "time"

// Album represents a release grouping tracks under one artist.
type Album struct {
	ID          int64      `json:"id"`
	ArtistID    int64      `json:"artist_id"`
	ArtistName  string     `json:"artist_name,omitempty"` // populated by list joins
	Title       string     `json:"title"`
	CoverURL    *string    `json:"cover_url"`
	ReleaseDate *time.Time `json:"release_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

const (
	FieldArtistID    = "artist_id"
	FieldTitle       = "title"
	FieldCoverURL    = "cover_url"
	FieldReleaseDate = "release_date"
)
