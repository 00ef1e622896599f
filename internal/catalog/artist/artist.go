package artist

import "time"

// Artist represents a recording artist in the catalog.
type Artist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName = "name"
	FieldBio  = "bio"
)
