package track

import "context"

type Repository interface {
	ListTracks(context context.Context, limit, offset int) ([]*Track, int, error)
	FindByID(context context.Context, id int64) (*Track, error)

	// CreateWithMedia inserts the track and its media file atomically.
	CreateWithMedia(context context.Context, t *Track, media *MediaFile) error
}
