package artist

import "context"

type Repository interface {
	ListArtists(context context.Context, limit, offset int) ([]*Artist, int, error)
	GetArtist(context context.Context, id int64) (*Artist, error)
	CreateArtist(context context.Context, a *Artist) error
}
