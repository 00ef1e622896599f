package album

import "context"

type Repository interface {
	ListAlbums(context context.Context, limit, offset int) ([]*Album, int, error)
	CreateAlbum(context context.Context, a *Album) error
}
