package album

import (
	"context"
	"log/slog"

	"github.com/chorogi/melody/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAlbums(context context.Context, limit, offset int) ([]*Album, int, error) {
	return service.repo.ListAlbums(context, limit, offset)
}

func (service *Service) CreateAlbum(context context.Context, album *Album) error {
	validator := &validate.Validator{}
	validator.Positive(FieldArtistID, album.ArtistID).
		Required(FieldTitle, album.Title).
		MaxLen(FieldTitle, album.Title, 250)

	if album.CoverURL != nil {
		validator.URL(FieldCoverURL, *album.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAlbum(context, album); err != nil {
		return err
	}

	service.logger.Info("album_created",
		slog.String("title", album.Title),
		slog.Int64("artist_id", album.ArtistID),
	)
	return nil
}
