package artist

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

func (service *Service) ListArtists(context context.Context, limit, offset int) ([]*Artist, int, error) {
	return service.repo.ListArtists(context, limit, offset)
}

func (service *Service) GetArtist(context context.Context, id int64) (*Artist, error) {
	return service.repo.GetArtist(context, id)
}

func (service *Service) CreateArtist(context context.Context, artist *Artist) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name).MaxLen(FieldName, artist.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateArtist(context, artist); err != nil {
		return err
	}

	service.logger.Info("artist_created", slog.String("name", artist.Name))
	return nil
}
