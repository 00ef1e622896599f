package track

import (
	"context"
	"io"
	"log/slog"

	"github.com/chorogi/melody/internal/platform/validate"
)

type Service struct {
	repo    Repository
	storage Storage
	logger  *slog.Logger
}

func NewService(repo Repository, storage Storage, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// CreateTrackInput carries the metadata fields plus the raw audio payload of
// an upload request.
type CreateTrackInput struct {
	ArtistID    int64
	AlbumID     *int64
	Title       string
	DurationSec *int
	ISRC        *string
	MIMEType    *string
	BitrateKbps *int

	FileName string
	File     io.Reader
}

func (service *Service) ListTracks(context context.Context, limit, offset int) ([]*Track, int, error) {
	return service.repo.ListTracks(context, limit, offset)
}

func (service *Service) GetTrack(context context.Context, id int64) (*Track, error) {
	return service.repo.FindByID(context, id)
}

// CreateTrack validates the input, persists the audio payload, then records
// the track and its media file atomically.
func (service *Service) CreateTrack(context context.Context, input CreateTrackInput) (*Track, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldArtistID, input.ArtistID).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 250).
		Custom(FieldAudio, input.File == nil, "Audio file is required")

	if input.DurationSec != nil {
		validator.Custom("duration_sec", *input.DurationSec <= 0, "Must be a positive integer")
	}
	if input.AlbumID != nil {
		validator.Positive("album_id", *input.AlbumID)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	storagePath, err := service.storage.Save(input.FileName, input.File)
	if err != nil {
		service.logger.Error("track_upload_store_failed", slog.Any("error", err))
		return nil, err
	}

	trackRecord := &Track{
		ArtistID:    input.ArtistID,
		AlbumID:     input.AlbumID,
		Title:       input.Title,
		DurationSec: input.DurationSec,
		ISRC:        input.ISRC,
	}
	media := &MediaFile{
		StoragePath: storagePath,
		MIMEType:    input.MIMEType,
		BitrateKbps: input.BitrateKbps,
	}

	if err := service.repo.CreateWithMedia(context, trackRecord, media); err != nil {
		return nil, err
	}

	service.logger.Info("track_created",
		slog.Int64("track_id", trackRecord.ID),
		slog.String("title", trackRecord.Title),
		slog.String("storage_path", storagePath),
	)
	return trackRecord, nil
}
