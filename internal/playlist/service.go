// Copyright (c) 2026 Melody. All rights reserved.

package playlist

import (
	"context"
	"log/slog"

	"github.com/chorogi/melody/internal/platform/apperr"
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

// CreatePlaylist creates an empty playlist owned by ownerID.
func (service *Service) CreatePlaylist(context context.Context, ownerID int64, name string, isPublic bool) (*Playlist, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, 150)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	p := &Playlist{
		OwnerID:  ownerID,
		Name:     name,
		IsPublic: isPublic,
	}
	if err := service.repo.Create(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("playlist_created",
		slog.Int64("playlist_id", p.ID),
		slog.Int64("owner_id", ownerID),
	)
	return p, nil
}

// AddTrack appends a track to a playlist owned by the caller.
//
// The playlist lookup happens before the ownership check, so callers can tell
// "no such playlist" (404) apart from "not yours" (403). The insert itself is
// idempotent; re-adding an existing member succeeds without effect.
func (service *Service) AddTrack(context context.Context, callerID, playlistID, trackID int64) error {
	p, err := service.repo.FindByID(context, playlistID)
	if err != nil {
		return err
	}

	if p.OwnerID != callerID {
		return apperr.Forbidden("You do not own this playlist")
	}

	exists, err := service.repo.TrackExists(context, trackID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Track")
	}

	if err := service.repo.AddTrack(context, playlistID, trackID); err != nil {
		return err
	}

	service.logger.Info("playlist_track_added",
		slog.Int64("playlist_id", playlistID),
		slog.Int64("track_id", trackID),
	)
	return nil
}

// GetPlaylist returns the playlist detail with its ordered track list.
func (service *Service) GetPlaylist(context context.Context, id int64) (*Playlist, error) {
	p, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	tracks, err := service.repo.ListTracks(context, id)
	if err != nil {
		return nil, err
	}
	p.Tracks = tracks

	return p, nil
}

// ListMine returns the caller's playlists, newest first.
func (service *Service) ListMine(context context.Context, ownerID int64, limit, offset int) ([]*Playlist, int, error) {
	return service.repo.ListByOwner(context, ownerID, limit, offset)
}
