// Copyright (c) 2026 Melody. All rights reserved.

package stream

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chorogi/melody/internal/platform/apperr"
	"github.com/chorogi/melody/internal/platform/constants"
	"github.com/chorogi/melody/internal/platform/sec"
	"github.com/chorogi/melody/internal/platform/validate"
)

// playbackLogTimeout bounds the background playback-log insert. It runs on
// its own context so a client disconnect cannot cancel the write.
const playbackLogTimeout = 5 * time.Second

type Service struct {
	tokens        *sec.StreamTokenService
	media         MediaResolver
	tracks        TrackChecker
	logs          PlaybackLogStore
	uploadDir     string
	baseStreamURL string
	logger        *slog.Logger
}

func NewService(
	tokens *sec.StreamTokenService,
	media MediaResolver,
	tracks TrackChecker,
	logs PlaybackLogStore,
	uploadDir string,
	baseStreamURL string,
	logger *slog.Logger,
) *Service {
	return &Service{
		tokens:        tokens,
		media:         media,
		tracks:        tracks,
		logs:          logs,
		uploadDir:     uploadDir,
		baseStreamURL: baseStreamURL,
		logger:        logger,
	}
}

// RequestToken exchanges a session for a playback capability on one track.
//
// subjectID may be nil; issuance succeeds either way and the subject is used
// only for playback-log attribution.
func (service *Service) RequestToken(context context.Context, trackID int64, subjectID *int64) (*PlaybackGrant, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldTrackID, trackID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.tracks.TrackExists(context, trackID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Track")
	}

	token, err := service.tokens.Issue(trackID, subjectID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("stream_token_issued",
		slog.Int64("track_id", trackID),
	)

	return &PlaybackGrant{
		URL:       service.baseStreamURL + "?token=" + url.QueryEscape(token),
		Token:     token,
		ExpiresIn: int(service.tokens.TTL().Seconds()),
	}, nil
}

// Authorize runs the pre-streaming half of the delivery pipeline: verify the
// capability token, resolve the track's media file, and stat it on disk.
//
// A track with no registered media and a registered file missing from disk
// produce the same not-found outcome; callers cannot probe which it was.
func (service *Service) Authorize(context context.Context, tokenString string) (*PlaybackSource, error) {
	claims, err := service.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired stream token")
	}

	media, err := service.media.ResolveMedia(context, claims.TrackID)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
			return nil, apperr.NotFound("Media")
		}
		return nil, err
	}

	// Storage paths are server-generated, but never trust them blindly.
	if strings.Contains(media.StoragePath, "..") {
		return nil, apperr.NotFound("Media")
	}

	absolutePath := filepath.Join(service.uploadDir, filepath.FromSlash(media.StoragePath))
	fileInfo, err := os.Stat(absolutePath)
	if err != nil || fileInfo.IsDir() {
		service.logger.Warn("stream_media_file_unreachable",
			slog.Int64("track_id", claims.TrackID),
			slog.String("storage_path", media.StoragePath),
		)
		return nil, apperr.NotFound("Media")
	}

	mimeType := constants.DefaultStreamMIMEType
	if media.MIMEType != nil && *media.MIMEType != "" {
		mimeType = *media.MIMEType
	}

	return &PlaybackSource{
		TrackID:      claims.TrackID,
		SubjectID:    claims.SubjectUserID(),
		AbsolutePath: absolutePath,
		Size:         fileInfo.Size(),
		MIMEType:     mimeType,
	}, nil
}

// LogPlayback records one playback event.
//
// It is designed to be called from a goroutine after the response has started:
// it uses a fresh context, truncates the client IP to the column width, and
// reports failure via the return value only — the warn log here is the sole
// trace a dropped row leaves.
func (service *Service) LogPlayback(userID *int64, trackID int64, clientIP string) error {
	logContext, cancel := context.WithTimeout(context.Background(), playbackLogTimeout)
	defer cancel()

	if len(clientIP) > constants.ClientIPMaxLength {
		clientIP = clientIP[:constants.ClientIPMaxLength]
	}

	entry := &PlaybackLog{
		UserID:   userID,
		TrackID:  trackID,
		PlayedMs: 0,
		ClientIP: clientIP,
	}

	if err := service.logs.InsertPlaybackLog(logContext, entry); err != nil {
		service.logger.Warn("playback_log_failed",
			slog.Int64("track_id", trackID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
