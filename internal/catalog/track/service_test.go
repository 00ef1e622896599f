package track_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/apperr"
)

type fakeRepository struct {
	created      []*track.Track
	createdMedia []*track.MediaFile
	failWith     error
}

func (repo *fakeRepository) ListTracks(_ context.Context, _, _ int) ([]*track.Track, int, error) {
	return repo.created, len(repo.created), nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id int64) (*track.Track, error) {
	for _, t := range repo.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Track")
}

func (repo *fakeRepository) CreateWithMedia(_ context.Context, t *track.Track, media *track.MediaFile) error {
	if repo.failWith != nil {
		return repo.failWith
	}
	t.ID = int64(len(repo.created) + 1)
	t.CreatedAt = time.Now()
	media.TrackID = t.ID
	repo.created = append(repo.created, t)
	repo.createdMedia = append(repo.createdMedia, media)
	return nil
}

type fakeStorage struct {
	savedName string
	savedData []byte
	failWith  error
}

func (storage *fakeStorage) Save(originalName string, payload io.Reader) (string, error) {
	if storage.failWith != nil {
		return "", storage.failWith
	}
	storage.savedName = originalName
	data, err := io.ReadAll(payload)
	if err != nil {
		return "", err
	}
	storage.savedData = data
	return "stored.mp3", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_CreateTrack(t *testing.T) {
	repo := &fakeRepository{}
	storage := &fakeStorage{}
	service := track.NewService(repo, storage, testLogger())

	mimeType := "audio/mpeg"
	created, err := service.CreateTrack(context.Background(), track.CreateTrackInput{
		ArtistID: 1,
		Title:    "Spring Day",
		MIMEType: &mimeType,
		FileName: "spring-day.mp3",
		File:     bytes.NewReader([]byte("frames")),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "spring-day.mp3", storage.savedName)
	assert.Equal(t, []byte("frames"), storage.savedData)

	require.Len(t, repo.createdMedia, 1)
	assert.Equal(t, "stored.mp3", repo.createdMedia[0].StoragePath)
	assert.Equal(t, created.ID, repo.createdMedia[0].TrackID)
}

func TestService_CreateTrack_Validation(t *testing.T) {
	service := track.NewService(&fakeRepository{}, &fakeStorage{}, testLogger())

	tests := []struct {
		name  string
		input track.CreateTrackInput
	}{
		{"missing_artist", track.CreateTrackInput{Title: "T", File: bytes.NewReader(nil), FileName: "t.mp3"}},
		{"missing_title", track.CreateTrackInput{ArtistID: 1, File: bytes.NewReader(nil), FileName: "t.mp3"}},
		{"missing_file", track.CreateTrackInput{ArtistID: 1, Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTrack(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

func TestService_CreateTrack_StorageFailure(t *testing.T) {
	repo := &fakeRepository{}
	storage := &fakeStorage{failWith: errors.New("disk full")}
	service := track.NewService(repo, storage, testLogger())

	_, err := service.CreateTrack(context.Background(), track.CreateTrackInput{
		ArtistID: 1,
		Title:    "Spring Day",
		FileName: "spring-day.mp3",
		File:     bytes.NewReader([]byte("frames")),
	})
	require.Error(t, err)
	assert.Empty(t, repo.created, "nothing is persisted when the upload fails")
}
