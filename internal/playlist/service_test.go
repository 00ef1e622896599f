// Copyright (c) 2026 Melody. All rights reserved.

package playlist_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/apperr"
	"github.com/chorogi/melody/internal/playlist"
)

type membership struct {
	playlistID int64
	trackID    int64
}

// fakeRepository is an in-memory playlist Repository for service tests.
type fakeRepository struct {
	playlists map[int64]*playlist.Playlist
	members   []membership
	trackIDs  map[int64]bool
	nextID    int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		playlists: map[int64]*playlist.Playlist{},
		trackIDs:  map[int64]bool{},
		nextID:    1,
	}
}

func (repo *fakeRepository) Create(_ context.Context, p *playlist.Playlist) error {
	p.ID = repo.nextID
	p.CreatedAt = time.Now()
	repo.nextID++
	repo.playlists[p.ID] = p
	return nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id int64) (*playlist.Playlist, error) {
	p, ok := repo.playlists[id]
	if !ok {
		return nil, apperr.NotFound("Resource")
	}
	return p, nil
}

func (repo *fakeRepository) ListByOwner(_ context.Context, ownerID int64, _, _ int) ([]*playlist.Playlist, int, error) {
	var owned []*playlist.Playlist
	for _, p := range repo.playlists {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, len(owned), nil
}

func (repo *fakeRepository) AddTrack(_ context.Context, playlistID, trackID int64) error {
	for _, member := range repo.members {
		if member.playlistID == playlistID && member.trackID == trackID {
			// Idempotent: already a member, no error.
			return nil
		}
	}
	repo.members = append(repo.members, membership{playlistID: playlistID, trackID: trackID})
	return nil
}

func (repo *fakeRepository) ListTracks(_ context.Context, playlistID int64) ([]*track.Track, error) {
	var tracks []*track.Track
	for _, member := range repo.members {
		if member.playlistID == playlistID {
			tracks = append(tracks, &track.Track{ID: member.trackID})
		}
	}
	return tracks, nil
}

func (repo *fakeRepository) TrackExists(_ context.Context, trackID int64) (bool, error) {
	return repo.trackIDs[trackID], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_AddTrack_OwnerSucceeds covers the happy path and the idempotency
guarantee: adding the same track twice is two successes and one membership.
*/
func TestService_AddTrack_OwnerSucceeds(t *testing.T) {
	repo := newFakeRepository()
	service := playlist.NewService(repo, testLogger())

	repo.trackIDs[10] = true
	created, err := service.CreatePlaylist(context.Background(), 1, "Morning Mix", false)
	require.NoError(t, err)

	require.NoError(t, service.AddTrack(context.Background(), 1, created.ID, 10))
	require.NoError(t, service.AddTrack(context.Background(), 1, created.ID, 10))

	detail, err := service.GetPlaylist(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Tracks, 1)
}

/*
TestService_AddTrack_NonOwnerForbidden verifies the ownership guard: a caller
who is not the owner gets a 403 for an existing playlist.
*/
func TestService_AddTrack_NonOwnerForbidden(t *testing.T) {
	repo := newFakeRepository()
	service := playlist.NewService(repo, testLogger())

	repo.trackIDs[10] = true
	created, err := service.CreatePlaylist(context.Background(), 1, "Private Mix", false)
	require.NoError(t, err)

	err = service.AddTrack(context.Background(), 2, created.ID, 10)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
}

/*
TestService_AddTrack_MissingPlaylistIsNotFound verifies ordering of the guard:
a playlist that does not exist yields 404 for every caller, including ones who
would have been denied — absence is reported before ownership.
*/
func TestService_AddTrack_MissingPlaylistIsNotFound(t *testing.T) {
	repo := newFakeRepository()
	service := playlist.NewService(repo, testLogger())

	repo.trackIDs[10] = true

	err := service.AddTrack(context.Background(), 2, 999, 10)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_AddTrack_UnknownTrack verifies an owner adding a nonexistent track
gets a 404 after passing the ownership check.
*/
func TestService_AddTrack_UnknownTrack(t *testing.T) {
	repo := newFakeRepository()
	service := playlist.NewService(repo, testLogger())

	created, err := service.CreatePlaylist(context.Background(), 1, "Mix", false)
	require.NoError(t, err)

	err = service.AddTrack(context.Background(), 1, created.ID, 777)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_CreatePlaylist_Validation rejects empty names.
*/
func TestService_CreatePlaylist_Validation(t *testing.T) {
	service := playlist.NewService(newFakeRepository(), testLogger())

	_, err := service.CreatePlaylist(context.Background(), 1, "   ", true)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
