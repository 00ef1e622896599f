// Copyright (c) 2026 Melody. All rights reserved.

package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chorogi/melody/internal/platform/middleware"
	requestutil "github.com/chorogi/melody/internal/platform/request"
	"github.com/chorogi/melody/internal/platform/respond"
	"github.com/chorogi/melody/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Session required
	router.Group(func(authenticated chi.Router) {
		authenticated.Use(middleware.RequireAuth)
		authenticated.Post("/", handler.createPlaylist)
		authenticated.Get("/me", handler.listMine)
		authenticated.Post("/{id}/tracks", handler.addTrack)
	})

	// Public detail
	router.Get("/{id}", handler.getPlaylist)

	return router
}

type createPlaylistRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

func (handler *Handler) createPlaylist(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPlaylistRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.CreatePlaylist(request.Context(), ownerID, input.Name, input.IsPublic)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, p)
}

type addTrackRequest struct {
	TrackID int64 `json:"track_id"`
}

func (handler *Handler) addTrack(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlistID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addTrackRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddTrack(request.Context(), callerID, playlistID, input.TrackID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]int64{
		"playlist_id": playlistID,
		FieldTrackID:  input.TrackID,
	})
}

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	playlists, total, err := handler.service.ListMine(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, playlists, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPlaylist(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.GetPlaylist(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}
