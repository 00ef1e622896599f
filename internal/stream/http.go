// Copyright (c) 2026 Melody. All rights reserved.

package stream

import (
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chorogi/melody/internal/platform/apperr"
	"github.com/chorogi/melody/internal/platform/middleware"
	requestutil "github.com/chorogi/melody/internal/platform/request"
	"github.com/chorogi/melody/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Session required: only logged-in users can mint playback tokens.
	router.With(middleware.RequireAuth).Post("/request", handler.requestToken)

	// Token gated: the capability token is the sole credential.
	router.Get("/play", handler.play)

	return router
}

type requestTokenRequest struct {
	TrackID int64 `json:"track_id"`
}

func (handler *Handler) requestToken(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input requestTokenRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	grant, err := handler.service.RequestToken(request.Context(), input.TrackID, &claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, grant)
}

// play delivers the audio bytes for a valid capability token.
//
// The checks run in a fixed order and the first failure is terminal:
// missing token (400), bad token (401), unresolvable media (404). Headers
// go out before the first body byte; from then on the playback-log insert
// runs in the background and cannot change the response.
func (handler *Handler) play(writer http.ResponseWriter, request *http.Request) {
	token := request.URL.Query().Get(FieldToken)
	if token == "" {
		respond.Error(writer, request, apperr.ValidationError("Missing token"))
		return
	}

	source, err := handler.service.Authorize(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, err := os.Open(source.AbsolutePath)
	if err != nil {
		// Stat succeeded moments ago; the file vanished in between.
		respond.Error(writer, request, apperr.NotFound("Media"))
		return
	}
	defer file.Close()

	writer.Header().Set("Content-Type", source.MIMEType)
	writer.Header().Set("Content-Length", strconv.FormatInt(source.Size, 10))
	writer.WriteHeader(http.StatusOK)

	// Fire and forget: the response is already streaming, so a failed log
	// insert must not (and cannot) alter the outcome.
	clientIP := middleware.RealIP(request)
	go func() {
		_ = handler.service.LogPlayback(source.SubjectID, source.TrackID, clientIP)
	}()

	// A copy error here means the client went away mid-stream.
	_, _ = io.Copy(writer, file)
}
