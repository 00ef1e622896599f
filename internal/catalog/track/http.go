package track

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/chorogi/melody/internal/platform/apperr"
	"github.com/chorogi/melody/internal/platform/middleware"
	requestutil "github.com/chorogi/melody/internal/platform/request"
	"github.com/chorogi/melody/internal/platform/respond"
	"github.com/chorogi/melody/pkg/pagination"
)

// maxUploadBytes bounds a single multipart upload (64 MiB).
const maxUploadBytes = 64 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listTracks)
	router.Get("/{id}", handler.getTrack)

	// Admin only
	router.With(middleware.RequireAdmin).Post("/", handler.createTrack)

	return router
}

func (handler *Handler) listTracks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	tracks, total, err := handler.service.ListTracks(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tracks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getTrack(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	trackRecord, err := handler.service.GetTrack(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, trackRecord)
}

// createTrack accepts a multipart form: metadata fields plus one "audio"
// file part.
func (handler *Handler) createTrack(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart form"))
		return
	}

	input := CreateTrackInput{
		Title: request.FormValue(FieldTitle),
	}

	artistID, err := strconv.ParseInt(request.FormValue(FieldArtistID), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid artist_id"))
		return
	}
	input.ArtistID = artistID

	if input.AlbumID, err = optionalInt64(request.FormValue("album_id")); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid album_id"))
		return
	}
	if input.DurationSec, err = optionalInt(request.FormValue("duration_sec")); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid duration_sec"))
		return
	}
	if input.BitrateKbps, err = optionalInt(request.FormValue("bitrate_kbps")); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid bitrate_kbps"))
		return
	}
	if isrc := strings.TrimSpace(request.FormValue("isrc")); isrc != "" {
		input.ISRC = &isrc
	}

	file, header, err := request.FormFile(FieldAudio)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Audio file is required"))
		return
	}
	defer file.Close()

	input.File = file
	input.FileName = header.Filename
	if contentType := header.Header.Get("Content-Type"); contentType != "" {
		input.MIMEType = &contentType
	}

	trackRecord, err := handler.service.CreateTrack(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, trackRecord)
}

func optionalInt64(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func optionalInt(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
