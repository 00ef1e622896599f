package album

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

	// Public
	router.Get("/", handler.listAlbums)

	// Admin only
	router.With(middleware.RequireAdmin).Post("/", handler.createAlbum)

	return router
}

func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	albums, total, err := handler.service.ListAlbums(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, albums, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	var input Album

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAlbum(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}
