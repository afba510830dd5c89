package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/thinh77/trinhminhson-sub000/internal/platform/request"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{slug}", handler.getCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Tagged(writer, request, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategoryBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Tagged(writer, request, category)
}
