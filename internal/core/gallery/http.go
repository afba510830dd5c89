// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package gallery

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/thinh77/trinhminhson-sub000/internal/core/filter"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/config"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/ctxutil"
	requestutil "github.com/thinh77/trinhminhson-sub000/internal/platform/request"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/respond"
	"github.com/thinh77/trinhminhson-sub000/pkg/pagination"
)

// Catalog supplies the taxonomy snapshot for a render.
type Catalog interface {
	Snapshot(ctx context.Context) (*taxonomy.Taxonomy, error)
}

// Handler serves gallery views. Every request gets a fresh Session, so no
// filter state survives between requests.
type Handler struct {
	catalog Catalog
	fetcher window.Fetcher
	sizes   config.GalleryConfig
	metrics *window.Metrics
}

func NewHandler(catalog Catalog, fetcher window.Fetcher, sizes config.GalleryConfig, metrics *window.Metrics) *Handler {
	return &Handler{
		catalog: catalog,
		fetcher: fetcher,
		sizes:   sizes,
		metrics: metrics,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPhotos)
	router.Get("/feed", handler.feedPhotos)
}

/*
GET /api/v1/photos?page=N&category=C&facet=C:S

Renders one page of photos, filtered by the query's selections.
*/
func (handler *Handler) listPhotos(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, ModePaged, pagination.PageFromRequest(request))
}

/*
GET /api/v1/photos/feed?offset=N&category=C&facet=C:S

Renders the next chunk of the infinite feed from offset. With a category
filter the whole collection is loaded instead.
*/
func (handler *Handler) feedPhotos(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, ModeInfinite, requestutil.Int(request, "offset", 0))
}

func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, mode Mode, position int) {
	selection, err := parseSelection(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session := NewSession(handler.fetcher, mode, handler.windowOptions(request.Context(), mode)...)

	var tax *taxonomy.Taxonomy
	group, ctx := errgroup.WithContext(request.Context())
	group.Go(func() error {
		var err error
		tax, err = handler.catalog.Snapshot(ctx)
		return err
	})
	group.Go(func() error {
		if err := selection.applyTo(ctx, session); err != nil {
			return err
		}
		return session.Start(ctx, position)
	})
	if err := group.Wait(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session.SetTaxonomy(tax)
	respond.Tagged(writer, request, session.View())
}

func (handler *Handler) windowOptions(ctx context.Context, mode Mode) []window.Option {
	size := handler.sizes.PageSize
	if mode == ModeInfinite {
		size = handler.sizes.ChunkSize
	}
	return []window.Option{
		window.WithSize(size),
		window.WithMetrics(handler.metrics),
		window.WithLogger(ctxutil.GetLogger(ctx)),
	}
}

// selection is the filter state carried by a query string.
type selection struct {
	categories []string
	facets     []filter.FacetKey
}

func parseSelection(request *http.Request) (selection, error) {
	sel := selection{categories: requestutil.Strings(request, "category")}
	for _, raw := range requestutil.Strings(request, "facet") {
		key, err := filter.ParseFacetKey(raw)
		if err != nil {
			return selection{}, err
		}
		sel.facets = append(sel.facets, key)
	}
	return sel, nil
}

// applyTo selects everything named, once. Repeated query values must not
// toggle a selection back off.
func (sel selection) applyTo(ctx context.Context, session *Session) error {
	for _, key := range sel.facets {
		if !session.HasFacet(key) {
			session.ToggleSubcategoryFacet(key.Category, key.Subcategory)
		}
	}
	for _, category := range sel.categories {
		if session.IsCategoryActive(category) {
			continue
		}
		if err := session.ToggleCategory(ctx, category); err != nil {
			return err
		}
	}
	return nil
}
