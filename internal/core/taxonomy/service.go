package taxonomy

import (
	"context"
	"log/slog"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
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

// Snapshot loads the catalog and freezes it for one render.
func (service *Service) Snapshot(context context.Context) (*Taxonomy, error) {
	categories, err := service.repo.ListCategories(context)
	if err != nil {
		return nil, err
	}

	taxonomy, err := New(categories)
	if err != nil {
		service.logger.ErrorContext(context, "catalog_snapshot_invalid", slog.Any("error", err))
		return nil, apperr.Internal(err)
	}
	return taxonomy, nil
}

func (service *Service) ListCategories(context context.Context) ([]Category, error) {
	taxonomy, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}
	return taxonomy.Categories(), nil
}

func (service *Service) GetCategoryBySlug(context context.Context, slug string) (Category, error) {
	taxonomy, err := service.Snapshot(context)
	if err != nil {
		return Category{}, err
	}

	category, ok := taxonomy.CategoryBySlug(slug)
	if !ok {
		return Category{}, apperr.NotFound("Category")
	}
	return category, nil
}
