package service

import (
	"context"
	"errors"

	"github.com/funews/news-management-system/internal/api/metrics"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// CategoryService implements category CRUD with the referential delete guard.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Add(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	created, err := s.repo.Add(ctx, &domain.Category{
		CategoryName:        in.CategoryName,
		CategoryDescription: in.CategoryDescription,
		ParentCategoryID:    in.ParentCategoryID,
		IsActive:            in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("category", "create").Inc()
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in ports.CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		CategoryID:          id,
		CategoryName:        in.CategoryName,
		CategoryDescription: in.CategoryDescription,
		ParentCategoryID:    in.ParentCategoryID,
		IsActive:            in.IsActive,
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("category", "update").Inc()
	return category, nil
}

// Delete removes the category unless a news article still references it. The
// reference check and the delete are one transaction inside the repository,
// so no concurrent article insert can slip between them.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryInUse) {
			metrics.GuardRejectionsTotal.WithLabelValues("category").Inc()
		}
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("category", "delete").Inc()
	return nil
}

func (s *CategoryService) Search(ctx context.Context, name string) ([]domain.Category, error) {
	return s.repo.Search(ctx, name)
}
