package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	CategoryName        string
	CategoryDescription string
	ParentCategoryID    *int64
	IsActive            bool
}

type CategoryService interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Add(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error)
	// Delete fails with domain.ErrCategoryInUse while any article references
	// the category.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, name string) ([]domain.Category, error)
}
