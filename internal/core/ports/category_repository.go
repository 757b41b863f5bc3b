package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Add(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	// DeleteIfUnreferenced removes the category only when no news article
	// references it, checking and deleting inside one transaction. A
	// violation yields domain.ErrCategoryInUse.
	DeleteIfUnreferenced(ctx context.Context, id int64) error
	// Search filters by exact match on category name.
	Search(ctx context.Context, name string) ([]domain.Category, error)
}
