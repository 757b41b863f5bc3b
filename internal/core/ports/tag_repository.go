package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// TagRepository defines persistence for tags.
type TagRepository interface {
	GetAll(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	Add(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) error
	// Search filters by exact match on tag name.
	Search(ctx context.Context, name string) ([]domain.Tag, error)
}
