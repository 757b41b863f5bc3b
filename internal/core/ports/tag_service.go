package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// TagInput carries the editable fields of a tag.
type TagInput struct {
	TagName string
	Note    string
}

type TagService interface {
	GetAll(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	Add(ctx context.Context, in TagInput) (*domain.Tag, error)
	Update(ctx context.Context, id int64, in TagInput) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, name string) ([]domain.Tag, error)
}
