package ports

import (
	"context"
	"time"

	"github.com/funews/news-management-system/internal/core/domain"
)

// ArticleInput carries the editable fields of a news article. Audit fields
// are stamped by the service, never taken from the caller.
type ArticleInput struct {
	NewsTitle   string
	Headline    string
	NewsContent string
	NewsSource  string
	CategoryID  int64
	NewsStatus  bool
	TagIDs      []int64
}

type ArticleService interface {
	GetAll(ctx context.Context) ([]domain.NewsArticle, error)
	GetActive(ctx context.Context) ([]domain.NewsArticle, error)
	GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error)
	GetByCreator(ctx context.Context, createdByID int64) ([]domain.NewsArticle, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.NewsArticle, error)
	// Create stamps CreatedByID/CreatedDate from the actor and forces the
	// article active. Caller-supplied tags are discarded.
	Create(ctx context.Context, in ArticleInput, actor domain.Identity) (*domain.NewsArticle, error)
	// Update replaces all editable fields, stamps UpdatedByID/ModifiedDate
	// and rewrites the tag set to exactly in.TagIDs. Staff actors may only
	// update articles they created.
	Update(ctx context.Context, id int64, in ArticleInput, actor domain.Identity) (*domain.NewsArticle, error)
	// Delete removes the article. Staff actors may only delete articles
	// they created.
	Delete(ctx context.Context, id int64, actor domain.Identity) error
	Search(ctx context.Context, filters ArticleSearchFilters) ([]domain.NewsArticle, error)
}
