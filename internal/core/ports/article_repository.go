package ports

import (
	"context"
	"time"

	"github.com/funews/news-management-system/internal/core/domain"
)

// ArticleSearchFilters carries the optional article search predicates.
// Filters are AND-combined; zero values mean "not filtered".
type ArticleSearchFilters struct {
	Title      string // substring match on title
	CategoryID *int64 // exact match
	TagName    string // substring match on any associated tag name
}

// ArticleRepository defines persistence for news articles and their tag
// associations.
type ArticleRepository interface {
	GetAll(ctx context.Context) ([]domain.NewsArticle, error)
	GetActive(ctx context.Context) ([]domain.NewsArticle, error)
	GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error)
	GetByCreator(ctx context.Context, createdByID int64) ([]domain.NewsArticle, error)
	// GetByDateRange returns articles with CreatedDate in [start, end]
	// inclusive, newest first.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.NewsArticle, error)
	// Add inserts the article and assigns its id. Any tag associations on
	// the input are discarded; articles start with an empty tag set.
	Add(ctx context.Context, article *domain.NewsArticle) (*domain.NewsArticle, error)
	// Update replaces the editable fields of the row and rewrites the full
	// tag association set to exactly tagIDs, all in one transaction.
	// CreatedByID and CreatedDate are never touched.
	Update(ctx context.Context, article *domain.NewsArticle, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filters ArticleSearchFilters) ([]domain.NewsArticle, error)
}
