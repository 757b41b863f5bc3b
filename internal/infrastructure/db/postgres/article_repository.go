package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// ArticleRepository persists news articles and their tag associations in the
// news_articles and news_article_tags tables.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `news_article_id, news_title, headline, news_content, news_source,
	category_id, news_status, created_by_id, created_date, updated_by_id, modified_date`

func scanArticle(row interface{ Scan(...any) error }, a *domain.NewsArticle) error {
	return row.Scan(&a.NewsArticleID, &a.NewsTitle, &a.Headline, &a.NewsContent, &a.NewsSource,
		&a.CategoryID, &a.NewsStatus, &a.CreatedByID, &a.CreatedDate, &a.UpdatedByID, &a.ModifiedDate)
}

func (r *ArticleRepository) GetAll(ctx context.Context) ([]domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles ORDER BY news_article_id`
	return r.queryArticles(ctx, "GetAll", query)
}

func (r *ArticleRepository) GetActive(ctx context.Context) ([]domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE news_status ORDER BY news_article_id`
	return r.queryArticles(ctx, "GetActive", query)
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE news_article_id = $1`
	var a domain.NewsArticle
	err := scanArticle(r.db.QueryRowContext(ctx, query, id), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	articles := []domain.NewsArticle{a}
	if err := r.loadTags(ctx, articles); err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &articles[0], nil
}

func (r *ArticleRepository) GetByCreator(ctx context.Context, createdByID int64) ([]domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE created_by_id = $1 ORDER BY news_article_id`
	return r.queryArticles(ctx, "GetByCreator", query, createdByID)
}

// GetByDateRange returns articles created in [start, end] inclusive, newest
// first.
func (r *ArticleRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.NewsArticle, error) {
	query := `SELECT ` + articleColumns + `
FROM news_articles
WHERE created_date >= $1 AND created_date <= $2
ORDER BY created_date DESC`
	return r.queryArticles(ctx, "GetByDateRange", query, start, end)
}

// Add inserts the article and assigns its id. No tag rows are written;
// articles start with an empty association set whatever the caller supplied.
func (r *ArticleRepository) Add(ctx context.Context, article *domain.NewsArticle) (*domain.NewsArticle, error) {
	const query = `
INSERT INTO news_articles (news_title, headline, news_content, news_source,
	category_id, news_status, created_by_id, created_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING news_article_id`
	err := r.db.QueryRowContext(ctx, query,
		article.NewsTitle, article.Headline, article.NewsContent, article.NewsSource,
		article.CategoryID, article.NewsStatus, article.CreatedByID, article.CreatedDate).
		Scan(&article.NewsArticleID)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	article.Tags = []domain.Tag{}
	return article, nil
}

// Update replaces the editable columns and rewrites the full tag association
// set to exactly tagIDs, in one transaction. created_by_id and created_date
// are never part of the UPDATE.
func (r *ArticleRepository) Update(ctx context.Context, article *domain.NewsArticle, tagIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
UPDATE news_articles
SET news_title = $2, headline = $3, news_content = $4, news_source = $5,
	category_id = $6, news_status = $7, updated_by_id = $8, modified_date = $9
WHERE news_article_id = $1`
	res, err := tx.ExecContext(ctx, query,
		article.NewsArticleID, article.NewsTitle, article.Headline, article.NewsContent,
		article.NewsSource, article.CategoryID, article.NewsStatus,
		article.UpdatedByID, article.ModifiedDate)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrArticleNotFound
	}

	// Full replace: clear then reattach.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM news_article_tags WHERE news_article_id = $1`, article.NewsArticleID); err != nil {
		return fmt.Errorf("Update: clear tags: %w", err)
	}
	if len(tagIDs) > 0 {
		const attachQuery = `
INSERT INTO news_article_tags (news_article_id, tag_id)
SELECT $1, tag_id FROM tags WHERE tag_id = ANY($2)`
		if _, err := tx.ExecContext(ctx, attachQuery, article.NewsArticleID, pq.Array(tagIDs)); err != nil {
			return fmt.Errorf("Update: attach tags: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

// Delete removes the article; its tag associations go with it via the join
// table's cascading foreign key.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM news_articles WHERE news_article_id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// Search applies the optional filters AND-combined: substring on title,
// exact on category id, substring on any associated tag's name.
func (r *ArticleRepository) Search(ctx context.Context, filters ports.ArticleSearchFilters) ([]domain.NewsArticle, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filters.Title != "" {
		args = append(args, "%"+filters.Title+"%")
		conditions = append(conditions, fmt.Sprintf("news_title LIKE $%d", len(args)))
	}
	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filters.TagName != "" {
		args = append(args, "%"+filters.TagName+"%")
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
	SELECT 1 FROM news_article_tags at
	JOIN tags t ON t.tag_id = at.tag_id
	WHERE at.news_article_id = news_articles.news_article_id AND t.tag_name LIKE $%d)`, len(args)))
	}

	query := `SELECT ` + articleColumns + ` FROM news_articles`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY news_article_id`

	return r.queryArticles(ctx, "Search", query, args...)
}

func (r *ArticleRepository) queryArticles(ctx context.Context, op, query string, args ...any) ([]domain.NewsArticle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.NewsArticle, 0, 32)
	for rows.Next() {
		var a domain.NewsArticle
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.loadTags(ctx, articles); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

// loadTags attaches the tag sets for the given articles with a single query.
func (r *ArticleRepository) loadTags(ctx context.Context, articles []domain.NewsArticle) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]int64, len(articles))
	index := make(map[int64]*domain.NewsArticle, len(articles))
	for i := range articles {
		ids[i] = articles[i].NewsArticleID
		articles[i].Tags = []domain.Tag{}
		index[articles[i].NewsArticleID] = &articles[i]
	}

	const query = `
SELECT at.news_article_id, t.tag_id, t.tag_name, t.note
FROM news_article_tags at
JOIN tags t ON t.tag_id = at.tag_id
WHERE at.news_article_id = ANY($1)
ORDER BY t.tag_id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("loadTags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var articleID int64
		var t domain.Tag
		if err := rows.Scan(&articleID, &t.TagID, &t.TagName, &t.Note); err != nil {
			return fmt.Errorf("loadTags: Scan: %w", err)
		}
		if a, ok := index[articleID]; ok {
			a.Tags = append(a.Tags, t)
		}
	}
	return rows.Err()
}
