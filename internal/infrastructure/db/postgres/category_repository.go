package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/funews/news-management-system/internal/core/domain"
)

// CategoryRepository persists categories in the categories table.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	const query = `
SELECT category_id, category_name, category_description, parent_category_id, is_active
FROM categories
ORDER BY category_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]domain.Category, 0, 16)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.CategoryDescription,
			&c.ParentCategoryID, &c.IsActive); err != nil {
			return nil, fmt.Errorf("GetAll: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const query = `
SELECT category_id, category_name, category_description, parent_category_id, is_active
FROM categories
WHERE category_id = $1`
	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.CategoryID, &c.CategoryName, &c.CategoryDescription, &c.ParentCategoryID, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Add(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	const query = `
INSERT INTO categories (category_name, category_description, parent_category_id, is_active)
VALUES ($1, $2, $3, $4)
RETURNING category_id`
	err := r.db.QueryRowContext(ctx, query,
		category.CategoryName, category.CategoryDescription, category.ParentCategoryID, category.IsActive).
		Scan(&category.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const query = `
UPDATE categories
SET category_name = $2, category_description = $3, parent_category_id = $4, is_active = $5
WHERE category_id = $1`
	res, err := r.db.ExecContext(ctx, query,
		category.CategoryID, category.CategoryName, category.CategoryDescription,
		category.ParentCategoryID, category.IsActive)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// DeleteIfUnreferenced checks the article reference count and deletes the
// category inside one transaction, so a concurrent insert of a referencing
// article cannot slip between check and delete.
func (r *CategoryRepository) DeleteIfUnreferenced(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var referenced bool
	const checkQuery = `SELECT EXISTS (SELECT 1 FROM news_articles WHERE category_id = $1)`
	if err := tx.QueryRowContext(ctx, checkQuery, id).Scan(&referenced); err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: check: %w", err)
	}
	if referenced {
		return domain.ErrCategoryInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: commit: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Search(ctx context.Context, name string) ([]domain.Category, error) {
	const query = `
SELECT category_id, category_name, category_description, parent_category_id, is_active
FROM categories
WHERE category_name = $1
ORDER BY category_id`
	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]domain.Category, 0, 4)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.CategoryDescription,
			&c.ParentCategoryID, &c.IsActive); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
