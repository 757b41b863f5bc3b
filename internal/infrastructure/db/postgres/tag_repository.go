package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/funews/news-management-system/internal/core/domain"
)

// TagRepository persists tags in the tags table.
type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetAll(ctx context.Context) ([]domain.Tag, error) {
	const query = `SELECT tag_id, tag_name, note FROM tags ORDER BY tag_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]domain.Tag, 0, 16)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.TagID, &t.TagName, &t.Note); err != nil {
			return nil, fmt.Errorf("GetAll: Scan: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	const query = `SELECT tag_id, tag_name, note FROM tags WHERE tag_id = $1`
	var t domain.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.TagID, &t.TagName, &t.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &t, nil
}

func (r *TagRepository) Add(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	const query = `INSERT INTO tags (tag_name, note) VALUES ($1, $2) RETURNING tag_id`
	if err := r.db.QueryRowContext(ctx, query, tag.TagName, tag.Note).Scan(&tag.TagID); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	return tag, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	const query = `UPDATE tags SET tag_name = $2, note = $3 WHERE tag_id = $1`
	res, err := r.db.ExecContext(ctx, query, tag.TagID, tag.TagName, tag.Note)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// Delete removes the tag; its article associations go with it via the join
// table's cascading foreign key.
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE tag_id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *TagRepository) Search(ctx context.Context, name string) ([]domain.Tag, error) {
	const query = `SELECT tag_id, tag_name, note FROM tags WHERE tag_name = $1 ORDER BY tag_id`
	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]domain.Tag, 0, 4)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.TagID, &t.TagName, &t.Note); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
