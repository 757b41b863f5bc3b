package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"github.com/funews/news-management-system/internal/core/domain"
)

var categoryCols = []string{"category_id", "category_name", "category_description", "parent_category_id", "is_active"}

func TestCategoryRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	parent := int64(1)
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow(int64(3), "Politics", "Political coverage", parent, true))

	got, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	want := &domain.Category{
		CategoryID:          3,
		CategoryName:        "Politics",
		CategoryDescription: "Political coverage",
		ParentCategoryID:    &parent,
		IsActive:            true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("category mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCategoryRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(categoryCols))

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
		WithArgs(int64(42), "Ghost", "", nil, false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.Category{CategoryID: 42, CategoryName: "Ghost"})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_DeleteIfUnreferenced_InUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	if err := repo.DeleteIfUnreferenced(context.Background(), 3); !errors.Is(err, domain.ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCategoryRepository_DeleteIfUnreferenced_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteIfUnreferenced(context.Background(), 3); err != nil {
		t.Fatalf("DeleteIfUnreferenced returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCategoryRepository_DeleteIfUnreferenced_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteIfUnreferenced(context.Background(), 99); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryRepository_Search_ExactName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE category_name = $1")).
		WithArgs("Politics").
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow(int64(3), "Politics", "", nil, true))

	got, err := repo.Search(context.Background(), "Politics")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].CategoryName != "Politics" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
