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

var accountCols = []string{"account_id", "account_name", "account_email", "account_role", "password_hash"}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_email = $1")).
		WithArgs("staff@funews.example").
		WillReturnRows(sqlmock.NewRows(accountCols).
			AddRow(int64(7), "Staffer", "staff@funews.example", 1, "$2a$10$hash"))

	got, err := repo.FindByEmail(context.Background(), "staff@funews.example")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	want := &domain.SystemAccount{
		AccountID:    7,
		AccountName:  "Staffer",
		AccountEmail: "staff@funews.example",
		AccountRole:  domain.RoleStaff,
		PasswordHash: "$2a$10$hash",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_email = $1")).
		WithArgs("nobody@funews.example").
		WillReturnRows(sqlmock.NewRows(accountCols))

	if _, err := repo.FindByEmail(context.Background(), "nobody@funews.example"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_DeleteIfUnreferenced_InUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	if err := repo.DeleteIfUnreferenced(context.Background(), 7); !errors.Is(err, domain.ErrAccountInUse) {
		t.Fatalf("expected ErrAccountInUse, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_DeleteIfUnreferenced_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM system_accounts")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteIfUnreferenced(context.Background(), 7); err != nil {
		t.Fatalf("DeleteIfUnreferenced returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_Search_BothFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_name = $1 AND account_email = $2")).
		WithArgs("Staffer", "staff@funews.example").
		WillReturnRows(sqlmock.NewRows(accountCols).
			AddRow(int64(7), "Staffer", "staff@funews.example", 1, "hash"))

	got, err := repo.Search(context.Background(), "Staffer", "staff@funews.example")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].AccountID != 7 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAccountRepository_Search_NoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM system_accounts ORDER BY account_id")).
		WillReturnRows(sqlmock.NewRows(accountCols))

	got, err := repo.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
