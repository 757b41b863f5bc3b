package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// AccountInput carries the editable fields of a system account. Password is
// optional on update: when empty the stored hash is kept.
type AccountInput struct {
	AccountName  string
	AccountEmail string
	AccountRole  domain.Role
	Password     string
}

type AccountService interface {
	GetAll(ctx context.Context) ([]domain.SystemAccount, error)
	GetByID(ctx context.Context, id int64) (*domain.SystemAccount, error)
	Add(ctx context.Context, in AccountInput) (*domain.SystemAccount, error)
	Update(ctx context.Context, id int64, in AccountInput) (*domain.SystemAccount, error)
	// Delete enforces the referential guard: it fails with
	// domain.ErrAccountInUse while any article names the account as creator
	// or updater.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, name, email string) ([]domain.SystemAccount, error)
}
