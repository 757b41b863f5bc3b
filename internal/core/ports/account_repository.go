package ports

import (
	"context"

	"github.com/funews/news-management-system/internal/core/domain"
)

// AccountRepository defines persistence for system accounts.
type AccountRepository interface {
	GetAll(ctx context.Context) ([]domain.SystemAccount, error)
	GetByID(ctx context.Context, id int64) (*domain.SystemAccount, error)
	FindByEmail(ctx context.Context, email string) (*domain.SystemAccount, error)
	Add(ctx context.Context, account *domain.SystemAccount) (*domain.SystemAccount, error)
	Update(ctx context.Context, account *domain.SystemAccount) error
	// DeleteIfUnreferenced removes the account only when no news article
	// names it as creator or updater. The reference check and the delete run
	// in a single transaction; a violation yields domain.ErrAccountInUse.
	DeleteIfUnreferenced(ctx context.Context, id int64) error
	// Search filters by exact match on each non-empty field.
	Search(ctx context.Context, name, email string) ([]domain.SystemAccount, error)
}
