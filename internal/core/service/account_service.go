package service

import (
	"context"
	"errors"

	"github.com/funews/news-management-system/internal/api/metrics"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// AccountService implements system-account CRUD with bcrypt password
// handling and the creator/updater delete guard.
type AccountService struct {
	repo ports.AccountRepository
}

func NewAccountService(repo ports.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) GetAll(ctx context.Context) ([]domain.SystemAccount, error) {
	return s.repo.GetAll(ctx)
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*domain.SystemAccount, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccountService) Add(ctx context.Context, in ports.AccountInput) (*domain.SystemAccount, error) {
	if !in.AccountRole.Valid() {
		return nil, domain.ErrAccessDenied
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, &domain.SystemAccount{
		AccountName:  in.AccountName,
		AccountEmail: in.AccountEmail,
		AccountRole:  in.AccountRole,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("account", "create").Inc()
	return created, nil
}

// Update replaces name, email and role. The password is rehashed only when a
// new one is supplied; an empty password keeps the stored hash.
func (s *AccountService) Update(ctx context.Context, id int64, in ports.AccountInput) (*domain.SystemAccount, error) {
	if !in.AccountRole.Valid() {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.AccountName = in.AccountName
	existing.AccountEmail = in.AccountEmail
	existing.AccountRole = in.AccountRole
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("account", "update").Inc()
	return existing, nil
}

// Delete removes the account unless a news article still names it as creator
// or updater. Check and delete run in one repository transaction.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAccountInUse) {
			metrics.GuardRejectionsTotal.WithLabelValues("account").Inc()
		}
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("account", "delete").Inc()
	return nil
}

func (s *AccountService) Search(ctx context.Context, name, email string) ([]domain.SystemAccount, error) {
	return s.repo.Search(ctx, name, email)
}
