package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/funews/news-management-system/internal/core/domain"
)

// AccountRepository persists system accounts in the system_accounts table.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `account_id, account_name, account_email, account_role, password_hash`

func scanAccount(row interface{ Scan(...any) error }, a *domain.SystemAccount) error {
	var role int
	if err := row.Scan(&a.AccountID, &a.AccountName, &a.AccountEmail, &role, &a.PasswordHash); err != nil {
		return err
	}
	a.AccountRole = domain.Role(role)
	return nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.SystemAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM system_accounts ORDER BY account_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]domain.SystemAccount, 0, 16)
	for rows.Next() {
		var a domain.SystemAccount
		if err := scanAccount(rows, &a); err != nil {
			return nil, fmt.Errorf("GetAll: Scan: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.SystemAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM system_accounts WHERE account_id = $1`
	var a domain.SystemAccount
	err := scanAccount(r.db.QueryRowContext(ctx, query, id), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.SystemAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM system_accounts WHERE account_email = $1`
	var a domain.SystemAccount
	err := scanAccount(r.db.QueryRowContext(ctx, query, email), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) Add(ctx context.Context, account *domain.SystemAccount) (*domain.SystemAccount, error) {
	const query = `
INSERT INTO system_accounts (account_name, account_email, account_role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING account_id`
	err := r.db.QueryRowContext(ctx, query,
		account.AccountName, account.AccountEmail, int(account.AccountRole), account.PasswordHash).
		Scan(&account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.SystemAccount) error {
	const query = `
UPDATE system_accounts
SET account_name = $2, account_email = $3, account_role = $4, password_hash = $5
WHERE account_id = $1`
	res, err := r.db.ExecContext(ctx, query,
		account.AccountID, account.AccountName, account.AccountEmail,
		int(account.AccountRole), account.PasswordHash)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// DeleteIfUnreferenced checks for articles naming the account as creator or
// updater and deletes it inside one transaction.
func (r *AccountRepository) DeleteIfUnreferenced(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var referenced bool
	const checkQuery = `
SELECT EXISTS (SELECT 1 FROM news_articles WHERE created_by_id = $1 OR updated_by_id = $1)`
	if err := tx.QueryRowContext(ctx, checkQuery, id).Scan(&referenced); err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: check: %w", err)
	}
	if referenced {
		return domain.ErrAccountInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM system_accounts WHERE account_id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: RowsAffected: %w", err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("DeleteIfUnreferenced: commit: %w", err)
	}
	return nil
}

// Search filters by exact match on each non-empty field, AND-combined.
func (r *AccountRepository) Search(ctx context.Context, name, email string) ([]domain.SystemAccount, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if name != "" {
		args = append(args, name)
		conditions = append(conditions, fmt.Sprintf("account_name = $%d", len(args)))
	}
	if email != "" {
		args = append(args, email)
		conditions = append(conditions, fmt.Sprintf("account_email = $%d", len(args)))
	}

	query := `SELECT ` + accountColumns + ` FROM system_accounts`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY account_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]domain.SystemAccount, 0, 4)
	for rows.Next() {
		var a domain.SystemAccount
		if err := scanAccount(rows, &a); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
