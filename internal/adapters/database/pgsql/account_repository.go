package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, bank_id, username, name, account_type, pin_hash, balance, is_active, created_on, updated_on, deleted_on`

type PgxAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account. Usernames are unique among a bank's active accounts.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.AccountID, m.BankID, m.Username, m.Name, m.AccountType, m.PinHash, m.Balance,
		m.IsActive, m.CreatedOn, m.UpdatedOn, m.DeletedOn,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, mapError(err))
	}
	return nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	if inTx(ctx) {
		// balance is read-modify-written inside the unit
		query += ` FOR UPDATE`
	}
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountByID retrieves an active account of a bank.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, `bank_id = $1 AND account_id = $2 AND is_active`, bankID, accountID)
}

// FindAccountByUsername retrieves an active account by username.
func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, bankID, username string) (*domain.Account, error) {
	return r.findOne(ctx, `bank_id = $1 AND username = $2 AND is_active`, bankID, username)
}

// FindAccountRecord retrieves an account whether or not it is active.
func (r *PgxAccountRepository) FindAccountRecord(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, `bank_id = $1 AND account_id = $2`, bankID, accountID)
}

// ListAccounts retrieves the active accounts of a bank.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, bankID string) ([]domain.Account, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE bank_id = $1 AND is_active ORDER BY account_id`, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates profile fields and the pin hash.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts SET name = $3, account_type = $4, pin_hash = $5, updated_on = $6
		WHERE bank_id = $1 AND account_id = $2 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, m.BankID, m.AccountID, m.Name, m.AccountType, m.PinHash, m.UpdatedOn))
}

// UpdateAccountBalance sets the stored balance.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, bankID, accountID string, balance decimal.Decimal, now time.Time) error {
	query := `UPDATE accounts SET balance = $3, updated_on = $4 WHERE bank_id = $1 AND account_id = $2 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, bankID, accountID, balance, now))
}

// DeactivateAccount soft-deletes one account.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, bankID, accountID string, now time.Time) error {
	query := `UPDATE accounts SET is_active = FALSE, updated_on = $3, deleted_on = $3 WHERE bank_id = $1 AND account_id = $2 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, bankID, accountID, now))
}

// DeactivateAccountsByBank soft-deletes every active account of a bank.
func (r *PgxAccountRepository) DeactivateAccountsByBank(ctx context.Context, bankID string, now time.Time) error {
	query := `UPDATE accounts SET is_active = FALSE, updated_on = $2, deleted_on = $2 WHERE bank_id = $1 AND is_active`
	if _, err := r.db(ctx).Exec(ctx, query, bankID, now); err != nil {
		return fmt.Errorf("failed to deactivate accounts of bank %s: %w", bankID, err)
	}
	return nil
}
