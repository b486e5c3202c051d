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
)

const bankColumns = `bank_id, name, imps, rtgs, oimps, ortgs, is_active, created_on, updated_on, deleted_on`

type PgxBankRepository struct {
	BaseRepository
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

// SaveBank inserts a new bank. Active bank names are unique.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `INSERT INTO banks (` + bankColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.BankID, m.Name, m.IMPS, m.RTGS, m.OIMPS, m.ORTGS,
		m.IsActive, m.CreatedOn, m.UpdatedOn, m.DeletedOn,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, mapError(err))
	}
	return nil
}

func (r *PgxBankRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Bank, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+bankColumns+` FROM banks WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Bank])
	if err != nil {
		return nil, mapError(err)
	}
	d := mapping.ToDomainBank(m)
	return &d, nil
}

// FindBankByID retrieves an active bank by id.
func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	return r.findOne(ctx, `bank_id = $1 AND is_active`, bankID)
}

// FindBankByName retrieves an active bank by name.
func (r *PgxBankRepository) FindBankByName(ctx context.Context, name string) (*domain.Bank, error) {
	return r.findOne(ctx, `name = $1 AND is_active`, name)
}

// FindBankRecord retrieves a bank whether or not it is active.
func (r *PgxBankRepository) FindBankRecord(ctx context.Context, bankID string) (*domain.Bank, error) {
	return r.findOne(ctx, `bank_id = $1`, bankID)
}

// ListBanks retrieves all active banks.
func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+bankColumns+` FROM banks WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Bank])
	if err != nil {
		return nil, fmt.Errorf("failed to scan banks: %w", err)
	}
	return mapping.ToDomainBankSlice(ms), nil
}

// UpdateBank updates the name and charges of an active bank.
func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
		UPDATE banks SET name = $2, imps = $3, rtgs = $4, oimps = $5, ortgs = $6, updated_on = $7
		WHERE bank_id = $1 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, m.BankID, m.Name, m.IMPS, m.RTGS, m.OIMPS, m.ORTGS, m.UpdatedOn))
}

// DeactivateBank soft-deletes a bank.
func (r *PgxBankRepository) DeactivateBank(ctx context.Context, bankID string, now time.Time) error {
	query := `UPDATE banks SET is_active = FALSE, updated_on = $2, deleted_on = $2 WHERE bank_id = $1 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, bankID, now))
}
