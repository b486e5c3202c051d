package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency registers a currency with a bank.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	_, err := r.db(ctx).Exec(ctx,
		`INSERT INTO currencies (bank_id, name, exchange_rate) VALUES ($1, $2, $3)`,
		m.BankID, m.Name, m.ExchangeRate,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", m.Name, mapError(err))
	}
	return nil
}

// FindCurrencyByName retrieves a bank's currency by name.
func (r *PgxCurrencyRepository) FindCurrencyByName(ctx context.Context, bankID, name string) (*domain.Currency, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT bank_id, name, exchange_rate FROM currencies WHERE bank_id = $1 AND name = $2`,
		bankID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency %s: %w", name, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, mapError(err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves a bank's currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT bank_id, name, exchange_rate FROM currencies WHERE bank_id = $1 ORDER BY name`,
		bankID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

// UpdateCurrency changes a currency's exchange rate.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	return expectOne(r.db(ctx).Exec(ctx,
		`UPDATE currencies SET exchange_rate = $3 WHERE bank_id = $1 AND name = $2`,
		currency.BankID, currency.Name, currency.ExchangeRate,
	))
}

// DeleteCurrency removes one currency.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, bankID, name string) error {
	return expectOne(r.db(ctx).Exec(ctx, `DELETE FROM currencies WHERE bank_id = $1 AND name = $2`, bankID, name))
}

// DeleteCurrenciesByBank removes every currency of a bank.
func (r *PgxCurrencyRepository) DeleteCurrenciesByBank(ctx context.Context, bankID string) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM currencies WHERE bank_id = $1`, bankID); err != nil {
		return fmt.Errorf("failed to delete currencies of bank %s: %w", bankID, err)
	}
	return nil
}
