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

const transactionColumns = `transaction_id, bank_id, account_id, from_bank_id, from_account_id, to_bank_id, to_account_id,
	reference_id, transaction_type, narrative, amount, transaction_date`

type PgxTransactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID, m.BankID, m.AccountID, m.FromBankID, m.FromAccountID, m.ToBankID, m.ToAccountID,
		m.ReferenceID, m.TransactionType, m.Narrative, m.Amount, m.TransactionDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, mapError(err))
	}
	return nil
}

// FindTransactionByID retrieves one entry recorded under a bank.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, bankID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE bank_id = $1 AND transaction_id = $2`,
		bankID, transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapError(err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactionsByAccount retrieves the full history of an account.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE bank_id = $1 AND account_id = $2
		ORDER BY transaction_date ASC, transaction_id ASC`
	return r.list(ctx, query, bankID, accountID)
}

// ListTransactionsByAccountPage retrieves entries after the (afterDate, afterID) cursor.
func (r *PgxTransactionRepository) ListTransactionsByAccountPage(ctx context.Context, bankID, accountID string, limit int, afterDate *time.Time, afterID string) ([]domain.Transaction, error) {
	if afterDate == nil {
		query := `SELECT ` + transactionColumns + ` FROM transactions
			WHERE bank_id = $1 AND account_id = $2
			ORDER BY transaction_date ASC, transaction_id ASC
			LIMIT $3`
		return r.list(ctx, query, bankID, accountID, limit)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE bank_id = $1 AND account_id = $2 AND (transaction_date, transaction_id) > ($3, $4)
		ORDER BY transaction_date ASC, transaction_id ASC
		LIMIT $5`
	return r.list(ctx, query, bankID, accountID, *afterDate, afterID, limit)
}

// ExistsReversal checks for a revert leg of the transfer referenceID.
func (r *PgxTransactionRepository) ExistsReversal(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.db(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE reference_id = $1 AND narrative = $2)`,
		referenceID, string(domain.NarrativeRevertTransaction),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query reversal of %s: %w", referenceID, err)
	}
	return exists, nil
}

func (r *PgxTransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
