package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultPageSize = 20

// journalService builds and appends ledger entries. Entries are never updated
// or removed once saved.
type journalService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	idGen   portssvc.IDGeneratorSvc
}

// NewJournalService creates a new JournalService.
func NewJournalService(repo portsrepo.TransactionRepositoryFacade, idGen portssvc.IDGeneratorSvc) portssvc.JournalSvcFacade {
	return &journalService{txnRepo: repo, idGen: idGen}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateTransaction builds an entry with its id already assigned, so callers
// can reference it before it is persisted.
func (s *journalService) CreateTransaction(bankID, accountID string, amount decimal.Decimal, txnType domain.TransactionType,
	narrative domain.TransactionNarrative, from domain.AccountRef, to *domain.AccountRef) domain.Transaction {
	txn := domain.Transaction{
		TransactionID:   s.idGen.GenTransactionID(bankID, accountID),
		BankID:          bankID,
		AccountID:       accountID,
		FromBankID:      from.BankID,
		FromAccountID:   from.AccountID,
		TransactionType: txnType,
		Narrative:       narrative,
		Amount:          amount,
		TransactionDate: time.Now().UTC(),
	}
	if to != nil {
		toBankID, toAccountID := to.BankID, to.AccountID
		txn.ToBankID = &toBankID
		txn.ToAccountID = &toAccountID
	}
	return txn
}

// AddTransaction stamps the owning bank and account onto txn and appends it.
func (s *journalService) AddTransaction(ctx context.Context, bankID, accountID string, txn domain.Transaction) error {
	txn.BankID = bankID
	txn.AccountID = accountID
	if txn.TransactionID == "" {
		txn.TransactionID = s.idGen.GenTransactionID(bankID, accountID)
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now().UTC()
	}
	if err := txn.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected invalid transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("reason", err.Error()))
		if !txn.Amount.IsPositive() {
			return fmt.Errorf("%w: %w", apperrors.ErrInvalidAmount, err)
		}
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", accountID))
		return err
	}
	s.LogDebug(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return nil
}

func (s *journalService) GetTransactionByID(ctx context.Context, bankID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, bankID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

// GetTransactions returns the full history of an account, oldest first.
func (s *journalService) GetTransactions(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, bankID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNoTransactions
	}
	return txns, nil
}

// ListTransactions returns one page of an account history. An empty page is
// not an error.
func (s *journalService) ListTransactions(ctx context.Context, bankID, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := requestValidator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var afterDate *time.Time
	var afterID string
	if params.NextToken != "" {
		date, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		afterDate, afterID = &date, id
	}

	// one extra row tells us whether another page exists
	txns, err := s.txnRepo.ListTransactionsByAccountPage(ctx, bankID, accountID, limit+1, afterDate, afterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to page transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}

	resp := &dto.ListTransactionsResponse{}
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.TransactionID)
		resp.NextToken = &token
	}
	resp.Transactions = dto.ToListTransactionResponse(txns)
	return resp, nil
}

func (s *journalService) HasReversal(ctx context.Context, transferKey string) (bool, error) {
	found, err := s.txnRepo.ExistsReversal(ctx, transferKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up reversal", slog.String("transfer", transferKey))
		return false, fmt.Errorf("failed to look up reversal of %s: %w", transferKey, err)
	}
	return found, nil
}
