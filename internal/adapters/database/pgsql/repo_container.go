package pgsql

import (
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}
	return portsrepo.RepositoryProvider{
		BankRepo:           &PgxBankRepository{BaseRepository: base},
		AccountRepo:        &PgxAccountRepository{BaseRepository: base},
		EmployeeRepo:       &PgxEmployeeRepository{BaseRepository: base},
		CurrencyRepo:       &PgxCurrencyRepository{BaseRepository: base},
		TransactionRepo:    &PgxTransactionRepository{BaseRepository: base},
		EmployeeActionRepo: &PgxEmployeeActionRepository{BaseRepository: base},
		TxManager:          &PgxTransactionManager{BaseRepository: base},
	}
}
