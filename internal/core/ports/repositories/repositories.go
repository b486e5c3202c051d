package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	BankRepo           BankRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	EmployeeRepo       EmployeeRepositoryFacade
	CurrencyRepo       CurrencyRepositoryFacade
	TransactionRepo    TransactionRepositoryFacade
	EmployeeActionRepo EmployeeActionRepository
	TxManager          TransactionManager
}
