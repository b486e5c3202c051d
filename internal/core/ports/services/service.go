package services

// ServiceContainer holds instances of all the application services.
// Handlers reach the ledger only through Bank; the component services are
// composed behind it.
type ServiceContainer struct {
	Bank  BankSvcFacade
	Token TokenSvcFacade
}
