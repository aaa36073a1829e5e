package services

// ServiceContainer holds all service interfaces the HTTP layer depends on.
type ServiceContainer struct {
	Report      ReportSvcFacade
	Transaction TransactionSvcFacade
	Customer    CustomerSvcFacade
	Setting     SettingSvcFacade
	Auth        AuthSvcFacade
}
