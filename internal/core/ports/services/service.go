package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvc
	Journal     JournalSvcFacade
	Draft       JournalDraftSvc
	Yearbook    YearbookSvc
	Setup       SetupSvc
	Reporting   ReportingService
}
