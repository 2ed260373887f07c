package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ingest    IngestSvcFacade
	Donation  DonationSvcFacade
	Dashboard DashboardSvcFacade
	Dropdown  DropdownSvcFacade
	Event     EventSvcFacade
	Kemitraan KemitraanSvcFacade
	Auth      AuthSvcFacade
}
