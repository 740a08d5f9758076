package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth               AuthSvcFacade
	Company            CompanySvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Building           BuildingSvcFacade
	Unit               UnitSvcFacade
	Tenant             TenantSvcFacade
	Lease              LeaseSvcFacade
	RentPayment        RentPaymentSvcFacade
	Transaction        TransactionSvcFacade
	Project            ProjectSvcFacade
	Employee           EmployeeSvcFacade
	Punch              PunchSvcFacade
	Reporting          ReportingService
}
