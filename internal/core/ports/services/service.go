package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Deposit        DepositSvcFacade
	Journal        JournalSvcFacade
	Voucher        VoucherSvcFacade
	Asset          AssetSvcFacade
	CashBank       CashBankSvcFacade
	Production     ProductionSvcFacade
	PurchaseReturn PurchaseReturnSvcFacade
	Reporting      ReportingSvcFacade
	User           UserSvcFacade

	Authorization AuthorizationSvcFacade
	Numbering     NumberingSvcFacade
	Notifier      NotifierSvc

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
