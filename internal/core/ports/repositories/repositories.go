package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo        AccountRepositoryFacade
	DepositRepo        DepositRepositoryWithTx
	JournalRepo        JournalRepositoryWithTx
	VoucherRepo        VoucherRepositoryWithTx
	AssetRepo          AssetRepositoryWithTx
	CashBankRepo       CashBankRepositoryWithTx
	ProductionRepo     ProductionRepositoryWithTx
	PurchaseReturnRepo PurchaseReturnRepositoryWithTx
	UserRepo           UserRepositoryFacade
}
