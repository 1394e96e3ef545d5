package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of pgx-backed repositories over one
// shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        newPgxAccountRepository(dbPool),
		DepositRepo:        newPgxDepositRepository(dbPool),
		JournalRepo:        newPgxJournalRepository(dbPool),
		VoucherRepo:        newPgxVoucherRepository(dbPool),
		AssetRepo:          newPgxAssetRepository(dbPool),
		CashBankRepo:       newPgxCashBankRepository(dbPool),
		ProductionRepo:     newPgxProductionRepository(dbPool),
		PurchaseReturnRepo: newPgxPurchaseReturnRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
	}
}
