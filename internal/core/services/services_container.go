package services

import (
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/platform/config"
	"github.com/nusankara/erp_backoffice/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, posthogClient *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Cross-cutting services first since the domain services depend on them.
	container.Authorization = NewAuthorizationService(repos.UserRepo)
	container.Numbering = NewNumberingService(map[string]NumberExistsFunc{
		DepositNumberPrefix:        repos.DepositRepo.NumberExists,
		CashBankNumberPrefix:       repos.CashBankRepo.NumberExists,
		VoucherNumberPrefix:        repos.VoucherRepo.NumberExists,
		AssetNumberPrefix:          repos.AssetRepo.NumberExists,
		DisposalNumberPrefix:       repos.AssetRepo.NumberExists,
		TransferNumberPrefix:       repos.AssetRepo.NumberExists,
		QCNumberPrefix:             repos.ProductionRepo.NumberExists,
		MaterialIssueNumberPrefix:  repos.ProductionRepo.NumberExists,
		PurchaseReturnNumberPrefix: repos.PurchaseReturnRepo.NumberExists,
	})
	container.Notifier = NewNotifierService(posthogClient)

	// The journal poster runs inside each caller's transaction; every
	// document service that posts shares this one instance.
	resolver := NewPostingContextResolver(repos.AssetRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, resolver)
	var poster portssvc.JournalPosterSvc = container.Journal

	container.Account = NewAccountService(repos.AccountRepo, container.Authorization)
	container.Deposit = NewDepositService(repos.DepositRepo, poster, container.Authorization, container.Numbering)
	container.CashBank = NewCashBankService(repos.CashBankRepo, poster, container.Authorization, container.Numbering)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.CashBankRepo, poster, container.Authorization, container.Numbering, container.Notifier)
	container.Asset = NewAssetService(repos.AssetRepo, poster, container.Authorization, container.Numbering, container.Notifier, LedgerAccounts{
		DisposalGainCoaID: cfg.DisposalGainCoaID,
		DisposalLossCoaID: cfg.DisposalLossCoaID,
		TransferInCoaID:   cfg.TransferInCoaID,
		TransferOutCoaID:  cfg.TransferOutCoaID,
	})
	container.Production = NewProductionService(repos.ProductionRepo, container.Authorization, container.Numbering)
	container.PurchaseReturn = NewPurchaseReturnService(repos.PurchaseReturnRepo, repos.ProductionRepo, poster, container.Authorization, container.Numbering, container.Notifier)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.JournalRepo)
	container.User = NewUserService(repos.UserRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
