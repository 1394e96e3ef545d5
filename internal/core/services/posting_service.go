package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// journalService turns typed business events into balanced journal lines
// and reads them back. PostInTx runs inside the caller's transaction so a
// business-state change and its ledger effect commit or roll back together.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
	resolver    portssvc.PostingContextResolverSvc
}

// NewJournalService creates a new journal posting and reading service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade, resolver portssvc.PostingContextResolverSvc) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		resolver:    resolver,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostInTx builds the lines for the event, validates the double-entry
// invariant, verifies every referenced account exists, inserts the lines,
// and applies account balance deltas. Any failure aborts the whole event;
// nothing is ever partially written.
func (s *journalService) PostInTx(ctx context.Context, tx pgx.Tx, event domain.PostingEvent, actorID string) ([]domain.JournalLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.buildLines(event)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reference := uuid.NewString()
	sourceType, sourceID := event.Source()

	pctx := domain.PostingContext{}
	if s.resolver != nil {
		pctx, err = s.resolver.Resolve(ctx, sourceType, sourceID)
		if err != nil {
			logger.Error("Failed to resolve posting context", slog.String("error", err.Error()), slog.String("source_id", sourceID))
			return nil, fmt.Errorf("failed to resolve posting context for %s %s: %w", sourceType, sourceID, err)
		}
	}

	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].Reference = reference
		lines[i].Date = event.EventDate()
		lines[i].JournalType = event.JournalType()
		lines[i].SourceType = sourceType
		lines[i].SourceID = sourceID
		if lines[i].BranchID == nil {
			lines[i].BranchID = pctx.BranchID
		}
		lines[i].DepartmentID = pctx.DepartmentID
		lines[i].ProjectID = pctx.ProjectID
		lines[i].AuditFields = domain.NewAuditFields(actorID, now)
	}

	if err := accounting.ValidateBalanced(lines); err != nil {
		logger.Error("Posting event produced unbalanced lines", slog.String("error", err.Error()), slog.String("source_id", sourceID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	coaIDs := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.CoaID] {
			seen[line.CoaID] = true
			coaIDs = append(coaIDs, line.CoaID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, coaIDs)
	if err != nil {
		logger.Error("Failed to lock accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	for _, id := range coaIDs {
		if _, found := accounts[id]; !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrMissingAccountMapping, id)
		}
	}

	balanceChanges := make(map[string]decimal.Decimal, len(coaIDs))
	for _, line := range lines {
		delta, err := signedBalanceDelta(line, accounts[line.CoaID].AccountType)
		if err != nil {
			return nil, err
		}
		balanceChanges[line.CoaID] = balanceChanges[line.CoaID].Add(delta)
	}

	if err := s.journalRepo.InsertLinesInTx(ctx, tx, lines); err != nil {
		logger.Error("Failed to insert journal lines", slog.String("error", err.Error()), slog.String("reference", reference))
		return nil, fmt.Errorf("failed to insert journal lines: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, actorID, now); err != nil {
		logger.Error("Failed to update account balances", slog.String("error", err.Error()), slog.String("reference", reference))
		return nil, fmt.Errorf("failed to update account balances: %w", err)
	}

	logger.Info("Posting recorded",
		slog.String("reference", reference),
		slog.String("journal_type", string(event.JournalType())),
		slog.String("source_id", sourceID),
		slog.Int("lines", len(lines)),
	)
	return lines, nil
}

// signedBalanceDelta converts one line into the signed change it applies
// to its account's running balance. Debits increase asset and expense
// accounts; credits increase liability, equity, and revenue accounts.
func signedBalanceDelta(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	amount := line.Debit
	isDebit := !line.Debit.IsZero()
	if !isDebit {
		amount = line.Credit
	}

	switch accountType {
	case domain.AccountTypeAsset, domain.AccountTypeExpense:
		if !isDebit {
			amount = amount.Neg()
		}
	case domain.AccountTypeLiability, domain.AccountTypeEquity, domain.AccountTypeRevenue:
		if isDebit {
			amount = amount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.CoaID)
	}
	return amount, nil
}

// debitLine and creditLine build half-filled lines; PostInTx stamps the
// shared posting fields afterwards.
func debitLine(coaID string, amount decimal.Decimal, description string) domain.JournalLine {
	return domain.JournalLine{CoaID: coaID, Debit: amount, Credit: decimal.Zero, Description: description}
}

func creditLine(coaID string, amount decimal.Decimal, description string) domain.JournalLine {
	return domain.JournalLine{CoaID: coaID, Debit: decimal.Zero, Credit: amount, Description: description}
}

// requireCoa fails a posting early when a rule needs an account mapping
// the event does not carry.
func requireCoa(coaID string, role string) error {
	if coaID == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingAccountMapping, role)
	}
	return nil
}

// buildLines applies the directional rule for the event type.
func (s *journalService) buildLines(event domain.PostingEvent) ([]domain.JournalLine, error) {
	switch e := event.(type) {
	case domain.DepositFunded:
		return buildDepositFundedLines(e)
	case domain.DepositReduced:
		return buildDepositReducedLines(e)
	case domain.CashBankPosted:
		return buildCashBankLines(e)
	case domain.AssetAcquired:
		return buildAssetAcquiredLines(e)
	case domain.AssetDepreciated:
		return buildAssetDepreciatedLines(e)
	case domain.AssetDisposed:
		return buildAssetDisposedLines(e)
	case domain.AssetTransferred:
		return buildAssetTransferredLines(e)
	case domain.PurchaseReturned:
		return buildPurchaseReturnedLines(e)
	default:
		return nil, fmt.Errorf("%w: no posting rule for event %T", apperrors.ErrInternal, event)
	}
}

// Supplier deposits are advances (asset); customer deposits are liabilities.
// Funding a supplier deposit: Dr advance, Cr cash/bank.
// Funding a customer deposit: Dr cash/bank, Cr liability.
func buildDepositFundedLines(e domain.DepositFunded) ([]domain.JournalLine, error) {
	if err := requireCoa(e.DepositCoaID, "deposit account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.PaymentCoaID, "payment account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Deposit funding %s", e.Number)
	if e.Note != "" {
		desc = fmt.Sprintf("%s: %s", desc, e.Note)
	}
	if e.Owner == domain.OwnerSupplier {
		return []domain.JournalLine{
			debitLine(e.DepositCoaID, e.Amount, desc),
			creditLine(e.PaymentCoaID, e.Amount, desc),
		}, nil
	}
	return []domain.JournalLine{
		debitLine(e.PaymentCoaID, e.Amount, desc),
		creditLine(e.DepositCoaID, e.Amount, desc),
	}, nil
}

// Reducing a deposit mirrors funding for the same owner type.
func buildDepositReducedLines(e domain.DepositReduced) ([]domain.JournalLine, error) {
	if err := requireCoa(e.DepositCoaID, "deposit account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.PaymentCoaID, "payment account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Deposit reduction %s", e.Number)
	if e.Note != "" {
		desc = fmt.Sprintf("%s: %s", desc, e.Note)
	}
	if e.Owner == domain.OwnerSupplier {
		return []domain.JournalLine{
			debitLine(e.PaymentCoaID, e.Amount, desc),
			creditLine(e.DepositCoaID, e.Amount, desc),
		}, nil
	}
	return []domain.JournalLine{
		debitLine(e.DepositCoaID, e.Amount, desc),
		creditLine(e.PaymentCoaID, e.Amount, desc),
	}, nil
}

// A cash/bank inflow debits the main account and credits the breakup;
// an outflow is the mirror. Negative detail amounts flip their side, so
// a withheld tax on a receipt still lands as a debit.
func buildCashBankLines(e domain.CashBankPosted) ([]domain.JournalLine, error) {
	if err := requireCoa(e.AccountCoaID, "cash/bank account"); err != nil {
		return nil, err
	}
	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Cash/bank transaction %s", e.Number)
	}

	inflow := e.Type.IsInflow()
	lines := make([]domain.JournalLine, 0, len(e.Details)+1)
	if inflow {
		lines = append(lines, debitLine(e.AccountCoaID, e.Amount, desc))
	} else {
		lines = append(lines, creditLine(e.AccountCoaID, e.Amount, desc))
	}

	if len(e.Details) == 0 {
		if e.OffsetCoaID == nil || *e.OffsetCoaID == "" {
			return nil, fmt.Errorf("%w: offset account", apperrors.ErrMissingAccountMapping)
		}
		if inflow {
			lines = append(lines, creditLine(*e.OffsetCoaID, e.Amount, desc))
		} else {
			lines = append(lines, debitLine(*e.OffsetCoaID, e.Amount, desc))
		}
		return lines, nil
	}

	for _, d := range e.Details {
		if err := requireCoa(d.CoaID, "detail account"); err != nil {
			return nil, err
		}
		lineDesc := d.Description
		if lineDesc == "" {
			lineDesc = desc
		}
		amount := d.Amount
		flip := amount.IsNegative()
		if flip {
			amount = amount.Neg()
		}
		// Counter side of the main account, unless the detail is negative.
		counterIsCredit := inflow != flip
		if counterIsCredit {
			lines = append(lines, creditLine(d.CoaID, amount, lineDesc))
		} else {
			lines = append(lines, debitLine(d.CoaID, amount, lineDesc))
		}
	}
	return lines, nil
}

// Acquisition: Dr fixed asset, Cr payable or cash/bank.
func buildAssetAcquiredLines(e domain.AssetAcquired) ([]domain.JournalLine, error) {
	if err := requireCoa(e.AssetCoaID, "asset account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.CreditCoaID, "funding account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Acquisition of %s", e.AssetName)
	return []domain.JournalLine{
		debitLine(e.AssetCoaID, e.Cost, desc),
		creditLine(e.CreditCoaID, e.Cost, desc),
	}, nil
}

// Depreciation: Dr expense, Cr accumulated depreciation.
func buildAssetDepreciatedLines(e domain.AssetDepreciated) ([]domain.JournalLine, error) {
	if err := requireCoa(e.ExpenseCoaID, "depreciation expense account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.AccumCoaID, "accumulated depreciation account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Depreciation %s of %s", e.PeriodLabel, e.AssetName)
	return []domain.JournalLine{
		debitLine(e.ExpenseCoaID, e.Amount, desc),
		creditLine(e.AccumCoaID, e.Amount, desc),
	}, nil
}

// Disposal clears the asset's cost and accumulated depreciation and books
// the difference against proceeds as a gain or loss.
func buildAssetDisposedLines(e domain.AssetDisposed) ([]domain.JournalLine, error) {
	if err := requireCoa(e.AssetCoaID, "asset account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.AccumCoaID, "accumulated depreciation account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Disposal of %s", e.AssetName)

	lines := make([]domain.JournalLine, 0, 4)
	if e.Proceeds.IsPositive() {
		if err := requireCoa(e.ProceedsCoaID, "proceeds account"); err != nil {
			return nil, err
		}
		lines = append(lines, debitLine(e.ProceedsCoaID, e.Proceeds, desc))
	}
	if e.AccumulatedDep.IsPositive() {
		lines = append(lines, debitLine(e.AccumCoaID, e.AccumulatedDep, desc))
	}
	lines = append(lines, creditLine(e.AssetCoaID, e.OriginalCost, desc))

	gain := e.Gain()
	switch {
	case gain.IsPositive():
		if err := requireCoa(e.GainCoaID, "gain on disposal account"); err != nil {
			return nil, err
		}
		lines = append(lines, creditLine(e.GainCoaID, gain, desc))
	case gain.IsNegative():
		if err := requireCoa(e.LossCoaID, "loss on disposal account"); err != nil {
			return nil, err
		}
		lines = append(lines, debitLine(e.LossCoaID, gain.Neg(), desc))
	}
	return lines, nil
}

// Transfer moves book value between branch clearing accounts; each line
// carries its own branch tag.
func buildAssetTransferredLines(e domain.AssetTransferred) ([]domain.JournalLine, error) {
	if err := requireCoa(e.InClearCoaID, "inbound clearing account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.OutClearCoaID, "outbound clearing account"); err != nil {
		return nil, err
	}
	if !e.BookValue.IsPositive() {
		return nil, fmt.Errorf("%w: transfer of %s has no book value to clear", apperrors.ErrValidation, e.AssetName)
	}
	desc := fmt.Sprintf("Transfer of %s", e.AssetName)
	in := debitLine(e.InClearCoaID, e.BookValue, desc)
	toBranch := e.ToBranchID
	in.BranchID = &toBranch
	out := creditLine(e.OutClearCoaID, e.BookValue, desc)
	fromBranch := e.FromBranchID
	out.BranchID = &fromBranch
	return []domain.JournalLine{in, out}, nil
}

// A purchase return hands goods back to the supplier: Dr payable, Cr
// inventory, tagged with the originating receipt's branch.
func buildPurchaseReturnedLines(e domain.PurchaseReturned) ([]domain.JournalLine, error) {
	if err := requireCoa(e.PayableCoaID, "supplier payable account"); err != nil {
		return nil, err
	}
	if err := requireCoa(e.InventoryCoaID, "inventory account"); err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("Purchase return %s", e.Number)
	dr := debitLine(e.PayableCoaID, e.Amount, desc)
	cr := creditLine(e.InventoryCoaID, e.Amount, desc)
	if e.BranchID != "" {
		branch := e.BranchID
		dr.BranchID = &branch
		cr.BranchID = &branch
	}
	return []domain.JournalLine{dr, cr}, nil
}

// GetPosting retrieves every line of one posting reference.
func (s *journalService) GetPosting(ctx context.Context, reference string, actorID string) ([]domain.JournalLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	lines, err := s.journalRepo.FindLinesByReference(ctx, reference)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find posting by reference", slog.String("error", err.Error()), slog.String("reference", reference))
		}
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: posting %s", apperrors.ErrNotFound, reference)
	}
	return lines, nil
}

// GetLinesBySource retrieves all lines tagged to a source document.
func (s *journalService) GetLinesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string, actorID string) ([]domain.JournalLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	lines, err := s.journalRepo.FindLinesBySource(ctx, sourceType, sourceID)
	if err != nil {
		logger.Error("Failed to find lines by source", slog.String("error", err.Error()), slog.String("source_id", sourceID))
		return nil, err
	}
	return lines, nil
}

// ListPostings retrieves a paginated list of journal lines.
func (s *journalService) ListPostings(ctx context.Context, params dto.ListJournalParams, actorID string) (*dto.ListJournalResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	lines, nextToken, err := s.journalRepo.ListReferences(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal lines", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list journal lines: %w", err)
	}
	return &dto.ListJournalResponse{
		Lines:     dto.ToJournalLineResponses(lines),
		NextToken: nextToken,
	}, nil
}
