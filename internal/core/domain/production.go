package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QCStatus indicates the lifecycle state of a quality control inspection.
type QCStatus string

const (
	QCPendingInspection QCStatus = "PENDING"
	QCRecorded          QCStatus = "RECORDED"
)

// QualityControl classifies a received or produced quantity into passed
// and rejected portions. Passed + Rejected may never exceed the
// inspectable quantity on a persisted write; interactive recomputation
// clamps instead (see ClampInspection).
type QualityControl struct {
	QCID           string          `json:"qcID"`      // Primary Key (UUID)
	Number         string          `json:"number"`    // e.g. "QC-20250101-0001"
	ReceiptID      string          `json:"receiptID"` // Purchase receipt or production output being inspected
	InspectableQty decimal.Decimal `json:"inspectableQty"`
	PassedQty      decimal.Decimal `json:"passedQty"`
	RejectedQty    decimal.Decimal `json:"rejectedQty"`
	Status         QCStatus        `json:"status"`
	Notes          string          `json:"notes"`
	AuditFields
}

// ClampInspection recomputes the passed quantity so that
// passed + rejected <= inspectable, for live UI recalculation. The
// persisted write path rejects out-of-bound totals outright instead.
func ClampInspection(passed, rejected, inspectable decimal.Decimal) decimal.Decimal {
	maxPassed := inspectable.Sub(rejected)
	if maxPassed.IsNegative() {
		return decimal.Zero
	}
	if passed.GreaterThan(maxPassed) {
		return maxPassed
	}
	return passed
}

// MaterialIssueItem is one material line of a manufacturing issue document.
type MaterialIssueItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	IssueID      string          `json:"issueID"`
	MaterialID   string          `json:"materialID"`
	RequestedQty decimal.Decimal `json:"requestedQty"`
	IssuedQty    decimal.Decimal `json:"issuedQty"`
	AvailableQty decimal.Decimal `json:"availableQty"` // Stock on hand at issue time
}

// MaterialIssueStatus indicates the lifecycle state of a material issue.
type MaterialIssueStatus string

const (
	MaterialIssueDraft  MaterialIssueStatus = "DRAFT"
	MaterialIssueIssued MaterialIssueStatus = "ISSUED"
)

// MaterialIssue hands raw materials to manufacturing against a production
// plan. Issued quantities may not exceed available stock when persisted.
type MaterialIssue struct {
	IssueID          string              `json:"issueID"` // Primary Key (UUID)
	Number           string              `json:"number"`  // e.g. "MI-20250101-0001"
	ProductionPlanID string              `json:"productionPlanID"`
	Date             time.Time           `json:"date"`
	Items            []MaterialIssueItem `json:"items"`
	Status           MaterialIssueStatus `json:"status"`
	Notes            string              `json:"notes"`
	AuditFields
}
