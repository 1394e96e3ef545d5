package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QualityControl represents an inspection of a goods receipt.
type QualityControl struct {
	QCID           string          `db:"qc_id"`
	Number         string          `db:"number"`
	ReceiptID      string          `db:"receipt_id"`
	InspectableQty decimal.Decimal `db:"inspectable_qty"`
	PassedQty      decimal.Decimal `db:"passed_qty"`
	RejectedQty    decimal.Decimal `db:"rejected_qty"`
	Status         string          `db:"status"`
	Notes          string          `db:"notes"`
	AuditFields
}

// MaterialIssue represents a stock issue against a production plan.
type MaterialIssue struct {
	IssueID          string    `db:"issue_id"`
	Number           string    `db:"number"`
	ProductionPlanID string    `db:"production_plan_id"`
	Date             time.Time `db:"date"`
	Status           string    `db:"status"`
	Notes            string    `db:"notes"`
	AuditFields
}

// MaterialIssueItem is one material line of a material issue.
type MaterialIssueItem struct {
	ItemID       string          `db:"item_id"`
	IssueID      string          `db:"issue_id"`
	MaterialID   string          `db:"material_id"`
	RequestedQty decimal.Decimal `db:"requested_qty"`
	IssuedQty    decimal.Decimal `db:"issued_qty"`
	AvailableQty decimal.Decimal `db:"available_qty"`
}

// MaterialStock is the on-hand quantity row locked during material issues.
type MaterialStock struct {
	MaterialID string          `db:"material_id"`
	OnHand     decimal.Decimal `db:"on_hand"`
}
