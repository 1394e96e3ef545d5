package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for one posted journal line.
type JournalLineResponse struct {
	LineID       string             `json:"lineID"`
	Reference    string             `json:"reference"`
	CoaID        string             `json:"coaID"`
	Date         time.Time          `json:"date"`
	Description  string             `json:"description"`
	Debit        decimal.Decimal    `json:"debit"`
	Credit       decimal.Decimal    `json:"credit"`
	JournalType  domain.JournalType `json:"journalType"`
	SourceType   domain.SourceType  `json:"sourceType"`
	SourceID     string             `json:"sourceID"`
	BranchID     *string            `json:"branchID,omitempty"`
	DepartmentID *string            `json:"departmentID,omitempty"`
	ProjectID    *string            `json:"projectID,omitempty"`
}

// ListJournalParams defines query parameters for listing journal lines.
type ListJournalParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalResponse wraps a page of journal lines.
type ListJournalResponse struct {
	Lines     []JournalLineResponse `json:"lines"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       line.LineID,
		Reference:    line.Reference,
		CoaID:        line.CoaID,
		Date:         line.Date,
		Description:  line.Description,
		Debit:        line.Debit,
		Credit:       line.Credit,
		JournalType:  line.JournalType,
		SourceType:   line.SourceType,
		SourceID:     line.SourceID,
		BranchID:     line.BranchID,
		DepartmentID: line.DepartmentID,
		ProjectID:    line.ProjectID,
	}
}

// ToJournalLineResponses converts a slice of domain.JournalLine to DTOs.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	responses := make([]JournalLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToJournalLineResponse(&line)
	}
	return responses
}
