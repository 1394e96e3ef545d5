package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		Reference:    d.Reference,
		CoaID:        d.CoaID,
		Date:         d.Date,
		Description:  d.Description,
		Debit:        d.Debit,
		Credit:       d.Credit,
		JournalType:  string(d.JournalType),
		SourceType:   string(d.SourceType),
		SourceID:     d.SourceID,
		BranchID:     ptrToNullString(d.BranchID),
		DepartmentID: ptrToNullString(d.DepartmentID),
		ProjectID:    ptrToNullString(d.ProjectID),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		Reference:    m.Reference,
		CoaID:        m.CoaID,
		Date:         m.Date,
		Description:  m.Description,
		Debit:        m.Debit,
		Credit:       m.Credit,
		JournalType:  domain.JournalType(m.JournalType),
		SourceType:   domain.SourceType(m.SourceType),
		SourceID:     m.SourceID,
		BranchID:     nullStringToPtr(m.BranchID),
		DepartmentID: nullStringToPtr(m.DepartmentID),
		ProjectID:    nullStringToPtr(m.ProjectID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLineSlice converts a slice of domain lines to model lines
func ToModelJournalLineSlice(ds []domain.JournalLine) []models.JournalLine {
	ms := make([]models.JournalLine, len(ds))
	for i, d := range ds {
		ms[i] = ToModelJournalLine(d)
	}
	return ms
}

// ToDomainJournalLineSlice converts a slice of model lines to domain lines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
