package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

func TestHasCapability(t *testing.T) {
	tests := []struct {
		role       domain.UserRole
		capability domain.Capability
		want       bool
	}{
		{domain.RoleOwner, domain.CapApproveDocuments, true},
		{domain.RoleOwner, domain.CapMutateBalances, true},
		{domain.RoleOwner, domain.CapPostJournals, true},
		{domain.RoleOwner, domain.CapManageUsers, true},

		{domain.RoleApprover, domain.CapApproveDocuments, true},
		{domain.RoleApprover, domain.CapMutateBalances, true},
		{domain.RoleApprover, domain.CapPostJournals, true},
		{domain.RoleApprover, domain.CapManageUsers, false},

		{domain.RoleStaff, domain.CapApproveDocuments, false},
		{domain.RoleStaff, domain.CapMutateBalances, true},
		{domain.RoleStaff, domain.CapPostJournals, true},
		{domain.RoleStaff, domain.CapManageUsers, false},

		{domain.RoleReadOnly, domain.CapApproveDocuments, false},
		{domain.RoleReadOnly, domain.CapMutateBalances, false},
		{domain.RoleReadOnly, domain.CapPostJournals, false},
		{domain.RoleReadOnly, domain.CapManageUsers, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.capability), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.HasCapability(tt.capability))
		})
	}
}

func TestHasCapability_UnknownRole(t *testing.T) {
	assert.False(t, domain.UserRole("INTERN").HasCapability(domain.CapPostJournals))
}
