package domain

import "time"

// UserRole is the application-wide role of a user. Capabilities derive
// from the role; services always receive the acting user explicitly.
type UserRole string

const (
	RoleOwner    UserRole = "OWNER"
	RoleApprover UserRole = "APPROVER"
	RoleStaff    UserRole = "STAFF"
	RoleReadOnly UserRole = "READONLY"
)

// Capability names a gated action an actor may hold.
type Capability string

const (
	CapApproveDocuments Capability = "APPROVE_DOCUMENTS"
	CapMutateBalances   Capability = "MUTATE_BALANCES"
	CapPostJournals     Capability = "POST_JOURNALS"
	CapManageUsers      Capability = "MANAGE_USERS"
)

// User represents a user of the application in the domain.
type User struct {
	UserID string   `json:"userID"` // Primary Key (UUID)
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// roleCapabilities maps each role to the capabilities it grants.
var roleCapabilities = map[UserRole]map[Capability]bool{
	RoleOwner: {
		CapApproveDocuments: true,
		CapMutateBalances:   true,
		CapPostJournals:     true,
		CapManageUsers:      true,
	},
	RoleApprover: {
		CapApproveDocuments: true,
		CapMutateBalances:   true,
		CapPostJournals:     true,
	},
	RoleStaff: {
		CapMutateBalances: true,
		CapPostJournals:   true,
	},
	RoleReadOnly: {},
}

// HasCapability reports whether the role grants the capability.
func (r UserRole) HasCapability(cap Capability) bool {
	return roleCapabilities[r][cap]
}

// GoogleUserInfo holds the profile fields returned by Google during OAuth login.
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google's stable user ID
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
