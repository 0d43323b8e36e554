package domain

import "time"

// StaffRole gates access to administrative views like the audit log.
type StaffRole string

const (
	RoleStaff   StaffRole = "staff"
	RoleManager StaffRole = "manager"
	RoleAdmin   StaffRole = "admin"
)

// Staff is the identity the ledger attributes operations to. Account
// management itself lives outside the ledger; this is the session-facing
// projection plus the credential hash used to mint tokens.
type Staff struct {
	StaffID      string    `json:"staffId"`
	DisplayName  string    `json:"displayName"`
	Role         StaffRole `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor is the staff identity stamped onto ledger writes and audit entries.
type Actor struct {
	StaffID     string
	DisplayName string
	Role        StaffRole
}
