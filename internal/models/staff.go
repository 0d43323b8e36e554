package models

import "time"

// Staff is the staff table row.
type Staff struct {
	StaffID      string    `json:"staffId"` // Primary Key
	DisplayName  string    `json:"displayName"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
