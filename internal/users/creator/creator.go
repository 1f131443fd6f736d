// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package creator

import "time"

// Status is the account state of a creator.
//
// Only active creators may authenticate or mutate content. Inactive and
// suspended accounts keep their content but lose all access until an
// administrator reactivates them.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// AllStatuses returns every legal creator status, used in validation messages.
func AllStatuses() []string {
	return []string{string(StatusActive), string(StatusInactive), string(StatusSuspended)}
}

// IsValid reports whether the status is one of the legal values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// Creator is a registered content author who submits graphic novels and
// audiobooks for moderation.
type Creator struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// PasswordHash never leaves the service layer.
	PasswordHash string `json:"-"`
}

// IsActive reports whether the creator may authenticate and mutate content.
func (c *Creator) IsActive() bool {
	return c.Status == StatusActive
}

// Summary is the owner identity block embedded in admin content listings.
type Summary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// Summarize returns the owner identity block for admin views.
func (c *Creator) Summarize() *Summary {
	return &Summary{
		ID:          c.ID,
		Username:    c.Username,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}
