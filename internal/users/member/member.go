// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package member

import "time"

// Member is a registered end user. Members browse the published catalogue
// but hold no content capabilities — their role claim is "user".
type Member struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// PasswordHash never leaves the service layer.
	PasswordHash string `json:"-"`
}
