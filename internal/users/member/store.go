// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package member

import "context"

// # Member Data Access

// MemberRepository defines the data access contract for end-user accounts.
type MemberRepository interface {

	/*
		FindByEmail returns the member with the given email.

		Returns:
		  - *Member: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Member, error)

	/*
		FindByMobile returns the member with the given mobile number.
		Members log in with their mobile number, not their email.

		Returns:
		  - *Member: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByMobile(context context.Context, mobileNumber string) (*Member, error)

	/*
		Create persists a brand-new member account.

		Returns:
		  - error: apperr.Conflict on duplicate unique fields, or persistence failures
	*/
	Create(context context.Context, account *Member) error
}
