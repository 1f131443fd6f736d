// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package creator

import (
	"context"

	"github.com/davitran/inkora/pkg/pagination"
)

// # Creator Data Access

// CreatorRepository defines the data access contract for creator accounts.
type CreatorRepository interface {

	/*
		FindByID returns the creator with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Creator: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Creator, error)

	/*
		FindByEmail returns the creator with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Creator: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Creator, error)

	/*
		FindByPhone returns the creator with the given phone number.
		Creators log in with their phone number, not their email.

		Parameters:
		  - context: context.Context
		  - phoneNumber: string

		Returns:
		  - *Creator: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByPhone(context context.Context, phoneNumber string) (*Creator, error)

	/*
		Create persists a brand-new creator account.

		Parameters:
		  - context: context.Context
		  - creator: *Creator

		Returns:
		  - error: apperr.Conflict on duplicate unique fields, or persistence failures
	*/
	Create(context context.Context, creator *Creator) error

	/*
		List returns one page of creator accounts, newest-first, together
		with the total account count. Admin-only view.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params (page and limit, already clamped)

		Returns:
		  - []*Creator: One page of creator accounts
		  - int: Total number of accounts across all pages
		  - error: Database retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]*Creator, int, error)

	/*
		UpdateStatus replaces only the creator's account status.

		Parameters:
		  - context: context.Context
		  - id: string
		  - status: Status

		Returns:
		  - error: apperr.NotFound if absent, or persistence failures
	*/
	UpdateStatus(context context.Context, id string, status Status) error
}
