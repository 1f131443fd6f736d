// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package member

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davitran/inkora/internal/platform/database/schema"
	"github.com/davitran/inkora/internal/platform/dberr"
)

// # PostgreSQL Repository

// memberRepository implements the [MemberRepository] interface using pgx.
type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository constructs a PostgreSQL backed member store.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

// selectColumns is the shared projection for member lookups.
func selectColumns() string {
	t := schema.UserMember
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Email, t.MobileNumber, t.Password, t.CreatedAt, t.UpdatedAt)
}

// scanMember hydrates one entity from a scannable row.
func scanMember(row interface{ Scan(...any) error }) (*Member, error) {
	var account Member
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.MobileNumber,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail returns the member with the given email.
func (repository *memberRepository) FindByEmail(context context.Context, email string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserMember.Table, schema.UserMember.Email)

	account, err := scanMember(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return account, nil
}

// FindByMobile returns the member with the given mobile number.
func (repository *memberRepository) FindByMobile(context context.Context, mobileNumber string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserMember.Table, schema.UserMember.MobileNumber)

	account, err := scanMember(repository.pool.QueryRow(context, query, mobileNumber))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return account, nil
}

// Create persists a brand-new member account.
func (repository *memberRepository) Create(context context.Context, account *Member) error {
	t := schema.UserMember
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Name, t.Email, t.MobileNumber, t.Password,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID,
		account.Name,
		account.Email,
		account.MobileNumber,
		account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "User")
	}
	return nil
}
