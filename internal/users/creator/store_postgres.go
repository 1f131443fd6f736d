// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package creator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/database/schema"
	"github.com/davitran/inkora/internal/platform/dberr"
	"github.com/davitran/inkora/pkg/pagination"
)

// # PostgreSQL Repository

// creatorRepository implements the [CreatorRepository] interface using pgx.
type creatorRepository struct {
	pool *pgxpool.Pool
}

// NewCreatorRepository constructs a PostgreSQL backed creator store.
func NewCreatorRepository(pool *pgxpool.Pool) CreatorRepository {
	return &creatorRepository{pool: pool}
}

// selectColumns is the shared projection for single-row creator lookups.
func selectColumns() string {
	t := schema.UserCreator
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.Email, t.PhoneNumber, t.Password, t.Status, t.CreatedAt, t.UpdatedAt)
}

// scanCreator hydrates one entity from a scannable row.
func scanCreator(row interface{ Scan(...any) error }) (*Creator, error) {
	var account Creator
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PhoneNumber,
		&account.PasswordHash,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByID returns the creator with the given ID.
func (repository *creatorRepository) FindByID(context context.Context, id string) (*Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserCreator.Table, schema.UserCreator.ID)

	account, err := scanCreator(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Creator")
	}
	return account, nil
}

// FindByEmail returns the creator with the given email.
func (repository *creatorRepository) FindByEmail(context context.Context, email string) (*Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserCreator.Table, schema.UserCreator.Email)

	account, err := scanCreator(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "Creator")
	}
	return account, nil
}

// FindByPhone returns the creator with the given phone number.
func (repository *creatorRepository) FindByPhone(context context.Context, phoneNumber string) (*Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserCreator.Table, schema.UserCreator.PhoneNumber)

	account, err := scanCreator(repository.pool.QueryRow(context, query, phoneNumber))
	if err != nil {
		return nil, dberr.Wrap(err, "Creator")
	}
	return account, nil
}

// Create persists a brand-new creator account.
func (repository *creatorRepository) Create(context context.Context, account *Creator) error {
	t := schema.UserCreator
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Username, t.Email, t.PhoneNumber, t.Password, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID,
		account.Username,
		account.Email,
		account.PhoneNumber,
		account.PasswordHash,
		account.Status,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "Creator")
	}
	return nil
}

// List returns one page of creator accounts, newest-first, plus the total count.
func (repository *creatorRepository) List(context context.Context, params pagination.Params) ([]*Creator, int, error) {
	t := schema.UserCreator

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to count creators: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		selectColumns(), t.Table, t.CreatedAt)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list creators: %w", err)
	}
	defer rows.Close()

	var accounts []*Creator
	for rows.Next() {
		account, err := scanCreator(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan creator: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, total, nil
}

// UpdateStatus replaces only the creator's account status.
func (repository *creatorRepository) UpdateStatus(context context.Context, id string, status Status) error {
	t := schema.UserCreator
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		t.Table, t.Status, t.UpdatedAt, t.ID)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update creator status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Creator")
	}

	return nil
}
