// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package audiobook

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/database/schema"
	"github.com/davitran/inkora/internal/platform/dberr"
	"github.com/davitran/inkora/internal/users/creator"
	"github.com/davitran/inkora/pkg/slice"
)

// # PostgreSQL Repository

// audiobookRepository implements the [AudiobookRepository] interface using pgx.
type audiobookRepository struct {
	pool *pgxpool.Pool
}

// NewAudiobookRepository constructs a PostgreSQL backed audiobook store.
func NewAudiobookRepository(pool *pgxpool.Pool) AudiobookRepository {
	return &audiobookRepository{pool: pool}
}

// rowScanner abstracts pgx.Row and pgx.Rows for the scan helpers.
type rowScanner interface{ Scan(...any) error }

// bookColumns is the shared projection for audiobook lookups.
func bookColumns(alias string) string {
	t := schema.CoreAudiobook
	return fmt.Sprintf("%[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s",
		alias, t.ID, t.Title, t.Slug, t.IconPath, t.OwnerID, t.CreatedByRole,
		t.Status, t.CreatedAt, t.UpdatedAt)
}

// scanBook hydrates one entity from a scannable row.
func scanBook(row rowScanner) (*Audiobook, error) {
	var item Audiobook
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.IconPath,
		&item.OwnerID,
		&item.CreatedByRole,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Episodes = []*Episode{}
	return &item, nil
}

// scanBookWithOwner hydrates one entity plus its left-joined owner summary.
func scanBookWithOwner(row rowScanner) (*Audiobook, error) {
	var item Audiobook
	var username, email, phoneNumber *string

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.IconPath,
		&item.OwnerID,
		&item.CreatedByRole,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
		&username,
		&email,
		&phoneNumber,
	)
	if err != nil {
		return nil, err
	}
	item.Episodes = []*Episode{}

	if item.OwnerID != nil && username != nil {
		item.Owner = &creator.Summary{
			ID:          *item.OwnerID,
			Username:    *username,
			Email:       *email,
			PhoneNumber: *phoneNumber,
		}
	}

	return &item, nil
}

// ownerJoinColumns appends the creator-identity projection for admin views.
func ownerJoinColumns() string {
	c := schema.UserCreator
	return fmt.Sprintf("c.%s, c.%s, c.%s", c.Username, c.Email, c.PhoneNumber)
}

// Create persists a brand-new audiobook.
func (repository *audiobookRepository) Create(context context.Context, item *Audiobook) error {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Title, t.Slug, t.IconPath, t.OwnerID, t.CreatedByRole, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		item.ID,
		item.Title,
		item.Slug,
		item.IconPath,
		item.OwnerID,
		item.CreatedByRole,
		item.Status,
	).Scan(&item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "Audiobook")
	}
	return nil
}

// FindByID returns one audiobook with owner summary and episodes loaded.
func (repository *audiobookRepository) FindByID(context context.Context, id string) (*Audiobook, error) {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s
		WHERE b.%s = $1
	`,
		bookColumns("b"), ownerJoinColumns(),
		t.Table,
		schema.UserCreator.Table, schema.UserCreator.ID, t.OwnerID,
		t.ID,
	)

	item, err := scanBookWithOwner(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Audiobook")
	}

	if err := repository.attachEpisodes(context, []*Audiobook{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// FindOwned returns one audiobook only when it belongs to the given owner.
// Ownership mismatch is indistinguishable from absence.
func (repository *audiobookRepository) FindOwned(context context.Context, id, ownerID string) (*Audiobook, error) {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1 AND b.%s = $2`,
		bookColumns("b"), t.Table, t.ID, t.OwnerID)

	item, err := scanBook(repository.pool.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "Audiobook")
	}

	if err := repository.attachEpisodes(context, []*Audiobook{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByOwner returns every audiobook of one creator, newest-first.
func (repository *audiobookRepository) ListByOwner(context context.Context, ownerID string) ([]*Audiobook, error) {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1 ORDER BY b.%s DESC`,
		bookColumns("b"), t.Table, t.OwnerID, t.CreatedAt)

	return repository.queryBooks(context, query, false, ownerID)
}

// ListAll returns every audiobook with owner summaries, newest-first.
func (repository *audiobookRepository) ListAll(context context.Context) ([]*Audiobook, error) {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s
		ORDER BY b.%s DESC
	`,
		bookColumns("b"), ownerJoinColumns(),
		t.Table,
		schema.UserCreator.Table, schema.UserCreator.ID, t.OwnerID,
		t.CreatedAt,
	)

	return repository.queryBooks(context, query, true)
}

// ListByStatus returns every audiobook in one moderation status, newest-first.
func (repository *audiobookRepository) ListByStatus(context context.Context, status moderation.Status) ([]*Audiobook, error) {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.%s = $1 ORDER BY b.%s DESC`,
		bookColumns("b"), t.Table, t.Status, t.CreatedAt)

	return repository.queryBooks(context, query, false, status)
}

// queryBooks runs a multi-row projection and attaches episodes in one pass.
func (repository *audiobookRepository) queryBooks(context context.Context, query string, withOwner bool, args ...any) ([]*Audiobook, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list audiobooks: %w", err)
	}
	defer rows.Close()

	var items []*Audiobook
	for rows.Next() {
		var item *Audiobook
		if withOwner {
			item, err = scanBookWithOwner(rows)
		} else {
			item, err = scanBook(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan audiobook: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read audiobooks: %w", err)
	}

	if err := repository.attachEpisodes(context, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachEpisodes loads the ordered episode lists for a batch of audiobooks.
func (repository *audiobookRepository) attachEpisodes(context context.Context, items []*Audiobook) error {
	if len(items) == 0 {
		return nil
	}

	index := make(map[string]*Audiobook, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	ids := slice.Map(items, func(item *Audiobook) string { return item.ID })

	e := schema.CoreAudiobookEpisode
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`,
		e.ID, e.AudiobookID, e.EpisodeNumber, e.IconPath, e.YoutubeURL, e.CreatedAt, e.UpdatedAt,
		e.Table,
		e.AudiobookID,
		e.AudiobookID, e.EpisodeNumber,
	)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return fmt.Errorf("postgres: failed to list episodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return fmt.Errorf("postgres: failed to scan episode: %w", err)
		}
		if parent, ok := index[episode.AudiobookID]; ok {
			parent.Episodes = append(parent.Episodes, episode)
		}
	}
	return rows.Err()
}

// UpdateStatus replaces only the audiobook's moderation status.
func (repository *audiobookRepository) UpdateStatus(context context.Context, id string, status moderation.Status) error {
	t := schema.CoreAudiobook
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		t.Table, t.Status, t.UpdatedAt, t.ID)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update audiobook status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Audiobook")
	}

	return nil
}

// # Episode Persistence

// scanEpisode hydrates one episode from a scannable row.
func scanEpisode(row rowScanner) (*Episode, error) {
	var episode Episode
	err := row.Scan(
		&episode.ID,
		&episode.AudiobookID,
		&episode.EpisodeNumber,
		&episode.IconPath,
		&episode.YoutubeURL,
		&episode.CreatedAt,
		&episode.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

/*
CreateEpisodeInSequence reserves the next episode number and persists the
episode the build callback assembles around it.

Description: A per-audiobook transactional advisory lock serializes the
count-and-insert so concurrent appends never share a number. The callback
runs inside the reservation; any callback error rolls the reservation back.
*/
func (repository *audiobookRepository) CreateEpisodeInSequence(context context.Context, audiobookID string, build func(episodeNumber int) (*Episode, error)) (*Episode, error) {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to begin episode transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Lock released automatically at commit/rollback
	if _, err := transaction.Exec(context,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, audiobookID); err != nil {
		return nil, fmt.Errorf("postgres: failed to acquire episode lock: %w", err)
	}

	e := schema.CoreAudiobookEpisode
	var count int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, e.Table, e.AudiobookID)
	if err := transaction.QueryRow(context, countQuery, audiobookID).Scan(&count); err != nil {
		return nil, fmt.Errorf("postgres: failed to count episodes: %w", err)
	}

	episode, err := build(count + 1)
	if err != nil {
		return nil, err
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		e.Table, e.ID, e.AudiobookID, e.EpisodeNumber, e.IconPath, e.YoutubeURL,
		e.CreatedAt, e.UpdatedAt,
	)

	err = transaction.QueryRow(context, insertQuery,
		episode.ID,
		episode.AudiobookID,
		episode.EpisodeNumber,
		episode.IconPath,
		episode.YoutubeURL,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	if err := transaction.Commit(context); err != nil {
		return nil, fmt.Errorf("postgres: failed to commit episode: %w", err)
	}

	return episode, nil
}

// FindEpisode returns one episode scoped by its parent audiobook.
func (repository *audiobookRepository) FindEpisode(context context.Context, audiobookID, episodeID string) (*Episode, error) {
	e := schema.CoreAudiobookEpisode
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		e.ID, e.AudiobookID, e.EpisodeNumber, e.IconPath, e.YoutubeURL, e.CreatedAt, e.UpdatedAt,
		e.Table,
		e.AudiobookID, e.ID,
	)

	episode, err := scanEpisode(repository.pool.QueryRow(context, query, audiobookID, episodeID))
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}
	return episode, nil
}
