// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package novel

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

// novelRepository implements the [NovelRepository] interface using pgx.
type novelRepository struct {
	pool *pgxpool.Pool
}

// NewNovelRepository constructs a PostgreSQL backed graphic-novel store.
func NewNovelRepository(pool *pgxpool.Pool) NovelRepository {
	return &novelRepository{pool: pool}
}

// rowScanner abstracts pgx.Row and pgx.Rows for the scan helpers.
type rowScanner interface{ Scan(...any) error }

// novelColumns is the shared projection for novel lookups.
func novelColumns(alias string) string {
	t := schema.CoreGraphicNovel
	return fmt.Sprintf("%[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s",
		alias, t.ID, t.Title, t.Slug, t.IconPath, t.OwnerID, t.CreatedByRole,
		t.Status, t.CreatedAt, t.UpdatedAt)
}

// scanNovel hydrates one entity from a scannable row.
func scanNovel(row rowScanner) (*GraphicNovel, error) {
	var item GraphicNovel
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

// scanNovelWithOwner hydrates one entity plus its left-joined owner summary.
func scanNovelWithOwner(row rowScanner) (*GraphicNovel, error) {
	var item GraphicNovel
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

	// Admin submissions have no owner row to join
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

// Create persists a brand-new graphic novel.
func (repository *novelRepository) Create(context context.Context, item *GraphicNovel) error {
	t := schema.CoreGraphicNovel
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
		return dberr.Wrap(err, "Graphic novel")
	}
	return nil
}

// FindByID returns one novel with owner summary and episodes loaded.
func (repository *novelRepository) FindByID(context context.Context, id string) (*GraphicNovel, error) {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s n
		LEFT JOIN %s c ON c.%s = n.%s
		WHERE n.%s = $1
	`,
		novelColumns("n"), ownerJoinColumns(),
		t.Table,
		schema.UserCreator.Table, schema.UserCreator.ID, t.OwnerID,
		t.ID,
	)

	item, err := scanNovelWithOwner(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Graphic novel")
	}

	if err := repository.attachEpisodes(context, []*GraphicNovel{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// FindOwned returns one novel only when it belongs to the given owner.
// Ownership mismatch is indistinguishable from absence.
func (repository *novelRepository) FindOwned(context context.Context, id, ownerID string) (*GraphicNovel, error) {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE n.%s = $1 AND n.%s = $2`,
		novelColumns("n"), t.Table, t.ID, t.OwnerID)

	item, err := scanNovel(repository.pool.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "Graphic novel")
	}

	if err := repository.attachEpisodes(context, []*GraphicNovel{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByOwner returns every novel of one creator, newest-first.
func (repository *novelRepository) ListByOwner(context context.Context, ownerID string) ([]*GraphicNovel, error) {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE n.%s = $1 ORDER BY n.%s DESC`,
		novelColumns("n"), t.Table, t.OwnerID, t.CreatedAt)

	return repository.queryNovels(context, query, false, ownerID)
}

// ListAll returns every novel with owner summaries, newest-first.
func (repository *novelRepository) ListAll(context context.Context) ([]*GraphicNovel, error) {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s n
		LEFT JOIN %s c ON c.%s = n.%s
		ORDER BY n.%s DESC
	`,
		novelColumns("n"), ownerJoinColumns(),
		t.Table,
		schema.UserCreator.Table, schema.UserCreator.ID, t.OwnerID,
		t.CreatedAt,
	)

	return repository.queryNovels(context, query, true)
}

// ListByStatus returns every novel in one moderation status, newest-first.
func (repository *novelRepository) ListByStatus(context context.Context, status moderation.Status) ([]*GraphicNovel, error) {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`SELECT %s FROM %s n WHERE n.%s = $1 ORDER BY n.%s DESC`,
		novelColumns("n"), t.Table, t.Status, t.CreatedAt)

	return repository.queryNovels(context, query, false, status)
}

// queryNovels runs a multi-row projection and attaches episodes in one pass.
func (repository *novelRepository) queryNovels(context context.Context, query string, withOwner bool, args ...any) ([]*GraphicNovel, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list graphic novels: %w", err)
	}
	defer rows.Close()

	var items []*GraphicNovel
	for rows.Next() {
		var item *GraphicNovel
		if withOwner {
			item, err = scanNovelWithOwner(rows)
		} else {
			item, err = scanNovel(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan graphic novel: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read graphic novels: %w", err)
	}

	if err := repository.attachEpisodes(context, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachEpisodes loads the ordered episode lists for a batch of novels.
func (repository *novelRepository) attachEpisodes(context context.Context, items []*GraphicNovel) error {
	if len(items) == 0 {
		return nil
	}

	index := make(map[string]*GraphicNovel, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	ids := slice.Map(items, func(item *GraphicNovel) string { return item.ID })

	e := schema.CoreGraphicNovelEpisode
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`,
		e.ID, e.NovelID, e.EpisodeNumber, e.IconPath, e.PDFPath, e.CreatedAt, e.UpdatedAt,
		e.Table,
		e.NovelID,
		e.NovelID, e.EpisodeNumber,
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
		if parent, ok := index[episode.NovelID]; ok {
			parent.Episodes = append(parent.Episodes, episode)
		}
	}
	return rows.Err()
}

// UpdateStatus replaces only the novel's moderation status.
func (repository *novelRepository) UpdateStatus(context context.Context, id string, status moderation.Status) error {
	t := schema.CoreGraphicNovel
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		t.Table, t.Status, t.UpdatedAt, t.ID)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update graphic novel status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Graphic novel")
	}

	return nil
}

// # Episode Persistence

// scanEpisode hydrates one episode from a scannable row.
func scanEpisode(row rowScanner) (*Episode, error) {
	var episode Episode
	err := row.Scan(
		&episode.ID,
		&episode.NovelID,
		&episode.EpisodeNumber,
		&episode.IconPath,
		&episode.PDFPath,
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

Description: Concurrent appends to the same novel must never observe the
same count. A per-novel transactional advisory lock serializes the
count-and-insert, so numbers come out gapless and strictly sequential even
under racing requests; appends to different novels proceed in parallel. The
callback runs inside the reservation so asset placement can use the final
number, and any callback error rolls the reservation back.
*/
func (repository *novelRepository) CreateEpisodeInSequence(context context.Context, novelID string, build func(episodeNumber int) (*Episode, error)) (*Episode, error) {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to begin episode transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Lock released automatically at commit/rollback
	if _, err := transaction.Exec(context,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, novelID); err != nil {
		return nil, fmt.Errorf("postgres: failed to acquire episode lock: %w", err)
	}

	e := schema.CoreGraphicNovelEpisode
	var count int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, e.Table, e.NovelID)
	if err := transaction.QueryRow(context, countQuery, novelID).Scan(&count); err != nil {
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
		e.Table, e.ID, e.NovelID, e.EpisodeNumber, e.IconPath, e.PDFPath,
		e.CreatedAt, e.UpdatedAt,
	)

	err = transaction.QueryRow(context, insertQuery,
		episode.ID,
		episode.NovelID,
		episode.EpisodeNumber,
		episode.IconPath,
		episode.PDFPath,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}

	if err := transaction.Commit(context); err != nil {
		return nil, fmt.Errorf("postgres: failed to commit episode: %w", err)
	}

	return episode, nil
}

// FindEpisode returns one episode scoped by its parent novel.
func (repository *novelRepository) FindEpisode(context context.Context, novelID, episodeID string) (*Episode, error) {
	e := schema.CoreGraphicNovelEpisode
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		e.ID, e.NovelID, e.EpisodeNumber, e.IconPath, e.PDFPath, e.CreatedAt, e.UpdatedAt,
		e.Table,
		e.NovelID, e.ID,
	)

	episode, err := scanEpisode(repository.pool.QueryRow(context, query, novelID, episodeID))
	if err != nil {
		return nil, dberr.Wrap(err, "Episode")
	}
	return episode, nil
}
