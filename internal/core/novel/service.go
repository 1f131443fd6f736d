// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package novel implements the graphic-novel content aggregate.

A graphic novel is submitted by a creator (starts pending) or an
administrator (starts published), accumulates ordered episodes carrying an
icon and a PDF, and becomes publicly visible only while its moderation
status is published.

Architecture:

  - Service: Submission, episode sequencing, moderation, and the public
    published views (cached in Redis).
  - Repository: Postgres persistence with per-parent sequence reservation.
  - Handler: Creator-scoped, admin-scoped, and public HTTP surfaces.
*/
package novel

import (
	"context"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/davitran/inkora/internal/core/asset"
	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/constants"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/platform/validate"
	"github.com/davitran/inkora/pkg/pointer"
	"github.com/davitran/inkora/pkg/slug"
	"github.com/davitran/inkora/pkg/uuid"
)

const (
	FieldTitle  = "title"
	FieldStatus = "status"

	// publishedCacheKey keys the cached public listing in Redis.
	publishedCacheKey = constants.RedisPrefixPublished + "graphic-novels"
)

// AssetPlacer moves uploaded files into blob storage at protocol-derived keys.
type AssetPlacer interface {
	PlaceIcon(ctx context.Context, kind asset.Kind, fileKind string, file *multipart.FileHeader) (string, error)
	PlaceEpisodeAsset(ctx context.Context, kind asset.Kind, parentID string, episodeNumber int, fileKind string, file *multipart.FileHeader) (string, error)
}

// CatalogCache is the read-through cache for public published listings.
// Implemented by the Redis-backed platform cache; failures degrade silently.
type CatalogCache interface {
	Get(ctx context.Context, key string, target interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
}

// Service orchestrates the business logic for graphic novels.
type Service struct {
	novels NovelRepository
	assets AssetPlacer
	cache  CatalogCache
	logger *slog.Logger
}

// NewService constructs a new graphic-novel [Service].
func NewService(novels NovelRepository, assets AssetPlacer, cache CatalogCache, logger *slog.Logger) *Service {
	return &Service{
		novels: novels,
		assets: assets,
		cache:  cache,
		logger: logger,
	}
}

// # Submission

/*
Create submits a new graphic novel.

Description: The actor's role decides ownership and the initial moderation
status — creators own what they submit and start pending; admin submissions
are ownerless and go live immediately. The optional icon upload is placed in
blob storage first so the row only ever references a stored file.

Parameters:
  - actor: The authenticated claims (creator or admin).
  - title: Required display title.
  - icon: Optional multipart icon upload (may be nil).

Returns:
  - *GraphicNovel: The persisted aggregate
  - error: Validation, asset placement, or persistence failures
*/
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, title string, icon *multipart.FileHeader) (*GraphicNovel, error) {

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	submittedByAdmin := actor.IsAdmin()

	item := &GraphicNovel{
		ID:            uuid.New(),
		Title:         title,
		Slug:          slug.From(title),
		CreatedByRole: actor.Role,
		Status:        moderation.Initial(submittedByAdmin),
		Episodes:      []*Episode{},
	}

	// Creator submissions carry the owner; admin submissions stay ownerless
	if !submittedByAdmin {
		item.OwnerID = pointer.To(actor.UserID)
	}

	// Persist icon bytes before the row so we never store a dangling reference
	if icon != nil {
		reference, err := service.assets.PlaceIcon(context, asset.KindGraphicNovel, asset.FileNovelIcon, icon)
		if err != nil {
			return nil, err
		}
		item.IconPath = &reference
	}

	if err := service.novels.Create(context, item); err != nil {
		return nil, err
	}

	// Admin submissions are live immediately, so the public cache is stale
	if item.Status == moderation.StatusPublished {
		service.cache.Invalidate(context, publishedCacheKey)
	}

	service.logger.Info("graphic_novel_created",
		slog.String("novel_id", item.ID),
		slog.String("role", string(item.CreatedByRole)),
		slog.String("status", string(item.Status)),
	)

	return item, nil
}

// # Creator Views

/*
ListOwned returns the creator's own novels, newest-first, episodes loaded.
*/
func (service *Service) ListOwned(context context.Context, ownerID string) ([]*GraphicNovel, error) {
	return service.novels.ListByOwner(context, ownerID)
}

/*
GetOwnedDetail returns one novel owned by the creator.

Absence and ownership mismatch both surface as NotFound so a creator can
never probe for other creators' content ids.
*/
func (service *Service) GetOwnedDetail(context context.Context, ownerID, id string) (*GraphicNovel, error) {
	return service.novels.FindOwned(context, id, ownerID)
}

// # Admin Views & Moderation

/*
ListAll returns every novel with owner identity summaries. Admin-only.
*/
func (service *Service) ListAll(context context.Context) ([]*GraphicNovel, error) {
	return service.novels.ListAll(context)
}

/*
GetDetail returns one novel regardless of status or ownership. Admin-only.
*/
func (service *Service) GetDetail(context context.Context, id string) (*GraphicNovel, error) {
	return service.novels.FindByID(context, id)
}

/*
SetStatus moves a novel to a new moderation status. Admin-only.

Description: Any status may move to any other status, including a no-op
re-apply — moderation is permissive by design. The public cache is
invalidated unconditionally since both directions change visibility.

Returns:
  - error: Validation on unknown status, apperr.NotFound if absent
*/
func (service *Service) SetStatus(context context.Context, id string, status moderation.Status) error {

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), moderation.All()...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.novels.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.cache.Invalidate(context, publishedCacheKey)

	service.logger.Info("graphic_novel_status_updated",
		slog.String("novel_id", id),
		slog.String("status", string(status)),
	)

	return nil
}

// # Public Views

/*
ListPublished returns the public catalogue of published novels, newest-first,
episodes loaded. Served from Redis when warm.
*/
func (service *Service) ListPublished(context context.Context) ([]*GraphicNovel, error) {

	var cached []*GraphicNovel
	if service.cache.Get(context, publishedCacheKey, &cached) {
		return cached, nil
	}

	items, err := service.novels.ListByStatus(context, moderation.StatusPublished)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, publishedCacheKey, items, constants.PublishedCacheTTL)
	return items, nil
}

/*
GetPublished returns one published novel by id for anonymous readers.

Unpublished items are NotFound here even though they exist: the public
single-item fetch applies the same visibility filter as the public listing.
*/
func (service *Service) GetPublished(context context.Context, id string) (*GraphicNovel, error) {
	item, err := service.novels.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if item.Status != moderation.StatusPublished {
		return nil, apperr.NotFound("Graphic novel")
	}

	return item, nil
}

// # Episode Sequence

// EpisodeUploads carries the optional per-episode multipart files.
type EpisodeUploads struct {
	Icon *multipart.FileHeader
	PDF  *multipart.FileHeader
}

/*
AddEpisode appends the next episode to a novel.

Description: The creator-scoped path requires ownership (mismatch surfaces
as NotFound); admins may append to any novel. The episode number is reserved
atomically per parent, the uploads are placed under
graphic-novels/<novelID>/<number>/, and the row is only inserted after every
placement succeeded. A failed placement aborts the reservation — at worst an
empty scope directory is left behind, never a row pointing at a missing file.

Parameters:
  - actor: The authenticated claims (creator or admin).
  - novelID: Parent novel id.
  - uploads: Optional icon and PDF files.

Returns:
  - *Episode: The persisted episode with its assigned number
  - error: apperr.NotFound on absent/unowned parent, placement or storage failures
*/
func (service *Service) AddEpisode(context context.Context, actor *sec.AuthClaims, novelID string, uploads EpisodeUploads) (*Episode, error) {

	// Parent resolution doubles as the ownership gate for creators
	if actor.IsAdmin() {
		if _, err := service.novels.FindByID(context, novelID); err != nil {
			return nil, err
		}
	} else {
		if _, err := service.novels.FindOwned(context, novelID, actor.UserID); err != nil {
			return nil, err
		}
	}

	episode, err := service.novels.CreateEpisodeInSequence(context, novelID, func(episodeNumber int) (*Episode, error) {
		next := &Episode{
			ID:            uuid.New(),
			NovelID:       novelID,
			EpisodeNumber: episodeNumber,
		}

		if uploads.Icon != nil {
			reference, err := service.assets.PlaceEpisodeAsset(context, asset.KindGraphicNovel, novelID, episodeNumber, asset.FileEpisodeIcon, uploads.Icon)
			if err != nil {
				return nil, err
			}
			next.IconPath = &reference
		}

		if uploads.PDF != nil {
			reference, err := service.assets.PlaceEpisodeAsset(context, asset.KindGraphicNovel, novelID, episodeNumber, asset.FileEpisodePDF, uploads.PDF)
			if err != nil {
				return nil, err
			}
			next.PDFPath = &reference
		}

		return next, nil
	})
	if err != nil {
		return nil, err
	}

	// Episode lists ride along on the published payloads
	service.cache.Invalidate(context, publishedCacheKey)

	service.logger.Info("graphic_novel_episode_added",
		slog.String("novel_id", novelID),
		slog.String("episode_id", episode.ID),
		slog.Int("episode_number", episode.EpisodeNumber),
	)

	return episode, nil
}

/*
GetEpisode returns one episode by parent and episode id. Public.
*/
func (service *Service) GetEpisode(context context.Context, novelID, episodeID string) (*Episode, error) {
	return service.novels.FindEpisode(context, novelID, episodeID)
}
