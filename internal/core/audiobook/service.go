// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

// Package audiobook implements the audiobook content aggregate. It mirrors
// the graphic-novel aggregate except that episode audio lives on YouTube.
package audiobook

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
	FieldTitle      = "title"
	FieldStatus     = "status"
	FieldYoutubeURL = "youtube_url"

	publishedCacheKey = constants.RedisPrefixPublished + "audiobooks"
)

// AssetPlacer moves uploaded files into blob storage at protocol-derived keys.
type AssetPlacer interface {
	PlaceIcon(ctx context.Context, kind asset.Kind, fileKind string, file *multipart.FileHeader) (string, error)
	PlaceEpisodeAsset(ctx context.Context, kind asset.Kind, parentID string, episodeNumber int, fileKind string, file *multipart.FileHeader) (string, error)
}

// CatalogCache is the read-through cache for public published listings.
type CatalogCache interface {
	Get(ctx context.Context, key string, target interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
}

// Service orchestrates the business logic for audiobooks.
type Service struct {
	books  AudiobookRepository
	assets AssetPlacer
	cache  CatalogCache
	logger *slog.Logger
}

// NewService constructs a new audiobook [Service].
func NewService(books AudiobookRepository, assets AssetPlacer, cache CatalogCache, logger *slog.Logger) *Service {
	return &Service{
		books:  books,
		assets: assets,
		cache:  cache,
		logger: logger,
	}
}

// # Submission

/*
Create submits a new audiobook.

Description: Same ownership and moderation rules as graphic novels — the
actor's role decides the owner and the initial status, and the optional icon
is placed in blob storage before the row is written.

Returns:
  - *Audiobook: The persisted aggregate
  - error: Validation, asset placement, or persistence failures
*/
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, title string, icon *multipart.FileHeader) (*Audiobook, error) {

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	submittedByAdmin := actor.IsAdmin()

	item := &Audiobook{
		ID:            uuid.New(),
		Title:         title,
		Slug:          slug.From(title),
		CreatedByRole: actor.Role,
		Status:        moderation.Initial(submittedByAdmin),
		Episodes:      []*Episode{},
	}

	if !submittedByAdmin {
		item.OwnerID = pointer.To(actor.UserID)
	}

	if icon != nil {
		reference, err := service.assets.PlaceIcon(context, asset.KindAudiobook, asset.FileBookIcon, icon)
		if err != nil {
			return nil, err
		}
		item.IconPath = &reference
	}

	if err := service.books.Create(context, item); err != nil {
		return nil, err
	}

	if item.Status == moderation.StatusPublished {
		service.cache.Invalidate(context, publishedCacheKey)
	}

	service.logger.Info("audiobook_created",
		slog.String("audiobook_id", item.ID),
		slog.String("role", string(item.CreatedByRole)),
		slog.String("status", string(item.Status)),
	)

	return item, nil
}

// # Creator Views

// ListOwned returns the creator's own audiobooks, newest-first.
func (service *Service) ListOwned(context context.Context, ownerID string) ([]*Audiobook, error) {
	return service.books.ListByOwner(context, ownerID)
}

// GetOwnedDetail returns one audiobook owned by the creator. Ownership
// mismatch surfaces as NotFound.
func (service *Service) GetOwnedDetail(context context.Context, ownerID, id string) (*Audiobook, error) {
	return service.books.FindOwned(context, id, ownerID)
}

// # Admin Views & Moderation

// ListAll returns every audiobook with owner summaries. Admin-only.
func (service *Service) ListAll(context context.Context) ([]*Audiobook, error) {
	return service.books.ListAll(context)
}

// GetDetail returns one audiobook regardless of status or ownership. Admin-only.
func (service *Service) GetDetail(context context.Context, id string) (*Audiobook, error) {
	return service.books.FindByID(context, id)
}

/*
SetStatus moves an audiobook to a new moderation status. Admin-only.
Any status may move to any other status; the public cache is invalidated.
*/
func (service *Service) SetStatus(context context.Context, id string, status moderation.Status) error {

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), moderation.All()...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.books.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.cache.Invalidate(context, publishedCacheKey)

	service.logger.Info("audiobook_status_updated",
		slog.String("audiobook_id", id),
		slog.String("status", string(status)),
	)

	return nil
}

// # Public Views

// ListPublished returns the public catalogue of published audiobooks,
// served from Redis when warm.
func (service *Service) ListPublished(context context.Context) ([]*Audiobook, error) {

	var cached []*Audiobook
	if service.cache.Get(context, publishedCacheKey, &cached) {
		return cached, nil
	}

	items, err := service.books.ListByStatus(context, moderation.StatusPublished)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, publishedCacheKey, items, constants.PublishedCacheTTL)
	return items, nil
}

// GetPublished returns one published audiobook by id for anonymous readers.
// Unpublished items are NotFound here even though they exist.
func (service *Service) GetPublished(context context.Context, id string) (*Audiobook, error) {
	item, err := service.books.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if item.Status != moderation.StatusPublished {
		return nil, apperr.NotFound("Audiobook")
	}

	return item, nil
}

// # Episode Sequence

// EpisodeInput carries the optional icon upload and the external audio URL.
type EpisodeInput struct {
	Icon       *multipart.FileHeader
	YoutubeURL string
}

/*
AddEpisode appends the next episode to an audiobook.

Description: Same reservation scheme as graphic-novel episodes — ownership
gate first, then the number is reserved atomically and the icon lands under
audiobooks/<audiobookID>/<number>/. The YouTube URL is required and must
parse as an absolute URL; the audio itself is never stored.

Returns:
  - *Episode: The persisted episode with its assigned number
  - error: Validation, apperr.NotFound on absent/unowned parent, storage failures
*/
func (service *Service) AddEpisode(context context.Context, actor *sec.AuthClaims, audiobookID string, input EpisodeInput) (*Episode, error) {

	validator := &validate.Validator{}
	validator.Required(FieldYoutubeURL, input.YoutubeURL)
	validator.URL(FieldYoutubeURL, input.YoutubeURL)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		if _, err := service.books.FindByID(context, audiobookID); err != nil {
			return nil, err
		}
	} else {
		if _, err := service.books.FindOwned(context, audiobookID, actor.UserID); err != nil {
			return nil, err
		}
	}

	episode, err := service.books.CreateEpisodeInSequence(context, audiobookID, func(episodeNumber int) (*Episode, error) {
		next := &Episode{
			ID:            uuid.New(),
			AudiobookID:   audiobookID,
			EpisodeNumber: episodeNumber,
			YoutubeURL:    pointer.To(input.YoutubeURL),
		}

		if input.Icon != nil {
			reference, err := service.assets.PlaceEpisodeAsset(context, asset.KindAudiobook, audiobookID, episodeNumber, asset.FileEpisodeIcon, input.Icon)
			if err != nil {
				return nil, err
			}
			next.IconPath = &reference
		}

		return next, nil
	})
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, publishedCacheKey)

	service.logger.Info("audiobook_episode_added",
		slog.String("audiobook_id", audiobookID),
		slog.String("episode_id", episode.ID),
		slog.Int("episode_number", episode.EpisodeNumber),
	)

	return episode, nil
}

// GetEpisode returns one episode by parent and episode id. Public.
func (service *Service) GetEpisode(context context.Context, audiobookID, episodeID string) (*Episode, error) {
	return service.books.FindEpisode(context, audiobookID, episodeID)
}
