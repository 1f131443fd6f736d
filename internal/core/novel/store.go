// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package novel

import (
	"context"

	"github.com/davitran/inkora/internal/core/moderation"
)

// # Graphic Novel Data Access

// NovelRepository defines the data access contract for graphic novels and
// their episodes. Episodes are an owned sub-resource and are only reachable
// through this repository.
type NovelRepository interface {

	/*
		Create persists a brand-new graphic novel.

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, novel *GraphicNovel) error

	/*
		FindByID returns one novel with episodes eager-loaded (ascending by
		episode number) and the owner identity summary when one exists.

		Returns:
		  - *GraphicNovel: Hydrated aggregate
		  - error: apperr.NotFound if absent
	*/
	FindByID(context context.Context, id string) (*GraphicNovel, error)

	/*
		FindOwned returns one novel only when it is owned by the given creator.
		Absence and ownership mismatch are deliberately indistinguishable.

		Returns:
		  - *GraphicNovel: Hydrated aggregate with episodes
		  - error: apperr.NotFound if absent OR owned by someone else
	*/
	FindOwned(context context.Context, id, ownerID string) (*GraphicNovel, error)

	/*
		ListByOwner returns every novel owned by the creator, newest-first,
		with episodes eager-loaded ascending by number.
	*/
	ListByOwner(context context.Context, ownerID string) ([]*GraphicNovel, error)

	/*
		ListAll returns every novel regardless of status or owner, newest-first,
		with episodes and owner identity summaries. Admin-only view.
	*/
	ListAll(context context.Context) ([]*GraphicNovel, error)

	/*
		ListByStatus returns novels in the given status, newest-first, with
		episodes eager-loaded. Backs the public published catalogue.
	*/
	ListByStatus(context context.Context, status moderation.Status) ([]*GraphicNovel, error)

	/*
		UpdateStatus replaces the moderation status of one novel.

		Returns:
		  - error: apperr.NotFound if absent, or persistence failures
	*/
	UpdateStatus(context context.Context, id string, status moderation.Status) error

	/*
		CreateEpisodeInSequence atomically reserves the next episode number for
		the parent and persists the episode the build callback returns.

		Description: The implementation serializes concurrent calls per parent
		(advisory lock) so the count-then-insert derivation can never hand out
		the same number twice. The callback runs inside the reservation with
		the assigned number — asset placement happens there, and any callback
		error aborts the whole operation before the row insert.

		Returns:
		  - *Episode: The persisted episode with its assigned number
		  - error: Callback or persistence failures
	*/
	CreateEpisodeInSequence(context context.Context, novelID string, build func(episodeNumber int) (*Episode, error)) (*Episode, error)

	/*
		FindEpisode returns one episode by parent AND episode id. Both ids
		must match; a mismatch on either is NotFound.
	*/
	FindEpisode(context context.Context, novelID, episodeID string) (*Episode, error)
}
