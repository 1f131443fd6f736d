// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package audiobook

import (
	"context"

	"github.com/davitran/inkora/internal/core/moderation"
)

// # Repository Contract

/*
AudiobookRepository defines the persistence contract for audiobooks and
their episodes.

Read operations load episodes eagerly in episode order. FindOwned treats an
ownership mismatch exactly like absence. CreateEpisodeInSequence serializes
number assignment per audiobook: the implementation reserves the next
sequential number, invokes build with it, and persists the returned episode
atomically with the reservation.
*/
type AudiobookRepository interface {
	Create(context context.Context, item *Audiobook) error
	FindByID(context context.Context, id string) (*Audiobook, error)
	FindOwned(context context.Context, id, ownerID string) (*Audiobook, error)
	ListByOwner(context context.Context, ownerID string) ([]*Audiobook, error)
	ListAll(context context.Context) ([]*Audiobook, error)
	ListByStatus(context context.Context, status moderation.Status) ([]*Audiobook, error)
	UpdateStatus(context context.Context, id string, status moderation.Status) error

	CreateEpisodeInSequence(context context.Context, audiobookID string, build func(episodeNumber int) (*Episode, error)) (*Episode, error)
	FindEpisode(context context.Context, audiobookID, episodeID string) (*Episode, error)
}
