// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package audiobook

import (
	"time"

	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/users/creator"
)

// # Entity Definition

/*
Audiobook is a moderated audio series.

Ownership mirrors graphic novels: creator submissions carry the owner and
start pending, admin submissions are ownerless and publish immediately.
Episodes reference externally hosted audio by YouTube URL rather than a
stored media file; only the episode icon lives in blob storage.
*/
type Audiobook struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	IconPath      *string           `json:"book_icon"`
	OwnerID       *string           `json:"creator_id"`
	CreatedByRole sec.Role          `json:"created_by_role"`
	Status        moderation.Status `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Episodes []*Episode       `json:"episodes"`
	Owner    *creator.Summary `json:"creator,omitempty"`
}

// IsOwnedBy reports whether the audiobook belongs to the given creator.
func (book *Audiobook) IsOwnedBy(creatorID string) bool {
	return book.OwnerID != nil && *book.OwnerID == creatorID
}

// Episode is one ordered entry of an audiobook.
type Episode struct {
	ID            string    `json:"id"`
	AudiobookID   string    `json:"audiobook_id"`
	EpisodeNumber int       `json:"episode_number"`
	IconPath      *string   `json:"icon"`
	YoutubeURL    *string   `json:"youtube_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
