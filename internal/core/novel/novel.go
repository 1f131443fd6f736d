// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package novel

import (
	"time"

	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/users/creator"
)

// GraphicNovel is a serialized comic title: the top-level publishable unit
// owning an ordered sequence of episodes.
//
// # Ownership Invariant
//
// Creator-submitted novels carry the creator's id in OwnerID and start
// pending. Admin-submitted novels have no owner (OwnerID nil) and start
// published. CreatedByRole records which path created the row.
type GraphicNovel struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	IconPath      *string           `json:"novel_icon"`
	OwnerID       *string           `json:"creator_id"`
	CreatedByRole sec.Role          `json:"created_by_role"`
	Status        moderation.Status `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// Episodes is eager-loaded on detail and list views, ascending by number.
	Episodes []*Episode `json:"episodes"`

	// Owner is the identity summary included in admin views only.
	Owner *creator.Summary `json:"creator,omitempty"`
}

// IsOwnedBy reports whether the given creator id owns this novel.
func (novel *GraphicNovel) IsOwnedBy(creatorID string) bool {
	return novel.OwnerID != nil && *novel.OwnerID == creatorID
}

// Episode is one ordered installment of a graphic novel. The episode number
// is server-assigned, strictly sequential per parent, starting at 1.
type Episode struct {
	ID            string    `json:"id"`
	NovelID       string    `json:"graphic_novel_id"`
	EpisodeNumber int       `json:"episode_number"`
	IconPath      *string   `json:"icon_path"`
	PDFPath       *string   `json:"pdf_path"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
