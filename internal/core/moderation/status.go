// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package moderation defines the content visibility state machine.

Every publishable item (graphic novel, audiobook) carries exactly one
[Status]. Only administrators may change it, and any status may move to any
other status — the model is deliberately permissive moderation-by-fiat, not
a workflow with forbidden edges. There are no automatic transitions: a
rejected item stays rejected until an admin acts again.

Initial state depends on who submitted the item:

  - creator-submitted content starts as [StatusPending]
  - admin-submitted content starts as [StatusPublished]

Public catalogue endpoints only ever surface [StatusPublished] items.
*/
package moderation

// Status is the moderation state of a publishable content item.
type Status string

const (
	// StatusPending awaits an administrator's decision. Not publicly visible.
	StatusPending Status = "pending"

	// StatusPublished is visible to everyone through the public catalogue.
	StatusPublished Status = "published"

	// StatusRejected was declined by an administrator. Not publicly visible,
	// but still listed for its owner.
	StatusRejected Status = "rejected"
)

// All returns every legal status value, used for validation messages.
func All() []string {
	return []string{string(StatusPending), string(StatusPublished), string(StatusRejected)}
}

// IsValid reports whether the status is one of the three legal values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Initial returns the starting status for newly submitted content.
// Admin submissions go live immediately; creator submissions await review.
func Initial(submittedByAdmin bool) Status {
	if submittedByAdmin {
		return StatusPublished
	}
	return StatusPending
}
