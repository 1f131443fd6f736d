// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package sec

// # Actor Roles

// Role identifies the capability class of an authenticated caller.
//
// Inkora has a closed set of three roles. Unlike a hierarchical model,
// roles here are disjoint capability sets: an administrator is not a
// "super creator" — each handler declares the exact set of roles it
// accepts, so authorization is expressed as membership in an allowed
// set rather than a numeric level comparison.
type Role string

const (
	// RoleAdmin is the single configuration-defined administrator.
	// Admin identity is never persisted; it exists only inside a signed token.
	RoleAdmin Role = "admin"

	// RoleCreator is a registered content creator who submits graphic
	// novels and audiobooks for moderation.
	RoleCreator Role = "creator"

	// RoleMember is a registered end user. Members browse published
	// content only and hold no content capability.
	RoleMember Role = "user"
)

// IsValid reports whether the role is one of the known Inkora roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCreator, RoleMember:
		return true
	}
	return false
}

// In reports whether the role is a member of the allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
