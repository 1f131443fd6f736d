// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package asset implements the deterministic placement protocol for uploaded files.

Every uploaded asset lands at a path derived purely from its logical scope:

  - Per-content icon:   <kind-root>/icons/<asset-kind>-<unixMillis><ext>
  - Per-episode asset:  <kind-root>/<parentID>/<episodeNumber>/<asset-kind>-<unixMillis><ext>

where kind-root is "graphic-novels" or "audiobooks". File-name uniqueness
relies on the millisecond timestamp; two uploads landing in the same
millisecond at the same scope overwrite one another (accepted risk).

The original file's extension is kept but sanitized — anything that is not a
plain lowercase alphanumeric extension is dropped so a hostile filename can
never influence the directory structure.
*/
package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Kind selects the upload root for one of the two content types.
type Kind string

const (
	KindGraphicNovel Kind = "graphic-novels"
	KindAudiobook    Kind = "audiobooks"
)

// Names of the asset files within a scope. These match the public URL shape
// the mobile clients already parse.
const (
	FileNovelIcon   = "novel-icon"
	FileBookIcon    = "book-icon"
	FileEpisodeIcon = "icon"
	FileEpisodePDF  = "pdf"
)

// extensionPattern is the only extension shape allowed to survive sanitization.
var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]+$`)

// IconKey derives the storage key for a content-level icon.
//
// Example: graphic-novels/icons/novel-icon-1700000000000.png
func IconKey(kind Kind, fileKind, originalName string, uploadedAt time.Time) string {
	return fmt.Sprintf("%s/icons/%s-%d%s", kind, fileKind, uploadedAt.UnixMilli(), SanitizeExtension(originalName))
}

// EpisodeKey derives the storage key for an episode-level asset.
//
// Example: audiobooks/<parentID>/3/icon-1700000000000.jpg
func EpisodeKey(kind Kind, parentID string, episodeNumber int, fileKind, originalName string, uploadedAt time.Time) string {
	return fmt.Sprintf("%s/%s/%d/%s-%d%s", kind, parentID, episodeNumber, fileKind, uploadedAt.UnixMilli(), SanitizeExtension(originalName))
}

// EpisodeDir derives the scope directory for an episode's assets.
func EpisodeDir(kind Kind, parentID string, episodeNumber int) string {
	return fmt.Sprintf("%s/%s/%d", kind, parentID, episodeNumber)
}

// SanitizeExtension extracts a safe, lowercased extension from an uploaded
// file name. Anything outside `.[a-z0-9]+` is dropped entirely.
func SanitizeExtension(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return ext
}
