// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package asset

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/davitran/inkora/internal/platform/blobstore"
)

// Placer moves uploaded multipart files into the blob store at their
// protocol-derived keys. It is the only component that opens upload streams.
type Placer struct {
	blobs blobstore.Store
}

// NewPlacer constructs a [Placer] on top of the given blob store.
func NewPlacer(blobs blobstore.Store) *Placer {
	return &Placer{blobs: blobs}
}

/*
PlaceIcon persists a content-level icon upload.

Parameters:
  - kind: Content type selecting the upload root.
  - fileKind: "novel-icon" or "book-icon".
  - file: The uploaded file header from the multipart form.

Returns:
  - string: Root-relative URL reference for the stored icon.
  - error: Stream or storage failures.
*/
func (placer *Placer) PlaceIcon(ctx context.Context, kind Kind, fileKind string, file *multipart.FileHeader) (string, error) {
	key := IconKey(kind, fileKind, file.Filename, time.Now())
	return placer.place(ctx, key, file)
}

/*
PlaceEpisodeAsset persists an episode-level upload (icon or PDF).

The scope directory <kind>/<parentID>/<episodeNumber>/ is created implicitly
by the write. Episode numbers must already be reserved by the caller.
*/
func (placer *Placer) PlaceEpisodeAsset(ctx context.Context, kind Kind, parentID string, episodeNumber int, fileKind string, file *multipart.FileHeader) (string, error) {
	key := EpisodeKey(kind, parentID, episodeNumber, fileKind, file.Filename, time.Now())
	return placer.place(ctx, key, file)
}

// place streams one multipart file into the blob store.
func (placer *Placer) place(ctx context.Context, key string, file *multipart.FileHeader) (string, error) {
	source, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("asset: failed to open upload %q: %w", file.Filename, err)
	}
	defer source.Close()

	reference, err := placer.blobs.Write(ctx, key, source)
	if err != nil {
		return "", fmt.Errorf("asset: failed to store upload %q: %w", file.Filename, err)
	}

	return reference, nil
}
