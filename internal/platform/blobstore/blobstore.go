// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package blobstore persists uploaded binary assets (icons, episode PDFs).

It exposes a narrow [Store] interface so the domain layer never touches the
filesystem directly, and a local-disk implementation backing the /uploads
static tree.

Contract:

  - EnsureDirectory: idempotent "create if absent" for a scope directory.
  - Write: streams bytes to a key and returns a root-relative reference
    string suitable for direct static-file serving.

The store is write-only from the application's perspective: asset bytes are
served back to clients by the static file handler, never read by the core.
*/
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafeKey is returned when an object key would escape the base directory.
var ErrUnsafeKey = errors.New("blobstore: object key escapes base directory")

// Store is the write-side contract for binary asset persistence.
type Store interface {
	// EnsureDirectory creates the directory for the given relative path,
	// including parents. Calling it on an existing directory is a no-op.
	EnsureDirectory(ctx context.Context, dir string) error

	// Write streams the reader's bytes to the given relative key and returns
	// a root-relative URL reference (e.g. "/uploads/graphic-novels/...").
	Write(ctx context.Context, key string, reader io.Reader) (string, error)
}

// # Local Disk Implementation

// Local stores assets under a base directory on the local filesystem.
type Local struct {
	baseDir   string
	urlPrefix string
}

// NewLocal constructs a disk-backed [Store] rooted at baseDir.
// The base directory is created eagerly so startup fails fast on bad config.
func NewLocal(baseDir, urlPrefix string) (*Local, error) {
	if baseDir == "" {
		return nil, errors.New("blobstore: base directory is required")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: failed to create base directory: %w", err)
	}

	return &Local{
		baseDir:   baseDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// EnsureDirectory creates the scope directory if it does not exist.
func (store *Local) EnsureDirectory(_ context.Context, dir string) error {
	target, err := store.resolve(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("blobstore: failed to create directory %q: %w", dir, err)
	}
	return nil
}

/*
Write persists the reader's bytes at the given relative key.

Description: Parent directories are created on demand. An existing file at
the same key is overwritten — uniqueness is the caller's responsibility
(millisecond-timestamped file names in practice).

Returns:
  - string: The root-relative URL reference for the stored object.
  - error: ErrUnsafeKey or filesystem failures.
*/
func (store *Local) Write(_ context.Context, key string, reader io.Reader) (string, error) {
	target, err := store.resolve(key)
	if err != nil {
		return "", err
	}

	// Create the scope directory chain before the file itself
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("blobstore: failed to create directory for %q: %w", key, err)
	}

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("blobstore: failed to create file %q: %w", key, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("blobstore: failed to write file %q: %w", key, err)
	}

	return store.urlPrefix + "/" + path.Clean(key), nil
}

// resolve joins a relative key onto the base directory, rejecting traversal.
func (store *Local) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", ErrUnsafeKey
	}
	return filepath.Join(store.baseDir, cleaned), nil
}
