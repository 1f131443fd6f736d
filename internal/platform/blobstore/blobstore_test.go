// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/blobstore"
)

/*
TestLocal_Write verifies bytes land on disk and the returned reference
is root-relative and servable.
*/
func TestLocal_Write(t *testing.T) {
	baseDir := t.TempDir()
	store, err := blobstore.NewLocal(baseDir, "/uploads")
	require.NoError(t, err)

	ref, err := store.Write(context.Background(), "graphic-novels/icons/novel-icon-1700000000000.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	// 1. Reference is root-relative under the URL prefix
	assert.Equal(t, "/uploads/graphic-novels/icons/novel-icon-1700000000000.png", ref)

	// 2. Bytes are on disk at the expected location
	data, err := os.ReadFile(filepath.Join(baseDir, "graphic-novels", "icons", "novel-icon-1700000000000.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

/*
TestLocal_Write_Overwrite verifies that writing the same key twice silently
replaces the previous object.
*/
func TestLocal_Write_Overwrite(t *testing.T) {
	store, err := blobstore.NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "audiobooks/icons/book-icon-1.png", strings.NewReader("first"))
	require.NoError(t, err)

	ref, err := store.Write(context.Background(), "audiobooks/icons/book-icon-1.png", strings.NewReader("second"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/audiobooks/icons/book-icon-1.png", ref)
}

/*
TestLocal_EnsureDirectory verifies idempotent directory creation.
*/
func TestLocal_EnsureDirectory(t *testing.T) {
	baseDir := t.TempDir()
	store, err := blobstore.NewLocal(baseDir, "/uploads")
	require.NoError(t, err)

	// 1. First creation
	require.NoError(t, store.EnsureDirectory(context.Background(), "graphic-novels/abc/1"))

	// 2. Repeat is a no-op, not an error
	require.NoError(t, store.EnsureDirectory(context.Background(), "graphic-novels/abc/1"))

	info, err := os.Stat(filepath.Join(baseDir, "graphic-novels", "abc", "1"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

/*
TestLocal_RejectsTraversal verifies that keys cannot escape the base directory.
*/
func TestLocal_RejectsTraversal(t *testing.T) {
	store, err := blobstore.NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "../outside.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, blobstore.ErrUnsafeKey)

	err = store.EnsureDirectory(context.Background(), "../../etc")
	assert.ErrorIs(t, err, blobstore.ErrUnsafeKey)
}
