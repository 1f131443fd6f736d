// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/core/audiobook"
	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/core/novel"
	"github.com/davitran/inkora/internal/platform/apperr"
)

// # Test Fakes

type fakeNovelCatalog struct {
	published []*novel.GraphicNovel
}

func (catalog *fakeNovelCatalog) ListPublished(context.Context) ([]*novel.GraphicNovel, error) {
	return catalog.published, nil
}

func (catalog *fakeNovelCatalog) GetPublished(_ context.Context, id string) (*novel.GraphicNovel, error) {
	for _, item := range catalog.published {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Graphic novel")
}

type fakeBookCatalog struct {
	published []*audiobook.Audiobook
}

func (catalog *fakeBookCatalog) ListPublished(context.Context) ([]*audiobook.Audiobook, error) {
	return catalog.published, nil
}

func (catalog *fakeBookCatalog) GetPublished(_ context.Context, id string) (*audiobook.Audiobook, error) {
	for _, item := range catalog.published {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Audiobook")
}

func newTestRouter(novels *fakeNovelCatalog, books *fakeBookCatalog) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(novels, books).RegisterRoutes(router)
	return router
}

// envelope mirrors the standard response wrapper for assertions.
type envelope struct {
	Ok      bool            `json:"ok"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func perform(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

// # Combined Feed

func TestPublishedContent_CombinesBothKinds(t *testing.T) {
	novels := &fakeNovelCatalog{published: []*novel.GraphicNovel{
		{ID: "novel-1", Title: "Ink Lines", Status: moderation.StatusPublished},
	}}
	books := &fakeBookCatalog{published: []*audiobook.Audiobook{
		{ID: "book-1", Title: "Night Radio", Status: moderation.StatusPublished},
		{ID: "book-2", Title: "Day Radio", Status: moderation.StatusPublished},
	}}

	recorder, body := perform(t, newTestRouter(novels, books), "/user/published-content")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Ok)

	var content PublishedContent
	require.NoError(t, json.Unmarshal(body.Data, &content))
	assert.Len(t, content.GraphicNovels, 1)
	assert.Len(t, content.Audiobooks, 2)
}

func TestPublishedContent_EmptyCatalogues(t *testing.T) {
	recorder, body := perform(t, newTestRouter(&fakeNovelCatalog{}, &fakeBookCatalog{}), "/user/published-content")

	// An empty platform is a normal 200, not an error
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Ok)
}

// # Single-Item Fetches

func TestGetGraphicNovel_ByID(t *testing.T) {
	novels := &fakeNovelCatalog{published: []*novel.GraphicNovel{
		{ID: "novel-1", Title: "Ink Lines", Status: moderation.StatusPublished},
	}}
	router := newTestRouter(novels, &fakeBookCatalog{})

	// 1. Published item resolves
	recorder, body := perform(t, router, "/user/graphic-novels/novel-1")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Ok)

	// 2. Unknown id is a NotFound envelope
	recorder, body = perform(t, router, "/user/graphic-novels/missing")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, body.Ok)
}

func TestGetAudiobook_ByID(t *testing.T) {
	books := &fakeBookCatalog{published: []*audiobook.Audiobook{
		{ID: "book-1", Title: "Night Radio", Status: moderation.StatusPublished},
	}}
	router := newTestRouter(&fakeNovelCatalog{}, books)

	recorder, body := perform(t, router, "/user/audiobooks/book-1")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, body.Ok)

	recorder, _ = perform(t, router, "/user/audiobooks/missing")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
