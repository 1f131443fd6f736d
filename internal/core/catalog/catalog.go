// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package catalog exposes the anonymous reader surface: published graphic
novels and audiobooks, individually and as one combined feed. It is a thin
composition over the two content aggregates — all visibility filtering and
caching happens in their services.
*/
package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davitran/inkora/internal/core/audiobook"
	"github.com/davitran/inkora/internal/core/novel"
	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
)

// NovelCatalog is the published-view slice of the graphic-novel service.
type NovelCatalog interface {
	ListPublished(ctx context.Context) ([]*novel.GraphicNovel, error)
	GetPublished(ctx context.Context, id string) (*novel.GraphicNovel, error)
}

// AudiobookCatalog is the published-view slice of the audiobook service.
type AudiobookCatalog interface {
	ListPublished(ctx context.Context) ([]*audiobook.Audiobook, error)
	GetPublished(ctx context.Context, id string) (*audiobook.Audiobook, error)
}

// PublishedContent is the combined anonymous feed.
type PublishedContent struct {
	GraphicNovels []*novel.GraphicNovel  `json:"graphic_novels"`
	Audiobooks    []*audiobook.Audiobook `json:"audiobooks"`
}

// # Handler Implementation

// Handler implements the public catalogue HTTP layer.
type Handler struct {
	novels NovelCatalog
	books  AudiobookCatalog
}

// NewHandler constructs a new catalogue [Handler].
func NewHandler(novels NovelCatalog, books AudiobookCatalog) *Handler {
	return &Handler{novels: novels, books: books}
}

// RegisterRoutes attaches the anonymous reader endpoints.
func (handler *Handler) RegisterRoutes(public chi.Router) {
	public.Get("/user/published-content", handler.PublishedContent)
	public.Get("/user/graphic-novels", handler.ListGraphicNovels)
	public.Get("/user/graphic-novels/{id}", handler.GetGraphicNovel)
	public.Get("/user/audiobooks", handler.ListAudiobooks)
	public.Get("/user/audiobooks/{id}", handler.GetAudiobook)
}

// # Combined Feed

/*
GET /api/v1/user/published-content.

Description: Returns every published graphic novel and audiobook in one
payload, newest-first within each kind.

Response:
  - 200: PublishedContent: Both published catalogues
*/
func (handler *Handler) PublishedContent(writer http.ResponseWriter, request *http.Request) {
	novels, err := handler.novels.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.books.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Published content fetched successfully", PublishedContent{
		GraphicNovels: novels,
		Audiobooks:    books,
	})
}

// # Graphic Novels

/*
GET /api/v1/user/graphic-novels.

Response:
  - 200: []GraphicNovel: Published novels, newest-first
*/
func (handler *Handler) ListGraphicNovels(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.novels.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novels fetched successfully", map[string]any{"graphic_novels": items})
}

/*
GET /api/v1/user/graphic-novels/{id}.

Response:
  - 200: GraphicNovel: The published novel with episodes
  - 404: NotFound: Absent or not currently published
*/
func (handler *Handler) GetGraphicNovel(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.novels.GetPublished(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novel fetched successfully", item)
}

// # Audiobooks

/*
GET /api/v1/user/audiobooks.

Response:
  - 200: []Audiobook: Published audiobooks, newest-first
*/
func (handler *Handler) ListAudiobooks(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.books.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Audiobooks fetched successfully", map[string]any{"audiobooks": items})
}

/*
GET /api/v1/user/audiobooks/{id}.

Response:
  - 200: Audiobook: The published audiobook with episodes
  - 404: NotFound: Absent or not currently published
*/
func (handler *Handler) GetAudiobook(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.books.GetPublished(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Audiobook fetched successfully", item)
}
