// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package novel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davitran/inkora/internal/core/moderation"
	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
)

// Multipart form field names for submissions and episodes.
const (
	formFieldIcon = "novel_icon"
	formFieldPDF  = "pdf"

	formFieldEpisodeIcon = "icon"
)

// # Handler Implementation

// Handler implements the HTTP layer for graphic novels.
type Handler struct {
	service *Service
}

// NewHandler constructs a new graphic-novel [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes attaches the anonymous read endpoints.
func (handler *Handler) RegisterPublicRoutes(public chi.Router) {
	public.Get("/graphic-novels/{id}/episodes/{episodeID}", handler.GetEpisode)
}

// RegisterCreatorRoutes attaches the creator-scoped content endpoints.
// The caller mounts these behind authentication and the active-account gate.
func (handler *Handler) RegisterCreatorRoutes(creators chi.Router) {
	creators.Post("/graphic-novels", handler.Create)
	creators.Get("/graphic-novels", handler.ListOwned)
	creators.Get("/graphic-novels/{id}", handler.GetOwned)
	creators.Post("/graphic-novels/{id}/episodes", handler.AddEpisode)
}

// RegisterAdminRoutes attaches the moderation endpoints.
// The caller mounts these inside an admin-gated route group.
func (handler *Handler) RegisterAdminRoutes(admin chi.Router) {
	admin.Get("/graphic-novels", handler.ListAll)
	admin.Post("/graphic-novels", handler.Create)
	admin.Get("/graphic-novels/{id}", handler.GetDetail)
	admin.Put("/graphic-novels/{id}/status", handler.UpdateStatus)
	admin.Post("/graphic-novels/{id}/episodes", handler.AddEpisode)
}

// # Submission

/*
POST /api/v1/graphic-novels and POST /api/v1/admin/graphic-novels.

Description: Submits a new graphic novel from a multipart form carrying a
title and an optional icon. Creator submissions start pending; admin
submissions publish immediately.

Response:
  - 201: GraphicNovel: The persisted submission
  - 400: Validation: Missing title or oversized upload
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseMultipart(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title := requestutil.FormValue(request, FieldTitle)
	icon, _ := requestutil.FormFile(request, formFieldIcon)

	item, err := handler.service.Create(request.Context(), claims, title, icon)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Graphic novel submitted successfully", item)
}

// # Creator Views

/*
GET /api/v1/graphic-novels.

Description: Lists the authenticated creator's own novels in every status.

Response:
  - 200: []GraphicNovel: Owned submissions, newest-first
*/
func (handler *Handler) ListOwned(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListOwned(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novels fetched successfully", map[string]any{"graphic_novels": items})
}

/*
GET /api/v1/graphic-novels/{id}.

Description: Fetches one owned novel with its episodes.

Response:
  - 200: GraphicNovel: The owned submission
  - 404: NotFound: Absent or owned by another creator
*/
func (handler *Handler) GetOwned(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.GetOwnedDetail(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novel fetched successfully", item)
}

// # Admin Views & Moderation

/*
GET /api/v1/admin/graphic-novels.

Description: Lists every novel in every status with owner summaries.

Response:
  - 200: []GraphicNovel: All submissions, newest-first
*/
func (handler *Handler) ListAll(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novels fetched successfully", map[string]any{"graphic_novels": items})
}

/*
GET /api/v1/admin/graphic-novels/{id}.

Description: Fetches one novel regardless of status or ownership.

Response:
  - 200: GraphicNovel: The submission with episodes and owner
  - 404: NotFound: Absent id
*/
func (handler *Handler) GetDetail(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetDetail(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novel fetched successfully", item)
}

// updateStatusRequest defines the inbound JSON schema for moderation.
type updateStatusRequest struct {
	Status string `json:"status"`
}

/*
PUT /api/v1/admin/graphic-novels/{id}/status.

Description: Moves a novel between pending, published, and rejected.

Response:
  - 200: Message: Status updated
  - 400: Validation: Unknown status value
  - 404: NotFound: Novel absent
*/
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetStatus(request.Context(), id, moderation.Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Graphic novel status updated successfully", nil)
}

// # Episodes

/*
POST /api/v1/graphic-novels/{id}/episodes and the admin equivalent.

Description: Appends the next episode from a multipart form with an optional
icon and PDF. The episode number is assigned server-side.

Response:
  - 201: Episode: The persisted episode with its number
  - 404: NotFound: Parent absent or owned by another creator
*/
func (handler *Handler) AddEpisode(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseMultipart(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	icon, _ := requestutil.FormFile(request, formFieldEpisodeIcon)
	pdf, _ := requestutil.FormFile(request, formFieldPDF)

	episode, err := handler.service.AddEpisode(request.Context(), claims, requestutil.ID(request, "id"), EpisodeUploads{
		Icon: icon,
		PDF:  pdf,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Episode added successfully", episode)
}

/*
GET /api/v1/graphic-novels/{id}/episodes/{episodeID}.

Description: Fetches one episode by parent and episode id. Public.

Response:
  - 200: Episode: The episode
  - 404: NotFound: Unknown parent/episode pair
*/
func (handler *Handler) GetEpisode(writer http.ResponseWriter, request *http.Request) {
	episode, err := handler.service.GetEpisode(request.Context(),
		requestutil.ID(request, "id"),
		requestutil.ID(request, "episodeID"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Episode fetched successfully", episode)
}
