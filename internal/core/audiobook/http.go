// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package audiobook

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davitran/inkora/internal/core/moderation"
	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
)

// Multipart form field names for submissions and episodes.
const (
	formFieldIcon        = "book_icon"
	formFieldEpisodeIcon = "icon"
)

// # Handler Implementation

// Handler implements the HTTP layer for audiobooks.
type Handler struct {
	service *Service
}

// NewHandler constructs a new audiobook [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes attaches the anonymous read endpoints.
func (handler *Handler) RegisterPublicRoutes(public chi.Router) {
	public.Get("/audiobooks/{id}/episodes/{episodeID}", handler.GetEpisode)
}

// RegisterCreatorRoutes attaches the creator-scoped content endpoints.
// The caller mounts these behind authentication and the active-account gate.
func (handler *Handler) RegisterCreatorRoutes(creators chi.Router) {
	creators.Post("/audiobooks", handler.Create)
	creators.Get("/audiobooks", handler.ListOwned)
	creators.Get("/audiobooks/{id}", handler.GetOwned)
	creators.Post("/audiobooks/{id}/episodes", handler.AddEpisode)
}

// RegisterAdminRoutes attaches the moderation endpoints.
// The caller mounts these inside an admin-gated route group.
func (handler *Handler) RegisterAdminRoutes(admin chi.Router) {
	admin.Get("/audiobooks", handler.ListAll)
	admin.Post("/audiobooks", handler.Create)
	admin.Get("/audiobooks/{id}", handler.GetDetail)
	admin.Put("/audiobooks/{id}/status", handler.UpdateStatus)
	admin.Post("/audiobooks/{id}/episodes", handler.AddEpisode)
}

// # Submission

/*
POST /api/v1/audiobooks and POST /api/v1/admin/audiobooks.

Description: Submits a new audiobook from a multipart form carrying a title
and an optional icon. Creator submissions start pending; admin submissions
publish immediately.

Response:
  - 201: Audiobook: The persisted submission
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

	respond.Created(writer, "Audiobook submitted successfully", item)
}

// # Creator Views

/*
GET /api/v1/audiobooks.

Description: Lists the authenticated creator's own audiobooks in every status.

Response:
  - 200: []Audiobook: Owned submissions, newest-first
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

	respond.OK(writer, "Audiobooks fetched successfully", map[string]any{"audiobooks": items})
}

/*
GET /api/v1/audiobooks/{id}.

Description: Fetches one owned audiobook with its episodes.

Response:
  - 200: Audiobook: The owned submission
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

	respond.OK(writer, "Audiobook fetched successfully", item)
}

// # Admin Views & Moderation

/*
GET /api/v1/admin/audiobooks.

Description: Lists every audiobook in every status with owner summaries.

Response:
  - 200: []Audiobook: All submissions, newest-first
*/
func (handler *Handler) ListAll(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Audiobooks fetched successfully", map[string]any{"audiobooks": items})
}

/*
GET /api/v1/admin/audiobooks/{id}.

Description: Fetches one audiobook regardless of status or ownership.

Response:
  - 200: Audiobook: The submission with episodes and owner
  - 404: NotFound: Absent id
*/
func (handler *Handler) GetDetail(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetDetail(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Audiobook fetched successfully", item)
}

// updateStatusRequest defines the inbound JSON schema for moderation.
type updateStatusRequest struct {
	Status string `json:"status"`
}

/*
PUT /api/v1/admin/audiobooks/{id}/status.

Description: Moves an audiobook between pending, published, and rejected.

Response:
  - 200: Message: Status updated
  - 400: Validation: Unknown status value
  - 404: NotFound: Audiobook absent
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

	respond.OK(writer, "Audiobook status updated successfully", nil)
}

// # Episodes

/*
POST /api/v1/audiobooks/{id}/episodes and the admin equivalent.

Description: Appends the next episode from a multipart form carrying an
optional icon and a required youtube_url field. The episode number is
assigned server-side.

Response:
  - 201: Episode: The persisted episode with its number
  - 400: Validation: Missing or malformed youtube_url
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

	episode, err := handler.service.AddEpisode(request.Context(), claims, requestutil.ID(request, "id"), EpisodeInput{
		Icon:       icon,
		YoutubeURL: requestutil.FormValue(request, FieldYoutubeURL),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Episode added successfully", episode)
}

/*
GET /api/v1/audiobooks/{id}/episodes/{episodeID}.

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
