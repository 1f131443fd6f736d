// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route layout under /api/v1:

  - Public: account endpoints, the /user catalogue, and per-episode fetches.
  - Creator: content submission, gated by authentication, the creator role,
    and a live active-account check.
  - Admin: /admin moderation surface, gated by the admin role.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/davitran/inkora/internal/core/audiobook"
	"github.com/davitran/inkora/internal/core/catalog"
	"github.com/davitran/inkora/internal/core/novel"
	"github.com/davitran/inkora/internal/platform/config"
	"github.com/davitran/inkora/internal/platform/constants"
	"github.com/davitran/inkora/internal/platform/middleware"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/users/admin"
	"github.com/davitran/inkora/internal/users/creator"
	"github.com/davitran/inkora/internal/users/member"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles the administrator login.
	Admin *admin.Handler

	// Creator handles creator accounts and their moderation surface.
	Creator *creator.Handler

	// Member handles reader account registration and login.
	Member *member.Handler

	// Novel handles graphic-novel submission, episodes, and moderation.
	Novel *novel.Handler

	// Audiobook handles audiobook submission, episodes, and moderation.
	Audiobook *audiobook.Handler

	// Catalog handles the anonymous published-content surface.
	Catalog *catalog.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, creatorService *creator.Service, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Assets
	// Stored icons and PDFs are served straight off the upload tree.
	fileServer := http.StripPrefix(constants.UploadURLPrefix, http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get(constants.UploadURLPrefix+"/*", fileServer.ServeHTTP)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {

		// Anonymous surface: account entry points, the reader catalogue,
		// and single-episode fetches.
		h.Creator.RegisterRoutes(api)
		h.Member.RegisterRoutes(api)
		h.Catalog.RegisterRoutes(api)
		h.Novel.RegisterPublicRoutes(api)
		h.Audiobook.RegisterPublicRoutes(api)

		// Creator surface: submission and owned-content views. Admins use
		// the /admin routes instead; the role set here is creator-only.
		api.Group(func(creators chi.Router) {
			creators.Use(middleware.RequireRole(sec.RoleCreator))
			creators.Use(creator.RequireActive(creatorService))

			h.Novel.RegisterCreatorRoutes(creators)
			h.Audiobook.RegisterCreatorRoutes(creators)
		})

		// Admin surface: login stays open, moderation sits behind the role gate.
		api.Route("/admin", func(adminGroup chi.Router) {
			h.Admin.RegisterRoutes(adminGroup)

			adminGroup.Group(func(moderation chi.Router) {
				moderation.Use(middleware.RequireRole(sec.RoleAdmin))

				h.Creator.RegisterAdminRoutes(moderation)
				h.Novel.RegisterAdminRoutes(moderation)
				h.Audiobook.RegisterAdminRoutes(moderation)
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
