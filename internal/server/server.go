package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/livinghopeag/churchapi/internal/config"
	"github.com/livinghopeag/churchapi/internal/handler"
	"github.com/livinghopeag/churchapi/internal/openapi"
	"github.com/livinghopeag/churchapi/internal/server/middleware"
	"github.com/livinghopeag/churchapi/internal/service"
	"github.com/livinghopeag/churchapi/internal/store"
)

// Server is the top-level HTTP server. It owns the Chi router, the content
// store, and the authentication service.
type Server struct {
	cfg        *config.Config
	router     chi.Router
	store      *store.Store
	authSvc    *service.AuthService
	httpServer *http.Server
	logger     *slog.Logger

	specOnce sync.Once
	specJSON []byte
	specErr  error
}

// New creates a new Server, wires up all routes and middleware, and returns
// it ready to listen. Call ListenAndServe to start accepting connections.
func New(cfg *config.Config, st *store.Store, authSvc *service.AuthService, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		store:   st,
		authSvc: authSvc,
		logger:  logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.Compress(5))

	// --- Health checks (no auth required) ---
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	// --- OpenAPI spec (no auth required) ---
	r.Get("/openapi.json", s.handleOpenAPISpec)

	publicHandler := handler.NewPublicHandler(s.store, s.cfg.Church)
	linkHandler := handler.NewLinkHandler(s.store, nil)
	adminHandler := handler.NewAdminHandler(s.store, s.authSvc)

	// --- Public site API ---
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", publicHandler.Health)
		r.Get("/church-info", publicHandler.ChurchInfo)
		r.Get("/announcements", publicHandler.ListAnnouncements)
		r.Get("/events", publicHandler.ListEvents)
		r.Get("/events/{eventID}", publicHandler.GetEvent)
		r.Get("/events/{eventID}/gallery", linkHandler.EventGallery)
		r.Get("/media", publicHandler.ListMedia)
		r.Post("/contact", publicHandler.SubmitContactForm)
		r.Post("/extract-youtube", linkHandler.ExtractYouTube)
		r.Post("/resolve-map-url", linkHandler.ResolveMapURL)

		// --- Admin API ---
		r.Route("/admin", func(r chi.Router) {
			// Login is the only unauthenticated admin endpoint.
			r.Post("/login", adminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(s.authSvc, s.logger))

				r.Get("/contact-forms", adminHandler.ListContactForms)
				r.Patch("/contact-forms/{formID}/read", adminHandler.MarkContactFormRead)

				r.Get("/announcements", adminHandler.ListAnnouncements)
				r.Post("/announcements", adminHandler.CreateAnnouncement)
				r.Put("/announcements/{announcementID}", adminHandler.UpdateAnnouncement)
				r.Delete("/announcements/{announcementID}", adminHandler.DeleteAnnouncement)

				r.Get("/events", adminHandler.ListEvents)
				r.Post("/events", adminHandler.CreateEvent)
				r.Put("/events/{eventID}", adminHandler.UpdateEvent)
				r.Delete("/events/{eventID}", adminHandler.DeleteEvent)

				r.Get("/media", adminHandler.ListMedia)
				r.Post("/media", adminHandler.CreateMedia)
				r.Put("/media/{mediaID}", adminHandler.UpdateMedia)
				r.Delete("/media/{mediaID}", adminHandler.DeleteMedia)
			})
		})
	})

	s.router = r
}

// handleHealthz is a liveness probe. Returns 200 if the process is running.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz is a readiness probe. Returns 200 when the content store is
// reachable, 503 otherwise.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK

	if err := s.store.Ping(r.Context()); err != nil {
		status = "degraded: " + err.Error()
		httpStatus = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// handleOpenAPISpec serves the generated API description. The spec depends
// only on static route metadata, so it is generated once and cached.
func (s *Server) handleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	s.specOnce.Do(func() {
		s.specJSON, s.specErr = openapi.Generate(s.cfg.Church.Name)
	})
	if s.specErr != nil {
		s.logger.Error("openapi spec generation failed", "error", s.specErr)
		http.Error(w, "spec unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.specJSON)
}

// ListenAndServe starts the HTTP server and blocks until a SIGINT or SIGTERM
// is received. It then performs a graceful shutdown, draining in-flight
// requests before closing the store.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if err := s.store.Close(); err != nil {
		s.logger.Warn("store close", "error", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Router returns the underlying Chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
