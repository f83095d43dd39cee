// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer. It decides which URL patterns map to
// which handler functions, what middleware runs on them, and how the server
// starts and stops.
//
// DEPENDENCY INJECTION FLOW:
//
//	New() creates: mockapi.UserAPI    → handler.UserHandler
//	               mockapi.ProductAPI → handler.ProductHandler
//
// All dependencies are wired here, in one place, rather than scattered
// across the codebase.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/go-examples/internal/handler"
	"github.com/sakif/go-examples/internal/middleware"
	"github.com/sakif/go-examples/internal/mockapi"
	"github.com/sakif/go-examples/internal/model"
)

// shutdownTimeout is how long in-flight requests get to finish.
const shutdownTimeout = 30 * time.Second

// Config holds server configuration.
type Config struct {
	Port int
}

// Server represents the HTTP server and all its dependencies.
type Server struct {
	router   *chi.Mux
	config   Config
	logger   *slog.Logger
	users    *mockapi.UserAPI
	products *mockapi.ProductAPI
}

// New creates a Server with freshly seeded mock APIs.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		logger:   logger,
		users:    mockapi.NewUserAPI(),
		products: mockapi.NewProductAPI(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /healthz                   → liveness probe
// GET    /api/users                 → list mock users
// POST   /api/users                 → create mock user
// GET    /api/users/{id}            → get mock user
// PUT    /api/users/{id}            → partial update
// DELETE /api/users/{id}            → delete mock user
// GET    /api/products              → list products (category, minPrice, maxPrice)
// POST   /api/products              → create product
// GET    /api/products/{id}         → get product
// PUT    /api/products/{id}/stock   → adjust stock by {"quantity": n}
//
// MIDDLEWARE ORDER MATTERS:
// Middleware executes in the order it's added. RequestID runs first so the
// logger can include it.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID) // Adds X-Request-ID header
	s.router.Use(chimiddleware.RealIP)    // Extracts real IP from X-Forwarded-For
	s.router.Use(chimiddleware.Recoverer) // Recovers from panics, returns 500
	s.router.Use(middleware.Logger(s.logger))

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		res := model.OK("ok", "Server is healthy")
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			s.logger.Error("failed to encode health response", slog.String("error", err.Error()))
		}
	})

	userHandler := handler.NewUserHandler(s.users, s.logger)
	productHandler := handler.NewProductHandler(s.products, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		userHandler.Routes(r)
		productHandler.Routes(r)
	})
}

// Handler returns the fully wired router. Tests drive it with httptest
// without opening a socket.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
//
// GRACEFUL SHUTDOWN:
//  1. Stop accepting new HTTP connections
//  2. Wait for in-flight requests to finish (30s timeout)
//
// The caller decides what cancels ctx; cmd/playground wires it to SIGINT
// and SIGTERM with signal.NotifyContext.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case <-ctx.Done():
		s.logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
