// Package web provides the HTTP server and API handlers for the portfolio.
package web

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/akshdev/portfolio-api/internal/log"
)

// DefaultAddr is the default server address.
const DefaultAddr = "127.0.0.1:8080"

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr        string
	CORSOrigins []string
	StaticFS    fs.FS
}

// Server is the HTTP server for the portfolio API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	logger   zerolog.Logger
}

// NewServer creates a new web server around the given providers.
func NewServer(cfg ServerConfig, snapshots SnapshotProvider, badges BadgeProvider) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: NewHandlers(snapshots, badges),
		logger:   log.WithComponent("web"),
	}

	s.setupMiddleware(cfg.CORSOrigins)
	s.setupRoutes(cfg.StaticFS)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware(corsOrigins []string) {
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestID)
	s.router.Use(RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(httprate.LimitByIP(100, time.Minute))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	s.router.Use(Metrics)
}

// setupRoutes configures routes for the application.
func (s *Server) setupRoutes(staticFS fs.FS) {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/music", s.handlers.Music)
		r.Get("/hackerrank", s.handlers.HackerRank)
		r.Get("/profile", s.handlers.Profile)
		r.Get("/projects", s.handlers.Projects)
		r.Get("/services", s.handlers.Services)
	})

	s.router.Get("/healthz", s.handlers.Health)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Site shell
	if staticFS != nil {
		fileServer := http.FileServer(http.FS(staticFS))
		s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
		s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, staticFS, "index.html")
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
