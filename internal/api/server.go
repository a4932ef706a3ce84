package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-batch-downloader/internal/api/middleware"
	"github.com/ytget/yt-batch-downloader/internal/archive"
	"github.com/ytget/yt-batch-downloader/internal/config"
	"github.com/ytget/yt-batch-downloader/internal/download"
)

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrServerNotRunning     = errors.New("server is not running")
)

// Server represents the HTTP server
type Server struct {
	settings  *config.Settings
	resolver  download.Resolver
	archiver  archive.Archiver
	log       *logrus.Logger
	infoCache *gocache.Cache
	router    *chi.Mux
	server    *http.Server
	listener  net.Listener
	running   bool
	mu        sync.RWMutex
}

// NewServer creates a new HTTP server
func NewServer(settings *config.Settings, resolver download.Resolver, archiver archive.Archiver, logger *logrus.Logger) *Server {
	ttl := time.Duration(settings.InfoCacheTTLSeconds) * time.Second

	s := &Server{
		settings:  settings,
		resolver:  resolver,
		archiver:  archiver,
		log:       logger,
		infoCache: gocache.New(ttl, 2*ttl),
		router:    chi.NewRouter(),
	}

	s.setupRoutes()

	return s
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.RateLimit(s.settings.RateLimitRPS, s.settings.RateLimitBurst))

	s.router.Get("/", s.handleIndex)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/info", s.handleInfo)
		r.Post("/download", s.handleDownload)
		r.Post("/batch", s.handleBatch)
	})

	// Static file serving (download directory)
	fileServer := http.FileServer(http.Dir(s.settings.DownloadDir))
	s.router.Handle("/files/*", http.StripPrefix("/files/", fileServer))
}

// Router returns the configured handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyRunning
	}

	addr := s.Addr()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute, // downloads stream through response bodies
		IdleTimeout:  60 * time.Second,
	}
	s.server = httpServer

	s.running = true

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("Server error")
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrServerNotRunning
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.running = false
	s.server = nil
	s.listener = nil

	return nil
}

// IsRunning returns whether the server is currently running
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the configured server address
func (s *Server) Addr() string {
	return ":" + s.settings.ServerPort
}

// ActualAddr returns the actual listening address (useful when port is 0)
func (s *Server) ActualAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.Addr()
}
