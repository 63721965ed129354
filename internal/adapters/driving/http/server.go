package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/helpdesk-search/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	searchService driving.SearchService
	faqService    driving.FAQService
	linkService   driving.WebLinkService
	pdfService    driving.PDFService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	Version        string
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		Version:        "dev",
		AllowedOrigins: []string{"*"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	searchService driving.SearchService,
	faqService driving.FAQService,
	linkService driving.WebLinkService,
	pdfService driving.PDFService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:        http.NewServeMux(),
		version:       cfg.Version,
		searchService: searchService,
		faqService:    faqService,
		linkService:   linkService,
		pdfService:    pdfService,
		db:            db,
		redisClient:   redisClient,
	}

	// Middleware chain applies to every route
	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()
	cors := NewCORSMiddleware(cfg.AllowedOrigins)
	handler := logging.Handler(recovery.Handler(cors.Handler(s.router)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health endpoints
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Search endpoints
	s.router.HandleFunc("GET /api/v1/search", s.handleSearch)
	s.router.HandleFunc("GET /api/v1/search/suggestions", s.handleSuggestions)

	// FAQ endpoints
	s.router.HandleFunc("POST /api/v1/faqs", s.handleCreateFAQ)
	s.router.HandleFunc("GET /api/v1/faqs", s.handleListFAQs)
	s.router.HandleFunc("GET /api/v1/faqs/{id}", s.handleGetFAQ)
	s.router.HandleFunc("PUT /api/v1/faqs/{id}", s.handleUpdateFAQ)
	s.router.HandleFunc("DELETE /api/v1/faqs/{id}", s.handleDeleteFAQ)

	// Web link endpoints
	s.router.HandleFunc("POST /api/v1/links", s.handleCreateLink)
	s.router.HandleFunc("GET /api/v1/links", s.handleListLinks)
	s.router.HandleFunc("GET /api/v1/links/{id}", s.handleGetLink)
	s.router.HandleFunc("PUT /api/v1/links/{id}", s.handleUpdateLink)
	s.router.HandleFunc("DELETE /api/v1/links/{id}", s.handleDeleteLink)

	// PDF endpoints
	s.router.HandleFunc("POST /api/v1/pdfs", s.handleUploadPDF)
	s.router.HandleFunc("GET /api/v1/pdfs", s.handleListPDFs)
	s.router.HandleFunc("GET /api/v1/pdfs/{id}", s.handleGetPDF)
	s.router.HandleFunc("GET /api/v1/pdfs/{id}/file", s.handleDownloadPDF)
	s.router.HandleFunc("DELETE /api/v1/pdfs/{id}", s.handleDeletePDF)
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
