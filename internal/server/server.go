// Package server provides the HTTP REST API for the mission reporter.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/rendering"
	"github.com/jonathan/mission-reporter/internal/store"
	"github.com/jonathan/mission-reporter/internal/templates"
	"github.com/jonathan/mission-reporter/internal/types"
)

// Storage is the persistence surface the handlers need. *store.Store
// satisfies it; tests supply stubs.
type Storage interface {
	CreateMission(ctx context.Context, m types.MissionRecord) (string, error)
	GetMission(ctx context.Context, id string) (*types.MissionRecord, error)
	ListMissions(ctx context.Context, rng *types.DateRange) ([]types.MissionRecord, error)
	DeleteMission(ctx context.Context, id string) error
	SaveTemplate(ctx context.Context, tpl types.TemplateDescriptor) (string, error)
	ListTemplates(ctx context.Context) ([]types.TemplateDescriptor, error)
	DeleteTemplate(ctx context.Context, id string) error
	SetActiveTemplate(ctx context.Context, id string) error
	GetExportConfiguration(ctx context.Context) (types.ExportConfiguration, error)
	GetProfile(ctx context.Context) (types.UserProfile, error)
	SaveProfile(ctx context.Context, p types.UserProfile) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	storage    Storage
	exporter   *export.Exporter
	closeStore func()
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	AssetBaseURL string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	resolver, err := templates.NewResolver(cfg.AssetBaseURL, nil)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create template resolver: %w", err)
	}

	s := newWithDeps(database, export.NewExporter(resolver, rendering.NewRenderer()))
	s.closeStore = database.Close
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch exports render sequentially
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newWithDeps wires a server around explicit collaborators. Tests enter here.
func newWithDeps(storage Storage, exporter *export.Exporter) *Server {
	return &Server{storage: storage, exporter: exporter}
}

// Handler builds the route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Mission records
	mux.HandleFunc("GET /missions", s.handleListMissions)
	mux.HandleFunc("POST /missions", s.handleCreateMission)
	mux.HandleFunc("GET /missions/{id}", s.handleGetMission)
	mux.HandleFunc("DELETE /missions/{id}", s.handleDeleteMission)

	// Document generation
	mux.HandleFunc("GET /missions/{id}/document", s.handleMissionDocument)
	mux.HandleFunc("GET /exports", s.handleExport)

	// Templates
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("POST /templates", s.handleUploadTemplate)
	mux.HandleFunc("DELETE /templates/{id}", s.handleDeleteTemplate)
	mux.HandleFunc("PUT /templates/active", s.handleActivateTemplate)

	// Reporter profile
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("PUT /profile", s.handleUpdateProfile)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
