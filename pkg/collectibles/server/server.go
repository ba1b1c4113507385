// Package server exposes the generated catalog over a read-only HTTP API
// together with the player profile store.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Addr is the listen address.
	Addr string `mapstructure:"addr" default:":8080"`
	// AllowedOrigins lists the CORS origins allowed to call the API.
	AllowedOrigins []string `mapstructure:"allowed_origins" default:"http://localhost:*"`
}

// Server holds the HTTP server dependencies.
type Server struct {
	catalog   models.Catalog
	locations []models.Location
	store     profile.Store
	log       *zap.Logger
	router    chi.Router
}

// New creates a new API server. A nil store disables persistence and a nil
// logger discards request logs.
func New(cfg Config, catalog models.Catalog, locations []models.Location, store profile.Store, log *zap.Logger) *Server {
	if store == nil {
		store = profile.NoopStore{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		catalog:   catalog,
		locations: locations,
		store:     store,
		log:       log,
		router:    chi.NewRouter(),
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(cfg Config) {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/collectibles", s.handleGetCollectibles)
		r.Get("/collectibles/{typeID}", s.handleGetCollectibleType)
		r.Get("/locations", s.handleGetLocations)

		// Profile
		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)
		r.Delete("/profile", s.handleDeleteProfile)
		r.Post("/profile/import", s.handleImportProfile)
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// --- Response helpers ---

// errorResponse is the body of every failed request.
type errorResponse struct {
	ID      string `json:"id,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, id, message string) {
	respondJSON(w, status, errorResponse{ID: id, Code: strconv.Itoa(status), Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
