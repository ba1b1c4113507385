package server

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ukaji3/collectibles-go/pkg/collectibles/models"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
)

// maxImportSize bounds the body of a profile import.
const maxImportSize = 1 << 20

// handleGetCollectibles returns the whole catalog
func (s *Server) handleGetCollectibles(w http.ResponseWriter, r *http.Request) {
	catalog := s.catalog
	if catalog == nil {
		catalog = models.Catalog{}
	}
	respondJSON(w, http.StatusOK, catalog)
}

// handleGetCollectibleType returns one type with its items resolved
func (s *Server) handleGetCollectibleType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "typeID")

	t, ok := s.catalog.Find(typeID)
	if !ok {
		respondError(w, http.StatusNotFound, typeID, "Type not found")
		return
	}

	respondJSON(w, http.StatusOK, t.Resolve(s.locations))
}

// handleGetLocations returns the location reference table
func (s *Server) handleGetLocations(w http.ResponseWriter, r *http.Request) {
	locations := s.locations
	if locations == nil {
		locations = []models.Location{}
	}
	respondJSON(w, http.StatusOK, locations)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context())
	if err != nil {
		s.log.Error("failed to read profile", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "", "Failed to read profile")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, profile.StorageKey, "Profile not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p models.PlayerProfile
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "", "Invalid request body")
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	s.saveProfile(w, r, &p)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context()); err != nil {
		s.log.Error("failed to delete profile", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "", "Failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImportProfile migrates an exported profile of any known version and
// stores the result
func (s *Server) handleImportProfile(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "", "Invalid request body")
		return
	}

	p, err := profile.MigrateJSON(data, s.catalog)
	if err != nil {
		respondError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "", err.Error())
		return
	}
	s.saveProfile(w, r, p)
}

func (s *Server) saveProfile(w http.ResponseWriter, r *http.Request, p *models.PlayerProfile) {
	if err := s.store.Set(r.Context(), p); err != nil {
		s.log.Error("failed to save profile", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "", "Failed to save profile")
		return
	}
	respondJSON(w, http.StatusOK, p)
}
