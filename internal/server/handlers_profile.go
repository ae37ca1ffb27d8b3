package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/mission-reporter/internal/types"
)

// handleGetProfile returns the reporter identity fields.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.storage.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get profile: %v", err))
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces the reporter identity fields. Empty strings
// are valid values, so the whole profile is replaced rather than patched.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	if err := s.storage.SaveProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save profile: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
