package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/mission-reporter/internal/types"
)

// handleListMissions returns mission records, optionally filtered by
// ?start=YYYY-MM-DD&end=YYYY-MM-DD (inclusive on both days).
func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	missions, err := s.storage.ListMissions(r.Context(), rng)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list missions: %v", err))
		return
	}
	if missions == nil {
		missions = []types.MissionRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"missions": missions,
		"count":    len(missions),
	})
}

// handleCreateMission stores a new mission record.
func (s *Server) handleCreateMission(w http.ResponseWriter, r *http.Request) {
	var mission types.MissionRecord
	if err := json.NewDecoder(r.Body).Decode(&mission); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	if err := mission.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid mission: %v", err))
		return
	}

	id, err := s.storage.CreateMission(r.Context(), mission)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create mission: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGetMission returns one mission by id.
func (s *Server) handleGetMission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	mission, err := s.storage.GetMission(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get mission: %v", err))
		return
	}
	if mission == nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("Mission not found: %s", id))
		return
	}

	s.jsonResponse(w, http.StatusOK, mission)
}

// handleDeleteMission removes a mission record.
func (s *Server) handleDeleteMission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.storage.DeleteMission(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to delete mission: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// rangeFromQuery parses optional start/end query parameters into a DateRange.
// Both absent means no filter; one absent is an error.
func rangeFromQuery(r *http.Request) (*types.DateRange, error) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("both start and end are required when filtering by date")
	}

	rng := &types.DateRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}
	return rng, nil
}
