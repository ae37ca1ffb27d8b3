package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/rendering"
	"github.com/jonathan/mission-reporter/internal/types"
)

// handleMissionDocument renders one mission into a document and streams it as
// a download.
func (s *Server) handleMissionDocument(w http.ResponseWriter, r *http.Request) {
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

	cfg, profile, err := s.renderInputs(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := s.exporter.RenderMission(r.Context(), *mission, cfg, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to render document: %v", err))
		return
	}

	name := export.DocumentName(*mission)
	w.Header().Set("Content-Type", rendering.DocumentContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// handleExport renders every mission in ?start=&end= and streams the batch
// archive. Per-item outcomes are reported in X-Export-* headers so the
// download body stays a plain zip.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if rng == nil {
		s.errorResponse(w, http.StatusBadRequest, "start and end query parameters are required")
		return
	}

	missions, err := s.storage.ListMissions(r.Context(), nil)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list missions: %v", err))
		return
	}

	cfg, profile, err := s.renderInputs(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := s.exporter.ExportBatch(r.Context(), missions, *rng, cfg, profile)
	if err != nil {
		var empty *export.EmptySelectionError
		var noOutput *export.NoOutputError
		switch {
		case errors.As(err, &empty):
			s.errorResponse(w, http.StatusNotFound, err.Error())
		case errors.As(err, &noOutput):
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
		default:
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Export failed: %v", err))
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("X-Export-Selected", strconv.Itoa(result.Report.Selected))
	w.Header().Set("X-Export-Rendered", strconv.Itoa(result.Report.Succeeded()))
	w.Header().Set("X-Export-Skipped", strconv.Itoa(result.Report.Failed()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// renderInputs loads the template selection and reporter profile for a render.
func (s *Server) renderInputs(r *http.Request) (types.ExportConfiguration, types.UserProfile, error) {
	cfg, err := s.storage.GetExportConfiguration(r.Context())
	if err != nil {
		return cfg, types.UserProfile{}, fmt.Errorf("failed to load template configuration: %w", err)
	}
	profile, err := s.storage.GetProfile(r.Context())
	if err != nil {
		return cfg, profile, fmt.Errorf("failed to load profile: %w", err)
	}
	return cfg, profile, nil
}
