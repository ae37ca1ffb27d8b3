package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/mission-reporter/internal/codec"
	"github.com/jonathan/mission-reporter/internal/types"
)

// templateSummary is the list representation of a template; Data is omitted
// because descriptors can carry multi-megabyte archives.
type templateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// handleListTemplates returns the template selection: the active id plus all
// custom template summaries.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.storage.GetExportConfiguration(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load templates: %v", err))
		return
	}

	summaries := make([]templateSummary, 0, len(cfg.CustomTemplates))
	for _, tpl := range cfg.CustomTemplates {
		summaries = append(summaries, templateSummary{ID: tpl.ID, Name: tpl.Name})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"active_template_id": cfg.ActiveTemplateID,
		"custom_templates":   summaries,
	})
}

// handleUploadTemplate stores a new custom template. Data must be a valid
// base64 payload; the reserved default id cannot be taken.
func (s *Server) handleUploadTemplate(w http.ResponseWriter, r *http.Request) {
	var tpl types.TemplateDescriptor
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	if tpl.ID == types.DefaultTemplateID {
		s.errorResponse(w, http.StatusBadRequest, "Template id 'default' is reserved")
		return
	}
	if tpl.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Template name is required")
		return
	}
	if _, err := codec.Decode(tpl.Data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid template data: %v", err))
		return
	}

	id, err := s.storage.SaveTemplate(r.Context(), tpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save template: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleDeleteTemplate removes a custom template. Deleting the active
// template resets the selection to the default.
func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == types.DefaultTemplateID {
		s.errorResponse(w, http.StatusBadRequest, "The default template cannot be deleted")
		return
	}

	if err := s.storage.DeleteTemplate(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to delete template: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// handleActivateTemplate switches which template renders use.
func (s *Server) handleActivateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}
	if req.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Template id is required")
		return
	}

	if err := s.storage.SetActiveTemplate(r.Context(), req.ID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to set active template: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"active_template_id": req.ID})
}
