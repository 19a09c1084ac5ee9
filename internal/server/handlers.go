// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"grant-portal/internal/catalog"
	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/dashboard"
	"grant-portal/internal/models"

	"github.com/go-chi/chi/v5"
)

const submissionAcceptedMessage = "Application securely archived."

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.NewValidationFailedError("request body must be valid JSON"))
		return
	}

	app, err := s.apps.Submit(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SubmissionResponse{
		Success:     true,
		Message:     submissionAcceptedMessage,
		ReferenceID: app.ID,
	})
}

func (s *Server) handleListGrants(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusOK, catalog.All())
		return
	}
	writeJSON(w, http.StatusOK, catalog.FilterByCategory(category))
}

func (s *Server) handleGetGrant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	grant, ok := catalog.Get(id)
	if !ok {
		s.writeError(w, apperrors.NewResourceNotFoundError("grant", id))
		return
	}
	writeJSON(w, http.StatusOK, grant)
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Team())
}

func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.FAQs())
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Resources())
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	app, err := s.apps.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// handleDashboard merges the fixed sample records with the caller's own
// submissions (when an email is supplied) and returns the sorted view.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	mode := dashboard.SortMode(r.URL.Query().Get("sort"))

	var userRecords []models.DisplayRecord
	if email != "" {
		apps, err := s.apps.ListByEmail(r.Context(), email)
		if err != nil {
			s.writeError(w, err)
			return
		}
		userRecords = dashboard.FromApplications(apps)
	}

	writeJSON(w, http.StatusOK, dashboard.Aggregate(userRecords, mode))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	p, err := s.profiles.Load(r.Context(), email)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, apperrors.NewValidationFailedError("request body must be valid JSON"))
		return
	}
	// The path segment is authoritative for the storage key.
	p.Email = chi.URLParam(r, "email")

	if err := s.profiles.Save(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.Delete(r.Context(), chi.URLParam(r, "email")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		s.writeError(w, apperrors.NewValidationFailedError("message is required"))
		return
	}

	reply, err := s.ai.Chat(r.Context(), req.Message)
	if err != nil {
		s.writeError(w, apperrors.NewExternalServiceError("genai", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		s.writeError(w, apperrors.NewValidationFailedError("text is required"))
		return
	}

	polished, err := s.ai.PolishNarrative(r.Context(), req.Text)
	if err != nil {
		s.writeError(w, apperrors.NewExternalServiceError("genai", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": polished})
}

func (s *Server) handleStartVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt      string `json:"prompt"`
		AspectRatio string `json:"aspectRatio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		s.writeError(w, apperrors.NewValidationFailedError("prompt is required"))
		return
	}

	op, err := s.ai.StartVideo(r.Context(), req.Prompt, req.AspectRatio)
	if err != nil {
		s.writeError(w, apperrors.NewExternalServiceError("genai", err))
		return
	}
	writeJSON(w, http.StatusAccepted, op)
}

func (s *Server) handlePollVideo(w http.ResponseWriter, r *http.Request) {
	op, err := s.ai.PollVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.NewExternalServiceError("genai", err))
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps a coded error onto the public failure envelope. Unknown
// errors are wrapped so callers never see internals.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	stdErr := apperrors.AsStandardError(err)
	status := apperrors.ToHTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed", map[string]interface{}{
			"error_code": string(stdErr.Code),
		})
	}
	writeJSON(w, status, models.SubmissionResponse{
		Success: false,
		Message: stdErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
