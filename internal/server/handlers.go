// internal/server/handlers.go
package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/models"
)

const maxContactBody = 64 << 10

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, pageData{View: s.pages.Build(r.Context())})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Build(r.Context()))
}

func (s *Server) handleStructuredData(w http.ResponseWriter, r *http.Request) {
	view := s.pages.Build(r.Context())
	w.Header().Set("Content-Type", "application/ld+json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(view.StructuredDataJSON))
}

// handleContact accepts a JSON body or a form post. JSON and XHR callers get
// the result as JSON; browsers get the page re-rendered with the outcome.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	sub, err := decodeSubmission(r)
	if err != nil {
		apperrors.WriteHTTP(w, s.logger, apperrors.NewBadRequestError(err.Error()))
		return
	}

	result := s.contact.Handle(r.Context(), sub, s.fallbackRecipient)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	data := pageData{View: s.pages.Build(r.Context()), Result: &result}
	if result.Status == "" {
		// keep what the visitor typed so they can correct it
		data.Form = sub
	}
	s.renderPage(w, data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			s.logger.Warn("readiness check failed", map[string]interface{}{"error": err.Error()})
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"time":   time.Now().Format(time.RFC3339),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func decodeSubmission(r *http.Request) (models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if isJSONContent(r) {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, err
		}
		return sub, nil
	}
	if err := r.ParseForm(); err != nil {
		return sub, err
	}
	sub.Name = r.PostForm.Get("name")
	sub.Email = r.PostForm.Get("email")
	sub.Phone = r.PostForm.Get("phone")
	sub.Message = r.PostForm.Get("message")
	return sub, nil
}

func isJSONContent(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func wantsJSON(r *http.Request) bool {
	return isJSONContent(r) ||
		strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
