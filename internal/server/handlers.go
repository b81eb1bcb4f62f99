package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/pkg/jvlink"
	"go.uber.org/zap"
)

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	ex, _ := s.snapshot()
	if ex == nil {
		s.respondError(w, http.StatusServiceUnavailable, "extraction not loaded")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"methods": ex.Methods,
		"total":   len(ex.Methods),
	})
}

func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	entries := jvlink.Entries()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"errors": entries,
		"total":  len(entries),
	})
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid error code")
		return
	}
	method := r.URL.Query().Get("method")
	info, ok := jvlink.Find(method, code)
	if !ok {
		s.respondError(w, http.StatusNotFound, "error code not found")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":          info.Code,
		"category":      info.CategoryFor(method),
		"message":       info.MessageFor(method),
		"documentation": info.DocumentationFor(method),
		"methods":       info.Methods,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	_, index := s.snapshot()
	if index == nil {
		s.respondError(w, http.StatusServiceUnavailable, "search index not loaded")
		return
	}
	query := models.SearchQuery{
		Query: r.URL.Query().Get("q"),
		Kind:  r.URL.Query().Get("kind"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		query.Limit = limit
	}
	if query.Limit == 0 {
		query.Limit = s.config.Search.DefaultLimit
	}
	if query.Limit > s.config.Search.MaxLimit {
		query.Limit = s.config.Search.MaxLimit
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("search request",
		zap.String("query", query.Query),
		zap.String("kind", query.Kind),
		zap.Int("limit", query.Limit))
	response, err := index.Search(r.Context(), &query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
