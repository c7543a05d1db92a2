package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/staffmatch"
	"github.com/poiesic/staffmatch/ai"
	"github.com/poiesic/staffmatch/dataset"
	"github.com/poiesic/staffmatch/rank"
)

const defaultTopK = 5

// Server exposes the matcher over HTTP.
type Server struct {
	matcher *staffmatch.Matcher
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewServer creates an HTTP server around a matcher.
func NewServer(matcher *staffmatch.Matcher) *Server {
	s := &Server{
		matcher: matcher,
		logger:  slog.Default().With("component", "http"),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /search", s.handleSearch)
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("POST /employees", s.handleUpload)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	return s
}

// Handler returns the route table, usable directly in tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving requests on addr.
func (s *Server) ListenAndServe(addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.matcher.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	advice, resp, err := s.matcher.Chat(r.Context(), req.Query, req.TopK)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"reply":   advice,
		"results": resp,
	})
}

// handleUpload merges a JSON employee payload into the dataset and reindexes.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	result, err := dataset.LoadJSON(r.Body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	if err := s.matcher.AddProfiles(r.Context(), result.Profiles); err != nil {
		s.writeError(w, err)
		return
	}

	rejected := make([]string, 0, len(result.Rejected))
	for _, rej := range result.Rejected {
		rejected = append(rejected, rej.Error())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"accepted": len(result.Profiles),
		"rejected": rejected,
		"total":    len(s.matcher.Profiles()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	indexed := 0
	degraded := 0
	if snapshot := s.matcher.Snapshot(); snapshot != nil {
		indexed = snapshot.Len()
		degraded = len(snapshot.Degraded())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"indexed":  indexed,
		"degraded": degraded,
	})
}

func (s *Server) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (*searchRequest, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return nil, false
	}
	if strings.TrimSpace(req.Query) == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "query is required"})
		return nil, false
	}
	if req.TopK == 0 {
		req.TopK = defaultTopK
	}
	return &req, true
}

// writeError maps pipeline errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, rank.ErrInvalidTopK):
		status = http.StatusBadRequest
	case errors.Is(err, staffmatch.ErrNotIndexed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, ai.ErrEmbeddingTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, ai.ErrEmbeddingUnavailable):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Warn("request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, map[string]any{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}
