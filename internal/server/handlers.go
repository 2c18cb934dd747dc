package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/aggregate"
	"github.com/orbitalbio/litscan/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.status)
}

// findingsResponse pages the filtered findings list.
type findingsResponse struct {
	Findings []*models.Finding `json:"findings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

func (s *Server) handleFindings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.ToLower(strings.TrimSpace(q.Get("query")))
	direction := q.Get("direction")
	category := q.Get("category")

	limit := queryInt(q.Get("limit"), defaultPageSize)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := queryInt(q.Get("offset"), 0)

	if direction != "" && !validDirection(direction) {
		s.respondError(w, http.StatusBadRequest, "unknown direction: "+direction)
		return
	}

	matched := make([]*models.Finding, 0)
	for _, f := range s.findings {
		if direction != "" && string(f.Direction) != direction {
			continue
		}
		if category != "" && f.OutcomeCategory != category {
			continue
		}
		if query != "" && !findingMatches(f, query) {
			continue
		}
		matched = append(matched, f)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	s.respondJSON(w, http.StatusOK, findingsResponse{
		Findings: matched[offset:end],
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

// findingMatches reports whether the lowercased query appears in any of the
// finding's descriptive fields.
func findingMatches(f *models.Finding, query string) bool {
	for _, field := range []string{f.Summary, f.Exposure, f.Outcome, f.Organism, f.StudyID} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func validDirection(s string) bool {
	switch models.Direction(s) {
	case models.DirectionIncrease, models.DirectionDecrease, models.DirectionMitigates, models.DirectionUnspecified:
		return true
	}
	return false
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if s.recommender == nil {
		s.respondError(w, http.StatusServiceUnavailable, "recommendation index not loaded")
		return
	}
	var query models.RecommendQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("recommend request", zap.String("query", query.Query), zap.Int("top_k", query.TopK))
	response, err := s.recommender.Recommend(r.Context(), &query)
	if err != nil {
		if query.Query == "" {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("recommendation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"gaps": aggregate.Gaps(s.findings),
	})
}

func (s *Server) handleMissionMatrix(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"mission_matrix": aggregate.MissionMatrix(s.findings),
	})
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
