package models

import "fmt"

// RecommendQuery is a free-text research query with a result budget.
type RecommendQuery struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// Validate ensures the query is non-empty and normalizes TopK.
func (q *RecommendQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.TopK <= 0 {
		q.TopK = 5
	}
	if q.TopK > 50 {
		q.TopK = 50
	}
	return nil
}

// Recommendation is one ranked study returned for a research query.
type Recommendation struct {
	StudyID        string   `json:"study_id"`
	Title          string   `json:"title,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
	Rank           int      `json:"rank"`
	MatchedFields  []string `json:"matched_fields,omitempty"`
}

// RecommendResponse is the response for a recommendation request.
type RecommendResponse struct {
	Query           string            `json:"query"`
	Recommendations []*Recommendation `json:"recommendations"`
	TotalIndexed    int               `json:"total_indexed"`
	QueryTime       int64             `json:"query_time_ms"`
}
