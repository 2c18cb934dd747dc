package models

import "time"

// Analysis holds the model-derived enrichment for one study: extracted
// organisms, a structured summary, and knowledge-graph relations. The three
// payloads are stored as the raw JSON the model returned; consumers parse
// what they need. ParseError marks a payload the model returned malformed.
type Analysis struct {
	StudyID    string    `json:"study_id"`
	Title      string    `json:"title,omitempty"`
	Organisms  string    `json:"organisms,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	Relations  string    `json:"relations,omitempty"`
	ParseError string    `json:"analysis_error,omitempty"`
	Model      string    `json:"model,omitempty"`
	RunID      string    `json:"run_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Publication is one row of the publications list (title + source link)
// that seeds the corpus download stage.
type Publication struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
