package models

// Direction is the direction-of-effect label assigned to a finding.
type Direction string

const (
	DirectionIncrease    Direction = "increase"
	DirectionDecrease    Direction = "decrease"
	DirectionMitigates   Direction = "mitigates"
	DirectionUnspecified Direction = "unspecified"
)

// Finding is one structured record derived from a qualifying passage.
// Findings are append-only: created once per pipeline run, never updated.
type Finding struct {
	StudyID         string      `json:"study_id"`
	PassageAnchor   string      `json:"passage_anchor"`
	Section         string      `json:"section"`
	Organism        string      `json:"organism,omitempty"`
	OrganismsAll    []string    `json:"organisms_all"`
	Exposure        string      `json:"exposure,omitempty"`
	ExposuresAll    []string    `json:"exposures_all"`
	Outcome         string      `json:"outcome,omitempty"`
	OutcomesAll     []string    `json:"outcomes_all"`
	OutcomeCategory string      `json:"outcome_category"`
	Direction       Direction   `json:"direction"`
	Confidence      float64     `json:"confidence"`
	Measurements    []string    `json:"measurements"`
	Summary         string      `json:"summary"`
	Images          []ImageMeta `json:"images,omitempty"`
	WordCount       int         `json:"word_count"`
	HasStatistics   bool        `json:"has_statistics"`
	HasMeasurements bool        `json:"has_measurements"`
}
