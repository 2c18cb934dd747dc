package models

import "fmt"

// Passage is one candidate sentence extracted from a study, tagged with the
// section it came from. Passages are emitted in document, section, sentence
// order; the anchor relocates the originating sentence downstream.
type Passage struct {
	StudyID    string      `json:"study_id"`
	Section    string      `json:"section"`
	SentenceID int         `json:"sent_id"`
	Text       string      `json:"text"`
	SourcePath string      `json:"source_path"`
	Anchor     string      `json:"anchor"`
	Images     []ImageMeta `json:"images,omitempty"`
}

// PassageAnchor returns the stable anchor key for a sentence within a section.
func PassageAnchor(studyID, section string, sentenceID int) string {
	return fmt.Sprintf("%s#%s-%d", studyID, section, sentenceID)
}
