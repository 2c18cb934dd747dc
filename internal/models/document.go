// Package models defines core data structures for studies, passages, and findings.
package models

// ImageMeta describes one figure or image attached to a study, read from the
// study's sidecar metadata file produced by the download stage.
type ImageMeta struct {
	OriginalURL   string `json:"original_url"`
	Filename      string `json:"filename"`
	AltText       string `json:"alt_text,omitempty"`
	Title         string `json:"title,omitempty"`
	FileExtension string `json:"file_extension,omitempty"`
	Domain        string `json:"domain,omitempty"`
}

// Document is one downloaded study: raw content plus attached image metadata.
// Documents are created once by the download stage and never mutated.
type Document struct {
	StudyID    string      `json:"study_id"`
	SourcePath string      `json:"source_path"`
	Content    []byte      `json:"-"`
	Images     []ImageMeta `json:"images,omitempty"`
}
