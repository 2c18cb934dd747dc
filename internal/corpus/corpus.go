// Package corpus locates downloaded study documents on disk and pairs them
// with their PDF companions and image-metadata sidecars.
//
// The download stage lays a corpus directory out as:
//
//	<study_id>.html          primary document
//	<study_id>.pdf           optional companion, used when HTML yields no text
//	<study_id>_images.json   optional sidecar with figure metadata
//
// Study IDs are the file basenames; they must stay human-readable because
// passage anchors embed them (study#section-index).
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/orbitalbio/litscan/internal/models"
)

// imagesSuffix is the sidecar filename suffix appended to a study ID.
const imagesSuffix = "_images.json"

// Entry is one study located in the corpus directory.
type Entry struct {
	StudyID  string
	HTMLPath string
	PDFPath  string
	Images   []models.ImageMeta
}

// Path returns the primary source path: HTML when present, else PDF.
func (e *Entry) Path() string {
	if e.HTMLPath != "" {
		return e.HTMLPath
	}
	return e.PDFPath
}

// StudyID derives the study identifier from a document path.
func StudyID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Scan walks dir (non-recursive) and returns one entry per study, sorted by
// study ID so pipeline output order is deterministic. Sidecar read failures
// are not fatal: the study simply carries no images.
func Scan(dir string) ([]*Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}
	byID := make(map[string]*Entry)
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		name := d.Name()
		if strings.HasSuffix(name, imagesSuffix) {
			continue
		}
		path := filepath.Join(dir, name)
		id := StudyID(path)
		entry := byID[id]
		if entry == nil {
			entry = &Entry{StudyID: id}
			byID[id] = entry
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".html", ".htm":
			entry.HTMLPath = path
		case ".pdf":
			entry.PDFPath = path
		default:
			if entry.HTMLPath == "" && entry.PDFPath == "" {
				entry.HTMLPath = path
			}
		}
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]*Entry, 0, len(ids))
	for _, id := range ids {
		entry := byID[id]
		entry.Images = loadImages(dir, id)
		entries = append(entries, entry)
	}
	return entries, nil
}

// Lookup returns the corpus entry for a single document path, pairing it
// with its companion and sidecar. Used by watch mode.
func Lookup(path string) *Entry {
	dir := filepath.Dir(path)
	id := StudyID(path)
	entry := &Entry{StudyID: id, Images: loadImages(dir, id)}
	htmlPath := filepath.Join(dir, id+".html")
	if _, err := os.Stat(htmlPath); err == nil {
		entry.HTMLPath = htmlPath
	}
	pdfPath := filepath.Join(dir, id+".pdf")
	if _, err := os.Stat(pdfPath); err == nil {
		entry.PDFPath = pdfPath
	}
	if entry.HTMLPath == "" && entry.PDFPath == "" {
		entry.HTMLPath = path
	}
	return entry
}

func loadImages(dir, studyID string) []models.ImageMeta {
	data, err := os.ReadFile(filepath.Join(dir, studyID+imagesSuffix))
	if err != nil {
		return nil
	}
	var images []models.ImageMeta
	if err := json.Unmarshal(data, &images); err != nil {
		return nil
	}
	return images
}
