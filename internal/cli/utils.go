// Package cli provides output formatting for the litscan commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/orbitalbio/litscan/internal/models"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteFindings writes findings to w in the given format. Use OutputJSON for
// parseable output consumable by other apps.
func WriteFindings(w io.Writer, findings []*models.Finding, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	default:
		writeFindingsText(w, findings)
		return nil
	}
}

func writeFindingsText(w io.Writer, findings []*models.Finding) {
	fmt.Fprintf(w, "\n%d findings\n\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%s | %s -> %s (%s) | confidence %.3f\n",
			f.PassageAnchor, f.Exposure, f.Outcome, f.Direction, f.Confidence)
		if f.Organism != "" {
			fmt.Fprintf(w, "Organism: %s\n", f.Organism)
		}
		if len(f.Measurements) > 0 {
			fmt.Fprintf(w, "Measurements: %s\n", strings.Join(f.Measurements, "; "))
		}
		fmt.Fprintf(w, "\n%s\n\n", f.Summary)
	}
}

// WriteRecommendations writes a recommendation response to w.
func WriteRecommendations(w io.Writer, response *models.RecommendResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeRecommendationsText(w, response)
		return nil
	}
}

func writeRecommendationsText(w io.Writer, response *models.RecommendResponse) {
	fmt.Fprintf(w, "\n%d recommendations for %q in %dms (%d studies indexed)\n\n",
		len(response.Recommendations), response.Query, response.QueryTime, response.TotalIndexed)
	for _, rec := range response.Recommendations {
		fmt.Fprintf(w, "%2d. %s (score %.4f)\n", rec.Rank, rec.StudyID, rec.RelevanceScore)
		if rec.Title != "" && rec.Title != rec.StudyID {
			fmt.Fprintf(w, "    %s\n", Truncate(rec.Title, 100))
		}
		if len(rec.MatchedFields) > 0 {
			fmt.Fprintf(w, "    matched: %s\n", strings.Join(rec.MatchedFields, ", "))
		}
	}
	fmt.Fprintln(w)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
