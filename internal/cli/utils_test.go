package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/orbitalbio/litscan/internal/models"
)

func sampleFindings() []*models.Finding {
	return []*models.Finding{
		{
			StudyID:       "PMC1",
			PassageAnchor: "PMC1#results-0",
			Exposure:      "microgravity",
			Outcome:       "bone loss",
			Direction:     models.DirectionIncrease,
			Confidence:    1.0,
			Organism:      "mice",
			Measurements:  []string{"12.5 %", "0.05"},
			Summary:       "Microgravity increased bone loss in mice.",
		},
	}
}

func TestWriteFindingsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFindings(&buf, sampleFindings(), OutputText); err != nil {
		t.Fatalf("WriteFindings failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 findings") {
		t.Errorf("count header missing: %q", out)
	}
	if !strings.Contains(out, "PMC1#results-0 | microgravity -> bone loss (increase) | confidence 1.000") {
		t.Errorf("finding line missing: %q", out)
	}
	if !strings.Contains(out, "Organism: mice") {
		t.Errorf("organism line missing: %q", out)
	}
	if !strings.Contains(out, "Measurements: 12.5 %; 0.05") {
		t.Errorf("measurements line missing: %q", out)
	}
}

func TestWriteFindingsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFindings(&buf, sampleFindings(), OutputJSON); err != nil {
		t.Fatalf("WriteFindings failed: %v", err)
	}
	var got []*models.Finding
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].StudyID != "PMC1" {
		t.Errorf("unexpected JSON round trip: %+v", got)
	}
}

func TestWriteRecommendationsText(t *testing.T) {
	response := &models.RecommendResponse{
		Query: "bone loss",
		Recommendations: []*models.Recommendation{
			{
				StudyID:        "PMC1",
				Title:          "Bone loss in hindlimb suspended mice",
				RelevanceScore: 1.2345,
				Rank:           1,
				MatchedFields:  []string{"summary", "title"},
			},
			{StudyID: "PMC2", Title: "PMC2", RelevanceScore: 0.5, Rank: 2},
		},
		TotalIndexed: 10,
		QueryTime:    3,
	}

	var buf bytes.Buffer
	if err := WriteRecommendations(&buf, response, OutputText); err != nil {
		t.Fatalf("WriteRecommendations failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `2 recommendations for "bone loss" in 3ms (10 studies indexed)`) {
		t.Errorf("header missing: %q", out)
	}
	if !strings.Contains(out, " 1. PMC1 (score 1.2345)") {
		t.Errorf("rank line missing: %q", out)
	}
	if !strings.Contains(out, "Bone loss in hindlimb suspended mice") {
		t.Errorf("title line missing: %q", out)
	}
	if !strings.Contains(out, "matched: summary, title") {
		t.Errorf("matched fields missing: %q", out)
	}
	// A title equal to the study ID is not repeated.
	if strings.Contains(out, "    PMC2\n") {
		t.Errorf("ID fallback title should not be printed: %q", out)
	}
}

func TestWriteRecommendationsJSON(t *testing.T) {
	response := &models.RecommendResponse{Query: "bone", TotalIndexed: 1}
	var buf bytes.Buffer
	if err := WriteRecommendations(&buf, response, OutputJSON); err != nil {
		t.Fatalf("WriteRecommendations failed: %v", err)
	}
	var got models.RecommendResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Query != "bone" || got.TotalIndexed != 1 {
		t.Errorf("unexpected JSON round trip: %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{"longer string", 6, "longer..."},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		s        string
		maxWords int
		want     string
	}{
		{"one two three", 5, "one two three"},
		{"one two three", 3, "one two three"},
		{"one two three four", 2, "one two..."},
	}
	for _, tt := range tests {
		if got := TruncateWords(tt.s, tt.maxWords); got != tt.want {
			t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.s, tt.maxWords, got, tt.want)
		}
	}
}
