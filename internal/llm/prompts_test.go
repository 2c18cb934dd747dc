package llm

import (
	"strings"
	"testing"
)

func TestOrganismPrompt(t *testing.T) {
	p := OrganismPrompt("Mice in Bion-M 1 space mission", "")
	if !strings.Contains(p, "Article Title: Mice in Bion-M 1 space mission") {
		t.Errorf("title missing from prompt: %q", p)
	}
	if strings.Contains(p, "Additional Content:") {
		t.Error("empty content must omit the addendum")
	}

	p = OrganismPrompt("Mice in Bion-M 1 space mission", "body text")
	if !strings.Contains(p, "Additional Content: body text") {
		t.Errorf("content addendum missing: %q", p)
	}
}

func TestOrganismPromptTruncatesContent(t *testing.T) {
	long := strings.Repeat("x", 5000)
	p := OrganismPrompt("title", long)
	if !strings.Contains(p, "... [truncated]") {
		t.Error("expected long content truncated")
	}
	if strings.Contains(p, strings.Repeat("x", 2001)) {
		t.Error("content not capped at organism limit")
	}
}

func TestSummaryPrompt(t *testing.T) {
	p := SummaryPrompt("Bone loss study", "full article text", 0)
	for _, section := range []string{
		"1. Research Objective",
		"2. Methodology",
		"3. Key Findings",
		"4. Implications for Space Exploration",
		"5. Organisms Studied",
		"6. Environmental Conditions",
	} {
		if !strings.Contains(p, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(p, "Article Content: full article text") {
		t.Errorf("content missing: %q", p)
	}
}

func TestRelationsPromptTruncates(t *testing.T) {
	long := strings.Repeat("y", 100)
	p := RelationsPrompt("title", long, 10)
	if !strings.Contains(p, "Content: yyyyyyyyyy... [truncated]") {
		t.Errorf("content not truncated to limit: %q", p)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s     string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"short", 5, "short"},
		{"longer text", 6, "longer... [truncated]"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.limit); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.limit, got, tt.want)
		}
	}
}

func TestParseOrganisms(t *testing.T) {
	response := `{"organisms": ["mouse"], "organism_types": ["mammal"], "study_subjects": ["tissues"], "environment": "space"}`

	got, err := ParseOrganisms(response)
	if err != nil {
		t.Fatalf("ParseOrganisms failed: %v", err)
	}
	if len(got.Organisms) != 1 || got.Organisms[0] != "mouse" {
		t.Errorf("unexpected organisms: %v", got.Organisms)
	}
	if got.Environment != "space" {
		t.Errorf("unexpected environment: %q", got.Environment)
	}
}

func TestParseOrganismsCodeFenced(t *testing.T) {
	response := "```json\n{\"organisms\": [\"arabidopsis\"], \"environment\": \"microgravity\"}\n```"

	got, err := ParseOrganisms(response)
	if err != nil {
		t.Fatalf("ParseOrganisms failed on fenced response: %v", err)
	}
	if len(got.Organisms) != 1 || got.Organisms[0] != "arabidopsis" {
		t.Errorf("unexpected organisms: %v", got.Organisms)
	}
}

func TestParseOrganismsMalformed(t *testing.T) {
	if _, err := ParseOrganisms("I could not find any organisms."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseRelations(t *testing.T) {
	response := `{
		"key_concepts": ["bone remodeling"],
		"biological_processes": ["osteoclast activation"],
		"space_effects": ["bone loss"],
		"research_gaps": ["long-duration data"],
		"connections": [{"from": "microgravity", "to": "bone loss", "relationship": "causes"}]
	}`

	got, err := ParseRelations(response)
	if err != nil {
		t.Fatalf("ParseRelations failed: %v", err)
	}
	if len(got.Connections) != 1 || got.Connections[0].Relationship != "causes" {
		t.Errorf("unexpected connections: %+v", got.Connections)
	}
	if len(got.KeyConcepts) != 1 || got.KeyConcepts[0] != "bone remodeling" {
		t.Errorf("unexpected key concepts: %v", got.KeyConcepts)
	}
}
