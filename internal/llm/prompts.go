package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// organismContentLimit caps how much document text rides along with the
// organism prompt; the title carries most of the signal there.
const organismContentLimit = 2000

const organismPromptTemplate = `Analyze the following scientific article title and extract information about organisms mentioned.
Return a JSON object with the following structure:
{
    "organisms": ["organism1", "organism2"],
    "organism_types": ["mammal", "plant", "bacteria", "etc"],
    "study_subjects": ["cells", "tissues", "organs", "etc"],
    "environment": "space/microgravity/earth"
}

Article Title: %s`

const summaryPromptTemplate = `Provide a comprehensive summary of this scientific article about space biology research.
Include the following sections:
1. Research Objective
2. Methodology
3. Key Findings
4. Implications for Space Exploration
5. Organisms Studied
6. Environmental Conditions

Article Title: %s
Article Content: %s

Format the response in clear, structured sections.`

const relationsPromptTemplate = `Analyze this space biology research and identify key relationships and connections.
Return a JSON object with:
{
    "key_concepts": ["concept1", "concept2"],
    "biological_processes": ["process1", "process2"],
    "space_effects": ["effect1", "effect2"],
    "research_gaps": ["gap1", "gap2"],
    "connections": [
        {"from": "concept1", "to": "concept2", "relationship": "affects"}
    ]
}

Article: %s
Content: %s`

// OrganismPrompt builds the organism-extraction prompt. Content beyond the
// organism limit is dropped; an empty content omits the addendum entirely.
func OrganismPrompt(title, content string) string {
	prompt := fmt.Sprintf(organismPromptTemplate, title)
	if content != "" {
		prompt += "\n\nAdditional Content: " + Truncate(content, organismContentLimit)
	}
	return prompt
}

// SummaryPrompt builds the structured-summary prompt. contentLimit caps the
// document text; zero means no cap.
func SummaryPrompt(title, content string, contentLimit int) string {
	if contentLimit > 0 {
		content = Truncate(content, contentLimit)
	}
	return fmt.Sprintf(summaryPromptTemplate, title, content)
}

// RelationsPrompt builds the knowledge-graph relations prompt.
func RelationsPrompt(title, content string, contentLimit int) string {
	if contentLimit > 0 {
		content = Truncate(content, contentLimit)
	}
	return fmt.Sprintf(relationsPromptTemplate, title, content)
}

// Truncate cuts s to at most limit characters, marking the cut.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "... [truncated]"
}

// OrganismAnalysis is the parsed shape of an organism-extraction response.
type OrganismAnalysis struct {
	Organisms     []string `json:"organisms"`
	OrganismTypes []string `json:"organism_types"`
	StudySubjects []string `json:"study_subjects"`
	Environment   string   `json:"environment"`
}

// Relations is the parsed shape of a knowledge-graph response.
type Relations struct {
	KeyConcepts         []string     `json:"key_concepts"`
	BiologicalProcesses []string     `json:"biological_processes"`
	SpaceEffects        []string     `json:"space_effects"`
	ResearchGaps        []string     `json:"research_gaps"`
	Connections         []Connection `json:"connections"`
}

// Connection is one directed edge in the knowledge graph.
type Connection struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"`
}

// ParseOrganisms decodes an organism response. Responses are expected to be
// JSON but models sometimes wrap them in code fences; those are stripped first.
func ParseOrganisms(response string) (*OrganismAnalysis, error) {
	var out OrganismAnalysis
	if err := json.Unmarshal([]byte(stripFences(response)), &out); err != nil {
		return nil, fmt.Errorf("parse organism response: %w", err)
	}
	return &out, nil
}

// ParseRelations decodes a knowledge-graph response.
func ParseRelations(response string) (*Relations, error) {
	var out Relations
	if err := json.Unmarshal([]byte(stripFences(response)), &out); err != nil {
		return nil, fmt.Errorf("parse relations response: %w", err)
	}
	return &out, nil
}

// stripFences removes a surrounding ```json ... ``` block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
