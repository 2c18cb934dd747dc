// Package segment splits extracted plain text into labeled section blocks
// and candidate sentences. Both passes are heuristic pattern matching, not
// parsers: extracted text keeps no structural markup, so a cheap textual
// proxy stands in for true document structure.
package segment

import (
	"strings"
)

// sectionHints are the heading cues that open a new section.
var sectionHints = []string{
	"abstract", "introduction", "methods", "results", "discussion", "conclusion", "conclusions",
}

// maxHeadingLen guards against heading cues embedded in long prose lines.
const maxHeadingLen = 120

// Section is one labeled block of text. Blocks with no heading before them
// carry the label "unknown".
type Section struct {
	Label string
	Text  string
}

// SplitSections scans text line by line and groups lines into blocks under
// the most recent heading. A line is a heading iff its lowercased trimmed
// form contains a section hint and the line is shorter than 120 characters.
// The heading's label is the line lowercased with all non-letters stripped.
func SplitSections(text string) []Section {
	var (
		sections []Section
		buf      []string
		label    = "unknown"
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line))
		if isHeading(line, key) {
			if len(buf) > 0 {
				sections = append(sections, Section{Label: label, Text: strings.Join(buf, "\n")})
				buf = nil
			}
			label = stripNonLetters(key)
			continue
		}
		buf = append(buf, line)
	}
	if len(buf) > 0 {
		sections = append(sections, Section{Label: label, Text: strings.Join(buf, "\n")})
	}
	return sections
}

func isHeading(line, key string) bool {
	if len(line) >= maxHeadingLen {
		return false
	}
	for _, hint := range sectionHints {
		if strings.Contains(key, hint) {
			return true
		}
	}
	return false
}

// stripNonLetters keeps only a-z from an already lowercased string.
func stripNonLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
