// Package tagger classifies passages into structured finding records by
// matching them against fixed lexicon tables. Tagging is per-passage and
// stateless: no passage depends on any other, and malformed input yields no
// finding rather than an error.
package tagger

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/orbitalbio/litscan/internal/lexicon"
	"github.com/orbitalbio/litscan/internal/models"
)

// summaryLen caps the whitespace-normalized passage text carried on a finding.
const summaryLen = 300

var whitespaceRe = regexp.MustCompile(`\s+`)

// Tagger tags passages using an injected lexicon. The lexicon is read-only
// after construction; a Tagger is safe for concurrent use.
type Tagger struct {
	lex *lexicon.Lexicon
}

// New returns a Tagger over the given lexicon.
func New(lex *lexicon.Lexicon) *Tagger {
	return &Tagger{lex: lex}
}

// Tag evaluates one passage. It returns the derived finding and true when the
// passage qualifies, or nil and false otherwise. It never fails.
func (t *Tagger) Tag(p *models.Passage) (*models.Finding, bool) {
	lower := strings.ToLower(p.Text)

	organisms := matchAll(t.lex.Organisms, lower)
	exposures := matchAll(t.lex.Exposures, lower)
	outcomes := matchAll(t.lex.Outcomes, lower)
	measurements := ExtractMeasurements(p.Text)

	if !t.qualifies(lower, organisms, exposures, outcomes, measurements) {
		return nil, false
	}

	f := &models.Finding{
		StudyID:         p.StudyID,
		PassageAnchor:   p.Anchor,
		Section:         p.Section,
		OrganismsAll:    organisms,
		ExposuresAll:    exposures,
		OutcomesAll:     outcomes,
		OutcomeCategory: "other",
		Direction:       t.Direction(lower),
		Confidence:      t.Confidence(lower, p.Section, organisms, exposures, outcomes),
		Measurements:    measurements,
		Summary:         summarize(p.Text),
		Images:          p.Images,
		WordCount:       len(strings.Fields(p.Text)),
		HasStatistics:   containsAny(lower, t.lex.StatisticalCues),
		HasMeasurements: len(measurements) > 0,
	}
	if len(organisms) > 0 {
		f.Organism = organisms[0]
	}
	if len(exposures) > 0 {
		f.Exposure = exposures[0]
	}
	if len(outcomes) > 0 {
		f.Outcome = outcomes[0]
		f.OutcomeCategory = t.CategorizeOutcome(outcomes[0])
	}
	return f, true
}

// qualifies is the disjunctive, recall-favoring gate: any category pair or a
// statistical/quantitative signal plus any single category is enough.
func (t *Tagger) qualifies(lower string, organisms, exposures, outcomes, measurements []string) bool {
	anyCategory := len(organisms) > 0 || len(exposures) > 0 || len(outcomes) > 0
	switch {
	case len(exposures) > 0 && len(outcomes) > 0:
		return true
	case len(organisms) > 0 && len(outcomes) > 0:
		return true
	case containsAny(lower, t.lex.ScientificIndicators) && anyCategory:
		return true
	case len(measurements) > 0 && anyCategory:
		return true
	}
	return false
}

// Direction classifies the direction of effect. Priority order matters:
// mitigation cues are checked first so "protects against bone loss" is never
// shadowed by a co-occurring down-word.
func (t *Tagger) Direction(lower string) models.Direction {
	switch {
	case containsAny(lower, t.lex.MitigationWords):
		return models.DirectionMitigates
	case containsAny(lower, t.lex.UpWords):
		return models.DirectionIncrease
	case containsAny(lower, t.lex.DownWords):
		return models.DirectionDecrease
	}
	return models.DirectionUnspecified
}

// Confidence scores a passage from where it sits in the document and how much
// lexical corroboration it carries. Not a calibrated probability.
func (t *Tagger) Confidence(lower, section string, organisms, exposures, outcomes []string) float64 {
	score := 0.4
	if strings.Contains(section, "results") {
		score = 1.0
	} else if strings.Contains(section, "conclusion") {
		score = 0.7
	}
	if len(organisms) > 1 {
		score += 0.1
	}
	if len(exposures) > 1 {
		score += 0.1
	}
	if len(outcomes) > 1 {
		score += 0.1
	}
	if containsAny(lower, t.lex.ScientificIndicators) {
		score += 0.1
	}
	if containsAny(lower, t.lex.QuantitativeCues) {
		score += 0.1
	}
	return round3(math.Min(score, 1.0))
}

// CategorizeOutcome maps an outcome phrase to its biological-system bucket.
// Buckets are checked in fixed order; the first bucket with a keyword
// contained in the phrase wins, otherwise "other".
func (t *Tagger) CategorizeOutcome(outcome string) string {
	lower := strings.ToLower(outcome)
	for _, bucket := range t.lex.OutcomeCategories {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				return bucket.Name
			}
		}
	}
	return "other"
}

// matchAll returns every lexicon phrase contained in the lowercased text, in
// lexicon declaration order. First declared match becomes the primary value,
// so table order is part of the contract.
func matchAll(phrases []string, lower string) []string {
	var found []string
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

func containsAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func summarize(text string) string {
	s := whitespaceRe.ReplaceAllString(text, " ")
	if len(s) > summaryLen {
		// Cut on a rune boundary so the summary stays valid UTF-8.
		cut := summaryLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
