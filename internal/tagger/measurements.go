package tagger

import (
	"regexp"
	"strings"
)

// measurementPatterns pull numeric value + unit pairs out of passage text:
// mass/volume/concentration units, percentages, fold changes, p-value
// comparisons, and mean±SD pairs. Matches from all patterns are concatenated.
var measurementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)[\s-]*(mg|ml|μl|ng|μg|mM|μM|g|kg|mg/kg|ml/kg|fold|times|x)`),
	regexp.MustCompile(`(\d+\.?\d*)\s*(%)`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)[\s-]*(fold|times|x)\s*(increase|decrease|reduction|elevation)`),
	regexp.MustCompile(`(?i)p\s*[<>=]\s*(\d+\.?\d*)`),
	regexp.MustCompile(`(\d+\.?\d*)\s*±\s*(\d+\.?\d*)`),
}

// ExtractMeasurements returns every numeric measurement found in text, one
// string per match with the captured groups joined by a space. Malformed
// numeric text simply fails to match; no partial data is emitted.
func ExtractMeasurements(text string) []string {
	var out []string
	for _, pat := range measurementPatterns {
		for _, groups := range pat.FindAllStringSubmatch(text, -1) {
			parts := make([]string, 0, len(groups)-1)
			for _, g := range groups[1:] {
				if g != "" {
					parts = append(parts, g)
				}
			}
			if len(parts) > 0 {
				out = append(out, strings.Join(parts, " "))
			}
		}
	}
	return out
}
