package segment

import (
	"strings"
	"unicode"
)

// minSentenceLen drops trimmed fragments shorter than this; short fragments
// are noise (headings, list markers, citation stubs), not findings candidates.
const minSentenceLen = 30

// SplitSentences splits a block into candidate sentences. The boundary is
// terminal punctuation (. ? !) followed by whitespace and then an uppercase
// letter (accented capitals included). This is not a full sentence boundary
// detector; abbreviations mid-sentence split only when followed by a
// capitalized word, which downstream tagging tolerates.
func SplitSentences(block string) []string {
	var (
		out   []string
		runes = []rune(block)
		start = 0
	)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '?' && runes[i] != '!' {
			continue
		}
		// Consume the whitespace run after the terminator.
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}
		out = appendSentence(out, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = appendSentence(out, string(runes[start:]))
	}
	return out
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if len(s) > minSentenceLen {
		return append(out, s)
	}
	return out
}
