// Package classify splits bulletin text into sentences and scores them
// against the fraud taxonomy, producing per-category counts and a curated
// summary of the matched prose.
package classify

import (
	"strings"
	"unicode"

	"github.com/dtsc-team2/fraudscan/internal/taxonomy"
)

// Result holds the classification of one document. Counts only contains
// categories with at least one qualifying match.
type Result struct {
	Counts  map[string]int
	Summary string
}

// Classify scans every sentence of text against every catalog category. A
// sentence contributes to a category when the category's phrase matcher hits
// AND the sentence passes the prose filter; one sentence may count under
// several categories independently. The summary joins the matched sentences,
// deduplicated in first-occurrence order.
func Classify(text string, catalog *taxonomy.Catalog) Result {
	sentences := splitSentences(text)

	counts := make(map[string]int)
	var matched []string

	for _, cat := range catalog.Categories() {
		n := 0
		for _, sent := range sentences {
			if cat.Matches(sent) && IsMeaningful(sent) {
				n++
				matched = append(matched, sent)
			}
		}
		if n > 0 {
			counts[cat.ID] = n
		}
	}

	return Result{Counts: counts, Summary: joinSummary(matched)}
}

// joinSummary deduplicates sentences preserving first occurrence, joins them
// with single spaces, and normalizes newlines away.
func joinSummary(sentences []string) string {
	seen := make(map[string]struct{}, len(sentences))
	unique := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	joined := strings.Join(unique, " ")
	joined = strings.ReplaceAll(joined, "\n", " ")
	joined = strings.ReplaceAll(joined, "\r", " ")
	return joined
}

// splitSentences breaks text at any of ". ! ?" followed by whitespace. The
// punctuation stays attached to the preceding sentence and the whitespace
// run is consumed. Deliberately naive: abbreviations, decimal numbers and
// quoted punctuation are not special-cased, because downstream summaries
// were curated against this exact splitter.
func splitSentences(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var out []string
	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			out = append(out, string(runes[start:i+1]))
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}
