package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Thresholds for the prose heuristic. These exact values are a behavioral
// contract: downstream summaries were curated against them, so changing any
// of them silently changes which sentences are counted.
const (
	// minWords rejects fragments like headings and table cells.
	minWords = 5
	// minChars and maxChars bound sentence length after whitespace collapse.
	minChars = 30
	maxChars = 1000
	// maxSymbolRatio is the highest tolerated share of characters that are
	// neither letters nor spaces.
	maxSymbolRatio = 0.4
)

// junkSignatures are token patterns from intrusion-detection rule syntax.
// Bulletins embed raw Snort/Suricata rules; sentences containing these are
// never prose.
var junkSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$HTTP_PORTS`),
	regexp.MustCompile(`(?i)alert tcp`),
	regexp.MustCompile(`(?i)sid:\d+`),
	regexp.MustCompile(`(?i)http_header`),
	regexp.MustCompile(`(?i)http_uri`),
	regexp.MustCompile(`(?i)flowbits`),
	regexp.MustCompile(`(?i)pcre:`),
	regexp.MustCompile(`(?i)\|[0-9A-Fa-f]{2}\|`),
	regexp.MustCompile(`(?i)rev:\d+`),
	regexp.MustCompile(`(?i)msg:`),
	regexp.MustCompile(`(?i)metadata:`),
	regexp.MustCompile(`(?i)classtype:`),
	regexp.MustCompile(`(?i)content:`),
}

// urlPattern flags sentences that are mostly links or indicator lists.
var urlPattern = regexp.MustCompile(`https?://|www\.|\.com|\.gov|\.ru|\.top|\.net`)

// structuralChars never appear in the prose we want to surface.
const structuralChars = ";{}<>@|$"

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeWhitespace collapses whitespace runs to single spaces and trims.
// It is idempotent and precedes every other filter check.
func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// IsMeaningful reports whether a text span is meaningful prose worth
// counting and surfacing in a summary, as opposed to rule syntax, URLs, or
// boilerplate junk. It is a pure heuristic; occasional false positives and
// negatives are acceptable.
func IsMeaningful(text string) bool {
	s := normalizeWhitespace(text)
	if s == "" {
		return false
	}

	if len(strings.Fields(s)) < minWords {
		return false
	}
	runes := []rune(s)
	if len(runes) < minChars || len(runes) > maxChars {
		return false
	}

	symbols := 0
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != ' ' {
			symbols++
		}
	}
	if float64(symbols)/float64(len(runes)) > maxSymbolRatio {
		return false
	}

	for _, sig := range junkSignatures {
		if sig.MatchString(s) {
			return false
		}
	}

	if urlPattern.MatchString(s) {
		return false
	}

	if strings.ContainsAny(s, structuralChars) {
		return false
	}

	return true
}
