package database

import (
	"encoding/json"
	"strings"
)

// KeywordCounts maps category identifiers to per-document match counts. It
// is stored and exchanged as a JSON object string, but historical rows (and
// hand-edited CSV imports) sometimes carry a Python-style literal with
// single quotes, so parsing is deliberately lenient.
type KeywordCounts map[string]int

// EncodeJSON returns the canonical JSON object form. encoding/json sorts
// map keys, so the output is deterministic.
func (kc KeywordCounts) EncodeJSON() string {
	if len(kc) == 0 {
		return "{}"
	}
	b, err := json.Marshal(kc)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ParseKeywordCounts decodes a counts string in two explicit stages: strict
// JSON first, then a permissive pass that rewrites single-quoted literals
// into JSON. Total parse failure is not an error; it yields an empty map so
// one malformed row never aborts a batch load.
func ParseKeywordCounts(s string) KeywordCounts {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeywordCounts{}
	}

	// Stage 1: strict JSON.
	var counts map[string]int
	if err := json.Unmarshal([]byte(s), &counts); err == nil {
		return normalizeCounts(counts)
	}

	// Stage 2: permissive literal-style fallback. Category identifiers never
	// contain quotes, so a plain quote swap is sufficient.
	if strings.Contains(s, "'") {
		rewritten := strings.ReplaceAll(s, "'", `"`)
		counts = nil
		if err := json.Unmarshal([]byte(rewritten), &counts); err == nil {
			return normalizeCounts(counts)
		}
	}

	return KeywordCounts{}
}

func normalizeCounts(m map[string]int) KeywordCounts {
	if m == nil {
		return KeywordCounts{}
	}
	return KeywordCounts(m)
}

// MarshalCSV renders the counts as their JSON object form for CSV export.
func (kc KeywordCounts) MarshalCSV() (string, error) {
	return kc.EncodeJSON(), nil
}

// UnmarshalCSV parses a CSV cell leniently, accepting either JSON or a
// single-quoted literal.
func (kc *KeywordCounts) UnmarshalCSV(s string) error {
	*kc = ParseKeywordCounts(s)
	return nil
}
