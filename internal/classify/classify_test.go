package classify

import (
	"strings"
	"testing"

	"github.com/dtsc-team2/fraudscan/internal/taxonomy"
)

func testCatalog() *taxonomy.Catalog {
	return taxonomy.Build([]taxonomy.Definition{
		{ID: "phishing", Phrases: []string{"phishing"}},
		{ID: "extortion", Phrases: []string{"extortion", "blackmail", "ransom demand"}},
	})
}

func TestClassifyCountsAndSummary(t *testing.T) {
	text := "This email is a classic phishing attempt asking for your password. " +
		"Please send payment now to avoid legal action against you regarding unpaid ransom demand."

	res := Classify(text, testCatalog())

	if res.Counts["phishing"] != 1 {
		t.Errorf("expected phishing count 1, got %d", res.Counts["phishing"])
	}
	if res.Counts["extortion"] != 1 {
		t.Errorf("expected extortion count 1, got %d", res.Counts["extortion"])
	}
	if len(res.Counts) != 2 {
		t.Errorf("expected exactly two categories, got %v", res.Counts)
	}

	first := "This email is a classic phishing attempt asking for your password."
	second := "Please send payment now to avoid legal action against you regarding unpaid ransom demand."
	if !strings.Contains(res.Summary, first) {
		t.Errorf("summary missing first sentence: %q", res.Summary)
	}
	if !strings.Contains(res.Summary, second) {
		t.Errorf("summary missing second sentence: %q", res.Summary)
	}
	if strings.Count(res.Summary, first) != 1 {
		t.Error("first sentence should appear exactly once in summary")
	}
}

func TestClassifyDeduplicatesAcrossCategories(t *testing.T) {
	// One sentence matching both categories: counted twice, summarized once.
	text := "The phishing email carried an explicit ransom demand from the attackers."

	res := Classify(text, testCatalog())

	if res.Counts["phishing"] != 1 || res.Counts["extortion"] != 1 {
		t.Fatalf("expected both categories counted, got %v", res.Counts)
	}
	if strings.Count(res.Summary, "ransom demand") != 1 {
		t.Errorf("sentence must appear once in summary, got %q", res.Summary)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	res := Classify("", testCatalog())
	if len(res.Counts) != 0 {
		t.Errorf("expected empty counts, got %v", res.Counts)
	}
	if res.Summary != "" {
		t.Errorf("expected empty summary, got %q", res.Summary)
	}
}

func TestClassifyFilterGatesAllCategories(t *testing.T) {
	// Rule syntax mentioning ransomware must not count anywhere.
	text := `alert tcp $HTTP_PORTS any -> any any (msg:"ransomware"; sid:12345;)`
	catalog := taxonomy.Build([]taxonomy.Definition{
		{ID: "ransomware", Phrases: []string{"ransomware"}},
	})

	res := Classify(text, catalog)
	if len(res.Counts) != 0 {
		t.Errorf("rule-syntax sentence must not be counted, got %v", res.Counts)
	}
	if res.Summary != "" {
		t.Errorf("rule-syntax sentence must not be summarized, got %q", res.Summary)
	}
}

func TestClassifyCountNeverExceedsQualifyingSentences(t *testing.T) {
	text := "Reports of phishing attacks continue to rise across every district office. " +
		"A second wave of phishing messages targeted the finance department afterwards. " +
		"Unrelated closing remarks about community outreach end the bulletin here."

	res := Classify(text, testCatalog())
	if res.Counts["phishing"] > 2 {
		t.Errorf("count exceeds qualifying sentences: %d", res.Counts["phishing"])
	}
	if res.Counts["phishing"] != 2 {
		t.Errorf("expected 2 phishing sentences, got %d", res.Counts["phishing"])
	}
}

func TestClassifyNormalizesNewlinesInSummary(t *testing.T) {
	text := "The phishing\ncampaign spanned several\rstates and detected regions overall."
	res := Classify(text, testCatalog())
	if strings.ContainsAny(res.Summary, "\n\r") {
		t.Errorf("summary must not carry newlines, got %q", res.Summary)
	}
	if res.Counts["phishing"] != 1 {
		t.Errorf("expected phishing count 1, got %v", res.Counts)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three? Four", []string{"One.", "Two!", "Three?", "Four"}},
		{"No terminator at all", []string{"No terminator at all"}},
		{"Trailing period. ", []string{"Trailing period."}},
		{"Version 2.5 is out. Next.", []string{"Version 2.5 is out.", "Next."}},
		{"", nil},
		{"A.B stays together. Split here", []string{"A.B stays together.", "Split here"}},
	}
	for _, tt := range tests {
		got := splitSentences(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitSentences(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitSentences(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
