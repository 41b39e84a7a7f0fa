package export

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dtsc-team2/fraudscan/internal/database"
)

func TestWriteAndReadCSV(t *testing.T) {
	alerts := []database.Alert{
		{
			Title:         "Quarterly Fraud Alert Q3",
			Date:          "2025-07-14",
			Quarter:       3,
			KeywordCounts: database.KeywordCounts{"phishing": 4, "ransomware": 1},
			Summary:       "Phishing activity increased across all regions.",
		},
		{
			Title:   "Quiet Bulletin",
			Date:    "2025-01-02",
			Quarter: 1,
		},
	}

	path := filepath.Join(t.TempDir(), "alerts.csv")
	if err := WriteCSV(alerts, path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	head := strings.SplitN(string(raw), "\n", 2)[0]
	for _, col := range []string{"title", "date", "quarter", "keyword_counts", "summary"} {
		if !strings.Contains(head, col) {
			t.Errorf("header missing column %q: %s", col, head)
		}
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := database.KeywordCounts{"phishing": 4, "ransomware": 1}
	if !reflect.DeepEqual(rows[0].KeywordCounts, want) {
		t.Errorf("counts round trip mismatch: %v vs %v", rows[0].KeywordCounts, want)
	}
	if len(rows[1].KeywordCounts) != 0 {
		t.Errorf("expected empty counts for quiet bulletin, got %v", rows[1].KeywordCounts)
	}
}

func TestReadCSVLenientCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	csv := "title,date,quarter,keyword_counts,summary\n" +
		`Legacy,2023-05-01,2,"{'phishing': 2, 'botnet': 1}",legacy summary` + "\n" +
		`Broken,2023-06-01,2,not-a-mapping,broken summary` + "\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].KeywordCounts["phishing"] != 2 {
		t.Errorf("single-quoted literal not parsed: %v", rows[0].KeywordCounts)
	}
	if len(rows[1].KeywordCounts) != 0 {
		t.Errorf("unparseable cell must yield empty map, got %v", rows[1].KeywordCounts)
	}
}
