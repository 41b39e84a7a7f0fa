package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr(s string) *string { return &s }

func TestUpsertAlertInsert(t *testing.T) {
	db := openTestDB(t)
	err := db.UpsertAlert(Alert{
		Title:         "Quarterly Fraud Alert Q3",
		Date:          "2025-07-14",
		Quarter:       3,
		KeywordCounts: KeywordCounts{"phishing": 4, "ransomware": 1},
		Summary:       "Phishing activity increased across all regions.",
		SourceURL:     ptr("https://example.org/alert-q3.pdf"),
		Period:        ptr("2025"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alerts, err := db.GetAlerts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].KeywordCounts["phishing"] != 4 {
		t.Errorf("expected phishing count 4, got %d", alerts[0].KeywordCounts["phishing"])
	}
	if alerts[0].Quarter != 3 {
		t.Errorf("expected quarter 3, got %d", alerts[0].Quarter)
	}
}

func TestUpsertAlertIsIdempotentOnTitleDate(t *testing.T) {
	db := openTestDB(t)
	a := Alert{
		Title:         "Alert",
		Date:          "2024-02-01",
		Quarter:       1,
		KeywordCounts: KeywordCounts{"extortion": 1},
		Summary:       "first pass",
	}
	if err := db.UpsertAlert(a); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	a.Summary = "second pass"
	a.KeywordCounts = KeywordCounts{"extortion": 2}
	if err := db.UpsertAlert(a); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	alerts, err := db.GetAlerts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 row after reprocessing, got %d", len(alerts))
	}
	if alerts[0].Summary != "second pass" {
		t.Errorf("expected updated summary, got %q", alerts[0].Summary)
	}
	if alerts[0].KeywordCounts["extortion"] != 2 {
		t.Errorf("expected updated count 2, got %d", alerts[0].KeywordCounts["extortion"])
	}
}

func TestUpsertAlertsBatch(t *testing.T) {
	db := openTestDB(t)
	stored, err := db.UpsertAlerts([]Alert{
		{Title: "A", Date: "2024-01-05", Quarter: 1},
		{Title: "B", Date: "2024-05-20", Quarter: 2},
		{Title: "A", Date: "2024-01-05", Quarter: 1}, // same key, update
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != 3 {
		t.Errorf("expected 3 stored operations, got %d", stored)
	}

	alerts, _ := db.GetAlerts()
	if len(alerts) != 2 {
		t.Errorf("expected 2 distinct rows, got %d", len(alerts))
	}
}

func TestGetAlertsOrdering(t *testing.T) {
	db := openTestDB(t)
	db.UpsertAlert(Alert{Title: "Later", Date: "2024-09-01", Quarter: 3})
	db.UpsertAlert(Alert{Title: "Earlier", Date: "2024-01-01", Quarter: 1})

	alerts, err := db.GetAlerts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 2 || alerts[0].Title != "Earlier" {
		t.Errorf("expected date ordering, got %+v", alerts)
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	db.UpsertAlert(Alert{Title: "A", Date: "2024-01-05", Quarter: 1,
		KeywordCounts: KeywordCounts{"phishing": 1}, Period: ptr("2024")})
	db.UpsertAlert(Alert{Title: "B", Date: "2025-03-05", Quarter: 1,
		KeywordCounts: KeywordCounts{"phishing": 2, "malware": 1}, Period: ptr("2025")})

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalAlerts != 2 {
		t.Errorf("expected 2 alerts, got %d", stats.TotalAlerts)
	}
	if stats.Periods != 2 {
		t.Errorf("expected 2 periods, got %d", stats.Periods)
	}
	if stats.EarliestDate != "2024-01-05" || stats.LatestDate != "2025-03-05" {
		t.Errorf("unexpected date range %s..%s", stats.EarliestDate, stats.LatestDate)
	}
	if stats.CategoriesSeen != 2 {
		t.Errorf("expected 2 distinct categories, got %d", stats.CategoriesSeen)
	}
}
