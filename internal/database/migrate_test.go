package database

import (
	"path/filepath"
	"testing"
)

func TestMigrateFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	version, err := getSchemaVersion(db.conn)
	if err != nil {
		t.Fatalf("reading version: %v", err)
	}
	if version != latestVersion() {
		t.Errorf("expected version %d, got %d", latestVersion(), version)
	}

	var count int
	err = db.conn.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='fraud_alerts'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("checking table: %v", err)
	}
	if count != 1 {
		t.Error("expected fraud_alerts table to exist")
	}
}

func TestMigrateIsIdempotentAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := db.UpsertAlert(Alert{Title: "A", Date: "2024-01-01", Quarter: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db.Close()

	alerts, err := db.GetAlerts()
	if err != nil {
		t.Fatalf("get alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Errorf("expected data to survive reopen, got %d rows", len(alerts))
	}
}
