// Package export writes stored fraud-alert records to CSV for downstream
// dashboards and spreadsheet review.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/dtsc-team2/fraudscan/internal/database"
)

// Row is the CSV schema consumed downstream. keyword_counts is the JSON
// object form; loaders parse it leniently.
type Row struct {
	Title         string                 `csv:"title"`
	Date          string                 `csv:"date"`
	Quarter       int                    `csv:"quarter"`
	KeywordCounts database.KeywordCounts `csv:"keyword_counts"`
	Summary       string                 `csv:"summary"`
}

// WriteCSV writes all alerts to path, overwriting any existing file.
func WriteCSV(alerts []database.Alert, path string) error {
	rows := make([]Row, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, Row{
			Title:         a.Title,
			Date:          a.Date,
			Quarter:       a.Quarter,
			KeywordCounts: a.KeywordCounts,
			Summary:       a.Summary,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ReadCSV loads rows back from a CSV file, parsing keyword counts leniently
// (JSON or single-quoted literals; unparseable cells become empty maps).
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rows, nil
}
