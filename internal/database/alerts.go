package database

// UpsertAlert inserts an alert or, when a row with the same (title, date)
// exists, updates it in place. Reprocessing a source therefore never
// creates duplicate rows.
func (db *DB) UpsertAlert(a Alert) error {
	_, err := db.conn.Exec(
		`INSERT INTO fraud_alerts (title, date, quarter, keyword_counts, summary, source_url, period)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (title, date) DO UPDATE SET
			quarter = excluded.quarter,
			keyword_counts = excluded.keyword_counts,
			summary = excluded.summary,
			source_url = excluded.source_url,
			period = excluded.period,
			updated_at = datetime('now')`,
		a.Title, a.Date, a.Quarter, a.KeywordCounts.EncodeJSON(), a.Summary, a.SourceURL, a.Period,
	)
	return err
}

// UpsertAlerts writes a batch of alerts, returning how many were stored.
// A single failed row is skipped, not fatal.
func (db *DB) UpsertAlerts(alerts []Alert) (int, error) {
	stored := 0
	var lastErr error
	for _, a := range alerts {
		if err := db.UpsertAlert(a); err != nil {
			lastErr = err
			continue
		}
		stored++
	}
	return stored, lastErr
}

// GetAlerts returns all alerts ordered by date then title.
func (db *DB) GetAlerts() ([]Alert, error) {
	rows, err := db.conn.Query(
		`SELECT id, title, date, quarter, keyword_counts, summary, source_url, period, created_at, updated_at
		FROM fraud_alerts ORDER BY date, title`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []Alert
	for rows.Next() {
		var a Alert
		var counts string
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.Quarter, &counts, &a.Summary,
			&a.SourceURL, &a.Period, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.KeywordCounts = ParseKeywordCounts(counts)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// GetStats returns aggregate statistics for the status command.
func (db *DB) GetStats() (*Stats, error) {
	s := &Stats{}

	err := db.conn.QueryRow(
		`SELECT COUNT(*),
			COUNT(DISTINCT period),
			COALESCE(MIN(date), ''),
			COALESCE(MAX(date), '')
		FROM fraud_alerts`,
	).Scan(&s.TotalAlerts, &s.Periods, &s.EarliestDate, &s.LatestDate)
	if err != nil {
		return nil, err
	}

	// Distinct category identifiers across all stored counts.
	alerts, err := db.GetAlerts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, a := range alerts {
		for id := range a.KeywordCounts {
			seen[id] = struct{}{}
		}
	}
	s.CategoriesSeen = len(seen)

	return s, nil
}
