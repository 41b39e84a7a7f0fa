package database

// Alert is one classified fraud bulletin: the pipeline's output unit and the
// row shape of the fraud_alerts table.
type Alert struct {
	ID            int64
	Title         string
	Date          string // YYYY-MM-DD
	Quarter       int    // 1-4, derived from the month
	KeywordCounts KeywordCounts
	Summary       string
	SourceURL     *string
	Period        *string
	CreatedAt     *string
	UpdatedAt     *string
}

// Stats contains aggregate database statistics.
type Stats struct {
	TotalAlerts    int
	Periods        int
	EarliestDate   string
	LatestDate     string
	CategoriesSeen int
}
