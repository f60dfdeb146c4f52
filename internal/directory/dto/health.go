package dto

import "time"

// DateRangeResponse is the announcement date span of the snapshot.
type DateRangeResponse struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status           string            `json:"status" example:"healthy"`
	GeneratedAt      time.Time         `json:"generatedAt"`
	HoursSinceUpdate float64           `json:"hoursSinceUpdate" example:"3.5"`
	IsDataStale      bool              `json:"isDataStale"`
	TotalFunds       int               `json:"totalFunds"`
	TotalCovered     int               `json:"totalCovered"`
	TotalAUMMillions float64           `json:"totalAumMillions"`
	FeedsEnabled     int               `json:"feedsEnabled"`
	FeedsDisabled    int               `json:"feedsDisabled"`
	FeedsStale       int               `json:"feedsStale"`
	DateRange        DateRangeResponse `json:"dateRange"`
}

// FeedStatusResponse is the diagnostic view of one ingestion source.
type FeedStatusResponse struct {
	FeedName     string     `json:"feedName"`
	FeedURL      string     `json:"feedUrl"`
	Enabled      bool       `json:"enabled"`
	Stale        bool       `json:"stale"`
	LastFetch    *time.Time `json:"lastFetch"`
	LastSuccess  *time.Time `json:"lastSuccess"`
	ErrorCount   int        `json:"errorCount"`
	ArticleCount int        `json:"articleCount"`
	LastError    string     `json:"lastError"`
}

// FeedStatusListResponse is the body of the per-feed diagnostics endpoint.
type FeedStatusListResponse struct {
	GeneratedAt time.Time            `json:"generatedAt"`
	Feeds       []FeedStatusResponse `json:"feeds"`
}
