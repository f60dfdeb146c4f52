package entity

import "time"

// FeedHealthEntry is the operational state of one ingestion source.
type FeedHealthEntry struct {
	FeedName     string     `json:"feedName"`
	FeedURL      string     `json:"feedUrl"`
	LastFetch    *time.Time `json:"lastFetch"`
	LastSuccess  *time.Time `json:"lastSuccess"`
	ErrorCount   int        `json:"errorCount"`
	ArticleCount int        `json:"articleCount"`
	LastError    string     `json:"lastError"`
	Enabled      bool       `json:"enabled"`
}
