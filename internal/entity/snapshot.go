package entity

import "time"

// Snapshot is the immutable fund directory dataset produced by the ingestion
// pipeline. Funds are ordered newest announcement first.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Funds       []FundRecord      `json:"funds"`
	Categories  []string          `json:"categories"`
	Stages      []string          `json:"stages"`
	FeedHealth  []FeedHealthEntry `json:"feedHealth"`
	Stats       Stats             `json:"stats"`
	Managers    []ManagerProfile  `json:"managers,omitempty"`
}

// Stats are aggregate counts certified by the ingestion pipeline.
type Stats struct {
	TotalFunds       int            `json:"totalFunds"`
	TotalCovered     int            `json:"totalCovered"`
	TotalUncovered   int            `json:"totalUncovered"`
	TotalAUMMillions float64        `json:"totalAumMillions"`
	ByCategory       map[string]int `json:"byCategory"`
	ByStage          map[string]int `json:"byStage"`
	DateRange        DateRange      `json:"dateRange"`
	FeedCount        int            `json:"feedCount"`
}

// DateRange is the announcement date span covered by a snapshot.
type DateRange struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

// ManagerProfile aggregates every fund record sharing a firm slug.
type ManagerProfile struct {
	Firm             string   `json:"firm"`
	FirmSlug         string   `json:"firmSlug"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Categories       []string `json:"categories"`
	TotalAUMMillions float64  `json:"totalAumMillions"`
	FundCount        int      `json:"fundCount"`
}
