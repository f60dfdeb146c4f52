package entity

import "time"

// FundRecord is one announced fund event from the directory snapshot.
type FundRecord struct {
	FundName          string     `json:"fundName"`
	Firm              string     `json:"firm"`
	FirmSlug          string     `json:"firmSlug"`
	AmountDisplay     *string    `json:"amountDisplay"`
	AmountUSDMillions *float64   `json:"amountUsdMillions"`
	Category          string     `json:"category"`
	Stage             string     `json:"stage"`
	Location          *string    `json:"location"`
	City              *string    `json:"city"`
	Country           *string    `json:"country"`
	AnnouncementDate  *string    `json:"announcementDate"`
	SourceURL         string     `json:"sourceUrl"`
	SourceName        string     `json:"sourceName"`
	DescriptionNotes  string     `json:"descriptionNotes"`
	IsCovered         bool       `json:"isCovered"`
	CoveredDate       *string    `json:"coveredDate"`
	Articles          []Article  `json:"articles"`
	Ingestion         *Ingestion `json:"ingestion,omitempty"`
}

// Article links editorial coverage of a fund.
type Article struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	SourceName    string  `json:"sourceName"`
	PublishedDate *string `json:"publishedDate"`
}

// Ingestion carries pipeline debug metadata. It is never part of a public response.
type Ingestion struct {
	ExtractedAt  *time.Time `json:"extractedAt,omitempty"`
	Model        string     `json:"model,omitempty"`
	Confidence   *float64   `json:"confidence,omitempty"`
	RawHeadline  string     `json:"rawHeadline,omitempty"`
	DedupeKey    string     `json:"dedupeKey,omitempty"`
	SourceFeedID string     `json:"sourceFeedId,omitempty"`
}

// HasAmount reports whether the fund size was disclosed.
func (f FundRecord) HasAmount() bool {
	return f.AmountUSDMillions != nil
}
