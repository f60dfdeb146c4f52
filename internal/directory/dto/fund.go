package dto

import (
	"time"

	"fund-directory/internal/entity"
)

// ArticleResponse is an editorial article covering a fund.
type ArticleResponse struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	SourceName    string  `json:"sourceName"`
	PublishedDate *string `json:"publishedDate"`
}

// FundResponse is the public projection of a fund record. Ingestion metadata
// is deliberately absent.
type FundResponse struct {
	FundName          string            `json:"fundName"`
	Firm              string            `json:"firm"`
	FirmSlug          string            `json:"firmSlug"`
	AmountDisplay     *string           `json:"amountDisplay"`
	AmountUSDMillions *float64          `json:"amountUsdMillions"`
	Category          string            `json:"category"`
	Stage             string            `json:"stage"`
	Location          *string           `json:"location"`
	City              *string           `json:"city"`
	Country           *string           `json:"country"`
	AnnouncementDate  *string           `json:"announcementDate"`
	SourceURL         string            `json:"sourceUrl"`
	SourceName        string            `json:"sourceName"`
	DescriptionNotes  string            `json:"descriptionNotes"`
	IsCovered         bool              `json:"isCovered"`
	CoveredDate       *string           `json:"coveredDate"`
	Articles          []ArticleResponse `json:"articles"`
}

// FundListResponse is the body of the fund query endpoint.
type FundListResponse struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	TotalCount  int            `json:"totalCount"`
	Offset      int            `json:"offset"`
	Limit       int            `json:"limit"`
	Funds       []FundResponse `json:"funds"`
}

// NewFundResponse projects a fund record onto its public fields.
func NewFundResponse(f entity.FundRecord) FundResponse {
	articles := make([]ArticleResponse, 0, len(f.Articles))
	for _, a := range f.Articles {
		articles = append(articles, ArticleResponse{
			Title:         a.Title,
			URL:           a.URL,
			SourceName:    a.SourceName,
			PublishedDate: a.PublishedDate,
		})
	}
	return FundResponse{
		FundName:          f.FundName,
		Firm:              f.Firm,
		FirmSlug:          f.FirmSlug,
		AmountDisplay:     f.AmountDisplay,
		AmountUSDMillions: f.AmountUSDMillions,
		Category:          f.Category,
		Stage:             f.Stage,
		Location:          f.Location,
		City:              f.City,
		Country:           f.Country,
		AnnouncementDate:  f.AnnouncementDate,
		SourceURL:         f.SourceURL,
		SourceName:        f.SourceName,
		DescriptionNotes:  f.DescriptionNotes,
		IsCovered:         f.IsCovered,
		CoveredDate:       f.CoveredDate,
		Articles:          articles,
	}
}

// NewFundListResponse builds the query response from a result page.
func NewFundListResponse(generatedAt time.Time, totalCount, offset, limit int, funds []entity.FundRecord) FundListResponse {
	out := make([]FundResponse, 0, len(funds))
	for _, f := range funds {
		out = append(out, NewFundResponse(f))
	}
	return FundListResponse{
		GeneratedAt: generatedAt,
		TotalCount:  totalCount,
		Offset:      offset,
		Limit:       limit,
		Funds:       out,
	}
}
