package service

import (
	"fmt"
	"time"

	"fund-directory/internal/entity"
	"fund-directory/pkg/slug"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

type fundOpt func(*entity.FundRecord)

func withAmount(m float64) fundOpt {
	return func(f *entity.FundRecord) { f.AmountUSDMillions = floatPtr(m) }
}

func withDate(d string) fundOpt {
	return func(f *entity.FundRecord) { f.AnnouncementDate = strPtr(d) }
}

func withCategory(c string) fundOpt {
	return func(f *entity.FundRecord) { f.Category = c }
}

func withStage(s string) fundOpt {
	return func(f *entity.FundRecord) { f.Stage = s }
}

func withCovered() fundOpt {
	return func(f *entity.FundRecord) { f.IsCovered = true }
}

func withCity(city, country string) fundOpt {
	return func(f *entity.FundRecord) {
		if city != "" {
			f.City = strPtr(city)
		}
		if country != "" {
			f.Country = strPtr(country)
		}
	}
}

func newFund(name, firm string, opts ...fundOpt) entity.FundRecord {
	f := entity.FundRecord{
		FundName:   name,
		Firm:       firm,
		FirmSlug:   slug.Make(firm),
		Category:   "Venture Capital",
		Stage:      "Final Close",
		SourceURL:  "https://news.example.com/" + slug.Make(name),
		SourceName: "Example News",
		Articles:   []entity.Article{},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// numberedFunds returns n funds named "Fund 0".."Fund n-1" from one firm.
func numberedFunds(n int) []entity.FundRecord {
	funds := make([]entity.FundRecord, 0, n)
	for i := 0; i < n; i++ {
		funds = append(funds, newFund(fmt.Sprintf("Fund %d", i), "Acme Capital", withAmount(float64(i))))
	}
	return funds
}

var testGeneratedAt = time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)

func newSnapshot(funds ...entity.FundRecord) *entity.Snapshot {
	return &entity.Snapshot{
		GeneratedAt: testGeneratedAt,
		Funds:       funds,
		Categories:  []string{"Venture Capital", "Private Equity", "Credit"},
		Stages:      []string{"Final Close", "First Close", "Launch"},
		FeedHealth:  []entity.FeedHealthEntry{},
	}
}

func fundNames(funds []entity.FundRecord) []string {
	names := make([]string, 0, len(funds))
	for _, f := range funds {
		names = append(names, f.FundName)
	}
	return names
}
