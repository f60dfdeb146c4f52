package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"fund-directory/internal/entity"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// FundFilter narrows the fund list. Zero-valued fields are not applied.
type FundFilter struct {
	Category  string
	Stage     string
	Firm      string
	Since     string
	Covered   *bool
	MinAmount *float64
	MaxAmount *float64
}

// Pagination is a clamped offset/limit window.
type Pagination struct {
	Offset int
	Limit  int
}

// ParseFundFilter builds a filter from raw request values. Values that cannot
// be parsed are treated as not supplied.
func ParseFundFilter(category, stage, firm, since, covered, minAmount, maxAmount string) FundFilter {
	f := FundFilter{
		Category: strings.TrimSpace(category),
		Stage:    strings.TrimSpace(stage),
		Firm:     strings.TrimSpace(firm),
	}
	if s := strings.TrimSpace(since); s != "" {
		if _, err := time.Parse(dateLayout, s); err == nil {
			f.Since = s
		}
	}
	switch strings.TrimSpace(covered) {
	case "true":
		v := true
		f.Covered = &v
	case "false":
		v := false
		f.Covered = &v
	}
	f.MinAmount = parseAmount(minAmount)
	f.MaxAmount = parseAmount(maxAmount)
	return f
}

func parseAmount(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParsePagination clamps limit to [1, MaxLimit] (DefaultLimit when missing or
// non-numeric) and offset to >= 0 (0 when missing or non-numeric).
func ParsePagination(limit, offset string) Pagination {
	p := Pagination{Offset: 0, Limit: DefaultLimit}
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil {
		p.Limit = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(offset)); err == nil {
		p.Offset = n
	}
	return p.clamp()
}

func (p Pagination) clamp() Pagination {
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Matches reports whether fund passes every applied predicate.
func (f FundFilter) Matches(fund *entity.FundRecord) bool {
	if f.Category != "" && fund.Category != f.Category {
		return false
	}
	if f.Stage != "" && !strings.EqualFold(fund.Stage, f.Stage) {
		return false
	}
	if f.Firm != "" && !strings.Contains(strings.ToLower(fund.Firm), strings.ToLower(f.Firm)) {
		return false
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	if f.Since != "" && (fund.AnnouncementDate == nil || *fund.AnnouncementDate < f.Since) {
		return false
	}
	if f.Covered != nil && fund.IsCovered != *f.Covered {
		return false
	}
	if f.MinAmount != nil && (fund.AmountUSDMillions == nil || *fund.AmountUSDMillions < *f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && (fund.AmountUSDMillions == nil || *fund.AmountUSDMillions > *f.MaxAmount) {
		return false
	}
	return true
}

// QueryFunds filters funds, preserving their order, and returns the page
// selected by p together with the number of matches before paging.
func QueryFunds(funds []entity.FundRecord, f FundFilter, p Pagination) ([]entity.FundRecord, int) {
	p = p.clamp()

	total := 0
	page := make([]entity.FundRecord, 0, min(p.Limit, len(funds)))
	for i := range funds {
		if !f.Matches(&funds[i]) {
			continue
		}
		if total >= p.Offset && len(page) < p.Limit {
			page = append(page, funds[i])
		}
		total++
	}
	return page, total
}
