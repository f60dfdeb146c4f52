package dto

import "fund-directory/internal/entity"

// ManagerResponse is a manager profile.
type ManagerResponse struct {
	Firm             string   `json:"firm"`
	FirmSlug         string   `json:"firmSlug"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Categories       []string `json:"categories"`
	TotalAUMMillions float64  `json:"totalAumMillions"`
	FundCount        int      `json:"fundCount"`
}

// ManagerListResponse is the body of the manager list endpoint.
type ManagerListResponse struct {
	TotalCount int               `json:"totalCount"`
	Managers   []ManagerResponse `json:"managers"`
}

// NewManagerResponse maps a manager profile.
func NewManagerResponse(m entity.ManagerProfile) ManagerResponse {
	categories := m.Categories
	if categories == nil {
		categories = []string{}
	}
	return ManagerResponse{
		Firm:             m.Firm,
		FirmSlug:         m.FirmSlug,
		City:             m.City,
		Country:          m.Country,
		Categories:       categories,
		TotalAUMMillions: m.TotalAUMMillions,
		FundCount:        m.FundCount,
	}
}
