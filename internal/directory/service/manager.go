package service

import (
	"fmt"

	"fund-directory/internal/entity"
	"fund-directory/pkg/slug"
)

// ListFirmSlugs returns the distinct non-empty firm slugs in order of first appearance.
func ListFirmSlugs(s *entity.Snapshot) []string {
	seen := make(map[string]struct{})
	slugs := make([]string, 0)
	for _, f := range s.Funds {
		if f.FirmSlug == "" {
			continue
		}
		if _, ok := seen[f.FirmSlug]; ok {
			continue
		}
		seen[f.FirmSlug] = struct{}{}
		slugs = append(slugs, f.FirmSlug)
	}
	return slugs
}

// FindManagerProfile returns the profile for firmSlug. A precomputed manager
// entry in the snapshot wins over one derived from the fund records.
func FindManagerProfile(s *entity.Snapshot, firmSlug string) (*entity.ManagerProfile, error) {
	key := slug.Make(firmSlug)
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrManagerNotFound, firmSlug)
	}
	if m, ok := precomputedManager(s, key); ok {
		return m, nil
	}

	var profile *entity.ManagerProfile
	var seenCategory map[string]struct{}
	for i := range s.Funds {
		f := &s.Funds[i]
		if f.FirmSlug != key {
			continue
		}
		if profile == nil {
			profile = &entity.ManagerProfile{Firm: f.Firm, FirmSlug: key, Categories: []string{}}
			seenCategory = make(map[string]struct{})
		}
		accumulate(profile, seenCategory, f)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %q", ErrManagerNotFound, firmSlug)
	}
	return profile, nil
}

// ListManagerProfiles returns one profile per firm slug in order of first
// appearance, applying precomputed overrides.
func ListManagerProfiles(s *entity.Snapshot) []entity.ManagerProfile {
	bySlug := make(map[string]*entity.ManagerProfile)
	seenCategory := make(map[string]map[string]struct{})
	order := make([]string, 0)

	for i := range s.Funds {
		f := &s.Funds[i]
		if f.FirmSlug == "" {
			continue
		}
		p, ok := bySlug[f.FirmSlug]
		if !ok {
			p = &entity.ManagerProfile{Firm: f.Firm, FirmSlug: f.FirmSlug, Categories: []string{}}
			bySlug[f.FirmSlug] = p
			seenCategory[f.FirmSlug] = make(map[string]struct{})
			order = append(order, f.FirmSlug)
		}
		accumulate(p, seenCategory[f.FirmSlug], f)
	}

	out := make([]entity.ManagerProfile, 0, len(order))
	for _, key := range order {
		if m, ok := precomputedManager(s, key); ok {
			out = append(out, *m)
			continue
		}
		out = append(out, *bySlug[key])
	}
	return out
}

func accumulate(p *entity.ManagerProfile, seenCategory map[string]struct{}, f *entity.FundRecord) {
	p.FundCount++
	if p.City == "" && f.City != nil {
		p.City = *f.City
	}
	if p.Country == "" && f.Country != nil {
		p.Country = *f.Country
	}
	if f.Category != "" {
		if _, ok := seenCategory[f.Category]; !ok {
			seenCategory[f.Category] = struct{}{}
			p.Categories = append(p.Categories, f.Category)
		}
	}
	if f.AmountUSDMillions != nil {
		p.TotalAUMMillions += *f.AmountUSDMillions
	}
}

func precomputedManager(s *entity.Snapshot, key string) (*entity.ManagerProfile, bool) {
	for i := range s.Managers {
		if s.Managers[i].FirmSlug == key {
			m := s.Managers[i]
			m.Categories = append([]string{}, m.Categories...)
			return &m, true
		}
	}
	return nil, false
}
