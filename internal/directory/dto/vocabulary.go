package dto

import "time"

// VocabularyResponse lists the categories and stages fund records draw from.
type VocabularyResponse struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Categories  []string  `json:"categories"`
	Stages      []string  `json:"stages"`
}
