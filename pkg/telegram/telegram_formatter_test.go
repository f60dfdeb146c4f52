package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHealthAlert(t *testing.T) {
	generatedAt := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)

	t.Run("status change", func(t *testing.T) {
		msg := FormatHealthAlert(HealthAlert{
			Status:           "degraded",
			PreviousStatus:   "healthy",
			GeneratedAt:      generatedAt,
			HoursSinceUpdate: 50,
			FeedsEnabled:     20,
			FeedsDisabled:    6,
			FeedsStale:       1,
			TotalFunds:       312,
		})

		assert.Contains(t, msg, "healthy → DEGRADED")
		assert.Contains(t, msg, "2026-10-16 08:30 UTC (50.0h ago)")
		assert.Contains(t, msg, "20 enabled, 6 disabled, 1 stale")
		assert.Contains(t, msg, "*Funds:* 312")
	})

	t.Run("first observation", func(t *testing.T) {
		msg := FormatHealthAlert(HealthAlert{Status: "unhealthy", GeneratedAt: generatedAt})

		assert.Contains(t, msg, "pipeline is UNHEALTHY")
		assert.Contains(t, msg, "🚨")
	})
}
