package telegram

import (
	"fmt"
	"strings"
	"time"
)

// HealthAlert is the content of a pipeline health status change notification.
type HealthAlert struct {
	Status           string
	PreviousStatus   string
	GeneratedAt      time.Time
	HoursSinceUpdate float64
	FeedsEnabled     int
	FeedsDisabled    int
	FeedsStale       int
	TotalFunds       int
}

// FormatHealthAlert renders a health status change as a Markdown message.
func FormatHealthAlert(a HealthAlert) string {
	var icon string
	switch a.Status {
	case "healthy":
		icon = "✅"
	case "degraded":
		icon = "⚠️"
	default:
		icon = "🚨"
	}

	var b strings.Builder
	if a.PreviousStatus == "" {
		b.WriteString(fmt.Sprintf("%s *Fund Directory pipeline is %s*\n\n", icon, strings.ToUpper(a.Status)))
	} else {
		b.WriteString(fmt.Sprintf("%s *Fund Directory pipeline: %s → %s*\n\n", icon, a.PreviousStatus, strings.ToUpper(a.Status)))
	}
	b.WriteString(fmt.Sprintf("🕒 *Snapshot:* %s (%.1fh ago)\n", a.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), a.HoursSinceUpdate))
	b.WriteString(fmt.Sprintf("📡 *Feeds:* %d enabled, %d disabled, %d stale\n", a.FeedsEnabled, a.FeedsDisabled, a.FeedsStale))
	b.WriteString(fmt.Sprintf("💼 *Funds:* %d\n", a.TotalFunds))
	return b.String()
}
