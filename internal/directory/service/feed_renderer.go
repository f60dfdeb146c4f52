package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fund-directory/internal/entity"
	"fund-directory/pkg/slug"
)

const (
	// FeedItemLimit is the number of most recent funds rendered into the feed.
	FeedItemLimit = 50

	rfc822GMT = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// Channel is the RSS channel metadata.
type Channel struct {
	Title       string
	SiteURL     string
	FeedURL     string
	Description string
	Language    string
	ImageURL    string
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML-reserved characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// FormatAmount renders a fund size given in millions of USD for display.
func FormatAmount(millions *float64) string {
	if millions == nil || *millions == 0 {
		return "Undisclosed"
	}
	v := *millions
	if v >= 1000 {
		if math.Mod(v, 1000) == 0 {
			return fmt.Sprintf("$%.0fB", v/1000)
		}
		return fmt.Sprintf("$%.1fB", v/1000)
	}
	return fmt.Sprintf("$%.0fM", math.Round(v))
}

// FeedGUID is the stable, non-permalink item identifier for a fund.
func FeedGUID(firmSlug, fundName string) string {
	return firmSlug + "-" + slug.Make(fundName)
}

// RenderFeed renders the first FeedItemLimit funds of the snapshot as an RSS
// 2.0 document. Funds are taken in snapshot order; the output depends only on
// the snapshot and the channel.
func RenderFeed(s *entity.Snapshot, ch Channel) string {
	siteURL := strings.TrimRight(ch.SiteURL, "/")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	b.WriteString("  <channel>\n")
	writeElement(&b, 4, "title", ch.Title)
	writeElement(&b, 4, "link", siteURL)
	writeElement(&b, 4, "description", ch.Description)
	writeElement(&b, 4, "language", ch.Language)
	writeElement(&b, 4, "lastBuildDate", s.GeneratedAt.UTC().Format(rfc822GMT))
	fmt.Fprintf(&b, "    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\"/>\n", EscapeXML(ch.FeedURL))
	if ch.ImageURL != "" {
		b.WriteString("    <image>\n")
		writeElement(&b, 6, "url", ch.ImageURL)
		writeElement(&b, 6, "title", ch.Title)
		writeElement(&b, 6, "link", siteURL)
		b.WriteString("    </image>\n")
	}

	funds := s.Funds
	if len(funds) > FeedItemLimit {
		funds = funds[:FeedItemLimit]
	}
	for i := range funds {
		writeItem(&b, &funds[i], siteURL, s.GeneratedAt)
	}

	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}

func writeItem(b *strings.Builder, f *entity.FundRecord, siteURL string, generatedAt time.Time) {
	location := "N/A"
	if f.Location != nil && *f.Location != "" {
		location = *f.Location
	}

	b.WriteString("    <item>\n")
	writeElement(b, 6, "title", fmt.Sprintf("%s (%s) - %s", f.FundName, FormatAmount(f.AmountUSDMillions), f.Firm))
	writeElement(b, 6, "link", itemLink(f, siteURL))
	fmt.Fprintf(b, "      <guid isPermaLink=\"false\">%s</guid>\n", EscapeXML(FeedGUID(f.FirmSlug, f.FundName)))
	writeElement(b, 6, "pubDate", publishDate(f, generatedAt).Format(rfc822GMT))
	writeElement(b, 6, "description", fmt.Sprintf("%s | %s | %s. %s", f.Category, f.Stage, location, f.DescriptionNotes))
	if f.Category != "" {
		writeElement(b, 6, "category", f.Category)
	}
	b.WriteString("    </item>\n")
}

func writeElement(b *strings.Builder, indent int, name, text string) {
	fmt.Fprintf(b, "%s<%s>%s</%s>\n", strings.Repeat(" ", indent), name, EscapeXML(text), name)
}

func itemLink(f *entity.FundRecord, siteURL string) string {
	if f.FirmSlug != "" {
		return siteURL + "/managers/" + f.FirmSlug
	}
	if f.SourceURL != "" {
		return f.SourceURL
	}
	return siteURL
}

// publishDate is noon UTC on the announcement date. Undated funds use the
// snapshot generation time.
func publishDate(f *entity.FundRecord, generatedAt time.Time) time.Time {
	if f.AnnouncementDate != nil {
		if d, err := time.Parse(dateLayout, *f.AnnouncementDate); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
		}
	}
	return generatedAt.UTC()
}
