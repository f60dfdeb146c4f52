package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"fund-directory/internal/entity"
	"fund-directory/pkg/slug"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cast"
)

const dateLayout = "2006-01-02"

// DecodeResult reports what the boundary validation changed while decoding.
type DecodeResult struct {
	Snapshot     *entity.Snapshot
	DroppedFunds int
	NulledFields int
}

// wire types mirror the published JSON loosely so a single malformed field
// does not reject the whole document.
type wireSnapshot struct {
	GeneratedAt string           `json:"generatedAt"`
	Funds       []wireFund       `json:"funds"`
	Categories  []interface{}    `json:"categories"`
	Stages      []interface{}    `json:"stages"`
	FeedHealth  []wireFeedHealth `json:"feedHealth"`
	Stats       wireStats        `json:"stats"`
	Managers    []wireManager    `json:"managers"`
}

type wireStats struct {
	TotalFunds       interface{}            `json:"totalFunds"`
	TotalCovered     interface{}            `json:"totalCovered"`
	TotalUncovered   interface{}            `json:"totalUncovered"`
	TotalAUMMillions interface{}            `json:"totalAumMillions"`
	ByCategory       map[string]interface{} `json:"byCategory"`
	ByStage          map[string]interface{} `json:"byStage"`
	DateRange        struct {
		Earliest interface{} `json:"earliest"`
		Latest   interface{} `json:"latest"`
	} `json:"dateRange"`
	FeedCount interface{} `json:"feedCount"`
}

type wireManager struct {
	Firm             interface{}   `json:"firm"`
	FirmSlug         interface{}   `json:"firmSlug"`
	City             interface{}   `json:"city"`
	Country          interface{}   `json:"country"`
	Categories       []interface{} `json:"categories"`
	TotalAUMMillions interface{}   `json:"totalAumMillions"`
	FundCount        interface{}   `json:"fundCount"`
}

type wireFund struct {
	FundName          interface{}     `json:"fundName"`
	Firm              interface{}     `json:"firm"`
	AmountDisplay     interface{}     `json:"amountDisplay"`
	AmountUSDMillions interface{}     `json:"amountUsdMillions"`
	Category          interface{}     `json:"category"`
	Stage             interface{}     `json:"stage"`
	Location          interface{}     `json:"location"`
	City              interface{}     `json:"city"`
	Country           interface{}     `json:"country"`
	AnnouncementDate  interface{}     `json:"announcementDate"`
	SourceURL         interface{}     `json:"sourceUrl"`
	SourceName        interface{}     `json:"sourceName"`
	DescriptionNotes  interface{}     `json:"descriptionNotes"`
	IsCovered         interface{}     `json:"isCovered"`
	CoveredDate       interface{}     `json:"coveredDate"`
	Articles          []wireArticle   `json:"articles"`
	Ingestion         json.RawMessage `json:"ingestion"`
}

type wireArticle struct {
	Title         interface{} `json:"title"`
	URL           interface{} `json:"url"`
	SourceName    interface{} `json:"sourceName"`
	PublishedDate interface{} `json:"publishedDate"`
}

type wireFeedHealth struct {
	FeedName     interface{} `json:"feedName"`
	FeedURL      interface{} `json:"feedUrl"`
	LastFetch    interface{} `json:"lastFetch"`
	LastSuccess  interface{} `json:"lastSuccess"`
	ErrorCount   interface{} `json:"errorCount"`
	ArticleCount interface{} `json:"articleCount"`
	LastError    interface{} `json:"lastError"`
	Enabled      interface{} `json:"enabled"`
}

// DecodeSnapshot parses a published snapshot document into the typed model.
// Records without a fund name or firm are dropped, and fields that do not
// conform to the schema are nulled out. This applies to funds, feed health,
// stats, managers and the category and stage lists alike. The document as a
// whole is rejected only when it is not JSON, a top-level section has the
// wrong shape, or it has no valid generatedAt.
func DecodeSnapshot(raw []byte) (*DecodeResult, error) {
	var w wireSnapshot
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(w.GeneratedAt))
	if err != nil {
		return nil, fmt.Errorf("invalid generatedAt %q: %w", w.GeneratedAt, err)
	}
	if generatedAt.IsZero() {
		return nil, errors.New("snapshot has zero generatedAt")
	}

	d := &decoder{}
	snap := &entity.Snapshot{
		GeneratedAt: generatedAt.UTC(),
		Funds:       make([]entity.FundRecord, 0, len(w.Funds)),
		FeedHealth:  make([]entity.FeedHealthEntry, 0, len(w.FeedHealth)),
	}
	snap.Categories = d.list(w.Categories)
	snap.Stages = d.list(w.Stages)
	snap.Stats = d.stats(w.Stats)

	for _, wf := range w.Funds {
		fund, ok := d.fund(wf)
		if !ok {
			d.dropped++
			continue
		}
		snap.Funds = append(snap.Funds, fund)
	}
	for _, wh := range w.FeedHealth {
		snap.FeedHealth = append(snap.FeedHealth, d.feedHealth(wh))
	}
	for _, wm := range w.Managers {
		if m, ok := d.manager(wm); ok {
			snap.Managers = append(snap.Managers, m)
		}
	}

	return &DecodeResult{Snapshot: snap, DroppedFunds: d.dropped, NulledFields: d.nulled}, nil
}

type decoder struct {
	dropped int
	nulled  int
}

func (d *decoder) fund(w wireFund) (entity.FundRecord, bool) {
	name := d.str(w.FundName)
	firm := d.str(w.Firm)
	if name == "" || firm == "" {
		return entity.FundRecord{}, false
	}

	f := entity.FundRecord{
		FundName:          name,
		Firm:              firm,
		FirmSlug:          slug.Make(firm),
		AmountDisplay:     d.optStr(w.AmountDisplay),
		AmountUSDMillions: d.amount(w.AmountUSDMillions),
		Category:          d.str(w.Category),
		Stage:             d.str(w.Stage),
		Location:          d.optStr(w.Location),
		City:              d.optStr(w.City),
		Country:           d.optStr(w.Country),
		AnnouncementDate:  d.date(w.AnnouncementDate),
		SourceURL:         d.str(w.SourceURL),
		SourceName:        d.str(w.SourceName),
		DescriptionNotes:  plainText(d.str(w.DescriptionNotes)),
		IsCovered:         d.boolean(w.IsCovered, false),
		CoveredDate:       d.date(w.CoveredDate),
		Articles:          make([]entity.Article, 0, len(w.Articles)),
	}
	for _, a := range w.Articles {
		url := d.str(a.URL)
		if url == "" {
			continue
		}
		f.Articles = append(f.Articles, entity.Article{
			Title:         d.str(a.Title),
			URL:           url,
			SourceName:    d.str(a.SourceName),
			PublishedDate: d.date(a.PublishedDate),
		})
	}
	if len(w.Ingestion) > 0 && string(w.Ingestion) != "null" {
		var ing entity.Ingestion
		if err := json.Unmarshal(w.Ingestion, &ing); err == nil {
			f.Ingestion = &ing
		}
	}
	return f, true
}

func (d *decoder) feedHealth(w wireFeedHealth) entity.FeedHealthEntry {
	return entity.FeedHealthEntry{
		FeedName:     d.str(w.FeedName),
		FeedURL:      d.str(w.FeedURL),
		LastFetch:    d.timestamp(w.LastFetch),
		LastSuccess:  d.timestamp(w.LastSuccess),
		ErrorCount:   d.count(w.ErrorCount),
		ArticleCount: d.count(w.ArticleCount),
		LastError:    d.str(w.LastError),
		Enabled:      d.boolean(w.Enabled, true),
	}
}

func (d *decoder) stats(w wireStats) entity.Stats {
	var aum float64
	if v := d.amount(w.TotalAUMMillions); v != nil {
		aum = *v
	}
	return entity.Stats{
		TotalFunds:       d.count(w.TotalFunds),
		TotalCovered:     d.count(w.TotalCovered),
		TotalUncovered:   d.count(w.TotalUncovered),
		TotalAUMMillions: aum,
		ByCategory:       d.counts(w.ByCategory),
		ByStage:          d.counts(w.ByStage),
		DateRange: entity.DateRange{
			Earliest: d.date(w.DateRange.Earliest),
			Latest:   d.date(w.DateRange.Latest),
		},
		FeedCount: d.count(w.FeedCount),
	}
}

// manager keys a profile by its slug, falling back to the firm name. Profiles
// with neither are skipped.
func (d *decoder) manager(w wireManager) (entity.ManagerProfile, bool) {
	firm := d.str(w.Firm)
	key := slug.Make(d.str(w.FirmSlug))
	if key == "" {
		key = slug.Make(firm)
	}
	if key == "" {
		return entity.ManagerProfile{}, false
	}
	var aum float64
	if v := d.amount(w.TotalAUMMillions); v != nil {
		aum = *v
	}
	return entity.ManagerProfile{
		Firm:             firm,
		FirmSlug:         key,
		City:             d.str(w.City),
		Country:          d.str(w.Country),
		Categories:       d.list(w.Categories),
		TotalAUMMillions: aum,
		FundCount:        d.count(w.FundCount),
	}, true
}

// list keeps the non-empty string entries of a list.
func (d *decoder) list(vs []interface{}) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s := d.str(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (d *decoder) counts(m map[string]interface{}) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = d.count(v)
	}
	return out
}

func (d *decoder) str(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		if v != nil {
			d.nulled++
		}
		return ""
	}
	return strings.TrimSpace(s)
}

func (d *decoder) optStr(v interface{}) *string {
	s := d.str(v)
	if s == "" {
		return nil
	}
	return &s
}

// amount accepts a JSON number or a numeric string. Negative or non-finite
// values are treated as undisclosed.
func (d *decoder) amount(v interface{}) *float64 {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case string:
		f, err = cast.ToFloat64E(strings.TrimSpace(t))
	default:
		err = fmt.Errorf("unsupported amount type %T", v)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		d.nulled++
		return nil
	}
	return &f
}

func (d *decoder) boolean(v interface{}, fallback bool) bool {
	if v == nil {
		return fallback
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		d.nulled++
		return fallback
	}
	return b
}

func (d *decoder) count(v interface{}) int {
	if v == nil {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil || n < 0 {
		d.nulled++
		return 0
	}
	return n
}

func (d *decoder) date(v interface{}) *string {
	s := d.str(v)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		d.nulled++
		return nil
	}
	return &s
}

func (d *decoder) timestamp(v interface{}) *time.Time {
	s := d.str(v)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		d.nulled++
		return nil
	}
	t = t.UTC()
	return &t
}

// plainText removes any HTML markup the extraction step left in free text.
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
