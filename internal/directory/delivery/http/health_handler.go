package http

import (
	"net/http"

	"fund-directory/internal/directory/dto"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles HTTP requests for pipeline health.
type HealthHandler struct {
	directoryService service.DirectoryService
	logger           *logger.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(directoryService service.DirectoryService, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{directoryService: directoryService, logger: logger}
}

// RegisterRoutes registers the health routes to the Echo group.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetHealth)
	g.GET("/feeds", h.GetFeeds)
}

// GetHealth godoc
// @Summary Pipeline health
// @Description Classifies ingestion pipeline health from feed diagnostics and reports data freshness.
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c echo.Context) error {
	report, err := h.directoryService.Health(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:           string(report.Status),
		GeneratedAt:      report.GeneratedAt,
		HoursSinceUpdate: report.HoursSinceUpdate,
		IsDataStale:      report.IsDataStale,
		TotalFunds:       report.TotalFunds,
		TotalCovered:     report.TotalCovered,
		TotalAUMMillions: report.TotalAUMMillions,
		FeedsEnabled:     report.FeedsEnabled,
		FeedsDisabled:    report.FeedsDisabled,
		FeedsStale:       report.FeedsStale,
		DateRange: dto.DateRangeResponse{
			Earliest: report.DateRange.Earliest,
			Latest:   report.DateRange.Latest,
		},
	})
}

// GetFeeds godoc
// @Summary Feed diagnostics
// @Description Per-source ingestion state behind the health counts.
// @Tags health
// @Produce  json
// @Success 200 {object} dto.FeedStatusListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /health/feeds [get]
func (h *HealthHandler) GetFeeds(c echo.Context) error {
	report, err := h.directoryService.Feeds(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	feeds := make([]dto.FeedStatusResponse, 0, len(report.Feeds))
	for _, fs := range report.Feeds {
		feeds = append(feeds, dto.FeedStatusResponse{
			FeedName:     fs.Feed.FeedName,
			FeedURL:      fs.Feed.FeedURL,
			Enabled:      fs.Feed.Enabled,
			Stale:        fs.Stale,
			LastFetch:    fs.Feed.LastFetch,
			LastSuccess:  fs.Feed.LastSuccess,
			ErrorCount:   fs.Feed.ErrorCount,
			ArticleCount: fs.Feed.ArticleCount,
			LastError:    fs.Feed.LastError,
		})
	}
	return c.JSON(http.StatusOK, dto.FeedStatusListResponse{GeneratedAt: report.GeneratedAt, Feeds: feeds})
}
