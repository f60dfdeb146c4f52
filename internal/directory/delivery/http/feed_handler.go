package http

import (
	"net/http"

	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MIMEApplicationRSS is the content type of the syndication feed.
const MIMEApplicationRSS = "application/rss+xml; charset=utf-8"

// FeedHandler serves the RSS feed of the most recent funds.
type FeedHandler struct {
	directoryService service.DirectoryService
	logger           *logger.Logger
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(directoryService service.DirectoryService, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{directoryService: directoryService, logger: logger}
}

// GetFeed godoc
// @Summary RSS feed
// @Description RSS 2.0 document with the 50 most recent fund announcements. Failures are plain text, never a broken XML document.
// @Tags feed
// @Produce  xml
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /feed.xml [get]
func (h *FeedHandler) GetFeed(c echo.Context) error {
	doc, err := h.directoryService.RenderFeed(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to render feed", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, "Feed temporarily unavailable")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, PublicCacheControl)
	return c.Blob(http.StatusOK, MIMEApplicationRSS, []byte(doc))
}
