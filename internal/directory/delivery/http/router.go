package http

import (
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig configures the public routes.
type RouterConfig struct {
	FeedPath          string
	RequestsPerSecond float64
	Burst             int
}

// RegisterRoutes wires middleware and every directory endpoint onto e.
func RegisterRoutes(e *echo.Echo, directoryService service.DirectoryService, cfg RouterConfig, log *logger.Logger) {
	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(log))

	limiter := RateLimit(cfg.RequestsPerSecond, cfg.Burst)

	apiV1 := e.Group("/api/v1", limiter)
	NewFundHandler(directoryService, log).RegisterRoutes(apiV1.Group("/funds"))
	NewHealthHandler(directoryService, log).RegisterRoutes(apiV1.Group("/health"))
	NewManagerHandler(directoryService, log).RegisterRoutes(apiV1.Group("/managers"))
	NewVocabularyHandler(directoryService, log).RegisterRoutes(apiV1.Group("/vocabularies"))

	feedPath := cfg.FeedPath
	if feedPath == "" {
		feedPath = "/feed.xml"
	}
	e.GET(feedPath, NewFeedHandler(directoryService, log).GetFeed, limiter)
}
