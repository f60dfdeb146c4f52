package http

import (
	"errors"
	"net/http"

	"fund-directory/internal/directory/dto"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PublicCacheControl lets shared caches serve responses for an hour and
// revalidate in the background for a day.
const PublicCacheControl = "public, max-age=3600, stale-while-revalidate=86400"

const (
	msgUnavailable = "fund directory data is unavailable"
	msgInternal    = "internal server error"
)

// respondError writes the JSON error response for err. Unexpected errors are
// logged and never echoed to the client.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	ctx := c.Request().Context()
	switch {
	case errors.Is(err, service.ErrSnapshotUnavailable):
		log.ErrorContext(ctx, "Snapshot unavailable", logger.ErrorField(err), logger.StringField("path", c.Path()))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgUnavailable})
	case errors.Is(err, service.ErrManagerNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "manager not found"})
	default:
		log.ErrorContext(ctx, "Request failed", logger.ErrorField(err), logger.StringField("path", c.Path()))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}
