package http

import (
	"net/http"

	"fund-directory/internal/directory/dto"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FundHandler handles HTTP requests for fund records.
type FundHandler struct {
	directoryService service.DirectoryService
	logger           *logger.Logger
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(directoryService service.DirectoryService, logger *logger.Logger) *FundHandler {
	return &FundHandler{directoryService: directoryService, logger: logger}
}

// RegisterRoutes registers the fund routes to the Echo group.
func (h *FundHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.QueryFunds)
}

// QueryFunds godoc
// @Summary Query funds
// @Description Filter and paginate the fund directory. Malformed filter values are ignored and pagination is clamped.
// @Tags funds
// @Produce  json
// @Param   category    query string  false "Exact category"
// @Param   stage       query string  false "Stage, case-insensitive"
// @Param   firm        query string  false "Firm name substring, case-insensitive"
// @Param   since       query string  false "Announced on or after (YYYY-MM-DD)"
// @Param   covered     query boolean false "Editorial coverage flag"
// @Param   min_amount  query number  false "Minimum size in USD millions"
// @Param   max_amount  query number  false "Maximum size in USD millions"
// @Param   limit       query int     false "Page size (1-200, default 50)"
// @Param   offset      query int     false "Page offset (default 0)"
// @Success 200 {object} dto.FundListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds [get]
func (h *FundHandler) QueryFunds(c echo.Context) error {
	filter := service.ParseFundFilter(
		c.QueryParam("category"),
		c.QueryParam("stage"),
		c.QueryParam("firm"),
		c.QueryParam("since"),
		c.QueryParam("covered"),
		c.QueryParam("min_amount"),
		c.QueryParam("max_amount"),
	)
	page := service.ParsePagination(c.QueryParam("limit"), c.QueryParam("offset"))

	result, err := h.directoryService.QueryFunds(c.Request().Context(), filter, page)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, PublicCacheControl)
	return c.JSON(http.StatusOK, dto.NewFundListResponse(result.GeneratedAt, result.TotalCount, result.Offset, result.Limit, result.Funds))
}
