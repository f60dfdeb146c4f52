package http

import (
	"net/http"

	"fund-directory/internal/directory/dto"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ManagerHandler handles HTTP requests for manager profiles.
type ManagerHandler struct {
	directoryService service.DirectoryService
	logger           *logger.Logger
}

// NewManagerHandler creates a new ManagerHandler.
func NewManagerHandler(directoryService service.DirectoryService, logger *logger.Logger) *ManagerHandler {
	return &ManagerHandler{directoryService: directoryService, logger: logger}
}

// RegisterRoutes registers the manager routes to the Echo group.
func (h *ManagerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetManagers)
	g.GET("/:slug", h.GetManager)
}

// GetManagers godoc
// @Summary List managers
// @Description One profile per firm, in order of each firm's most recent fund.
// @Tags managers
// @Produce  json
// @Success 200 {object} dto.ManagerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /managers [get]
func (h *ManagerHandler) GetManagers(c echo.Context) error {
	profiles, err := h.directoryService.Managers(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	managers := make([]dto.ManagerResponse, 0, len(profiles))
	for _, p := range profiles {
		managers = append(managers, dto.NewManagerResponse(p))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, PublicCacheControl)
	return c.JSON(http.StatusOK, dto.ManagerListResponse{TotalCount: len(managers), Managers: managers})
}

// GetManager godoc
// @Summary Get a manager profile
// @Description Aggregate view of every fund announced by one firm.
// @Tags managers
// @Produce  json
// @Param   slug  path    string true    "Firm slug"
// @Success 200 {object} dto.ManagerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /managers/{slug} [get]
func (h *ManagerHandler) GetManager(c echo.Context) error {
	profile, err := h.directoryService.Manager(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, PublicCacheControl)
	return c.JSON(http.StatusOK, dto.NewManagerResponse(*profile))
}
