package http

import (
	"net/http"

	"fund-directory/internal/directory/dto"
	"fund-directory/internal/directory/service"
	"fund-directory/pkg/logger"

	"github.com/labstack/echo/v4"
)

// VocabularyHandler serves the category and stage lists.
type VocabularyHandler struct {
	directoryService service.DirectoryService
	logger           *logger.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(directoryService service.DirectoryService, logger *logger.Logger) *VocabularyHandler {
	return &VocabularyHandler{directoryService: directoryService, logger: logger}
}

// RegisterRoutes registers the vocabulary routes to the Echo group.
func (h *VocabularyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetVocabularies)
}

// GetVocabularies godoc
// @Summary Categories and stages
// @Tags funds
// @Produce  json
// @Success 200 {object} dto.VocabularyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vocabularies [get]
func (h *VocabularyHandler) GetVocabularies(c echo.Context) error {
	v, err := h.directoryService.Vocabularies(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, PublicCacheControl)
	return c.JSON(http.StatusOK, dto.VocabularyResponse{GeneratedAt: v.GeneratedAt, Categories: v.Categories, Stages: v.Stages})
}
