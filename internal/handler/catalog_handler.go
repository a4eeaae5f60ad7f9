package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kainan/internal/service"
)

// CatalogHandler serves the menu item collection.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListUlams godoc
// @Summary List all menu items
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Ulam
// @Failure 500 {object} errors.ErrorResponse
// @Router /ulams [get]
func (h *CatalogHandler) ListUlams(c echo.Context) error {
	ulams, err := h.catalogService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ulams)
}
