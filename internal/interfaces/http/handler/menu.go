package handler

import (
	"strconv"

	catalogapp "github.com/byserkan/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// MenuHandler serves the public storefront menu
type MenuHandler struct {
	BaseHandler
	menuService *catalogapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *catalogapp.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Sections returns all active categories with their items, in menu order
func (h *MenuHandler) Sections(c *gin.Context) {
	sections, err := h.menuService.Sections(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sections)
}

// Popular returns the most ordered items. The limit query parameter is
// optional and capped server-side.
func (h *MenuHandler) Popular(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, err := h.menuService.Popular(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ItemOptions returns the configuration options for a single item, such as
// sizes, meat types and sauces, so the storefront can render its wizard.
func (h *MenuHandler) ItemOptions(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	options, err := h.menuService.ItemOptions(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}
