package handler

import (
	"strconv"

	catalogapp "github.com/byserkan/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// MenuItemHandler handles back-office menu item management
type MenuItemHandler struct {
	BaseHandler
	itemService *catalogapp.MenuItemService
}

// NewMenuItemHandler creates a new MenuItemHandler
func NewMenuItemHandler(itemService *catalogapp.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{itemService: itemService}
}

// Create creates a new menu item
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateMenuItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// List returns all menu items, optionally filtered by a search term matching
// the name or item number
func (h *MenuItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID returns a single menu item
func (h *MenuItemHandler) GetByID(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// GetByNumber looks an item up by its customer-facing number
func (h *MenuItemHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		h.BadRequest(c, "Invalid item number")
		return
	}

	item, err := h.itemService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Update updates a menu item
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateMenuItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Duplicate copies an item under the next free number
func (h *MenuItemHandler) Duplicate(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	item, err := h.itemService.Duplicate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Reorder persists a new item ordering
func (h *MenuItemHandler) Reorder(c *gin.Context) {
	ids, ok := h.bindReorderIDs(c)
	if !ok {
		return
	}

	if err := h.itemService.Reorder(c.Request.Context(), ids); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a menu item
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
