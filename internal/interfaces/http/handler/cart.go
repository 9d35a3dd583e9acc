package handler

import (
	cartapp "github.com/byserkan/backend/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler manages the anonymous session cart. Every endpoint expects the
// session ID in the X-Session-ID header; the frontend generates it once and
// keeps it in local storage.
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// View returns the current cart for the session
func (h *CartHandler) View(c *gin.Context) {
	result, err := h.cartService.View(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddLine adds an item with its configuration to the cart. Lines with the
// same configuration are merged.
func (h *CartHandler) AddLine(c *gin.Context) {
	var req cartapp.AddLineRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.cartService.Add(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveLine removes the line matching the item and configuration exactly
func (h *CartHandler) RemoveLine(c *gin.Context) {
	var req cartapp.RemoveLineRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.cartService.Remove(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateQuantity sets the quantity of a line. Quantity zero removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req cartapp.UpdateQuantityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.cartService.UpdateQuantity(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Clear empties the cart for the session
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), getSessionID(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
