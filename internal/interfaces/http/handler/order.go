package handler

import (
	orderingapp "github.com/byserkan/backend/internal/application/ordering"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order lookup for the storefront
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout converts the session cart into an order and returns the order
// together with the prefilled WhatsApp link
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req orderingapp.CheckoutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.orderService.Checkout(c.Request.Context(), getSessionID(c), c.ClientIP(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetByID returns a single order, used by the confirmation page
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
