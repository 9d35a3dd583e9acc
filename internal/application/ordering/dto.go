package ordering

import (
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeviceInfoRequest is the client metadata captured at checkout
type DeviceInfoRequest struct {
	UserAgent  string `json:"user_agent" binding:"max=500"`
	Language   string `json:"language" binding:"max=20"`
	Platform   string `json:"platform" binding:"max=50"`
	DeviceType string `json:"device_type" binding:"max=20"`
	Browser    string `json:"browser" binding:"max=50"`
	OS         string `json:"os" binding:"max=50"`
}

// CheckoutRequest places the session's cart as an order
type CheckoutRequest struct {
	CustomerName    string            `json:"customer_name" binding:"required,min=2,max=200"`
	CustomerAddress string            `json:"customer_address" binding:"max=500"`
	CustomerPhone   string            `json:"customer_phone" binding:"required,min=5,max=50"`
	Note            string            `json:"note" binding:"max=1000"`
	DeliveryType    string            `json:"delivery_type" binding:"required,oneof=pickup delivery"`
	DeliveryZoneID  string            `json:"delivery_zone_id" binding:"max=50"`
	RequestedTime   string            `json:"requested_time" binding:"max=10"`
	DeviceInfo      DeviceInfoRequest `json:"device_info"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	CustomerPhone   string          `json:"customer_phone"`
	Note            string          `json:"note,omitempty"`
	Lines           []cart.Line     `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DeliveryType    string          `json:"delivery_type"`
	DeliveryZone    string          `json:"delivery_zone,omitempty"`
	RequestedTime   string          `json:"requested_time"`
	Status          string          `json:"status"`
	MonitorStatus   string          `json:"monitor_status"`
	TotalItems      int             `json:"total_items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CheckoutResponse is the checkout result: the stored order plus the
// prefilled WhatsApp handoff link
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// ToOrderResponse converts a domain order to its response DTO
func ToOrderResponse(o *ordering.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		Note:            o.Note,
		Lines:           o.Lines,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		TotalAmount:     o.TotalAmount,
		DeliveryType:    string(o.DeliveryType),
		DeliveryZone:    o.DeliveryZone,
		RequestedTime:   o.RequestedTime,
		Status:          string(o.Status),
		MonitorStatus:   string(o.MonitorStatus),
		TotalItems:      o.TotalItems(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
