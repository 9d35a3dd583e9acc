package ordering

import (
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated              = "OrderCreated"
	EventTypeOrderMonitorStatusChanged = "OrderMonitorStatusChanged"
)

// OrderCreatedEvent is published when a customer places an order
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	MonitorStatus MonitorStatus   `json:"monitor_status"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		TotalAmount:     order.TotalAmount,
		MonitorStatus:   order.MonitorStatus,
	}
}

// OrderMonitorStatusChangedEvent is published when staff move an order
// through the monitor workflow
type OrderMonitorStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID     `json:"order_id"`
	OldStatus MonitorStatus `json:"old_status"`
	NewStatus MonitorStatus `json:"new_status"`
}

// NewOrderMonitorStatusChangedEvent creates a new OrderMonitorStatusChangedEvent
func NewOrderMonitorStatusChangedEvent(order *Order, oldStatus, newStatus MonitorStatus) *OrderMonitorStatusChangedEvent {
	return &OrderMonitorStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderMonitorStatusChanged, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
