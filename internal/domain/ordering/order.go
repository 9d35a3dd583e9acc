package ordering

import (
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status is the customer-facing lifecycle of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// MonitorStatus is the staff-workflow state of an order, orthogonal to
// the customer-facing Status
type MonitorStatus string

const (
	MonitorNew      MonitorStatus = "new"
	MonitorAccepted MonitorStatus = "accepted"
	MonitorClosed   MonitorStatus = "closed"
)

// Rank orders monitor statuses for display: new first, closed last
func (s MonitorStatus) Rank() int {
	switch s {
	case MonitorNew:
		return 0
	case MonitorAccepted:
		return 1
	default:
		return 2
	}
}

// RequestedASAP marks an order wanted as soon as possible rather than at
// a specific time
const RequestedASAP = "asap"

// DeviceInfo is the client metadata captured at checkout
type DeviceInfo struct {
	UserAgent  string `json:"userAgent"`
	Language   string `json:"language"`
	Platform   string `json:"platform"`
	DeviceType string `json:"deviceType,omitempty"`
	Browser    string `json:"browser,omitempty"`
	OS         string `json:"os,omitempty"`
}

// Order is one placed order: customer info, the cart lines as ordered,
// totals, device metadata and the delivery classification
type Order struct {
	shared.BaseAggregateRoot
	CustomerName    string               `gorm:"type:varchar(200);not null"`
	CustomerAddress string               `gorm:"type:varchar(500)"`
	CustomerPhone   string               `gorm:"type:varchar(50);not null"`
	Note            string               `gorm:"type:text"`
	Lines           []cart.Line          `gorm:"serializer:json"`
	Subtotal        decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	DeliveryFee     decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmount     decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	DeliveryType    schedule.ServiceType `gorm:"type:varchar(20);not null;default:'pickup'"`
	DeliveryZone    string               `gorm:"type:varchar(100)"`
	RequestedTime   string               `gorm:"type:varchar(10);not null;default:'asap'"`
	DeviceInfo      DeviceInfo           `gorm:"serializer:json"`
	IPAddress       string               `gorm:"type:varchar(45)"`
	Status          Status               `gorm:"type:varchar(20);not null;default:'pending'"`
	MonitorStatus   MonitorStatus        `gorm:"type:varchar(20);not null;default:'new'"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrderParams carries the checkout inputs for NewOrder
type NewOrderParams struct {
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	Note            string
	Lines           []cart.Line
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	DeliveryType    schedule.ServiceType
	DeliveryZone    string
	RequestedTime   string
}

// NewOrder creates a new order in the "pending"/"new" state
func NewOrder(p NewOrderParams) (*Order, error) {
	if p.CustomerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if p.CustomerPhone == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer phone cannot be empty")
	}
	if len(p.Lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if p.RequestedTime == "" {
		p.RequestedTime = RequestedASAP
	}
	if p.DeliveryType == "" {
		p.DeliveryType = schedule.ServicePickup
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      p.CustomerName,
		CustomerAddress:   p.CustomerAddress,
		CustomerPhone:     p.CustomerPhone,
		Note:              p.Note,
		Lines:             p.Lines,
		Subtotal:          p.Subtotal,
		DeliveryFee:       p.DeliveryFee,
		TotalAmount:       p.Subtotal.Add(p.DeliveryFee),
		DeliveryType:      p.DeliveryType,
		DeliveryZone:      p.DeliveryZone,
		RequestedTime:     p.RequestedTime,
		Status:            StatusPending,
		MonitorStatus:     MonitorNew,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// SetDeviceInfo attaches client metadata captured at checkout
func (o *Order) SetDeviceInfo(info DeviceInfo, ipAddress string) {
	o.DeviceInfo = info
	o.IPAddress = ipAddress
}

// Accept moves the order to the accepted monitor state. The transition
// is written verbatim: staff may re-accept a closed order.
func (o *Order) Accept() {
	o.setMonitorStatus(MonitorAccepted)
}

// CloseOut moves the order to the closed monitor state
func (o *Order) CloseOut() {
	o.setMonitorStatus(MonitorClosed)
}

func (o *Order) setMonitorStatus(status MonitorStatus) {
	old := o.MonitorStatus
	o.MonitorStatus = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	o.AddDomainEvent(NewOrderMonitorStatusChangedEvent(o, old, status))
}

// TotalItems is the sum of line quantities
func (o *Order) TotalItems() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}
