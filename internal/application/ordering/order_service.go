package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/byserkan/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService handles checkout: it turns the session cart into a stored
// order and hands the customer off to WhatsApp
type OrderService struct {
	orders       ordering.OrderRepository
	carts        cart.Store
	items        catalog.MenuItemRepository
	settingsRepo schedule.SettingsRepository
	publisher    shared.EventPublisher
	whatsapp     *notification.WhatsAppLink
	logger       *zap.Logger
	now          func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orders ordering.OrderRepository,
	carts cart.Store,
	items catalog.MenuItemRepository,
	settingsRepo schedule.SettingsRepository,
	publisher shared.EventPublisher,
	whatsapp *notification.WhatsAppLink,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:       orders,
		carts:        carts,
		items:        items,
		settingsRepo: settingsRepo,
		publisher:    publisher,
		whatsapp:     whatsapp,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the time source, used by tests
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// Checkout places the session's cart as an order. The store must be
// accepting orders for the chosen channel unless the customer picked a
// specific time, which counts as a pre-order for the next open window.
func (s *OrderService) Checkout(ctx context.Context, sessionID, ipAddress string, req CheckoutRequest) (*CheckoutResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}

	sessionCart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionCart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	deliveryType := schedule.ServiceType(req.DeliveryType)
	if err := s.checkAvailability(settings, deliveryType, req.RequestedTime); err != nil {
		return nil, err
	}

	subtotal := sessionCart.Subtotal()

	fee, zoneName, err := s.resolveDelivery(settings, deliveryType, req, subtotal)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(ordering.NewOrderParams{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		Note:            req.Note,
		Lines:           sessionCart.Lines,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		DeliveryType:    deliveryType,
		DeliveryZone:    zoneName,
		RequestedTime:   req.RequestedTime,
	})
	if err != nil {
		return nil, err
	}

	order.SetDeviceInfo(ordering.DeviceInfo{
		UserAgent:  req.DeviceInfo.UserAgent,
		Language:   req.DeviceInfo.Language,
		Platform:   req.DeviceInfo.Platform,
		DeviceType: req.DeviceInfo.DeviceType,
		Browser:    req.DeviceInfo.Browser,
		OS:         req.DeviceInfo.OS,
	}, ipAddress)

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.recordPopularity(ctx, sessionCart.Lines)

	if err := s.publisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish order events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
	order.ClearDomainEvents()

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("delivery_type", string(order.DeliveryType)),
		zap.String("total", order.TotalAmount.StringFixed(2)))

	return &CheckoutResponse{
		Order:       *ToOrderResponse(order),
		WhatsAppURL: s.whatsapp.ForOrder(order),
	}, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// checkAvailability gates checkout on the resolved store state. A closed
// store still takes orders for a concrete later time.
func (s *OrderService) checkAvailability(settings *schedule.StoreSettings, deliveryType schedule.ServiceType, requestedTime string) error {
	preOrder := requestedTime != "" && requestedTime != ordering.RequestedASAP

	if !settings.IsOpen {
		return shared.ErrStoreClosed
	}

	availability := schedule.ResolveAvailability(settings, s.now())
	if !availability.IsOpen {
		if preOrder {
			return nil
		}
		return shared.ErrStoreClosed
	}

	switch deliveryType {
	case schedule.ServicePickup:
		if !availability.IsPickupOpen {
			return shared.NewDomainError("PICKUP_PAUSED", "Pickup is currently paused")
		}
	case schedule.ServiceDelivery:
		if !availability.IsDeliveryOpen {
			return shared.NewDomainError("DELIVERY_PAUSED", "Delivery is currently paused")
		}
	}

	return nil
}

// resolveDelivery applies the zone rules for delivery orders: the zone
// must exist, the subtotal must clear its minimum, and the zone's fee is
// added to the total
func (s *OrderService) resolveDelivery(
	settings *schedule.StoreSettings,
	deliveryType schedule.ServiceType,
	req CheckoutRequest,
	subtotal decimal.Decimal,
) (decimal.Decimal, string, error) {
	if deliveryType != schedule.ServiceDelivery {
		return decimal.Zero, "", nil
	}

	if req.CustomerAddress == "" {
		return decimal.Zero, "", shared.NewDomainError("MISSING_ADDRESS", "Delivery orders require an address")
	}
	if req.DeliveryZoneID == "" {
		return decimal.Zero, "", shared.NewDomainError("MISSING_ZONE", "Delivery orders require a delivery zone")
	}

	zone := settings.ZoneByID(req.DeliveryZoneID)
	if zone == nil {
		return decimal.Zero, "", shared.NewDomainError("UNKNOWN_ZONE", "The selected area is not serviced")
	}

	if subtotal.LessThan(zone.MinOrder) {
		return decimal.Zero, "", shared.NewDomainError("MIN_ORDER_NOT_MET",
			"Order total is below the minimum for "+zone.Name)
	}

	return zone.DeliveryFee, zone.Name, nil
}

func (s *OrderService) loadSettings(ctx context.Context) (*schedule.StoreSettings, error) {
	settings, err := s.settingsRepo.Load(ctx)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return schedule.DefaultSettings(), nil
	}
	return nil, err
}

// recordPopularity bumps the order counter of every item in the placed
// order. Failures only cost popularity stats, so they are logged and
// swallowed.
func (s *OrderService) recordPopularity(ctx context.Context, lines []cart.Line) {
	for _, line := range lines {
		item, err := s.items.FindByID(ctx, line.Item.ID)
		if err != nil {
			continue
		}
		item.RecordOrder(line.Quantity)
		if err := s.items.Save(ctx, item); err != nil {
			s.logger.Warn("failed to record item popularity",
				zap.String("item_id", item.ID.String()),
				zap.Error(err))
		}
	}
}
