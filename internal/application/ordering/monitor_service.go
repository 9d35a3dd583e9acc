package ordering

import (
	"context"
	"sort"
	"sync"

	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MonitorUpdate is one realtime notification pushed to monitor screens
type MonitorUpdate struct {
	Type    string        `json:"type"`
	OrderID uuid.UUID     `json:"order_id"`
	Alert   bool          `json:"alert"`
	Order   OrderResponse `json:"order"`
}

// Update types pushed to monitor subscribers
const (
	UpdateOrderCreated  = "order_created"
	UpdateStatusChanged = "status_changed"
)

// monitorFeedBuffer bounds the per-subscriber queue; a stalled monitor
// screen drops updates instead of blocking the event bus
const monitorFeedBuffer = 16

// MonitorService drives the staff order monitor: the sorted order list,
// the accept/close workflow and the realtime update feed. An order
// triggers the new-order alert at most once per process lifetime, no
// matter how often the feed reconnects.
type MonitorService struct {
	orders   ordering.OrderRepository
	bus      shared.EventBus
	logger   *zap.Logger
	mu       sync.Mutex
	seen     map[uuid.UUID]struct{}
	feeds    map[int]chan MonitorUpdate
	nextFeed int
	started  bool
}

// NewMonitorService creates a new MonitorService
func NewMonitorService(orders ordering.OrderRepository, bus shared.EventBus, logger *zap.Logger) *MonitorService {
	return &MonitorService{
		orders: orders,
		bus:    bus,
		logger: logger,
		seen:   make(map[uuid.UUID]struct{}),
		feeds:  make(map[int]chan MonitorUpdate),
	}
}

// Start seeds the seen set with all existing orders and subscribes to
// order events. Orders present before startup never alert.
func (s *MonitorService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return shared.NewDomainError("ALREADY_STARTED", "Monitor service is already started")
	}

	existing, err := s.orders.FindAllNewestFirst(ctx)
	if err != nil {
		return err
	}
	for i := range existing {
		s.seen[existing[i].ID] = struct{}{}
	}

	s.bus.Subscribe(s, ordering.EventTypeOrderCreated, ordering.EventTypeOrderMonitorStatusChanged)
	s.started = true

	s.logger.Info("order monitor started", zap.Int("seeded_orders", len(existing)))
	return nil
}

// Stop unsubscribes from order events and closes all feeds
func (s *MonitorService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.bus.Unsubscribe(s)
	for id, feed := range s.feeds {
		close(feed)
		delete(s.feeds, id)
	}
	s.started = false

	s.logger.Info("order monitor stopped")
	return nil
}

// EventTypes implements shared.EventHandler
func (s *MonitorService) EventTypes() []string {
	return []string{ordering.EventTypeOrderCreated, ordering.EventTypeOrderMonitorStatusChanged}
}

// Handle implements shared.EventHandler. The stored row is re-fetched
// rather than trusting the event payload, so subscribers always see the
// persisted state.
func (s *MonitorService) Handle(ctx context.Context, event shared.DomainEvent) error {
	order, err := s.orders.FindByID(ctx, event.AggregateID())
	if err != nil {
		return err
	}

	switch event.EventType() {
	case ordering.EventTypeOrderCreated:
		s.publishCreated(order)
	case ordering.EventTypeOrderMonitorStatusChanged:
		s.broadcast(MonitorUpdate{
			Type:    UpdateStatusChanged,
			OrderID: order.ID,
			Order:   *ToOrderResponse(order),
		})
	}

	return nil
}

// publishCreated pushes a new-order update, alerting only the first time
// an unseen order in the "new" state arrives
func (s *MonitorService) publishCreated(order *ordering.Order) {
	s.mu.Lock()
	_, alreadySeen := s.seen[order.ID]
	s.seen[order.ID] = struct{}{}
	s.mu.Unlock()

	alert := !alreadySeen && order.MonitorStatus == ordering.MonitorNew

	s.broadcast(MonitorUpdate{
		Type:    UpdateOrderCreated,
		OrderID: order.ID,
		Alert:   alert,
		Order:   *ToOrderResponse(order),
	})
}

// List returns all orders for the monitor screen: new first, then
// accepted, then closed, newest first within each group
func (s *MonitorService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	// repository order is newest first; the stable sort keeps that
	// within each status group
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].MonitorStatus.Rank() < orders[j].MonitorStatus.Rank()
	})

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}

	return responses, nil
}

// Accept moves an order to the accepted monitor state
func (s *MonitorService) Accept(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*ordering.Order).Accept)
}

// CloseOut moves an order to the closed monitor state
func (s *MonitorService) CloseOut(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*ordering.Order).CloseOut)
}

func (s *MonitorService) transition(ctx context.Context, id uuid.UUID, apply func(*ordering.Order)) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(order)

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish monitor events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
	order.ClearDomainEvents()

	return ToOrderResponse(order), nil
}

// Subscribe registers a feed for realtime monitor updates. The returned
// cancel function must be called when the consumer disconnects.
func (s *MonitorService) Subscribe() (<-chan MonitorUpdate, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextFeed
	s.nextFeed++
	feed := make(chan MonitorUpdate, monitorFeedBuffer)
	s.feeds[id] = feed

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if f, ok := s.feeds[id]; ok {
			close(f)
			delete(s.feeds, id)
		}
	}

	return feed, cancel
}

// broadcast fans an update out to all feeds, dropping it for slow ones
func (s *MonitorService) broadcast(update MonitorUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, feed := range s.feeds {
		select {
		case feed <- update:
		default:
			s.logger.Warn("monitor feed full, dropping update",
				zap.Int("feed_id", id),
				zap.String("type", update.Type))
		}
	}
}

var _ shared.EventHandler = (*MonitorService)(nil)
