package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/infrastructure/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testOrder(t *testing.T, name string) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder(ordering.NewOrderParams{
		CustomerName:  name,
		CustomerPhone: "+49170000000",
		Lines: []cart.Line{
			{Item: cart.ItemSnapshot{Number: 1, Name: "Döner Kebab", Price: decimal.NewFromFloat(7.50)}, Quantity: 1},
		},
		Subtotal: decimal.NewFromFloat(7.50),
	})
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestMonitorService_List_SortsByWorkflowThenNewest(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()

	closed := testOrder(t, "Alt")
	closed.CloseOut()
	accepted := testOrder(t, "Mittel")
	accepted.Accept()
	newOlder := testOrder(t, "Neu Alt")
	newOlder.CreatedAt = time.Now().Add(-10 * time.Minute)
	newNewer := testOrder(t, "Neu Frisch")

	// repository returns newest first
	repo.On("FindAllNewestFirst", ctx).Return([]ordering.Order{*newNewer, *accepted, *newOlder, *closed}, nil)

	result, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, result, 4)
	assert.Equal(t, "Neu Frisch", result[0].CustomerName)
	assert.Equal(t, "Neu Alt", result[1].CustomerName)
	assert.Equal(t, "Mittel", result[2].CustomerName)
	assert.Equal(t, "Alt", result[3].CustomerName)
}

func TestMonitorService_AlertsOnlyForUnseenNewOrders(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()

	preexisting := testOrder(t, "Bestand")
	repo.On("FindAllNewestFirst", ctx).Return([]ordering.Order{*preexisting}, nil)
	require.NoError(t, service.Start(ctx))

	feed, cancel := service.Subscribe()
	defer cancel()

	// an order that existed at startup re-announced: no alert
	repo.On("FindByID", ctx, preexisting.ID).Return(preexisting, nil)
	require.NoError(t, bus.Publish(ctx, ordering.NewOrderCreatedEvent(preexisting)))

	update := <-feed
	assert.Equal(t, UpdateOrderCreated, update.Type)
	assert.False(t, update.Alert)

	// a genuinely new order alerts exactly once
	fresh := testOrder(t, "Frisch")
	repo.On("FindByID", ctx, fresh.ID).Return(fresh, nil)
	require.NoError(t, bus.Publish(ctx, ordering.NewOrderCreatedEvent(fresh)))

	update = <-feed
	assert.True(t, update.Alert)
	assert.Equal(t, fresh.ID, update.OrderID)

	// the same order announced again no longer alerts
	require.NoError(t, bus.Publish(ctx, ordering.NewOrderCreatedEvent(fresh)))
	update = <-feed
	assert.False(t, update.Alert)
}

func TestMonitorService_Accept_PublishesStatusChange(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()
	repo.On("FindAllNewestFirst", ctx).Return([]ordering.Order{}, nil)
	require.NoError(t, service.Start(ctx))

	feed, cancel := service.Subscribe()
	defer cancel()

	order := testOrder(t, "Kunde")
	repo.On("FindByID", ctx, order.ID).Return(order, nil)
	repo.On("Save", ctx, order).Return(nil)

	result, err := service.Accept(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "accepted", result.MonitorStatus)

	update := <-feed
	assert.Equal(t, UpdateStatusChanged, update.Type)
	assert.Equal(t, order.ID, update.OrderID)
	assert.Equal(t, "accepted", update.Order.MonitorStatus)
	repo.AssertExpectations(t)
}

func TestMonitorService_CloseOut(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()
	order := testOrder(t, "Kunde")
	order.Accept()
	order.ClearDomainEvents()

	repo.On("FindByID", ctx, order.ID).Return(order, nil)
	repo.On("Save", ctx, order).Return(nil)

	result, err := service.CloseOut(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "closed", result.MonitorStatus)
}

func TestMonitorService_SubscribeCancelClosesFeed(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	feed, cancel := service.Subscribe()
	cancel()

	_, open := <-feed
	assert.False(t, open)
}

func TestMonitorService_Start_Twice(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()
	repo.On("FindAllNewestFirst", ctx).Return([]ordering.Order{}, nil)

	require.NoError(t, service.Start(ctx))
	assert.Error(t, service.Start(ctx))
	require.NoError(t, service.Stop(ctx))
}

func TestMonitorService_Stop_ClosesFeeds(t *testing.T) {
	repo := new(MockOrderRepository)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	service := NewMonitorService(repo, bus, zap.NewNop())

	ctx := context.Background()
	repo.On("FindAllNewestFirst", ctx).Return([]ordering.Order{}, nil)
	require.NoError(t, service.Start(ctx))

	feed, _ := service.Subscribe()
	require.NoError(t, service.Stop(ctx))

	_, open := <-feed
	assert.False(t, open)

	// events after stop no longer reach the handler
	order := testOrder(t, "Spät")
	require.NoError(t, bus.Publish(ctx, ordering.NewOrderCreatedEvent(order)))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, order.ID)
}
