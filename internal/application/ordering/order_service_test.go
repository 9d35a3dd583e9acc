package ordering

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/byserkan/backend/internal/infrastructure/cache"
	"github.com/byserkan/backend/internal/infrastructure/event"
	"github.com/byserkan/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllNewestFirst(ctx context.Context) ([]ordering.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMenuItemRepository is a mock implementation of MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByNumber(ctx context.Context, number int) (*catalog.MenuItem, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindPopular(ctx context.Context, limit int) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ExistsByNumber(ctx context.Context, number int, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) SaveBatch(ctx context.Context, items []*catalog.MenuItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) error {
	args := m.Called(ctx, fromCategoryID, toCategoryID)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Load(ctx context.Context) (*schedule.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *schedule.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// mondayNoon is inside the default schedule's Monday window
func mondayNoon() time.Time {
	return time.Date(2026, time.August, 3, 12, 0, 0, 0, time.UTC)
}

type checkoutFixture struct {
	service  *OrderService
	orders   *MockOrderRepository
	items    *MockMenuItemRepository
	settings *MockSettingsRepository
	carts    cart.Store
	item     *catalog.MenuItem
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	orders := new(MockOrderRepository)
	items := new(MockMenuItemRepository)
	settingsRepo := new(MockSettingsRepository)
	carts := cache.NewInMemoryCartStore(0)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	link := notification.NewWhatsAppLink("4915566073118")

	service := NewOrderService(orders, carts, items, settingsRepo, bus, link, zap.NewNop()).
		WithClock(mondayNoon)

	item, err := catalog.NewMenuItem(1, "Döner Kebab", decimal.NewFromFloat(7.50))
	require.NoError(t, err)

	return &checkoutFixture{
		service:  service,
		orders:   orders,
		items:    items,
		settings: settingsRepo,
		carts:    carts,
		item:     item,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, sessionID string, quantity int) {
	t.Helper()
	c := cart.New()
	for i := 0; i < quantity; i++ {
		c.AddItem(cart.SnapshotOf(f.item), cart.ItemSelections{})
	}
	require.NoError(t, f.carts.Save(context.Background(), sessionID, c))
}

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Max Mustermann",
		CustomerPhone: "+491701234567",
		DeliveryType:  "pickup",
		RequestedTime: "asap",
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 2)

	f.settings.On("Load", ctx).Return(schedule.DefaultSettings(), nil)
	f.orders.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.items.On("FindByID", ctx, f.item.ID).Return(f.item, nil)
	f.items.On("Save", ctx, f.item).Return(nil)

	result, err := f.service.Checkout(ctx, "session-1", "203.0.113.9", validCheckout())

	require.NoError(t, err)
	assert.Equal(t, "pending", result.Order.Status)
	assert.Equal(t, "new", result.Order.MonitorStatus)
	assert.Equal(t, "15.00", result.Order.TotalAmount.StringFixed(2))
	assert.Equal(t, 2, result.Order.TotalItems)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/4915566073118?text="))

	// popularity counter of the ordered item was bumped
	assert.Equal(t, 2, f.item.OrderCount)

	// the cart is cleared after a successful checkout
	after, err := f.carts.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, after.IsEmpty())
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.service.Checkout(ctx, "session-1", "", validCheckout())

	assert.ErrorIs(t, err, shared.ErrEmptyCart)
	f.orders.AssertNotCalled(t, "Save")
}

func TestOrderService_Checkout_StoreClosed(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 1)

	settings := schedule.DefaultSettings()
	settings.PickupSchedule.Monday.IsOpen = false
	f.settings.On("Load", ctx).Return(settings, nil)

	_, err := f.service.Checkout(ctx, "session-1", "", validCheckout())

	assert.ErrorIs(t, err, shared.ErrStoreClosed)
}

func TestOrderService_Checkout_ClosedButPreOrderAllowed(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 1)

	settings := schedule.DefaultSettings()
	settings.PickupSchedule.Monday.Open = "17:00"
	f.settings.On("Load", ctx).Return(settings, nil)
	f.orders.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.items.On("FindByID", ctx, f.item.ID).Return(f.item, nil)
	f.items.On("Save", ctx, f.item).Return(nil)

	req := validCheckout()
	req.RequestedTime = "18:30"

	result, err := f.service.Checkout(ctx, "session-1", "", req)

	require.NoError(t, err)
	assert.Equal(t, "18:30", result.Order.RequestedTime)
}

func TestOrderService_Checkout_PickupPaused(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 1)

	settings := schedule.DefaultSettings()
	settings.PausePickup(mondayNoon())
	f.settings.On("Load", ctx).Return(settings, nil)

	_, err := f.service.Checkout(ctx, "session-1", "", validCheckout())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PICKUP_PAUSED", domainErr.Code)
}

func TestOrderService_Checkout_DeliveryZoneRules(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 1) // 7.50, below the 20.00 minimum

	f.settings.On("Load", ctx).Return(schedule.DefaultSettings(), nil)

	req := validCheckout()
	req.DeliveryType = "delivery"
	req.CustomerAddress = "Feldweg 3"
	req.DeliveryZoneID = "hahausen"

	_, err := f.service.Checkout(ctx, "session-1", "", req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MIN_ORDER_NOT_MET", domainErr.Code)
}

func TestOrderService_Checkout_DeliveryUnknownZone(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 3)

	f.settings.On("Load", ctx).Return(schedule.DefaultSettings(), nil)

	req := validCheckout()
	req.DeliveryType = "delivery"
	req.CustomerAddress = "Feldweg 3"
	req.DeliveryZoneID = "atlantis"

	_, err := f.service.Checkout(ctx, "session-1", "", req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNKNOWN_ZONE", domainErr.Code)
}

func TestOrderService_Checkout_DeliveryRequiresAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 3)

	f.settings.On("Load", ctx).Return(schedule.DefaultSettings(), nil)

	req := validCheckout()
	req.DeliveryType = "delivery"
	req.DeliveryZoneID = "lutter"

	_, err := f.service.Checkout(ctx, "session-1", "", req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MISSING_ADDRESS", domainErr.Code)
}

func TestOrderService_Checkout_DeliverySuccessRecordsZone(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 3) // 22.50, clears the 20.00 minimum

	f.settings.On("Load", ctx).Return(schedule.DefaultSettings(), nil)
	f.orders.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.items.On("FindByID", ctx, f.item.ID).Return(f.item, nil)
	f.items.On("Save", ctx, f.item).Return(nil)

	req := validCheckout()
	req.DeliveryType = "delivery"
	req.CustomerAddress = "Feldweg 3, Hahausen"
	req.DeliveryZoneID = "hahausen"

	result, err := f.service.Checkout(ctx, "session-1", "", req)

	require.NoError(t, err)
	assert.Equal(t, "delivery", result.Order.DeliveryType)
	assert.Equal(t, "Hahausen", result.Order.DeliveryZone)
	assert.Equal(t, "0.00", result.Order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "22.50", result.Order.TotalAmount.StringFixed(2))
}

func TestOrderService_Checkout_MasterSwitchClosed(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, "session-1", 1)

	settings := schedule.DefaultSettings()
	settings.IsOpen = false
	f.settings.On("Load", ctx).Return(settings, nil)

	_, err := f.service.Checkout(ctx, "session-1", "", validCheckout())

	assert.ErrorIs(t, err, shared.ErrStoreClosed)
}
