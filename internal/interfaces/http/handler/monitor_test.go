package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	orderingapp "github.com/byserkan/backend/internal/application/ordering"
	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/ordering"
	"github.com/byserkan/backend/internal/infrastructure/event"
	"github.com/byserkan/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of ordering.OrderRepository
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

func createTestOrder(t *testing.T, name string) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder(ordering.NewOrderParams{
		CustomerName:  name,
		CustomerPhone: "015112345678",
		Lines: []cart.Line{{
			Item:     cart.ItemSnapshot{ID: uuid.New(), Number: 1, Name: "Drehspieß Tasche", Price: decimal.NewFromFloat(7.50)},
			Quantity: 1,
		}},
		Subtotal: decimal.NewFromFloat(7.50),
	})
	require.NoError(t, err)
	return order
}

func newMonitorHandler(repo ordering.OrderRepository) (*MonitorHandler, *orderingapp.MonitorService) {
	svc := orderingapp.NewMonitorService(repo, event.NewInMemoryEventBus(zap.NewNop()), zap.NewNop())
	return NewMonitorHandler(svc, zap.NewNop()), svc
}

func TestMonitorHandler_List(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h, _ := newMonitorHandler(mockRepo)

	accepted := createTestOrder(t, "Anna")
	accepted.Accept()
	fresh := createTestOrder(t, "Bernd")

	mockRepo.On("FindAllNewestFirst", mock.Anything).Return([]ordering.Order{*accepted, *fresh}, nil)

	router := gin.New()
	router.GET("/monitor/orders", h.List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/monitor/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders := resp.Data.([]interface{})
	require.Len(t, orders, 2)

	// new orders sort above accepted ones
	first := orders[0].(map[string]interface{})
	assert.Equal(t, "Bernd", first["customer_name"])
}

func TestMonitorHandler_Accept(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h, _ := newMonitorHandler(mockRepo)

	order := createTestOrder(t, "Clara")
	mockRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	mockRepo.On("Save", mock.Anything, order).Return(nil)

	router := gin.New()
	router.POST("/monitor/orders/:id/accept", h.Accept)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/monitor/orders/"+order.ID.String()+"/accept", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"monitor_status":"accepted"`)
	mockRepo.AssertExpectations(t)
}

func TestMonitorHandler_Stream(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	h, svc := newMonitorHandler(mockRepo)
	h.heartbeat = time.Hour // keep heartbeats out of the assertion window

	order := createTestOrder(t, "Deniz")
	mockRepo.On("FindAllNewestFirst", mock.Anything).Return([]ordering.Order{}, nil)
	mockRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	mockRepo.On("Save", mock.Anything, order).Return(nil)

	require.NoError(t, svc.Start(context.Background()))
	defer func() { _ = svc.Stop(context.Background()) }()

	router := gin.New()
	router.GET("/monitor/stream", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/monitor/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	// give the stream time to subscribe, then push an update through Accept
	time.Sleep(100 * time.Millisecond)
	_, err := svc.Accept(context.Background(), order.ID)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not shut down on client disconnect")
	}

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: status_changed")
	assert.Contains(t, body, `"order_id":"`+order.ID.String()+`"`)
}

func TestWriteSSE(t *testing.T) {
	var sb strings.Builder
	writeSSE(&sb, sseMessage{Event: "order_created", Data: `{"alert":true}`})
	assert.Equal(t, "event: order_created\ndata: {\"alert\":true}\n\n", sb.String())

	sb.Reset()
	writeSSE(&sb, sseMessage{Data: "{}"})
	assert.Equal(t, "data: {}\n\n", sb.String())
}
