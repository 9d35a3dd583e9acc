package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	orderingapp "github.com/byserkan/backend/internal/application/ordering"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MonitorHandler serves the order monitor: the live list, status
// transitions and the SSE stream feeding the monitor screen.
type MonitorHandler struct {
	BaseHandler
	monitorService *orderingapp.MonitorService
	logger         *zap.Logger
	heartbeat      time.Duration
}

// NewMonitorHandler creates a new MonitorHandler
func NewMonitorHandler(monitorService *orderingapp.MonitorService, logger *zap.Logger) *MonitorHandler {
	return &MonitorHandler{
		monitorService: monitorService,
		logger:         logger,
		heartbeat:      30 * time.Second,
	}
}

// List returns all orders sorted for the monitor: new first, then accepted,
// then closed, newest first within each group
func (h *MonitorHandler) List(c *gin.Context) {
	orders, err := h.monitorService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Accept moves an order from new to accepted
func (h *MonitorHandler) Accept(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	order, err := h.monitorService.Accept(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// CloseOut moves an order to closed
func (h *MonitorHandler) CloseOut(c *gin.Context) {
	id, ok := h.bindUUIDParam(c)
	if !ok {
		return
	}

	order, err := h.monitorService.CloseOut(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// sseMessage is one event on the wire
type sseMessage struct {
	Event string
	Data  string
}

// Stream establishes a Server-Sent Events connection carrying monitor
// updates. The monitor screen uses it to refresh without polling and to
// ring the bell on unseen orders.
func (h *MonitorHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	feed, cancel := h.monitorService.Subscribe()
	defer cancel()

	h.logger.Info("Monitor stream connected", zap.String("client_ip", c.ClientIP()))

	writeSSE(c.Writer, sseMessage{
		Event: "connected",
		Data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
	})
	c.Writer.Flush()

	reqCtx := c.Request.Context()
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-reqCtx.Done():
			h.logger.Info("Monitor stream disconnected", zap.String("client_ip", c.ClientIP()))
			return
		case <-ticker.C:
			writeSSE(c.Writer, sseMessage{
				Event: "heartbeat",
				Data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
			})
			c.Writer.Flush()
		case update, ok := <-feed:
			if !ok {
				return
			}
			data, err := json.Marshal(update)
			if err != nil {
				h.logger.Error("Failed to marshal monitor update", zap.Error(err))
				continue
			}
			writeSSE(c.Writer, sseMessage{
				Event: update.Type,
				Data:  string(data),
			})
			c.Writer.Flush()
		}
	}
}

func writeSSE(w io.Writer, msg sseMessage) {
	if msg.Event != "" {
		fmt.Fprintf(w, "event: %s\n", msg.Event)
	}
	fmt.Fprintf(w, "data: %s\n\n", msg.Data)
}
