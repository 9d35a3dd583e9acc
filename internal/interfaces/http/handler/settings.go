package handler

import (
	settingsapp "github.com/byserkan/backend/internal/application/settings"
	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles store settings and the public availability endpoint
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Availability returns the current pickup and delivery availability. Public,
// polled by the storefront.
func (h *SettingsHandler) Availability(c *gin.Context) {
	availability, err := h.settingsService.Availability(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, availability)
}

// Get returns the full settings document
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Update replaces the settings document
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsapp.UpdateSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Pause pauses the pickup or delivery channel for the rest of the day
func (h *SettingsHandler) Pause(c *gin.Context) {
	settings, err := h.settingsService.Pause(c.Request.Context(), serviceParam(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Resume lifts a pause before its automatic expiry
func (h *SettingsHandler) Resume(c *gin.Context) {
	settings, err := h.settingsService.Resume(c.Request.Context(), serviceParam(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

func serviceParam(c *gin.Context) schedule.ServiceType {
	return schedule.ServiceType(c.Param("service"))
}
