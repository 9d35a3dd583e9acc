package settings

import (
	"time"

	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayScheduleRequest is one weekday's operating window
type DayScheduleRequest struct {
	IsOpen bool   `json:"is_open"`
	Open   string `json:"open" binding:"required_if=IsOpen true,omitempty,len=5"`
	Close  string `json:"close" binding:"required_if=IsOpen true,omitempty,len=5"`
}

// WeekScheduleRequest covers all seven weekdays
type WeekScheduleRequest struct {
	Monday    DayScheduleRequest `json:"monday"`
	Tuesday   DayScheduleRequest `json:"tuesday"`
	Wednesday DayScheduleRequest `json:"wednesday"`
	Thursday  DayScheduleRequest `json:"thursday"`
	Friday    DayScheduleRequest `json:"friday"`
	Saturday  DayScheduleRequest `json:"saturday"`
	Sunday    DayScheduleRequest `json:"sunday"`
}

// AddressRequest is the store's postal address
type AddressRequest struct {
	Street string `json:"street" binding:"required,max=200"`
	City   string `json:"city" binding:"required,max=100"`
	Zip    string `json:"zip" binding:"required,max=10"`
	Phone  string `json:"phone" binding:"required,max=30"`
}

// DeliveryZoneRequest is one serviced delivery area
type DeliveryZoneRequest struct {
	ID          string          `json:"id" binding:"required,max=50"`
	Name        string          `json:"name" binding:"required,max=100"`
	ZipCode     string          `json:"zip_code" binding:"required,max=10"`
	MinOrder    decimal.Decimal `json:"min_order"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

// UpdateSettingsRequest replaces the whole settings document
type UpdateSettingsRequest struct {
	IsOpen              bool                  `json:"is_open"`
	IsPickupAvailable   bool                  `json:"is_pickup_available"`
	IsDeliveryAvailable bool                  `json:"is_delivery_available"`
	PickupSchedule      WeekScheduleRequest   `json:"pickup_schedule" binding:"required"`
	DeliverySchedule    WeekScheduleRequest   `json:"delivery_schedule" binding:"required"`
	Address             AddressRequest        `json:"address" binding:"required"`
	DeliveryZones       []DeliveryZoneRequest `json:"delivery_zones" binding:"dive"`
}

// SettingsResponse represents the settings document in API responses
type SettingsResponse struct {
	ID                  uuid.UUID               `json:"id"`
	IsOpen              bool                    `json:"is_open"`
	IsPickupAvailable   bool                    `json:"is_pickup_available"`
	IsDeliveryAvailable bool                    `json:"is_delivery_available"`
	PausedDatePickup    *string                 `json:"paused_date_pickup,omitempty"`
	PausedDateDelivery  *string                 `json:"paused_date_delivery,omitempty"`
	PickupSchedule      schedule.WeekSchedule   `json:"pickup_schedule"`
	DeliverySchedule    schedule.WeekSchedule   `json:"delivery_schedule"`
	Address             schedule.Address        `json:"address"`
	DeliveryZones       []schedule.DeliveryZone `json:"delivery_zones"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// AvailabilityResponse is the storefront availability snapshot: the
// resolved open state plus the next opening window of each channel
type AvailabilityResponse struct {
	schedule.Availability
	NextPickupSlot   schedule.Slot `json:"nextPickupSlot"`
	NextDeliverySlot schedule.Slot `json:"nextDeliverySlot"`
}

// ToSettingsResponse converts the settings aggregate to its response DTO
func ToSettingsResponse(s *schedule.StoreSettings) *SettingsResponse {
	return &SettingsResponse{
		ID:                  s.ID,
		IsOpen:              s.IsOpen,
		IsPickupAvailable:   s.IsPickupAvailable,
		IsDeliveryAvailable: s.IsDeliveryAvailable,
		PausedDatePickup:    s.PausedDatePickup,
		PausedDateDelivery:  s.PausedDateDelivery,
		PickupSchedule:      s.PickupSchedule,
		DeliverySchedule:    s.DeliverySchedule,
		Address:             s.Address,
		DeliveryZones:       s.DeliveryZones,
		UpdatedAt:           s.UpdatedAt,
	}
}

func (r WeekScheduleRequest) toDomain() schedule.WeekSchedule {
	return schedule.WeekSchedule{
		Monday:    r.Monday.toDomain(),
		Tuesday:   r.Tuesday.toDomain(),
		Wednesday: r.Wednesday.toDomain(),
		Thursday:  r.Thursday.toDomain(),
		Friday:    r.Friday.toDomain(),
		Saturday:  r.Saturday.toDomain(),
		Sunday:    r.Sunday.toDomain(),
	}
}

func (r DayScheduleRequest) toDomain() schedule.DaySchedule {
	return schedule.DaySchedule{
		IsOpen: r.IsOpen,
		Open:   r.Open,
		Close:  r.Close,
	}
}
