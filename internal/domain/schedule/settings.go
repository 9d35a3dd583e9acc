package schedule

import (
	"time"

	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ServiceType selects one of the two independently schedulable channels
type ServiceType string

const (
	ServicePickup   ServiceType = "pickup"
	ServiceDelivery ServiceType = "delivery"
)

// PauseDateLayout is the calendar-date format of the pause markers
const PauseDateLayout = "2006-01-02"

// Address is the store's postal address and contact phone
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

// DeliveryZone is one serviced area with its order minimum and fee
type DeliveryZone struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ZipCode     string          `json:"zipCode"`
	MinOrder    decimal.Decimal `json:"minOrder"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
}

// StoreSettings aggregates the store's operating configuration. It is
// loaded once per session, mutated only through the admin settings UI,
// and re-persisted as a whole document on save.
type StoreSettings struct {
	shared.BaseAggregateRoot
	IsOpen              bool           `gorm:"not null;default:true"`
	IsPickupAvailable   bool           `gorm:"not null;default:true"`
	IsDeliveryAvailable bool           `gorm:"not null;default:true"`
	PausedDatePickup    *string        `gorm:"type:varchar(10)"`
	PausedDateDelivery  *string        `gorm:"type:varchar(10)"`
	PickupSchedule      WeekSchedule   `gorm:"serializer:json"`
	DeliverySchedule    WeekSchedule   `gorm:"serializer:json"`
	Address             Address        `gorm:"serializer:json"`
	DeliveryZones       []DeliveryZone `gorm:"serializer:json"`
}

// TableName returns the table name for GORM
func (StoreSettings) TableName() string {
	return "store_settings"
}

// DefaultSettings returns the bootstrap settings document used when no
// persisted record exists yet
func DefaultSettings() *StoreSettings {
	week := DefaultWeekSchedule()
	return &StoreSettings{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		IsOpen:              true,
		IsPickupAvailable:   true,
		IsDeliveryAvailable: true,
		PickupSchedule:      week,
		DeliverySchedule:    week,
		Address: Address{
			Street: "Frankfurter Str. 7",
			City:   "Lutter am Barenberge",
			Zip:    "38729",
			Phone:  "+491781555888",
		},
		DeliveryZones: DefaultDeliveryZones(),
	}
}

// DefaultDeliveryZones returns the bootstrap delivery zone list
func DefaultDeliveryZones() []DeliveryZone {
	free := decimal.Zero
	min20 := decimal.NewFromInt(20)
	return []DeliveryZone{
		{ID: "lutter", Name: "Lutter am Barenberge", ZipCode: "38729", MinOrder: free, DeliveryFee: free},
		{ID: "ostlutter", Name: "Ostlutter", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "wallmoden", Name: "Wallmoden", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "alt-wallmoden", Name: "Alt Wallmoden", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "neuwallmoden", Name: "Neuwallmoden", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "nauen", Name: "Nauen", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "hahausen", Name: "Hahausen", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "bodenstein", Name: "Bodenstein", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "rhode", Name: "Rhode", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
		{ID: "sehlde", Name: "Sehlde", ZipCode: "38729", MinOrder: min20, DeliveryFee: free},
	}
}

// PausePickup pauses pickup for the rest of the calendar day
func (s *StoreSettings) PausePickup(today time.Time) {
	date := today.Format(PauseDateLayout)
	s.IsPickupAvailable = false
	s.PausedDatePickup = &date
	s.touch()
}

// PauseDelivery pauses delivery for the rest of the calendar day
func (s *StoreSettings) PauseDelivery(today time.Time) {
	date := today.Format(PauseDateLayout)
	s.IsDeliveryAvailable = false
	s.PausedDateDelivery = &date
	s.touch()
}

// ResumePickup clears a pickup pause
func (s *StoreSettings) ResumePickup() {
	s.IsPickupAvailable = true
	s.PausedDatePickup = nil
	s.touch()
}

// ResumeDelivery clears a delivery pause
func (s *StoreSettings) ResumeDelivery() {
	s.IsDeliveryAvailable = true
	s.PausedDateDelivery = nil
	s.touch()
}

// ZoneByZip finds the delivery zone serving a zip code
func (s *StoreSettings) ZoneByZip(zip string) *DeliveryZone {
	for i := range s.DeliveryZones {
		if s.DeliveryZones[i].ZipCode == zip {
			return &s.DeliveryZones[i]
		}
	}
	return nil
}

// ZoneByID finds a delivery zone by its identifier
func (s *StoreSettings) ZoneByID(id string) *DeliveryZone {
	for i := range s.DeliveryZones {
		if s.DeliveryZones[i].ID == id {
			return &s.DeliveryZones[i]
		}
	}
	return nil
}

func (s *StoreSettings) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
