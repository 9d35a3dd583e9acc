package settings

import (
	"context"
	"errors"
	"time"

	"github.com/byserkan/backend/internal/domain/schedule"
	"github.com/byserkan/backend/internal/domain/shared"
)

// SettingsService handles the store settings document and the derived
// availability state
type SettingsService struct {
	repo schedule.SettingsRepository
	now  func() time.Time
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo schedule.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the time source, used by tests
func (s *SettingsService) WithClock(now func() time.Time) *SettingsService {
	s.now = now
	return s
}

// Get returns the settings document, bootstrapping the default one on
// first access
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ToSettingsResponse(settings), nil
}

// Update replaces the whole settings document. Pause markers are kept:
// pausing and resuming go through their dedicated operations.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	settings.IsOpen = req.IsOpen
	settings.IsPickupAvailable = req.IsPickupAvailable
	settings.IsDeliveryAvailable = req.IsDeliveryAvailable
	settings.PickupSchedule = req.PickupSchedule.toDomain()
	settings.DeliverySchedule = req.DeliverySchedule.toDomain()
	settings.Address = schedule.Address{
		Street: req.Address.Street,
		City:   req.Address.City,
		Zip:    req.Address.Zip,
		Phone:  req.Address.Phone,
	}

	zones := make([]schedule.DeliveryZone, len(req.DeliveryZones))
	for i, zone := range req.DeliveryZones {
		zones[i] = schedule.DeliveryZone{
			ID:          zone.ID,
			Name:        zone.Name,
			ZipCode:     zone.ZipCode,
			MinOrder:    zone.MinOrder,
			DeliveryFee: zone.DeliveryFee,
		}
	}
	settings.DeliveryZones = zones
	settings.UpdatedAt = s.now()
	settings.IncrementVersion()

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return ToSettingsResponse(settings), nil
}

// Pause pauses one service channel for the rest of the calendar day
func (s *SettingsService) Pause(ctx context.Context, service schedule.ServiceType) (*SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	switch service {
	case schedule.ServicePickup:
		settings.PausePickup(s.now())
	case schedule.ServiceDelivery:
		settings.PauseDelivery(s.now())
	default:
		return nil, shared.NewDomainError("INVALID_SERVICE", "Unknown service type")
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return ToSettingsResponse(settings), nil
}

// Resume clears the pause of one service channel
func (s *SettingsService) Resume(ctx context.Context, service schedule.ServiceType) (*SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	switch service {
	case schedule.ServicePickup:
		settings.ResumePickup()
	case schedule.ServiceDelivery:
		settings.ResumeDelivery()
	default:
		return nil, shared.NewDomainError("INVALID_SERVICE", "Unknown service type")
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return ToSettingsResponse(settings), nil
}

// Availability resolves the storefront availability at the current
// instant. The master switch short-circuits the schedule: a store
// flagged closed is closed regardless of the weekly hours.
func (s *SettingsService) Availability(ctx context.Context) (*AvailabilityResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if !settings.IsOpen {
		return &AvailabilityResponse{
			Availability: schedule.Availability{
				Message: "Momentan keine Bestellannahme",
			},
			NextPickupSlot:   schedule.NextAvailableSlot(settings, schedule.ServicePickup, now),
			NextDeliverySlot: schedule.NextAvailableSlot(settings, schedule.ServiceDelivery, now),
		}, nil
	}

	return &AvailabilityResponse{
		Availability:     schedule.ResolveAvailability(settings, now),
		NextPickupSlot:   schedule.NextAvailableSlot(settings, schedule.ServicePickup, now),
		NextDeliverySlot: schedule.NextAvailableSlot(settings, schedule.ServiceDelivery, now),
	}, nil
}

// load reads the persisted document, falling back to the bootstrap
// defaults on first access
func (s *SettingsService) load(ctx context.Context) (*schedule.StoreSettings, error) {
	settings, err := s.repo.Load(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	settings = schedule.DefaultSettings()
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
