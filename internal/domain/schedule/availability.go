package schedule

import (
	"fmt"
	"time"
)

// Availability is the resolved open/closed state of the store at one
// instant. IsOpen is the umbrella gate; the sub-flags let a caller allow
// delivery while pickup is paused (or vice versa) as long as the
// operating hours permit ordering at all.
type Availability struct {
	IsOpen           bool   `json:"isOpen"`
	IsPickupOpen     bool   `json:"isPickupOpen"`
	IsDeliveryOpen   bool   `json:"isDeliveryOpen"`
	Message          string `json:"message,omitempty"`
	DeliveryMessage  string `json:"deliveryMessage,omitempty"`
	NextOpen         string `json:"nextOpen,omitempty"`
	NextDeliveryOpen string `json:"nextDeliveryOpen,omitempty"`
}

// Slot is the next opening window of one service channel, used to
// pre-fill the "pre-order for later" time picker
type Slot struct {
	DayLabel string `json:"dayLabel"`
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsToday  bool   `json:"isToday"`
}

// fallbackLabel is returned when no day of the week is open
const fallbackLabel = "Demnächst"

// effectiveAvailable applies the pause auto-reset: a manual pause whose
// recorded date is not today's calendar date has silently expired.
func effectiveAvailable(available bool, pausedDate *string, now time.Time) bool {
	if available {
		return true
	}
	if pausedDate != nil && *pausedDate != now.Format(PauseDateLayout) {
		return true
	}
	return false
}

// ResolveAvailability computes whether pickup and delivery are open at
// the given instant. Pure function of (settings, now): no side effects,
// no I/O.
func ResolveAvailability(s *StoreSettings, now time.Time) Availability {
	pickupAvailable := effectiveAvailable(s.IsPickupAvailable, s.PausedDatePickup, now)
	deliveryAvailable := effectiveAvailable(s.IsDeliveryAvailable, s.PausedDateDelivery, now)

	// Both channels paused: globally closed, no schedule check
	if !pickupAvailable && !deliveryAvailable {
		return Availability{
			Message: "Momentan keine Bestellannahme",
		}
	}

	day := s.PickupSchedule.Day(now.Weekday())
	current := now.Hour()*60 + now.Minute()
	openAt := clockMinutes(day.Open)
	closeAt := clockMinutes(day.Close)

	var message, nextOpen string
	scheduleOpen := true

	switch {
	case !day.IsOpen:
		scheduleOpen = false
		message = fmt.Sprintf("Heute (%s) Ruhetag", GermanDayName(now.Weekday()))
		nextOpen = nextOpenLabel(s.PickupSchedule, now)
	case current < openAt:
		scheduleOpen = false
		message = fmt.Sprintf("Heute geöffnet: %s - %s Uhr", day.Open, day.Close)
		nextOpen = fmt.Sprintf("Heute %s Uhr", day.Open)
	case current >= closeAt:
		scheduleOpen = false
		message = fmt.Sprintf("Heute geöffnet: %s - %s Uhr", day.Open, day.Close)
		nextOpen = nextOpenLabel(s.PickupSchedule, now)
	}

	if !scheduleOpen {
		return Availability{
			Message:          message,
			NextOpen:         nextOpen,
			NextDeliveryOpen: nextOpenLabel(s.DeliverySchedule, now),
		}
	}

	return Availability{
		IsOpen:          true,
		IsPickupOpen:    pickupAvailable,
		IsDeliveryOpen:  deliveryAvailable,
		DeliveryMessage: deliveryMessage(s.DeliverySchedule.Day(now.Weekday())),
	}
}

// deliveryMessage describes today's delivery window for the open state
func deliveryMessage(day DaySchedule) string {
	if !day.IsOpen {
		return "Heute keine Lieferung"
	}
	return fmt.Sprintf("Lieferung heute: %s - %s Uhr", day.Open, day.Close)
}

// nextOpenLabel scans forward through the week for the next open day.
// Terminates after at most 7 iterations; an all-closed week yields the
// generic fallback rather than an error.
func nextOpenLabel(week WeekSchedule, now time.Time) string {
	for i := 1; i <= 7; i++ {
		day := week.Day((now.Weekday() + time.Weekday(i)) % 7)
		if !day.IsOpen {
			continue
		}
		if i == 1 {
			return fmt.Sprintf("Morgen %s Uhr", day.Open)
		}
		return fmt.Sprintf("%s %s Uhr", GermanDayName((now.Weekday()+time.Weekday(i))%7), day.Open)
	}
	return fallbackLabel
}

// NextAvailableSlot returns the next opening window of one service
// channel. Today's window counts if it has not started yet; otherwise
// the scan wraps forward through the week, falling back to a default
// window when no day is open.
func NextAvailableSlot(s *StoreSettings, service ServiceType, now time.Time) Slot {
	week := s.PickupSchedule
	if service == ServiceDelivery {
		week = s.DeliverySchedule
	}

	today := week.Day(now.Weekday())
	current := now.Hour()*60 + now.Minute()
	if today.IsOpen && current < clockMinutes(today.Open) {
		return Slot{
			DayLabel: GermanDayName(now.Weekday()),
			Open:     today.Open,
			Close:    today.Close,
			IsToday:  true,
		}
	}

	for i := 1; i <= 7; i++ {
		weekday := (now.Weekday() + time.Weekday(i)) % 7
		day := week.Day(weekday)
		if !day.IsOpen {
			continue
		}
		label := GermanDayName(weekday)
		if i == 1 {
			label = "Morgen"
		}
		return Slot{DayLabel: label, Open: day.Open, Close: day.Close}
	}

	return Slot{DayLabel: fallbackLabel, Open: "11:00", Close: "22:00"}
}
