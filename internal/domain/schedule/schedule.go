package schedule

import (
	"fmt"
	"time"
)

// DaySchedule is one weekday's operating window for one service channel.
// When IsOpen is false the window is ignored. Open and Close use "HH:MM".
// Open must precede Close within the same day: a window with Open == Close
// is zero-width and therefore always closed, and an inverted window
// (Open > Close, i.e. an overnight window) also resolves as closed all day.
type DaySchedule struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// WeekSchedule covers all seven weekdays; no sparse weeks
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Day returns the schedule for a weekday
func (w WeekSchedule) Day(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// GermanDayName returns the label used in customer-facing messages
func GermanDayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "Montag"
	case time.Tuesday:
		return "Dienstag"
	case time.Wednesday:
		return "Mittwoch"
	case time.Thursday:
		return "Donnerstag"
	case time.Friday:
		return "Freitag"
	case time.Saturday:
		return "Samstag"
	default:
		return "Sonntag"
	}
}

// clockMinutes parses "HH:MM" into minutes since midnight.
// Malformed values count as midnight, matching the lenient legacy parser.
func clockMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// DefaultWeekSchedule returns the bootstrap weekly schedule
func DefaultWeekSchedule() WeekSchedule {
	weekday := DaySchedule{IsOpen: true, Open: "11:00", Close: "22:00"}
	return WeekSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    DaySchedule{IsOpen: true, Open: "11:00", Close: "23:00"},
		Saturday:  DaySchedule{IsOpen: true, Open: "12:00", Close: "23:00"},
		Sunday:    DaySchedule{IsOpen: true, Open: "12:00", Close: "22:00"},
	}
}
