package booking

import (
	"fmt"
	"strings"
	"time"

	"turf-booking/internal/pkg/errs"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour

	// ClosingTime is the latest end of any booking, 23:00 venue local time.
	ClosingTime TimeOfDay = 23 * minutesPerHour

	MinDurationHours = 1
	MaxDurationHours = 4
)

// TimeOfDay is a wall-clock time within a single calendar date, in minutes
// since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute >= minutesPerHour || (hour == 24 && minute != 0) {
		return 0, errs.Wrap(errs.ErrInvalidTimeSlot, fmt.Sprintf("time of day out of range: %02d:%02d", hour, minute))
	}
	return TimeOfDay(hour*minutesPerHour + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds must be zero).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	var layout string
	switch len(s) {
	case len("15:04"):
		layout = "15:04"
	case len("15:04:05"):
		layout = "15:04:05"
	default:
		return 0, errs.Wrap(errs.ErrInvalidTimeSlot, "malformed time of day "+s)
	}
	t, err := time.Parse(layout, s)
	if err != nil || t.Second() != 0 {
		return 0, errs.Wrap(errs.ErrInvalidTimeSlot, "malformed time of day "+s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / minutesPerHour }
func (t TimeOfDay) Minute() int { return int(t) % minutesPerHour }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On places the time of day on date in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

// Interval is a half-open [start, end) range of one calendar day.
type Interval struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewInterval enforces the slot invariants: start < end, end no later than
// closing time, and a whole number of hours between one and four.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start < 0 || end > minutesPerDay {
		return Interval{}, errs.Wrap(errs.ErrInvalidTimeSlot, "time of day out of range")
	}
	if start >= end {
		return Interval{}, errs.Wrap(errs.ErrInvalidTimeSlot, "start time must be before end time")
	}
	if end > ClosingTime {
		return Interval{}, errs.Wrap(errs.ErrInvalidTimeSlot, "booking must end by "+ClosingTime.String())
	}
	length := int(end - start)
	if length%minutesPerHour != 0 {
		return Interval{}, errs.Wrap(errs.ErrInvalidTimeSlot, "booking length must be whole hours")
	}
	if hours := length / minutesPerHour; hours < MinDurationHours || hours > MaxDurationHours {
		return Interval{}, errs.Wrap(errs.ErrInvalidTimeSlot, fmt.Sprintf("booking length must be between %d and %d hours", MinDurationHours, MaxDurationHours))
	}
	return Interval{start: start, end: end}, nil
}

// ReconstructInterval rebuilds a persisted interval without re-validating it.
func ReconstructInterval(start, end TimeOfDay) Interval {
	return Interval{start: start, end: end}
}

func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.end-i.start) * time.Minute
}

func (i Interval) Hours() int {
	return int(i.end-i.start) / minutesPerHour
}

func (i Interval) String() string {
	return i.start.String() + "-" + i.end.String()
}

// Overlaps reports whether two half-open intervals on the same date share
// any instant. Touching boundaries (a.end == b.start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.start < b.end && b.start < a.end
}

// Date truncates t to its calendar day, expressed as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Wrap(errs.ErrInvalidTimeSlot, "malformed date "+s)
	}
	return t, nil
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// ExtraService is an optional add-on priced per booking.
type ExtraService struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

func NewExtraService(name string, priceCents int64) (ExtraService, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ExtraService{}, errs.Wrap(errs.ErrInvalidBooking, "extra service name is required")
	}
	if priceCents < 0 {
		return ExtraService{}, errs.Wrap(errs.ErrInvalidBooking, "extra service price cannot be negative")
	}
	return ExtraService{Name: name, PriceCents: priceCents}, nil
}
