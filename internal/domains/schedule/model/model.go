package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"beauteefool/shared/timezone"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	hoursPerPeriod = 12

	periodAM = "AM"
	periodPM = "PM"
)

var (
	ErrInvalidClock    = errors.New("invalid time of day")
	ErrInvalidInterval = errors.New("slot interval must be positive")
	ErrEmptyWindow     = errors.New("closing time must be after opening time")
	ErrNegativeLength  = errors.New("duration must not be negative")

	clock24Pattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s(AM|PM)$`)
)

// Clock is a time of day in minutes since midnight.
type Clock int

// ParseClock24 parses "HH:MM".
func ParseClock24(value string) (Clock, error) {
	match := clock24Pattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	if hours > 23 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return Clock(hours*minutesPerHour + minutes), nil
}

// ParseClock parses a 12-hour label such as "9:30 AM" or "12:00 PM".
func ParseClock(label string) (Clock, error) {
	match := clock12Pattern.FindStringSubmatch(label)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	if hours < 1 || hours > hoursPerPeriod || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, label)
	}

	hours %= hoursPerPeriod
	if match[3] == periodPM {
		hours += hoursPerPeriod
	}

	return Clock(hours*minutesPerHour + minutes), nil
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*minutesPerHour + t.Minute())
}

// Add moves the clock by minutes, wrapping around midnight.
func (c Clock) Add(minutes int) Clock {
	return Clock(((int(c)+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay)
}

// Label renders the clock as "H:MM AM/PM".
func (c Clock) Label() string {
	hours, minutes := int(c)/minutesPerHour, int(c)%minutesPerHour

	period := periodAM
	if hours >= hoursPerPeriod {
		period = periodPM
	}

	display := hours % hoursPerPeriod
	if display == 0 {
		display = hoursPerPeriod
	}

	return fmt.Sprintf("%d:%02d %s", display, minutes, period)
}

// On returns the instant at this clock on date's calendar day, in date's location.
func (c Clock) On(date time.Time) time.Time {
	year, month, day := date.Date()

	return time.Date(year, month, day, int(c)/minutesPerHour, int(c)%minutesPerHour, 0, 0, date.Location())
}

// EndTime adds minutes to a 12-hour start label, wrapping past midnight.
func EndTime(start string, minutes int) (string, error) {
	clock, err := ParseClock(start)
	if err != nil {
		return "", err
	}

	return clock.Add(minutes).Label(), nil
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	start     Clock
}

func (s TimeSlot) Start() Clock {
	return s.start
}

// BusinessHours is the bookable window [Open, Close) cut into Interval-minute starts.
type BusinessHours struct {
	Open     Clock
	Close    Clock
	Interval int
}

func NewBusinessHours(open, close string, interval int) (BusinessHours, error) {
	openClock, err := ParseClock24(open)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("opening time: %w", err)
	}

	closeClock, err := ParseClock24(close)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("closing time: %w", err)
	}

	if interval <= 0 {
		return BusinessHours{}, ErrInvalidInterval
	}

	if closeClock <= openClock {
		return BusinessHours{}, ErrEmptyWindow
	}

	return BusinessHours{Open: openClock, Close: closeClock, Interval: interval}, nil
}

// Slots lists every start in the window for date. A slot is unavailable when the
// duration would run past closing, or when date is today and the start is not after now.
func (b BusinessHours) Slots(date time.Time, duration int, now time.Time) ([]TimeSlot, error) {
	if duration < 0 {
		return nil, ErrNegativeLength
	}

	today := timezone.SameDay(date, now)
	current := ClockOf(now)

	slots := make([]TimeSlot, 0, (int(b.Close-b.Open)+b.Interval-1)/b.Interval)

	for start := b.Open; start < b.Close; start += Clock(b.Interval) {
		fits := int(start)+duration <= int(b.Close)
		past := today && start <= current

		slots = append(slots, TimeSlot{
			Time:      start.Label(),
			Available: fits && !past,
			start:     start,
		})
	}

	return slots, nil
}

// Slot finds the offered slot with the given label for date.
func (b BusinessHours) Slot(date time.Time, label string, duration int, now time.Time) (TimeSlot, bool) {
	slots, err := b.Slots(date, duration, now)
	if err != nil {
		return TimeSlot{}, false
	}

	for _, slot := range slots {
		if slot.Time == label {
			return slot, true
		}
	}

	return TimeSlot{}, false
}

// IsWithinBusinessHours reports whether label falls in [Open, Close).
func (b BusinessHours) IsWithinBusinessHours(label string) bool {
	clock, err := ParseClock(label)
	if err != nil {
		return false
	}

	return clock >= b.Open && clock < b.Close
}

// IsInPast reports whether label on date is before now. Other days are never in the past.
func IsInPast(date time.Time, label string, now time.Time) bool {
	if !timezone.SameDay(date, now) {
		return false
	}

	clock, err := ParseClock(label)
	if err != nil {
		return false
	}

	return clock.On(now).Before(now)
}
