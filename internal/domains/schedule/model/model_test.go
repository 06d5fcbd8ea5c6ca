package model_test

import (
	"testing"
	"time"

	"beauteefool/internal/domains/schedule/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salonHours(t *testing.T) model.BusinessHours {
	t.Helper()

	hours, err := model.NewBusinessHours("09:00", "19:00", 30)
	require.NoError(t, err)

	return hours
}

func TestNewBusinessHours(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		interval int
		wantErr  error
	}{
		{name: "valid", open: "09:00", close: "19:00", interval: 30},
		{name: "malformed open", open: "9am", close: "19:00", interval: 30, wantErr: model.ErrInvalidClock},
		{name: "hour out of range", open: "09:00", close: "24:00", interval: 30, wantErr: model.ErrInvalidClock},
		{name: "zero interval", open: "09:00", close: "19:00", interval: 0, wantErr: model.ErrInvalidInterval},
		{name: "close equals open", open: "09:00", close: "09:00", interval: 30, wantErr: model.ErrEmptyWindow},
		{name: "close before open", open: "19:00", close: "09:00", interval: 30, wantErr: model.ErrEmptyWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewBusinessHours(tt.open, tt.close, tt.interval)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBusinessHours_Slots_FutureDay(t *testing.T) {
	hours := salonHours(t)
	now := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	slots, err := hours.Slots(date, 60, now)
	require.NoError(t, err)

	require.Len(t, slots, 20)
	assert.Equal(t, "9:00 AM", slots[0].Time)
	assert.Equal(t, "12:00 PM", slots[6].Time)
	assert.Equal(t, "6:00 PM", slots[18].Time)
	assert.True(t, slots[18].Available)
	assert.Equal(t, "6:30 PM", slots[19].Time)
	assert.False(t, slots[19].Available)

	for _, slot := range slots[:19] {
		assert.True(t, slot.Available, slot.Time)
	}
}

func TestBusinessHours_Slots_Today(t *testing.T) {
	hours := salonHours(t)
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		now           time.Time
		firstOpenSlot string
	}{
		{name: "before opening", now: time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC), firstOpenSlot: "9:00 AM"},
		{name: "between slots", now: time.Date(2025, 3, 3, 10, 15, 0, 0, time.UTC), firstOpenSlot: "10:30 AM"},
		{name: "exactly on a slot", now: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), firstOpenSlot: "10:30 AM"},
		{name: "after noon", now: time.Date(2025, 3, 3, 12, 5, 0, 0, time.UTC), firstOpenSlot: "12:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := hours.Slots(date, 30, tt.now)
			require.NoError(t, err)

			first := ""
			for _, slot := range slots {
				if slot.Available {
					first = slot.Time

					break
				}
			}

			assert.Equal(t, tt.firstOpenSlot, first)
		})
	}
}

func TestBusinessHours_Slots_AfterClosing(t *testing.T) {
	hours := salonHours(t)
	now := time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)

	slots, err := hours.Slots(now, 0, now)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.False(t, slot.Available, slot.Time)
	}
}

func TestBusinessHours_Slots_NegativeDuration(t *testing.T) {
	_, err := salonHours(t).Slots(time.Now(), -1, time.Now())

	assert.ErrorIs(t, err, model.ErrNegativeLength)
}

func TestBusinessHours_Slots_EndWithinClosing(t *testing.T) {
	hours := salonHours(t)
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	for _, duration := range []int{0, 30, 45, 60, 105, 150, 240, 600} {
		slots, err := hours.Slots(now, duration, now)
		require.NoError(t, err)

		for _, slot := range slots {
			if !slot.Available {
				assert.Greater(t, int(slot.Start())+duration, int(hours.Close), slot.Time)

				continue
			}

			end, err := model.EndTime(slot.Time, duration)
			require.NoError(t, err)

			endClock, err := model.ParseClock(end)
			require.NoError(t, err)
			assert.LessOrEqual(t, endClock, hours.Close, "%s + %d", slot.Time, duration)
		}
	}
}

func TestBusinessHours_Slot(t *testing.T) {
	hours := salonHours(t)
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	slot, ok := hours.Slot(now, "6:30 PM", 60, now)
	assert.True(t, ok)
	assert.False(t, slot.Available)

	slot, ok = hours.Slot(now, "6:00 PM", 60, now)
	assert.True(t, ok)
	assert.True(t, slot.Available)

	_, ok = hours.Slot(now, "9:15 AM", 60, now)
	assert.False(t, ok)
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		start    string
		minutes  int
		expected string
		wantErr  bool
	}{
		{start: "9:00 AM", minutes: 60, expected: "10:00 AM"},
		{start: "11:30 AM", minutes: 60, expected: "12:30 PM"},
		{start: "12:45 PM", minutes: 15, expected: "1:00 PM"},
		{start: "6:00 PM", minutes: 105, expected: "7:45 PM"},
		{start: "12:00 AM", minutes: 0, expected: "12:00 AM"},
		{start: "11:00 PM", minutes: 120, expected: "1:00 AM"},
		{start: "11:30 PM", minutes: 30, expected: "12:00 AM"},
		{start: "10:00 AM", minutes: 24 * 60, expected: "10:00 AM"},
		{start: "10:00", minutes: 30, wantErr: true},
		{start: "13:00 PM", minutes: 30, wantErr: true},
		{start: "0:30 AM", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			end, err := model.EndTime(tt.start, tt.minutes)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidClock)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, end)
		})
	}
}

func TestClock_Label(t *testing.T) {
	tests := []struct {
		clock    model.Clock
		expected string
	}{
		{clock: 0, expected: "12:00 AM"},
		{clock: 9*60 + 5, expected: "9:05 AM"},
		{clock: 12 * 60, expected: "12:00 PM"},
		{clock: 18*60 + 30, expected: "6:30 PM"},
		{clock: 23*60 + 59, expected: "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.clock.Label())

			parsed, err := model.ParseClock(tt.expected)
			assert.NoError(t, err)
			assert.Equal(t, tt.clock, parsed)
		})
	}
}

func TestClock_Add(t *testing.T) {
	assert.Equal(t, model.Clock(30), model.Clock(23*60+30).Add(60))
	assert.Equal(t, model.Clock(23*60), model.Clock(0).Add(-60))
}

func TestBusinessHours_IsWithinBusinessHours(t *testing.T) {
	hours := salonHours(t)

	assert.True(t, hours.IsWithinBusinessHours("9:00 AM"))
	assert.True(t, hours.IsWithinBusinessHours("6:59 PM"))
	assert.False(t, hours.IsWithinBusinessHours("8:59 AM"))
	assert.False(t, hours.IsWithinBusinessHours("7:00 PM"))
	assert.False(t, hours.IsWithinBusinessHours("noon"))
}

func TestIsInPast(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 15, 0, 0, time.UTC)

	assert.True(t, model.IsInPast(now, "10:00 AM", now))
	assert.False(t, model.IsInPast(now, "10:30 AM", now))
	assert.False(t, model.IsInPast(now.AddDate(0, 0, 1), "9:00 AM", now))
	assert.False(t, model.IsInPast(now, "garbage", now))
}
