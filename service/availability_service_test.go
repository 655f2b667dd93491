package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"campus-client/availability"
	"campus-client/dao/cache"
	"campus-client/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshDaySlots(overrides map[string]bool) models.DaySlots {
	slots := make(models.DaySlots)
	for _, s := range availability.GenerateSlots() {
		slots[s] = true
	}
	for k, v := range overrides {
		slots[k] = v
	}
	return slots
}

func TestGetMonth_SecondCallIsCacheHit(t *testing.T) {
	var calls int32
	stub := &stubCampusAPI{
		monthlyFn: func(roomID, year, month int) (models.MonthAvailability, error) {
			atomic.AddInt32(&calls, 1)
			return models.MonthAvailability{
				"2025-06-12": {Status: models.DayStatusPartial, Percentage: 0.5},
			}, nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	first, err := svc.GetMonth(5, 2025, 6)
	require.NoError(t, err)
	second, err := svc.GetMonth(5, 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "second request must not hit the network")
}

func TestGetDaySlots_SecondCallIsCacheHit(t *testing.T) {
	var calls int32
	stub := &stubCampusAPI{
		dailyFn: func(roomID int, date string) (models.DaySlots, error) {
			atomic.AddInt32(&calls, 1)
			return models.DaySlots{"09:00": false, "09:10": true}, nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	_, err := svc.GetDaySlots(5, "2025-06-12")
	require.NoError(t, err)
	_, err = svc.GetDaySlots(5, "2025-06-12")
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

// A response from a superseded fetch must not overwrite the cache entry the
// newer fetch already produced.
func TestGetMonth_StaleResponseSuppressed(t *testing.T) {
	stale := models.MonthAvailability{"2025-06-01": {Status: models.DayStatusBooked, Percentage: 1}}
	fresh := models.MonthAvailability{"2025-06-01": {Status: models.DayStatusAvailable, Percentage: 0}}

	started := make(chan int, 2)
	releases := []chan models.MonthAvailability{
		make(chan models.MonthAvailability),
		make(chan models.MonthAvailability),
	}
	var callIdx int32
	stub := &stubCampusAPI{
		monthlyFn: func(roomID, year, month int) (models.MonthAvailability, error) {
			i := int(atomic.AddInt32(&callIdx, 1)) - 1
			started <- i
			return <-releases[i], nil
		},
	}
	c := cache.NewAvailabilityCache()
	svc := NewAvailabilityService(c, stub, zerolog.Nop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		svc.GetMonth(5, 2025, 6) // fetch 0, will resolve last
	}()
	<-started
	go func() {
		defer wg.Done()
		svc.GetMonth(5, 2025, 6) // fetch 1, supersedes fetch 0
	}()
	<-started

	// Newer fetch resolves first and writes; the older response lands
	// afterwards and must be dropped.
	releases[1] <- fresh
	releases[0] <- stale
	wg.Wait()

	got, ok := c.GetMonth(5, "2025-06")
	require.True(t, ok)
	assert.Equal(t, fresh, got, "stale response overwrote fresher cache data")
}

func TestMonthView_ClassifiesPartialDays(t *testing.T) {
	stub := &stubCampusAPI{
		monthlyFn: func(roomID, year, month int) (models.MonthAvailability, error) {
			return models.MonthAvailability{
				"2025-06-01": {Status: models.DayStatusAvailable, Percentage: 0},
				"2025-06-02": {Status: models.DayStatusPartial, Percentage: 0.3},
				"2025-06-03": {Status: models.DayStatusPartial, Percentage: 0.7},
				"2025-06-04": {Status: models.DayStatusBooked, Percentage: 1},
				"2025-06-05": {Status: models.DayStatusNoRoom},
			}, nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	view, err := svc.MonthView(5, 2025, 6)
	require.NoError(t, err)
	require.Len(t, view.Days, 5)

	// Sorted by date, partial days bucketed, other statuses pass through.
	wantClasses := []string{"available", "mid", "high", "booked", "no-room"}
	for i, want := range wantClasses {
		assert.Equal(t, want, view.Days[i].DisplayClass, "day %s", view.Days[i].Date)
	}
	assert.Equal(t, "2025-06", view.Month)
}

func TestDayView_MergedRanges(t *testing.T) {
	stub := &stubCampusAPI{
		dailyFn: func(roomID int, date string) (models.DaySlots, error) {
			return freshDaySlots(map[string]bool{"09:00": false, "09:10": false}), nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	view, err := svc.DayView(5, "2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, availability.MergeUnavailableRanges, view.Merge.Status)
	assert.Equal(t, []string{"09:00 ~ 09:19"}, view.RangeLabels)
}

func TestValidateRange_DomainErrors(t *testing.T) {
	stub := &stubCampusAPI{
		dailyFn: func(roomID int, date string) (models.DaySlots, error) {
			return freshDaySlots(nil), nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"before opening", "06:50", "08:00", ErrOutOfHours},
		{"end past closing", "21:00", "22:00", ErrOutOfHours},
		{"off-grid start", "09:05", "10:00", ErrOutOfHours},
		{"start equals end", "09:00", "09:00", ErrInvalidRange},
		{"inverted", "10:00", "09:00", ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateRange(5, "2025-06-12", tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange_ConflictAndDayEndBoundary(t *testing.T) {
	stub := &stubCampusAPI{
		dailyFn: func(roomID int, date string) (models.DaySlots, error) {
			return freshDaySlots(map[string]bool{"09:10": false}), nil
		},
	}
	svc := NewAvailabilityService(cache.NewAvailabilityCache(), stub, zerolog.Nop())

	check, err := svc.ValidateRange(5, "2025-06-12", "09:00", "09:30")
	require.NoError(t, err)
	assert.False(t, check.OK)
	assert.Equal(t, "09:10", check.ConflictSlot)

	// 21:59 is a legal end even though it is not a slot label.
	check, err = svc.ValidateRange(5, "2025-06-12", "21:50", availability.LastBookableMinute)
	require.NoError(t, err)
	assert.True(t, check.OK)
}
