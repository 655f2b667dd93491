package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"campus-client/api/campus"
	"campus-client/availability"
	"campus-client/dao/cache"
	"campus-client/models"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidRange means start was not strictly before end.
	ErrInvalidRange = errors.New("start time must be before end time")
	// ErrOutOfHours means the request fell outside the 07:00-21:59 domain
	// or off the 10-minute grid.
	ErrOutOfHours = errors.New("requested time is outside bookable hours")
)

// DayCell is one calendar cell of the month view.
type DayCell struct {
	Date         string              `json:"date"`
	Status       models.DayStatus    `json:"status"`
	Percentage   float64             `json:"percentage"`
	DisplayClass string              `json:"displayClass"`
	PeriodStatus models.PeriodStatus `json:"period_status"`
}

// MonthView is the calendar screen's render model for one space and month.
type MonthView struct {
	SpaceID int       `json:"spaceId"`
	Month   string    `json:"month"`
	Days    []DayCell `json:"days"`
}

// DayView is the day-detail render model: the raw slot map plus the merged
// unavailable ranges for the tooltip.
type DayView struct {
	SpaceID     int                      `json:"spaceId"`
	Date        string                   `json:"date"`
	Slots       models.DaySlots          `json:"slots"`
	Merge       availability.MergeResult `json:"merge"`
	RangeLabels []string                 `json:"rangeLabels,omitempty"`
}

// AvailabilityService fetches and caches availability data and feeds the
// calendar screens. Fetches are generation-stamped: when a newer fetch for
// the same key starts before an older one resolves, the older response is
// discarded instead of overwriting fresher cache data.
type AvailabilityService struct {
	cache  *cache.AvailabilityCache
	api    campus.CampusAPI
	logger zerolog.Logger

	mu  sync.Mutex
	gen map[string]uint64
}

// NewAvailabilityService constructs the service around a session cache and
// the remote API client.
func NewAvailabilityService(availabilityCache *cache.AvailabilityCache, campusApi campus.CampusAPI, logger zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{
		cache:  availabilityCache,
		api:    campusApi,
		logger: logger.With().Str("component", "availability_service").Logger(),
		gen:    make(map[string]uint64),
	}
}

// GetMonth returns the aggregate month data, hitting the network only on a
// cache miss. A second request for the same (space, month) within the
// session never re-fetches.
func (s *AvailabilityService) GetMonth(spaceID, year, month int) (models.MonthAvailability, error) {
	monthKey := cache.MonthKey(year, month)
	if data, ok := s.cache.GetMonth(spaceID, monthKey); ok {
		return data, nil
	}

	genKey := fmt.Sprintf("month:%d:%s", spaceID, monthKey)
	gen := s.nextGen(genKey)

	data, err := s.api.GetMonthlyAvailability(spaceID, year, month)
	if err != nil {
		return nil, err
	}

	if s.isCurrent(genKey, gen) {
		s.cache.PutMonth(spaceID, monthKey, data)
	} else {
		s.logger.Debug().Str("key", genKey).Msg("dropping stale month response")
	}
	return data, nil
}

// GetDaySlots returns the detailed slot map for one date, cached per
// session like the month data.
func (s *AvailabilityService) GetDaySlots(spaceID int, date string) (models.DaySlots, error) {
	if entry, ok := s.cache.GetDay(spaceID, date); ok && entry.Slots != nil {
		return entry.Slots, nil
	}

	genKey := fmt.Sprintf("day:%d:%s", spaceID, date)
	gen := s.nextGen(genKey)

	slots, err := s.api.GetDailyAvailability(spaceID, date)
	if err != nil {
		return nil, err
	}

	if s.isCurrent(genKey, gen) {
		s.cache.PutDay(spaceID, date, slots)
	} else {
		s.logger.Debug().Str("key", genKey).Msg("dropping stale day response")
	}
	return slots, nil
}

// MonthView builds the calendar cells for one space and month. Partial days
// get a heat class from their booked percentage; every other status is its
// own display class.
func (s *AvailabilityService) MonthView(spaceID, year, month int) (*MonthView, error) {
	data, err := s.GetMonth(spaceID, year, month)
	if err != nil {
		return nil, err
	}

	days := make([]DayCell, 0, len(data))
	for dateKey, agg := range data {
		days = append(days, DayCell{
			Date:         dateKey,
			Status:       agg.Status,
			Percentage:   agg.Percentage,
			DisplayClass: displayClass(agg),
			PeriodStatus: agg.PeriodStatus,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &MonthView{
		SpaceID: spaceID,
		Month:   cache.MonthKey(year, month),
		Days:    days,
	}, nil
}

// DayView builds the day-detail model: slot map plus merged unavailable
// ranges.
func (s *AvailabilityService) DayView(spaceID int, date string) (*DayView, error) {
	slots, err := s.GetDaySlots(spaceID, date)
	if err != nil {
		return nil, err
	}

	merge := availability.MergeUnavailable(slots)
	var labels []string
	for _, r := range merge.Ranges {
		labels = append(labels, r.Label())
	}

	return &DayView{
		SpaceID:     spaceID,
		Date:        date,
		Slots:       slots,
		Merge:       merge,
		RangeLabels: labels,
	}, nil
}

// ValidateRange gates booking submission: domain checks first, then the
// conservative per-slot walk over the day's detailed map.
func (s *AvailabilityService) ValidateRange(spaceID int, date, start, end string) (availability.RangeCheck, error) {
	if !availability.IsSlot(start) {
		return availability.RangeCheck{}, ErrOutOfHours
	}
	// 22:00 and later never exists; valid ends are slot labels or the
	// 21:59 day boundary.
	if end != availability.LastBookableMinute && !availability.IsSlot(end) {
		return availability.RangeCheck{}, ErrOutOfHours
	}
	if start >= end {
		return availability.RangeCheck{}, ErrInvalidRange
	}

	slots, err := s.GetDaySlots(spaceID, date)
	if err != nil {
		return availability.RangeCheck{}, err
	}
	return availability.CheckRange(start, end, slots), nil
}

func displayClass(agg models.DayAggregate) string {
	if agg.Status == models.DayStatusPartial {
		return string(availability.Classify(agg.Percentage))
	}
	return string(agg.Status)
}

func (s *AvailabilityService) nextGen(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[key]++
	return s.gen[key]
}

func (s *AvailabilityService) isCurrent(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen[key] == gen
}
