package cache

import (
	"fmt"
	"sync"

	"campus-client/models"
)

// DayEntry holds both shapes of availability data for one (space, date).
// The aggregate arrives with the month fetch; the detailed slot map arrives
// lazily per day. Once both exist, Slots is the source of truth for overlap
// checks and Aggregate only drives calendar coloring.
type DayEntry struct {
	Aggregate *models.DayAggregate
	Slots     models.DaySlots
}

// AvailabilityCache is the session-scoped two-level store of fetched
// availability payloads: space → month-key → month data, with per-day slot
// maps merged into the same day entries. Entries are never invalidated
// within a session; writes are last-write-wins per key.
type AvailabilityCache struct {
	mu     sync.RWMutex
	months map[int]map[string]models.MonthAvailability
	days   map[int]map[string]*DayEntry
}

// NewAvailabilityCache creates an empty cache. One lives for each gateway
// session; nothing is persisted.
func NewAvailabilityCache() *AvailabilityCache {
	return &AvailabilityCache{
		months: make(map[int]map[string]models.MonthAvailability),
		days:   make(map[int]map[string]*DayEntry),
	}
}

// GetMonth returns the cached month data for (space, "YYYY-MM"), if any.
func (c *AvailabilityCache) GetMonth(spaceID int, monthKey string) (models.MonthAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	month, ok := c.months[spaceID][monthKey]
	return month, ok
}

// PutMonth stores a month payload and folds each day's aggregate into the
// day entries, keeping any detailed slot maps already fetched for those
// days.
func (c *AvailabilityCache) PutMonth(spaceID int, monthKey string, data models.MonthAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.months[spaceID] == nil {
		c.months[spaceID] = make(map[string]models.MonthAvailability)
	}
	c.months[spaceID][monthKey] = data

	for dateKey, agg := range data {
		entry := c.dayEntry(spaceID, dateKey)
		aggCopy := agg
		entry.Aggregate = &aggCopy
	}
}

// GetDay returns the merged day entry for (space, "YYYY-MM-DD"), if any.
func (c *AvailabilityCache) GetDay(spaceID int, dateKey string) (DayEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.days[spaceID][dateKey]
	if !ok {
		return DayEntry{}, false
	}
	return *entry, true
}

// PutDay merges a detailed slot map into the day entry, preserving an
// aggregate populated by an earlier month fetch rather than overwriting the
// whole entry.
func (c *AvailabilityCache) PutDay(spaceID int, dateKey string, slots models.DaySlots) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.dayEntry(spaceID, dateKey)
	entry.Slots = slots
}

// MonthKey formats the cache key for a calendar month.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (c *AvailabilityCache) dayEntry(spaceID int, dateKey string) *DayEntry {
	if c.days[spaceID] == nil {
		c.days[spaceID] = make(map[string]*DayEntry)
	}
	entry, ok := c.days[spaceID][dateKey]
	if !ok {
		entry = &DayEntry{}
		c.days[spaceID][dateKey] = entry
	}
	return entry
}
