package models

// DayStatus is the aggregate availability state of one calendar day.
type DayStatus string

const (
	DayStatusAvailable DayStatus = "available"
	DayStatusPartial   DayStatus = "partial"
	DayStatusBooked    DayStatus = "booked"
	DayStatusLoading   DayStatus = "loading"
	DayStatusNoRoom    DayStatus = "no-room"
)

// PeriodStatus splits a day's aggregate state into rough dayparts.
type PeriodStatus struct {
	Morning   DayStatus `json:"morning"`
	Afternoon DayStatus `json:"afternoon"`
	Evening   DayStatus `json:"evening"`
}

// DayAggregate is the month-level summary for a single day. Percentage is
// the booked fraction in [0,1].
type DayAggregate struct {
	Status       DayStatus    `json:"status"`
	Percentage   float64      `json:"percentage"`
	PeriodStatus PeriodStatus `json:"period_status"`
}

// MonthAvailability maps "YYYY-MM-DD" date keys to day aggregates for one
// space and one calendar month.
type MonthAvailability map[string]DayAggregate

// DaySlots maps "HH:MM" slot labels to availability. true means the slot is
// free, false means it is booked. A missing key means the server sent no
// verdict for that slot.
type DaySlots map[string]bool
