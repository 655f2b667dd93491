package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// Bookable hours run 07:00 through 21:50 in 10-minute slots. The final slot
// covers [21:50, 21:59]; no slot exists past 21:59, so a requested end time
// of 22:00 or later is out of domain and must be rejected by the caller.
const (
	OpeningHour = 7
	ClosingHour = 22 // exclusive
	SlotMinutes = 10

	// LastBookableMinute is the display end of the final slot.
	LastBookableMinute = "21:59"
)

// SlotCount is the number of slots in one day: (22-7) hours * 6 slots/hour.
const SlotCount = (ClosingHour - OpeningHour) * 60 / SlotMinutes

// GenerateSlots returns the fixed ordered slot labels for one day:
// 07:00, 07:10, ..., 21:50.
func GenerateSlots() []string {
	slots := make([]string, 0, SlotCount)
	for h := OpeningHour; h < ClosingHour; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// IsSlot reports whether label is a member of the slot domain.
func IsSlot(label string) bool {
	h, m, err := parseLabel(label)
	if err != nil {
		return false
	}
	return h >= OpeningHour && h < ClosingHour && m%SlotMinutes == 0
}

// AddMinutes shifts a zero-padded HH:MM label by delta minutes. The label
// must parse; callers validate membership with IsSlot first.
func AddMinutes(label string, delta int) (string, error) {
	h, m, err := parseLabel(label)
	if err != nil {
		return "", err
	}
	total := h*60 + m + delta
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func parseLabel(label string) (hour, minute int, err error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("malformed slot label %q", label)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed slot label %q", label)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("malformed slot label %q", label)
	}
	return hour, minute, nil
}
