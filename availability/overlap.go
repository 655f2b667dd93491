package availability

// RangeCheck is the verdict of CheckRange. When OK is false, ConflictSlot
// names the first slot that blocks the request.
type RangeCheck struct {
	OK           bool   `json:"ok"`
	ConflictSlot string `json:"conflictSlot,omitempty"`
}

// CheckRange walks the slot domain from start, 10 minutes at a time, while
// the cursor is strictly below end (lexicographic compare is valid because
// labels are zero-padded and fixed-width). A slot with no entry in dayMap,
// or an explicit false, rejects the range at that slot: booking validation
// cannot confirm availability it never saw, unlike the display-side merge
// which assumes missing slots are free.
//
// The caller guarantees start < end and that end stays below 22:00.
func CheckRange(start, end string, dayMap map[string]bool) RangeCheck {
	cursor := start
	for cursor < end {
		free, ok := dayMap[cursor]
		if !ok || !free {
			return RangeCheck{OK: false, ConflictSlot: cursor}
		}
		next, err := AddMinutes(cursor, SlotMinutes)
		if err != nil {
			return RangeCheck{OK: false, ConflictSlot: cursor}
		}
		cursor = next
	}
	return RangeCheck{OK: true}
}
