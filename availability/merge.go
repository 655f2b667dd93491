package availability

// MergeStatus distinguishes the three outcomes of merging a day's slot map.
// Callers render different text for each, so an empty range list alone is
// not enough.
type MergeStatus string

const (
	// MergeNoData means the payload was too small to be a real day map
	// (e.g. a single-key "not yet loaded" object).
	MergeNoData MergeStatus = "no-data"
	// MergeAllFree means no slot in the day is unavailable.
	MergeAllFree MergeStatus = "all-free"
	// MergeUnavailableRanges means Ranges holds the merged busy windows.
	MergeUnavailableRanges MergeStatus = "unavailable"
)

// UnavailableRange is one contiguous run of booked slots. End is a display
// label: the start of the run's last slot plus 9 minutes, so a single busy
// slot 09:00 reads as "09:00 ~ 09:09".
type UnavailableRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r UnavailableRange) Label() string {
	return r.Start + " ~ " + r.End
}

// MergeResult is the outcome of MergeUnavailable.
type MergeResult struct {
	Status MergeStatus        `json:"status"`
	Ranges []UnavailableRange `json:"ranges,omitempty"`
}

// MergeUnavailable collapses a day's per-slot map into contiguous
// unavailable ranges, in calendar order. A slot is unavailable only when the
// map holds an explicit false for it; a missing key counts as available.
// That default is display-only optimism; booking validation in CheckRange
// deliberately treats missing keys the opposite way.
func MergeUnavailable(dayMap map[string]bool) MergeResult {
	if len(dayMap) < 2 {
		return MergeResult{Status: MergeNoData}
	}

	var ranges []UnavailableRange
	runStart := ""
	runLast := ""

	flush := func() {
		if runStart == "" {
			return
		}
		// runLast is always a GenerateSlots label, so the shift cannot
		// fail; every open run flushes to a range.
		end, _ := AddMinutes(runLast, SlotMinutes-1)
		ranges = append(ranges, UnavailableRange{Start: runStart, End: end})
		runStart, runLast = "", ""
	}

	for _, slot := range GenerateSlots() {
		free, ok := dayMap[slot]
		if ok && !free {
			if runStart == "" {
				runStart = slot
			}
			runLast = slot
			continue
		}
		flush()
	}
	flush()

	if len(ranges) == 0 {
		return MergeResult{Status: MergeAllFree}
	}
	return MergeResult{Status: MergeUnavailableRanges, Ranges: ranges}
}
