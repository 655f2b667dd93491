package availability

import "testing"

func TestCheckRange_Clear(t *testing.T) {
	dayMap := fullDay(nil)
	res := CheckRange("09:00", "09:30", dayMap)
	if !res.OK {
		t.Fatalf("expected ok, got conflict at %q", res.ConflictSlot)
	}
}

func TestCheckRange_ConflictSlotReported(t *testing.T) {
	dayMap := fullDay(map[string]bool{"09:10": false})
	res := CheckRange("09:00", "09:30", dayMap)
	if res.OK {
		t.Fatal("expected rejection")
	}
	if res.ConflictSlot != "09:10" {
		t.Errorf("ConflictSlot = %q; want 09:10", res.ConflictSlot)
	}
}

func TestCheckRange_NoDataIsConservative(t *testing.T) {
	// The inverse of the merge default: a slot the server never confirmed
	// cannot be booked.
	res := CheckRange("09:00", "09:20", map[string]bool{})
	if res.OK {
		t.Fatal("expected rejection on empty day map")
	}
	if res.ConflictSlot != "09:00" {
		t.Errorf("ConflictSlot = %q; want 09:00", res.ConflictSlot)
	}
}

func TestCheckRange_EndExclusive(t *testing.T) {
	// 09:30 itself is booked, but a request ending at 09:30 never reads it.
	dayMap := fullDay(map[string]bool{"09:30": false})
	res := CheckRange("09:00", "09:30", dayMap)
	if !res.OK {
		t.Fatalf("end slot must be exclusive, got conflict at %q", res.ConflictSlot)
	}
}

func TestCheckRange_WholeDay(t *testing.T) {
	dayMap := fullDay(nil)
	res := CheckRange("07:00", LastBookableMinute, dayMap)
	if !res.OK {
		t.Fatalf("full free day rejected at %q", res.ConflictSlot)
	}
}

func TestCheckRange_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		booked   []string
		missing  []string
		wantOK   bool
		conflict string
	}{
		{name: "single slot free", start: "10:00", end: "10:10", wantOK: true},
		{name: "single slot booked", start: "10:00", end: "10:10", booked: []string{"10:00"}, wantOK: false, conflict: "10:00"},
		{name: "conflict mid range", start: "14:00", end: "15:00", booked: []string{"14:30"}, wantOK: false, conflict: "14:30"},
		{name: "hole mid range", start: "14:00", end: "15:00", missing: []string{"14:20"}, wantOK: false, conflict: "14:20"},
		{name: "conflict at start", start: "14:00", end: "15:00", booked: []string{"14:00", "14:10"}, wantOK: false, conflict: "14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := map[string]bool{}
			for _, s := range tt.booked {
				overrides[s] = false
			}
			dayMap := fullDay(overrides)
			for _, s := range tt.missing {
				delete(dayMap, s)
			}

			res := CheckRange(tt.start, tt.end, dayMap)
			if res.OK != tt.wantOK {
				t.Fatalf("OK = %v; want %v (conflict %q)", res.OK, tt.wantOK, res.ConflictSlot)
			}
			if !tt.wantOK && res.ConflictSlot != tt.conflict {
				t.Errorf("ConflictSlot = %q; want %q", res.ConflictSlot, tt.conflict)
			}
		})
	}
}
