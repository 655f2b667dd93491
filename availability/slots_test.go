package availability

import "testing"

func TestGenerateSlots_Domain(t *testing.T) {
	slots := GenerateSlots()
	// 07:00 through 21:50 inclusive at 10-minute steps: 15 hours * 6.
	if len(slots) != 90 {
		t.Fatalf("expected 90 slots, got %d", len(slots))
	}
	if slots[0] != "07:00" {
		t.Errorf("first slot = %q; want 07:00", slots[0])
	}
	if slots[len(slots)-1] != "21:50" {
		t.Errorf("last slot = %q; want 21:50", slots[len(slots)-1])
	}
	if SlotCount != 90 {
		t.Errorf("SlotCount = %d; want 90", SlotCount)
	}
	if SlotCount != len(slots) {
		t.Errorf("SlotCount = %d; want %d", SlotCount, len(slots))
	}
}

func TestGenerateSlots_Ordered(t *testing.T) {
	slots := GenerateSlots()
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots not strictly increasing at %d: %q >= %q", i, slots[i-1], slots[i])
		}
		next, err := AddMinutes(slots[i-1], SlotMinutes)
		if err != nil {
			t.Fatalf("AddMinutes(%q): %v", slots[i-1], err)
		}
		if next != slots[i] {
			t.Fatalf("slot after %q = %q; want %q", slots[i-1], next, slots[i])
		}
	}
}

func TestIsSlot(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"07:00", true},
		{"21:50", true},
		{"12:30", true},
		{"06:50", false}, // before opening
		{"22:00", false}, // past closing
		{"09:05", false}, // off the 10-minute grid
		{"9:00", false},  // not zero-padded
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSlot(tt.label); got != tt.want {
			t.Errorf("IsSlot(%q) = %v; want %v", tt.label, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		label string
		delta int
		want  string
	}{
		{"09:00", 10, "09:10"},
		{"09:50", 10, "10:00"},
		{"09:00", 9, "09:09"},
		{"21:50", 9, "21:59"},
	}
	for _, tt := range tests {
		got, err := AddMinutes(tt.label, tt.delta)
		if err != nil {
			t.Fatalf("AddMinutes(%q, %d): %v", tt.label, tt.delta, err)
		}
		if got != tt.want {
			t.Errorf("AddMinutes(%q, %d) = %q; want %q", tt.label, tt.delta, got, tt.want)
		}
	}

	if _, err := AddMinutes("bogus", 10); err == nil {
		t.Error("expected error for malformed label")
	}
}
