package availability

import "testing"

func TestClassify_Buckets(t *testing.T) {
	tests := []struct {
		percentage float64
		want       HeatLevel
	}{
		{1.0, HeatHigh},
		{0.7, HeatHigh}, // boundary is inclusive on the upper bucket
		{0.69999, HeatMid},
		{0.5, HeatMid},
		{0.3, HeatMid}, // same rule at the lower boundary
		{0.29999, HeatLow},
		{0.0, HeatLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.percentage); got != tt.want {
			t.Errorf("Classify(%v) = %q; want %q", tt.percentage, got, tt.want)
		}
	}
}
