package model

import "testing"

func TestSecondsOf_Truncates(t *testing.T) {
	tests := []struct {
		in   float64
		want Seconds
	}{
		{0, 0},
		{45.5, 45},
		{65.999, 65}, // truncation, never rounding
		{3600.9, 3600},
	}
	for _, tc := range tests {
		if got := SecondsOf(tc.in); got != tc.want {
			t.Errorf("SecondsOf(%v) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestSeconds_Timestamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 45.5, "00:45"},
		{"minutes and seconds", 125.0, "02:05"},
		{"exact hour", 3600, "01:00:00"},
		{"hours minutes seconds", 3661.0, "01:01:01"},
		{"truncated fraction", 65.999, "01:05"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SecondsOf(tc.in).Timestamp(); got != tc.want {
				t.Errorf("Timestamp(%v) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSeconds_Milliseconds(t *testing.T) {
	if got := Seconds(65).Milliseconds(); got != 65000 {
		t.Errorf("Milliseconds() = %d; want 65000", got)
	}
}
