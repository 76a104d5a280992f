package lib

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2000000", 2000000},
		{"2000000.50", 2000000.50},
		{"₹1,00,000", 100000},
		{" 500 ", 500},
		{"", 0},
		{"abc", 0},
		{"-250", 0},
	}

	for _, tc := range tests {
		if got := ParseAmount(tc.input); math.Abs(got-tc.want) > 0.001 {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"50", 50, true},
		{"50%", 50, true},
		{" 12.5 ", 12.5, true},
		{"150", 100, true},
		{"-3", 0, true},
		{"", 0, false},
		{"half", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParsePercentage(tc.input)
		if ok != tc.ok || math.Abs(got-tc.want) > 0.001 {
			t.Errorf("ParsePercentage(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{50, "50"},
		{12.5, "12.5"},
		{1000000, "1000000"},
		{0, "0"},
	}

	for _, tc := range tests {
		if got := FormatNumber(tc.input); got != tc.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1.005 * 100); math.Abs(got-100.5) > 0.001 {
		t.Errorf("Round2 = %v, want 100.5", got)
	}

	if got := Round2(33.333333); math.Abs(got-33.33) > 0.001 {
		t.Errorf("Round2 = %v, want 33.33", got)
	}
}
