package core

import "testing"

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter("en")
	cases := []struct {
		in  float64
		out string
	}{
		{7850, "7,850.00"},
		{17850, "17,850.00"},
		{85000, "85,000.00"},
		{0, "0.00"},
		{-400, "-400.00"},
		{1234567.891, "1,234,567.89"},
		{0.5, "0.50"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.out {
			t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestNewFormatterBadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale")
	if got := f.Format(1000); got != "1,000.00" {
		t.Fatalf("expected English fallback formatting, got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"100000", 100000},
		{"0.21", 0.21},
		{" 2.50 ", 2.5},
		{"-500", -500},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"1.2.3", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.out {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}
