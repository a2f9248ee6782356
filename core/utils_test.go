package core

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "empty", s: "", want: ""},
		{name: "trim", s: "  Amani  ", want: "Amani"},
		{name: "trim + lower", s: " Amani@Test.CD ", lower: true, want: "amani@test.cd"},
		{name: "noop", s: "amani", want: "amani"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithinDateRange(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		want             bool
	}{
		{name: "unbounded", date: "2024-01-15", want: true},
		{name: "inside", date: "2024-01-15", start: "2024-01-01", end: "2024-01-31", want: true},
		{name: "on start", date: "2024-01-01", start: "2024-01-01", end: "2024-01-31", want: true},
		{name: "on end", date: "2024-01-31", start: "2024-01-01", end: "2024-01-31", want: true},
		{name: "before", date: "2023-12-31", start: "2024-01-01", end: "2024-01-31", want: false},
		{name: "after", date: "2024-02-01", start: "2024-01-01", end: "2024-01-31", want: false},
		{name: "open end", date: "2099-12-31", start: "2024-01-01", want: true},
		{name: "open start", date: "1999-01-01", end: "2024-01-31", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinDateRange(tt.date, tt.start, tt.end); got != tt.want {
				t.Errorf("WithinDateRange(%q, %q, %q) = %v, want %v", tt.date, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
