package grade

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		max   float64
		want  int
	}{
		{name: "whole", score: 80, max: 100, want: 80},
		{name: "rounds up", score: 45, max: 50, want: 90},
		{name: "rounds half up", score: 17.5, max: 20, want: 88},
		{name: "over max", score: 105, max: 100, want: 105},
		{name: "zero max", score: 10, max: 0, want: 0},
		{name: "negative max", score: 10, max: -5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grade{Score: tt.score, MaxScore: tt.max}
			if got := g.Percentage(); got != tt.want {
				t.Errorf("Percentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Letter(tt.percentage); got != tt.want {
			t.Errorf("Letter(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		grades []Grade
		want   int
	}{
		{name: "empty", grades: nil, want: 0},
		{
			name: "mean of percentages, not of totals",
			grades: []Grade{
				{Score: 80, MaxScore: 100},
				{Score: 45, MaxScore: 50},
			},
			want: 85,
		},
		{
			name: "rounded",
			grades: []Grade{
				{Score: 45, MaxScore: 50},
				{Score: 17, MaxScore: 20},
			},
			want: 88,
		},
		{
			name:   "single",
			grades: []Grade{{Score: 33, MaxScore: 40}},
			want:   83,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.grades); got != tt.want {
				t.Errorf("Average() = %d, want %d", got, tt.want)
			}
		})
	}
}
