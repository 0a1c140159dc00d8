package dateutil_test

import (
	"testing"
	"time"

	"study-task-tracker/pkg/dateutil"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "Same day different times",
			a:    base,
			b:    time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "Adjacent days",
			a:    base,
			b:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "Same day same instant",
			a:    base,
			b:    base,
			want: true,
		},
		{
			name: "Same day-of-month different month",
			a:    base,
			b:    time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "Same day-of-month different year",
			a:    base,
			b:    time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateutil.SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 12, 31, 18, 45, 12, 500, time.UTC)
	want := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := dateutil.StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "Leap February", year: 2024, month: time.February, want: 29},
		{name: "Non-leap February", year: 2023, month: time.February, want: 28},
		{name: "Century non-leap", year: 1900, month: time.February, want: 28},
		{name: "Quad-century leap", year: 2000, month: time.February, want: 29},
		{name: "31-day month", year: 2024, month: time.January, want: 31},
		{name: "30-day month", year: 2024, month: time.April, want: 30},
		{name: "December", year: 2024, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateutil.DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestWholeMinutesUntil(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{name: "Exactly 3 minutes ahead", to: now.Add(3 * time.Minute), want: 3},
		{name: "3.5 minutes truncates to 3", to: now.Add(3*time.Minute + 30*time.Second), want: 3},
		{name: "Zero", to: now, want: 0},
		{name: "30 seconds ahead truncates to 0", to: now.Add(30 * time.Second), want: 0},
		{name: "In the past", to: now.Add(-2 * time.Minute), want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateutil.WholeMinutesUntil(now, tt.to); got != tt.want {
				t.Errorf("WholeMinutesUntil = %d, want %d", got, tt.want)
			}
		})
	}
}
