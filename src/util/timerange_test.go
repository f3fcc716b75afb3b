package util

import (
	"testing"
	"time"
)

func TestResolveStartDate(t *testing.T) {
	now := time.Date(2024, time.May, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		token string
		want  time.Time
		ok    bool
	}{
		{"today", time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC), true},
		{"week", now.Add(-7 * 24 * time.Hour), true},
		{"month", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), true},
		{"quarter", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), true},
		{"year", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"custom", time.Time{}, false},
		{"all", time.Time{}, false},
		{"", time.Time{}, false},
		{"bogus", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ResolveStartDate(tt.token, now)
		if ok != tt.ok {
			t.Errorf("ResolveStartDate(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ResolveStartDate(%q) = %v, want %v", tt.token, got, tt.want)
		}
		if ok && got.After(now) {
			t.Errorf("ResolveStartDate(%q) = %v is after now", tt.token, got)
		}
	}
}

func TestResolveStartDateQuarterBoundaries(t *testing.T) {
	tests := []struct {
		month time.Month
		want  time.Month
	}{
		{time.January, time.January},
		{time.March, time.January},
		{time.April, time.April},
		{time.June, time.April},
		{time.July, time.July},
		{time.October, time.October},
		{time.December, time.October},
	}
	for _, tt := range tests {
		now := time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC)
		got, ok := ResolveStartDate("quarter", now)
		if !ok {
			t.Fatalf("quarter in %v resolved to no bound", tt.month)
		}
		if got.Month() != tt.want || got.Day() != 1 {
			t.Errorf("quarter start for %v = %v, want %v 1", tt.month, got, tt.want)
		}
	}
}
