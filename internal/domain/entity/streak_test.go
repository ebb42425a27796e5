// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func day(now time.Time, daysAgo int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -daysAgo)
}

func counter(userID uuid.UUID, date time.Time, goals int) *DailyStreak {
	return &DailyStreak{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           date,
		GoalsCompleted: goals,
	}
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	userID := uuid.New()

	tests := []struct {
		name     string
		goals    []int // goals completed per day, index = days ago
		expected int
	}{
		{
			name:     "no counters",
			goals:    nil,
			expected: 0,
		},
		{
			name:     "single qualifying day today",
			goals:    []int{3},
			expected: 1,
		},
		{
			name:     "three consecutive qualifying days",
			goals:    []int{3, 4, 3},
			expected: 3,
		},
		{
			name:     "below threshold never qualifies",
			goals:    []int{2, 2, 2},
			expected: 0,
		},
		{
			name:     "unfinished today does not break yesterday's chain",
			goals:    []int{1, 3, 3},
			expected: 2,
		},
		{
			name:     "no completions today keeps yesterday's chain",
			goals:    []int{0, 3, 3, 5},
			expected: 3,
		},
		{
			name:     "gap before yesterday ends the chain",
			goals:    []int{3, 3, 2, 3},
			expected: 2,
		},
		{
			name:     "gap right after today counts today only",
			goals:    []int{3, 1, 3, 3},
			expected: 1,
		},
		{
			name:     "exactly at threshold qualifies",
			goals:    []int{3, 3},
			expected: 2,
		},
		{
			name:     "ten day run",
			goals:    []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counters []*DailyStreak
			for daysAgo, goals := range tt.goals {
				if goals == 0 {
					continue
				}
				counters = append(counters, counter(userID, day(now, daysAgo), goals))
			}

			got := CurrentStreak(counters, now)
			if got != tt.expected {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCurrentStreakUsesCounterDateNotTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 50, 0, 0, time.Local)
	userID := uuid.New()

	// Counter dates carrying a time-of-day component still land on their day.
	counters := []*DailyStreak{
		counter(userID, day(now, 0).Add(10*time.Hour), 3),
		counter(userID, day(now, 1).Add(23*time.Hour), 3),
	}

	if got := CurrentStreak(counters, now); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

func TestCurrentStreakWithCountersInAnotherLocation(t *testing.T) {
	// Dates loaded from the database typically come back tagged UTC even
	// though they were stored as local midnights. The same wall-clock day
	// must still match.
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, loc)
	userID := uuid.New()

	counters := []*DailyStreak{
		counter(userID, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 3),
		counter(userID, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 4),
		counter(userID, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), 3),
	}

	if got := CurrentStreak(counters, now); got != 3 {
		t.Errorf("CurrentStreak() with UTC counter dates = %d, want 3", got)
	}
}

func TestIsStrike(t *testing.T) {
	tests := []struct {
		goals    int
		isStrike bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{7, true},
	}

	for _, tt := range tests {
		s := &DailyStreak{GoalsCompleted: tt.goals}
		if s.IsStrike() != tt.isStrike {
			t.Errorf("IsStrike() with %d goals = %v, want %v", tt.goals, s.IsStrike(), tt.isStrike)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	in := time.Date(2026, 8, 28, 23, 59, 59, 999, loc)
	out := StartOfDay(in)

	if out.Hour() != 0 || out.Minute() != 0 || out.Second() != 0 || out.Nanosecond() != 0 {
		t.Errorf("StartOfDay() = %v, want midnight", out)
	}
	if out.Location() != loc {
		t.Errorf("StartOfDay() changed location to %v", out.Location())
	}
	if out.Day() != 28 {
		t.Errorf("StartOfDay() changed day to %d", out.Day())
	}
}
