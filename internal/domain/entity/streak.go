// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// StrikeThreshold is the number of goals a user must complete in a single
	// day for that day to count toward their streak. Fixed policy, not
	// configurable per user.
	StrikeThreshold = 3

	// StreakWindowDays is how far back daily counters are fetched for the
	// streak endpoint. Current-streak accuracy is bounded by this window.
	StreakWindowDays = 30

	// maxStreakScanDays bounds the backward day scan.
	maxStreakScanDays = 365

	// dayKeyLayout identifies a calendar day by its wall clock alone.
	dayKeyLayout = "2006-01-02"
)

// DailyStreak is the per-user per-day counter of distinct goals completed.
// It is a derived aggregate: recomputed by full recount whenever a completion
// is recorded, never incremented in place.
type DailyStreak struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Date           time.Time // local midnight of the day it counts
	GoalsCompleted int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StartOfDay truncates t to midnight in t's own location. A calendar day is
// the server-local midnight-to-midnight window, not a per-user time zone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsStrike reports whether the day qualifies toward a streak.
func (s *DailyStreak) IsStrike() bool {
	return s.GoalsCompleted >= StrikeThreshold
}

// CurrentStreak computes the length of the user's current streak from daily
// counters: consecutive qualifying days scanning backward from today.
//
// Today is special: a day still in progress with fewer than StrikeThreshold
// completions is skipped without breaking the chain, so yesterday's streak is
// not reported as broken before today is over. Any older non-qualifying day
// ends the scan.
// Counters are matched to scan days by wall-clock calendar date. Dates loaded
// from the database can come back in a different location than they were
// stored in (drivers commonly return UTC), and time.Time equality includes
// the location, so keying a map on time.Time would miss every counter.
func CurrentStreak(counters []*DailyStreak, now time.Time) int {
	byDay := make(map[string]int, len(counters))
	for _, c := range counters {
		byDay[c.Date.Format(dayKeyLayout)] = c.GoalsCompleted
	}

	today := StartOfDay(now)
	streak := 0
	for offset := 0; offset < maxStreakScanDays; offset++ {
		checkDate := today.AddDate(0, 0, -offset).Format(dayKeyLayout)
		if byDay[checkDate] >= StrikeThreshold {
			streak++
		} else if offset > 0 {
			break
		}
	}
	return streak
}
