// Package engagement computes the daily engagement streak from persisted
// profile data. Pure date arithmetic, run once per session load.
package engagement

import (
	"time"

	"github.com/NARENN143/Career/internal/domain"
)

// Engagement is the pair of fields Advance produces; the caller persists
// them immediately.
type Engagement struct {
	Streak             int
	LastEngagementDate *time.Time
}

// Advance returns the streak state for a session starting on `today`.
//
// Comparison is done at day granularity: both dates are normalized to
// midnight so intra-day reloads cannot break a streak. Rules:
//
//	no streak tracking before onboarding completes
//	no stored date        -> streak = 1
//	exactly one day gap   -> streak + 1
//	more than one day gap -> streak = 1
//	same day              -> unchanged (idempotent reload)
//	stored date in future -> unchanged, date not advanced (clock skew)
func Advance(profile *domain.CareerProfile, today time.Time) Engagement {
	current := Engagement{
		Streak:             profile.Streak,
		LastEngagementDate: profile.LastEngagementDate,
	}

	if !profile.OnboardingComplete {
		return current
	}

	day := Midnight(today)

	if profile.LastEngagementDate == nil {
		return Engagement{Streak: 1, LastEngagementDate: &day}
	}

	last := Midnight(*profile.LastEngagementDate)
	diffDays := daysBetween(last, day)

	switch {
	case diffDays == 1:
		return Engagement{Streak: profile.Streak + 1, LastEngagementDate: &day}
	case diffDays > 1:
		return Engagement{Streak: 1, LastEngagementDate: &day}
	case diffDays < 0:
		// Stored date is ahead of the clock. Anomalous; leave everything
		// as it was rather than decrement or reset.
		return current
	default:
		// Same-day repeat load.
		return Engagement{Streak: profile.Streak, LastEngagementDate: &day}
	}
}

// Midnight strips the time-of-day component in the time's own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Both dates are
// re-anchored to UTC midnight first so a DST transition cannot produce a
// 23h/25h "day" and skew the division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
