package engagement

import (
	"testing"
	"time"

	"github.com/NARENN143/Career/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(t time.Time) *time.Time { return &t }

func TestAdvance(t *testing.T) {
	today := day(2025, time.March, 10)

	cases := []struct {
		name       string
		onboarded  bool
		streak     int
		last       *time.Time
		today      time.Time
		wantStreak int
		wantLast   *time.Time
	}{
		{
			name:       "pre-onboarding is a no-op",
			onboarded:  false,
			streak:     3,
			last:       dayPtr(day(2025, time.March, 5)),
			today:      today,
			wantStreak: 3,
			wantLast:   dayPtr(day(2025, time.March, 5)),
		},
		{
			name:       "no stored date starts at 1",
			onboarded:  true,
			streak:     0,
			last:       nil,
			today:      today,
			wantStreak: 1,
			wantLast:   dayPtr(today),
		},
		{
			name:       "consecutive day increments",
			onboarded:  true,
			streak:     5,
			last:       dayPtr(day(2025, time.March, 9)),
			today:      today,
			wantStreak: 6,
			wantLast:   dayPtr(today),
		},
		{
			name:       "three day gap resets to 1",
			onboarded:  true,
			streak:     5,
			last:       dayPtr(day(2025, time.March, 7)),
			today:      today,
			wantStreak: 1,
			wantLast:   dayPtr(today),
		},
		{
			name:       "same-day reload is idempotent",
			onboarded:  true,
			streak:     5,
			last:       dayPtr(day(2025, time.March, 10)),
			today:      today,
			wantStreak: 5,
			wantLast:   dayPtr(today),
		},
		{
			name:       "stored date in the future leaves everything alone",
			onboarded:  true,
			streak:     5,
			last:       dayPtr(day(2025, time.March, 12)),
			today:      today,
			wantStreak: 5,
			wantLast:   dayPtr(day(2025, time.March, 12)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.NewProfile()
			p.OnboardingComplete = tc.onboarded
			p.Streak = tc.streak
			p.LastEngagementDate = tc.last

			got := Advance(p, tc.today)

			if got.Streak != tc.wantStreak {
				t.Fatalf("streak=%d, want %d", got.Streak, tc.wantStreak)
			}
			if (got.LastEngagementDate == nil) != (tc.wantLast == nil) {
				t.Fatalf("lastEngagementDate=%v, want %v", got.LastEngagementDate, tc.wantLast)
			}
			if got.LastEngagementDate != nil && !got.LastEngagementDate.Equal(*tc.wantLast) {
				t.Fatalf("lastEngagementDate=%v, want %v", got.LastEngagementDate, tc.wantLast)
			}
		})
	}
}

func TestAdvanceNormalizesTimeOfDay(t *testing.T) {
	// Stored date carries a late-evening timestamp; the load happens early
	// the next morning. Day arithmetic must still see exactly one day.
	last := time.Date(2025, time.March, 9, 23, 45, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 10, 0, 10, 0, 0, time.UTC)

	p := domain.NewProfile()
	p.OnboardingComplete = true
	p.Streak = 2
	p.LastEngagementDate = &last

	got := Advance(p, today)

	if got.Streak != 3 {
		t.Fatalf("streak=%d, want 3", got.Streak)
	}
	if got.LastEngagementDate == nil {
		t.Fatal("expected lastEngagementDate")
	}
	if h, m, s := got.LastEngagementDate.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("lastEngagementDate not normalized to midnight: %v", got.LastEngagementDate)
	}
}

func TestAdvanceSameDayKeepsOriginalDay(t *testing.T) {
	// A second load later the same calendar day must not move the stored
	// day either.
	last := day(2025, time.March, 10)
	today := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)

	p := domain.NewProfile()
	p.OnboardingComplete = true
	p.Streak = 4
	p.LastEngagementDate = &last

	got := Advance(p, today)

	if got.Streak != 4 {
		t.Fatalf("streak=%d, want 4", got.Streak)
	}
	if !got.LastEngagementDate.Equal(last) {
		t.Fatalf("lastEngagementDate=%v, want %v", got.LastEngagementDate, last)
	}
}
