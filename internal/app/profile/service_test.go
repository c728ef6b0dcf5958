package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/NARENN143/Career/internal/adapters/llm"
	"github.com/NARENN143/Career/internal/adapters/storage/memory"
	profileapp "github.com/NARENN143/Career/internal/app/profile"
	"github.com/NARENN143/Career/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLoadFreshProfile(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()
	svc := profileapp.NewService(store, nil, nil)

	p, err := svc.Load(ctx, "nobody")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.OnboardingComplete {
		t.Fatal("fresh profile must not be onboarded")
	}
	if p.AvailableHoursPerDay != 4 || p.TimelineMonths != 6 {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	// A fresh profile is not persisted until the user acts.
	if _, err := store.LoadProfile(ctx, "nobody"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestLoadAdvancesStreakAndPersists(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()

	yesterday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.June, 10, 8, 30, 0, 0, time.UTC)

	p := domain.NewProfile()
	p.OnboardingComplete = true
	p.Streak = 5
	p.LastEngagementDate = &yesterday
	if err := store.SaveProfile(ctx, "u1", p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	svc := profileapp.NewService(store, nil, nil).WithClock(fixedClock(today))

	got, err := svc.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Streak != 6 {
		t.Fatalf("streak=%d, want 6", got.Streak)
	}

	saved, err := store.LoadProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if saved.Streak != 6 {
		t.Fatalf("persisted streak=%d, want 6", saved.Streak)
	}
	if saved.LastEngagementDate == nil || saved.LastEngagementDate.Day() != 10 {
		t.Fatalf("persisted lastEngagementDate=%v, want June 10", saved.LastEngagementDate)
	}
}

func TestLoadBeforeOnboardingSkipsStreak(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()

	p := domain.NewProfile()
	p.Name = "Pending User"
	if err := store.SaveProfile(ctx, "u1", p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	svc := profileapp.NewService(store, nil, nil)

	got, err := svc.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Streak != 0 || got.LastEngagementDate != nil {
		t.Fatalf("engagement fields mutated pre-onboarding: %+v", got)
	}
}

func TestCompleteOnboardingGeneratesRoadmap(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()
	remote := llm.NewMockMentor()

	svc := profileapp.NewService(store, remote, remote)

	p, err := svc.CompleteOnboarding(ctx, "u1", profileapp.OnboardingInput{
		Name:                 "Ada Lovelace",
		Status:               domain.StatusStudent,
		Interests:            []string{"AI"},
		Strengths:            []string{"Math"},
		Weaknesses:           []string{"System design"},
		AvailableHoursPerDay: 3,
		TimelineMonths:       9,
		SelectedCareer:       "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding failed: %v", err)
	}

	if !p.OnboardingComplete {
		t.Fatal("expected onboarding gate to flip")
	}
	if len(p.Roadmap) == 0 {
		t.Fatal("expected a generated roadmap")
	}
	if p.SelectedCareer != "Backend Engineer" {
		t.Fatalf("selectedCareer=%q", p.SelectedCareer)
	}

	saved, err := store.LoadProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if !saved.OnboardingComplete {
		t.Fatal("onboarding not persisted")
	}
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()
	remote := llm.NewMockMentor()
	svc := profileapp.NewService(store, remote, remote)

	p, err := svc.CompleteOnboarding(ctx, "u1", profileapp.OnboardingInput{
		Name:           "Test",
		SelectedCareer: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding failed: %v", err)
	}
	taskID := p.Roadmap[0].Tasks[0].ID

	p, err = svc.ToggleTask(ctx, "u1", taskID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !p.FindTask(taskID).Completed {
		t.Fatal("expected task completed")
	}

	p, err = svc.ToggleTask(ctx, "u1", taskID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if p.FindTask(taskID).Completed {
		t.Fatal("expected task back to pending")
	}

	if _, err := svc.ToggleTask(ctx, "u1", "missing"); err == nil {
		t.Fatal("expected error for unknown task id")
	}
}
