// Package profile holds the lifecycle of a user's career profile: load with
// streak recomputation, onboarding completion, and roadmap task toggles.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NARENN143/Career/internal/app/engagement"
	"github.com/NARENN143/Career/internal/domain"
	"github.com/NARENN143/Career/internal/observability"
)

type Service struct {
	store   domain.ProfileStore
	advisor domain.CareerAdvisor
	roadmap domain.RoadmapGenerator
	now     func() time.Time
}

func NewService(store domain.ProfileStore, advisor domain.CareerAdvisor, roadmap domain.RoadmapGenerator) *Service {
	return &Service{
		store:   store,
		advisor: advisor,
		roadmap: roadmap,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load fetches the profile and, once onboarding is complete, advances the
// engagement streak and persists the new state. This streak write is the
// only write the service performs without an explicit user action. A user
// with no stored document gets a fresh default profile, not yet saved.
func (s *Service) Load(ctx context.Context, userID domain.UserID) (*domain.CareerProfile, error) {
	log := observability.LoggerFromContext(ctx).With("user_id", userID)

	p, err := s.store.LoadProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			log.Info("no stored profile, starting fresh")
			return domain.NewProfile(), nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if !p.OnboardingComplete {
		return p, nil
	}

	eng := engagement.Advance(p, s.now())
	changed := eng.Streak != p.Streak || !sameDay(eng.LastEngagementDate, p.LastEngagementDate)
	p.Streak = eng.Streak
	p.LastEngagementDate = eng.LastEngagementDate

	if changed {
		if err := s.store.SaveProfile(ctx, userID, p); err != nil {
			return nil, fmt.Errorf("persist engagement state: %w", err)
		}
		log.Info("engagement streak advanced", "streak", p.Streak)
	}

	return p, nil
}

// SuggestCareers asks the remote advisor for career paths matching the
// partially filled profile. Onboarding-time helper; no local fallback.
func (s *Service) SuggestCareers(ctx context.Context, p *domain.CareerProfile) ([]domain.CareerSuggestion, error) {
	if s.advisor == nil {
		return nil, errors.New("career advisor not configured")
	}
	return s.advisor.SuggestCareers(ctx, p)
}

// OnboardingInput carries the answers collected by the onboarding flow.
type OnboardingInput struct {
	Name                 string
	Status               domain.UserStatus
	Education            string
	Interests            []string
	Strengths            []string
	Weaknesses           []string
	AvailableHoursPerDay float64
	TimelineMonths       int
	SelectedCareer       string
}

// CompleteOnboarding fills the profile, generates the roadmap for the
// selected career, flips the onboarding gate and saves. Roadmap generation
// happens exactly once here; afterwards only task flags mutate.
func (s *Service) CompleteOnboarding(ctx context.Context, userID domain.UserID, in OnboardingInput) (*domain.CareerProfile, error) {
	if in.SelectedCareer == "" {
		return nil, errors.New("selected career is required")
	}
	if s.roadmap == nil {
		return nil, errors.New("roadmap generator not configured")
	}

	log := observability.LoggerFromContext(ctx).With(
		"user_id", userID,
		"career", in.SelectedCareer,
	)

	p, err := s.store.LoadProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		p = domain.NewProfile()
	}

	p.Name = in.Name
	p.Status = in.Status
	p.Education = in.Education
	p.Interests = in.Interests
	p.Strengths = in.Strengths
	p.Weaknesses = in.Weaknesses
	if in.AvailableHoursPerDay > 0 {
		p.AvailableHoursPerDay = in.AvailableHoursPerDay
	}
	if in.TimelineMonths > 0 {
		p.TimelineMonths = in.TimelineMonths
	}
	p.SelectedCareer = in.SelectedCareer

	levels, err := s.roadmap.GenerateRoadmap(ctx, p)
	if err != nil {
		log.Error("roadmap generation failed", "error", err)
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}
	p.Roadmap = levels
	p.OnboardingComplete = true

	if err := s.store.SaveProfile(ctx, userID, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	log.Info("onboarding complete", "levels", len(levels))
	return p, nil
}

// ToggleTask flips the completed flag of one roadmap task and saves.
func (s *Service) ToggleTask(ctx context.Context, userID domain.UserID, taskID string) (*domain.CareerProfile, error) {
	p, err := s.store.LoadProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	task := p.FindTask(taskID)
	if task == nil {
		return nil, fmt.Errorf("task %q not found", taskID)
	}
	task.Completed = !task.Completed

	if err := s.store.SaveProfile(ctx, userID, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// List returns profile summaries, most useful for ops inspection.
func (s *Service) List(ctx context.Context, limit int) ([]domain.ProfileSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.store.ListProfiles(ctx, limit)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
