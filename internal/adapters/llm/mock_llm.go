package llm

import (
	"context"
	"fmt"

	"github.com/NARENN143/Career/internal/domain"
)

// MockMentor is the dev/test stand-in for the whole remote surface.
// With Err set, every call fails, which is how tests drive the session
// into the local fallback.
type MockMentor struct {
	Err   error
	Calls int
}

func NewMockMentor() *MockMentor {
	return &MockMentor{}
}

func (m *MockMentor) MentorReply(ctx context.Context, message string, convCtx domain.ConversationContext) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return fmt.Sprintf("Understood. You said %q. Let's turn that into a concrete next step.", message), nil
}

func (m *MockMentor) SuggestCareers(ctx context.Context, p *domain.CareerProfile) ([]domain.CareerSuggestion, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []domain.CareerSuggestion{
		{Title: "Backend Engineer", Explanation: "Matches your interests in systems."},
		{Title: "Data Analyst", Explanation: "Builds on your analytical strengths."},
		{Title: "DevOps Engineer", Explanation: "A natural bridge from your background."},
	}, nil
}

func (m *MockMentor) GenerateRoadmap(ctx context.Context, p *domain.CareerProfile) ([]domain.RoadmapLevel, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []domain.RoadmapLevel{
		{
			ID:          "l1",
			Title:       "Beginner",
			Description: "Foundations",
			Tasks: []domain.RoadmapTask{
				{ID: "t1", Title: "Language basics", Description: "Work through the core syntax.", Duration: "2 weeks", Type: domain.TaskTheory},
				{ID: "t2", Title: "First mini project", Description: "Build something small end to end.", Duration: "1 week", Type: domain.TaskProject},
			},
		},
		{
			ID:          "l2",
			Title:       "Intermediate",
			Description: "Depth",
			Tasks: []domain.RoadmapTask{
				{ID: "t3", Title: "Core tooling", Description: "Learn the everyday toolchain.", Duration: "2 weeks", Type: domain.TaskSkill},
			},
		},
	}, nil
}

func (m *MockMentor) DailyNewsletter(ctx context.Context, p *domain.CareerProfile) (*domain.Newsletter, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Newsletter{
		Date:          "today",
		LearningFocus: "Fundamentals",
		IndustryTrend: "Hiring is picking up.",
		CareerTip:     "Ship something small every week.",
		Motivation:    "Consistency beats intensity.",
	}, nil
}

func (m *MockMentor) FindOpportunities(ctx context.Context, career string) ([]domain.Opportunity, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return []domain.Opportunity{
		{ID: "o1", Title: "Junior " + career, Company: "Acme", Type: "Job", MatchScore: 82, Location: "Remote", WhyMatch: "Entry-level friendly."},
	}, nil
}
