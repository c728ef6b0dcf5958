package domain

import "context"

// ProfileStore defines profile persistence: one flat document per user,
// keyed by the user id.
type ProfileStore interface {
	LoadProfile(ctx context.Context, userID UserID) (*CareerProfile, error)
	SaveProfile(ctx context.Context, userID UserID, profile *CareerProfile) error
	ListProfiles(ctx context.Context, limit int) ([]ProfileSummary, error)
}

// ProfileSummary is the lightweight listing shape returned by ListProfiles.
type ProfileSummary struct {
	UserID         UserID
	Name           string
	SelectedCareer string
	Streak         int
}

// ConversationContext gives the mentor the minimal context it needs for a turn.
type ConversationContext struct {
	UserID  UserID
	Profile *CareerProfile
	History []ChatMessage
}

// MentorClient defines how the core talks to the remote mentor service.
// Any returned error means "unavailable, fall back locally".
type MentorClient interface {
	MentorReply(ctx context.Context, message string, convCtx ConversationContext) (string, error)
}

// CareerAdvisor suggests career paths from a partially filled profile.
type CareerAdvisor interface {
	SuggestCareers(ctx context.Context, profile *CareerProfile) ([]CareerSuggestion, error)
}

// RoadmapGenerator produces the multi-level learning roadmap for the
// selected career. Called once, at onboarding completion.
type RoadmapGenerator interface {
	GenerateRoadmap(ctx context.Context, profile *CareerProfile) ([]RoadmapLevel, error)
}

// NewsletterGenerator produces the daily digest.
type NewsletterGenerator interface {
	DailyNewsletter(ctx context.Context, profile *CareerProfile) (*Newsletter, error)
}

// OpportunityFinder lists current openings for a career path.
type OpportunityFinder interface {
	FindOpportunities(ctx context.Context, career string) ([]Opportunity, error)
}
