package insights

import (
	"context"
	"errors"

	"github.com/NARENN143/Career/internal/domain"
)

// Service holds the logic of fetching dashboard digests. These are
// remote-only conveniences; the mentor conversation does not depend on them.
type Service struct {
	newsletter    domain.NewsletterGenerator
	opportunities domain.OpportunityFinder
}

func NewService(newsletter domain.NewsletterGenerator, opportunities domain.OpportunityFinder) *Service {
	return &Service{
		newsletter:    newsletter,
		opportunities: opportunities,
	}
}

// DailyNewsletter generates the digest for the user's current roadmap stage.
func (s *Service) DailyNewsletter(ctx context.Context, p *domain.CareerProfile) (*domain.Newsletter, error) {
	if s.newsletter == nil {
		return nil, errors.New("newsletter generator not configured")
	}
	return s.newsletter.DailyNewsletter(ctx, p)
}

// Opportunities lists current openings for the user's selected career.
func (s *Service) Opportunities(ctx context.Context, career string) ([]domain.Opportunity, error) {
	if s.opportunities == nil {
		return nil, errors.New("opportunity finder not configured")
	}
	if career == "" {
		return nil, errors.New("career is required")
	}
	return s.opportunities.FindOpportunities(ctx, career)
}
