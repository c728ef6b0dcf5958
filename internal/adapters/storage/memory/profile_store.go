package memory

import (
	"context"
	"sync"

	"github.com/NARENN143/Career/internal/domain"
)

// ProfileStore is a simple in-memory implementation of domain.ProfileStore.
// It is NOT persistent and is only suitable for development / local mode.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[domain.UserID]*domain.CareerProfile
	order    []domain.UserID
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[domain.UserID]*domain.CareerProfile),
	}
}

func (s *ProfileStore) LoadProfile(ctx context.Context, userID domain.UserID) (*domain.CareerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *ProfileStore) SaveProfile(ctx context.Context, userID domain.UserID, profile *domain.CareerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[userID]; !exists {
		s.order = append(s.order, userID)
	}
	s.profiles[userID] = profile
	return nil
}

func (s *ProfileStore) ListProfiles(ctx context.Context, limit int) ([]domain.ProfileSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ProfileSummary, 0, len(s.order))
	for _, id := range s.order {
		p := s.profiles[id]
		out = append(out, domain.ProfileSummary{
			UserID:         id,
			Name:           p.Name,
			SelectedCareer: p.SelectedCareer,
			Streak:         p.Streak,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
