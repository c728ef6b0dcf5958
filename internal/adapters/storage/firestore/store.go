package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NARENN143/Career/internal/domain"
)

// Store persists each CareerProfile as a single flat document keyed by the
// user id, under the "profiles" collection.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store.
// Uses the project passed (ELEVATE_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) profilesCol() *firestore.CollectionRef {
	return s.client.Collection("profiles")
}

func (s *Store) profileDoc(id domain.UserID) *firestore.DocumentRef {
	return s.profilesCol().Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type taskDoc struct {
	ID          string `firestore:"id"`
	Title       string `firestore:"title"`
	Description string `firestore:"description"`
	Duration    string `firestore:"duration"`
	Type        string `firestore:"type"`
	Completed   bool   `firestore:"completed"`
}

type levelDoc struct {
	ID          string    `firestore:"id"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Tasks       []taskDoc `firestore:"tasks"`
}

type messageDoc struct {
	ID        string    `firestore:"id"`
	Role      string    `firestore:"role"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"created_at"`
}

type profileDoc struct {
	Name      string `firestore:"name"`
	Status    string `firestore:"status"`
	Education string `firestore:"education"`

	Interests  []string `firestore:"interests"`
	Strengths  []string `firestore:"strengths"`
	Weaknesses []string `firestore:"weaknesses"`

	AvailableHoursPerDay float64 `firestore:"available_hours_per_day"`
	TimelineMonths       int     `firestore:"timeline_months"`

	SelectedCareer     string     `firestore:"selected_career"`
	Roadmap            []levelDoc `firestore:"roadmap"`
	OnboardingComplete bool       `firestore:"onboarding_complete"`

	Streak             int        `firestore:"streak"`
	LastEngagementDate *time.Time `firestore:"last_engagement_date"`

	ChatHistory []messageDoc `firestore:"chat_history"`

	UpdatedAt time.Time `firestore:"updated_at"`
}

// ─────────────────────────────────────────
// ProfileStore implementation
// ─────────────────────────────────────────

func (s *Store) LoadProfile(ctx context.Context, userID domain.UserID) (*domain.CareerProfile, error) {
	snap, err := s.profileDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("firestore LoadProfile: %w", err)
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore LoadProfile decode: %w", err)
	}

	return fromProfileDoc(&doc), nil
}

func (s *Store) SaveProfile(ctx context.Context, userID domain.UserID, profile *domain.CareerProfile) error {
	doc := toProfileDoc(profile)
	doc.UpdatedAt = time.Now()

	if _, err := s.profileDoc(userID).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore SaveProfile: %w", err)
	}
	return nil
}

func (s *Store) ListProfiles(ctx context.Context, limit int) ([]domain.ProfileSummary, error) {
	q := s.profilesCol().OrderBy("updated_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.ProfileSummary
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListProfiles: %w", err)
		}

		var doc profileDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode profileDoc: %w", err)
		}

		out = append(out, domain.ProfileSummary{
			UserID:         domain.UserID(snap.Ref.ID),
			Name:           doc.Name,
			SelectedCareer: doc.SelectedCareer,
			Streak:         doc.Streak,
		})
	}
	return out, nil
}

// ─────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────

func toProfileDoc(p *domain.CareerProfile) *profileDoc {
	doc := &profileDoc{
		Name:                 p.Name,
		Status:               string(p.Status),
		Education:            p.Education,
		Interests:            p.Interests,
		Strengths:            p.Strengths,
		Weaknesses:           p.Weaknesses,
		AvailableHoursPerDay: p.AvailableHoursPerDay,
		TimelineMonths:       p.TimelineMonths,
		SelectedCareer:       p.SelectedCareer,
		OnboardingComplete:   p.OnboardingComplete,
		Streak:               p.Streak,
		LastEngagementDate:   p.LastEngagementDate,
	}

	for _, level := range p.Roadmap {
		ld := levelDoc{
			ID:          level.ID,
			Title:       level.Title,
			Description: level.Description,
		}
		for _, t := range level.Tasks {
			ld.Tasks = append(ld.Tasks, taskDoc{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Duration:    t.Duration,
				Type:        string(t.Type),
				Completed:   t.Completed,
			})
		}
		doc.Roadmap = append(doc.Roadmap, ld)
	}

	for _, m := range p.ChatHistory {
		doc.ChatHistory = append(doc.ChatHistory, messageDoc{
			ID:        m.ID,
			Role:      string(m.Role),
			Text:      m.Text,
			CreatedAt: m.Timestamp,
		})
	}

	return doc
}

func fromProfileDoc(doc *profileDoc) *domain.CareerProfile {
	p := &domain.CareerProfile{
		Name:                 doc.Name,
		Status:               domain.UserStatus(doc.Status),
		Education:            doc.Education,
		Interests:            doc.Interests,
		Strengths:            doc.Strengths,
		Weaknesses:           doc.Weaknesses,
		AvailableHoursPerDay: doc.AvailableHoursPerDay,
		TimelineMonths:       doc.TimelineMonths,
		SelectedCareer:       doc.SelectedCareer,
		OnboardingComplete:   doc.OnboardingComplete,
		Streak:               doc.Streak,
		LastEngagementDate:   doc.LastEngagementDate,
	}

	for _, ld := range doc.Roadmap {
		level := domain.RoadmapLevel{
			ID:          ld.ID,
			Title:       ld.Title,
			Description: ld.Description,
		}
		for _, td := range ld.Tasks {
			level.Tasks = append(level.Tasks, domain.RoadmapTask{
				ID:          td.ID,
				Title:       td.Title,
				Description: td.Description,
				Duration:    td.Duration,
				Type:        domain.TaskType(td.Type),
				Completed:   td.Completed,
			})
		}
		p.Roadmap = append(p.Roadmap, level)
	}

	for _, md := range doc.ChatHistory {
		p.ChatHistory = append(p.ChatHistory, domain.ChatMessage{
			ID:        md.ID,
			Role:      domain.Role(md.Role),
			Text:      md.Text,
			Timestamp: md.CreatedAt,
		})
	}

	return p
}
