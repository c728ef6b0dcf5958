package file

import (
	"context"
	"testing"
	"time"

	"github.com/NARENN143/Career/internal/domain"
)

func newTestStore(t *testing.T) *ProfileStore {
	t.Helper()

	store, err := NewProfileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewProfileStore: %v", err)
	}
	return store
}

func TestLoadMissingProfile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.LoadProfile(context.Background(), "ghost"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	last := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	p := domain.NewProfile()
	p.Name = "Ada Lovelace"
	p.SelectedCareer = "Backend Engineer"
	p.OnboardingComplete = true
	p.Streak = 4
	p.LastEngagementDate = &last
	p.Roadmap = []domain.RoadmapLevel{
		{
			ID:    "l1",
			Title: "Beginner",
			Tasks: []domain.RoadmapTask{
				{ID: "t1", Title: "First task", Duration: "1 week", Type: domain.TaskTheory, Completed: true},
			},
		},
	}
	p.ChatHistory = []domain.ChatMessage{
		{ID: "m1", Role: domain.RoleUser, Text: "hi", Timestamp: last},
	}

	if err := store.SaveProfile(ctx, "u1", p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := store.LoadProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}

	if got.Name != p.Name || got.Streak != 4 || !got.OnboardingComplete {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.LastEngagementDate == nil || !got.LastEngagementDate.Equal(last) {
		t.Fatalf("lastEngagementDate=%v, want %v", got.LastEngagementDate, last)
	}
	if len(got.Roadmap) != 1 || len(got.Roadmap[0].Tasks) != 1 || !got.Roadmap[0].Tasks[0].Completed {
		t.Fatalf("roadmap mismatch: %+v", got.Roadmap)
	}
	if len(got.ChatHistory) != 1 || got.ChatHistory[0].Text != "hi" {
		t.Fatalf("chat history mismatch: %+v", got.ChatHistory)
	}
}

func TestListProfiles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, id := range []domain.UserID{"bob", "alice"} {
		p := domain.NewProfile()
		p.Name = string(id)
		if err := store.SaveProfile(ctx, id, p); err != nil {
			t.Fatalf("SaveProfile(%s): %v", id, err)
		}
	}

	out, err := store.ListProfiles(ctx, 0)
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	if len(out) != 2 || out[0].UserID != "alice" || out[1].UserID != "bob" {
		t.Fatalf("unexpected listing: %+v", out)
	}
}
