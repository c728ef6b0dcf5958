package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/NARENN143/Career/internal/adapters/http"
	"github.com/NARENN143/Career/internal/adapters/llm"
	"github.com/NARENN143/Career/internal/adapters/storage/memory"
	"github.com/NARENN143/Career/internal/app/insights"
	profileapp "github.com/NARENN143/Career/internal/app/profile"
)

func newTestServer(t *testing.T) (http.Handler, *llm.MockMentor) {
	t.Helper()

	client := llm.NewMockMentor()
	store := memory.NewProfileStore()

	profileSvc := profileapp.NewService(store, client, client)
	insightsSvc := insights.NewService(client, client)

	srv := httpadapter.NewServer(profileSvc, insightsSvc, client, store, httpadapter.SessionConfig{})
	return srv, client
}

func do(t *testing.T, srv http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func onboard(t *testing.T, srv http.Handler) {
	t.Helper()

	body := []byte(`{
		"name": "Ada Lovelace",
		"status": "student",
		"interests": ["AI"],
		"strengths": ["Math"],
		"weaknesses": ["System design"],
		"available_hours_per_day": 4,
		"timeline_months": 6,
		"selected_career": "Backend Engineer"
	}`)
	w := do(t, srv, http.MethodPost, "/profiles/u1/onboarding", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("onboarding: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestOnboardingAndGetProfile(t *testing.T) {
	srv, _ := newTestServer(t)
	onboard(t, srv)

	w := do(t, srv, http.MethodGet, "/profiles/u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Profile struct {
			Streak             int  `json:"streak"`
			OnboardingComplete bool `json:"onboarding_complete"`
		} `json:"profile"`
		Welcome *struct {
			Text string `json:"text"`
		} `json:"welcome_message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Profile.OnboardingComplete {
		t.Fatal("expected onboarded profile")
	}
	if resp.Profile.Streak != 1 {
		t.Fatalf("streak=%d, want 1 on first load", resp.Profile.Streak)
	}
	if resp.Welcome == nil || resp.Welcome.Text == "" {
		t.Fatal("expected welcome message on first load")
	}
}

func TestMentorMessageRemote(t *testing.T) {
	srv, _ := newTestServer(t)
	onboard(t, srv)

	w := do(t, srv, http.MethodPost, "/profiles/u1/mentor/messages", []byte(`{"text":"How is my progress?"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Mode         string `json:"mode"`
		ModelMessage struct {
			Text string `json:"text"`
		} `json:"model_message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Mode != "remote" {
		t.Fatalf("mode=%q, want remote", resp.Mode)
	}
	if resp.ModelMessage.Text == "" {
		t.Fatal("expected non-empty reply")
	}
}

func TestMentorMessageFallsBackLocal(t *testing.T) {
	srv, client := newTestServer(t)
	onboard(t, srv)

	client.Err = errAlwaysDown

	w := do(t, srv, http.MethodPost, "/profiles/u1/mentor/messages", []byte(`{"text":"What is my next task?"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Mode         string `json:"mode"`
		ModelMessage struct {
			Text string `json:"text"`
		} `json:"model_message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Mode != "local" {
		t.Fatalf("mode=%q, want local", resp.Mode)
	}
	if resp.ModelMessage.Text == "" {
		t.Fatal("expected non-empty local reply")
	}
}

func TestToggleTaskEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	onboard(t, srv)

	w := do(t, srv, http.MethodPost, "/profiles/u1/roadmap/tasks/t1/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	w = do(t, srv, http.MethodPost, "/profiles/u1/roadmap/tasks/nope/toggle", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown task, got %d", w.Code)
	}
}

func TestListProfiles(t *testing.T) {
	srv, _ := newTestServer(t)
	onboard(t, srv)

	w := do(t, srv, http.MethodGet, "/profiles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Profiles []struct {
			UserID string `json:"user_id"`
		} `json:"profiles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Profiles) != 1 || resp.Profiles[0].UserID != "u1" {
		t.Fatalf("unexpected listing: %+v", resp.Profiles)
	}
}

var errAlwaysDown = &downError{}

type downError struct{}

func (*downError) Error() string { return "remote mentor down" }
