package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/NARENN143/Career/internal/app/insights"
	"github.com/NARENN143/Career/internal/app/mentor"
	profileapp "github.com/NARENN143/Career/internal/app/profile"
	"github.com/NARENN143/Career/internal/domain"
)

// SessionConfig carries the per-turn knobs handed down to mentor sessions.
type SessionConfig struct {
	RemoteTimeout time.Duration
	FallbackDelay time.Duration
}

type Server struct {
	profiles *profileapp.Service
	insights *insights.Service

	mentorClient domain.MentorClient
	store        domain.ProfileStore
	sessionCfg   SessionConfig

	mu       sync.Mutex
	sessions map[domain.UserID]*mentor.Session
}

func NewServer(
	profiles *profileapp.Service,
	insightsSvc *insights.Service,
	mentorClient domain.MentorClient,
	store domain.ProfileStore,
	sessionCfg SessionConfig,
) http.Handler {
	s := &Server{
		profiles:     profiles,
		insights:     insightsSvc,
		mentorClient: mentorClient,
		store:        store,
		sessionCfg:   sessionCfg,
		sessions:     make(map[domain.UserID]*mentor.Session),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)

	// /profiles          → GET: list summaries
	mux.HandleFunc("/profiles", s.handleProfiles)

	// /profiles/{id}                          → GET: load (advances streak)
	// /profiles/{id}/career-suggestions       → POST
	// /profiles/{id}/onboarding               → POST
	// /profiles/{id}/mentor/messages          → POST
	// /profiles/{id}/roadmap/tasks/{tid}/toggle → POST
	// /profiles/{id}/newsletter               → GET
	// /profiles/{id}/opportunities            → GET
	mux.HandleFunc("/profiles/", s.handleProfileWithID)

	return chainMiddlewares(mux, withCORS, withLogging)
}

// session returns (creating if needed) the one mentor session for a user.
// The in-flight gate lives inside the session, so it must be shared across
// requests for the same user.
func (s *Server) session(userID domain.UserID) *mentor.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = mentor.NewSession(s.mentorClient, s.store, userID,
			mentor.WithRemoteTimeout(s.sessionCfg.RemoteTimeout),
			mentor.WithFallbackDelay(s.sessionCfg.FallbackDelay),
		)
		s.sessions[userID] = sess
	}
	return sess
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	UserMessage  messageResponse `json:"user_message"`
	ModelMessage messageResponse `json:"model_message"`
	Mode         string          `json:"mode"`
}

type getProfileResponse struct {
	Profile *domain.CareerProfile `json:"profile"`
	Welcome *messageResponse      `json:"welcome_message,omitempty"`
}

type onboardingRequest struct {
	Name                 string   `json:"name"`
	Status               string   `json:"status"`
	Education            string   `json:"education"`
	Interests            []string `json:"interests"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	AvailableHoursPerDay float64  `json:"available_hours_per_day"`
	TimelineMonths       int      `json:"timeline_months"`
	SelectedCareer       string   `json:"selected_career"`
}

type suggestionRequest struct {
	Status     string   `json:"status"`
	Education  string   `json:"education"`
	Interests  []string `json:"interests"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

type profileSummaryResponse struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	SelectedCareer string `json:"selected_career"`
	Streak         int    `json:"streak"`
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListProfiles(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleProfileWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	userID := domain.UserID(parts[0])
	if userID == "" {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.handleGetProfile(w, r, userID)

	case len(parts) == 2 && parts[1] == "career-suggestions":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleCareerSuggestions(w, r, userID)

	case len(parts) == 2 && parts[1] == "onboarding":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleOnboarding(w, r, userID)

	case len(parts) == 3 && parts[1] == "mentor" && parts[2] == "messages":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleSendMessage(w, r, userID)

	case len(parts) == 5 && parts[1] == "roadmap" && parts[2] == "tasks" && parts[4] == "toggle":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleToggleTask(w, r, userID, parts[3])

	case len(parts) == 2 && parts[1] == "newsletter":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.handleNewsletter(w, r, userID)

	case len(parts) == 2 && parts[1] == "opportunities":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.handleOpportunities(w, r, userID)

	default:
		http.NotFound(w, r)
	}
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	p, err := s.profiles.Load(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	resp := getProfileResponse{Profile: p}

	// Seed the strategist greeting the first time the mentor tab opens.
	if p.OnboardingComplete {
		welcome, err := s.session(userID).EnsureWelcome(r.Context(), p)
		if err == nil && welcome != nil {
			m := toMessageResponse(*welcome)
			resp.Welcome = &m
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCareerSuggestions(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	draft := domain.NewProfile()
	draft.Status = parseUserStatus(req.Status)
	draft.Education = req.Education
	draft.Interests = req.Interests
	draft.Strengths = req.Strengths
	draft.Weaknesses = req.Weaknesses

	suggestions, err := s.profiles.SuggestCareers(r.Context(), draft)
	if err != nil {
		remoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.SelectedCareer == "" {
		badRequest(w, "selected_career is required")
		return
	}

	p, err := s.profiles.CompleteOnboarding(r.Context(), userID, profileapp.OnboardingInput{
		Name:                 req.Name,
		Status:               parseUserStatus(req.Status),
		Education:            req.Education,
		Interests:            req.Interests,
		Strengths:            req.Strengths,
		Weaknesses:           req.Weaknesses,
		AvailableHoursPerDay: req.AvailableHoursPerDay,
		TimelineMonths:       req.TimelineMonths,
		SelectedCareer:       req.SelectedCareer,
	})
	if err != nil {
		remoteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, getProfileResponse{Profile: p})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	p, err := s.profiles.Load(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	out, err := s.session(userID).Send(r.Context(), p, req.Text)
	if err != nil {
		if errors.Is(err, mentor.ErrTurnInFlight) {
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "a mentor turn is already in progress",
			})
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		UserMessage:  toMessageResponse(out.UserMessage),
		ModelMessage: toMessageResponse(out.ModelMessage),
		Mode:         string(out.Mode),
	})
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request, userID domain.UserID, taskID string) {
	p, err := s.profiles.ToggleTask(r.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.NotFound(w, r)
			return
		}
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, getProfileResponse{Profile: p})
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	p, err := s.profiles.Load(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	nl, err := s.insights.DailyNewsletter(r.Context(), p)
	if err != nil {
		remoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nl)
}

func (s *Server) handleOpportunities(w http.ResponseWriter, r *http.Request, userID domain.UserID) {
	p, err := s.profiles.Load(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	opps, err := s.insights.Opportunities(r.Context(), p.SelectedCareer)
	if err != nil {
		remoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"opportunities": opps})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.profiles.List(r.Context(), 0)
	if err != nil {
		internalError(w, err)
		return
	}

	out := make([]profileSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, profileSummaryResponse{
			UserID:         string(sum.UserID),
			Name:           sum.Name,
			SelectedCareer: sum.SelectedCareer,
			Streak:         sum.Streak,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": out})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func toMessageResponse(m domain.ChatMessage) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func parseUserStatus(s string) domain.UserStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fresher":
		return domain.StatusFresher
	case "professional":
		return domain.StatusProfessional
	case "career switcher", "switcher":
		return domain.StatusSwitcher
	default:
		return domain.StatusStudent
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

// remoteError maps rate limiting to 429 with the user-facing message;
// everything else from the remote surface reads as unavailable.
func remoteError(w http.ResponseWriter, err error) {
	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error": rl.Message,
		})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]string{
		"error": "upstream service unavailable",
	})
}
