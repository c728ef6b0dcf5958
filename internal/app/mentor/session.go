// Package mentor orchestrates one conversation turn: remote mentor first,
// local strategy engine whenever the remote call fails.
package mentor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NARENN143/Career/internal/app/strategy"
	"github.com/NARENN143/Career/internal/domain"
	"github.com/NARENN143/Career/internal/observability"
)

// State tags where the session is inside a turn.
type State string

const (
	StateIdle        State = "idle"
	StateSending     State = "sending"
	StateSuccess     State = "success"
	StateFailedLocal State = "failed_local"
)

// Mode records which engine produced the last reply.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

// ErrTurnInFlight is returned when a send arrives while the previous turn
// is still waiting on the remote mentor.
var ErrTurnInFlight = errors.New("mentor turn already in flight")

// Session owns the conversation for a single user. It is the only writer of
// that user's profile while active.
type Session struct {
	mentor domain.MentorClient
	store  domain.ProfileStore
	userID domain.UserID

	mu    sync.Mutex
	state State
	mode  Mode

	now           func() time.Time
	remoteTimeout time.Duration
	fallbackDelay time.Duration
}

type Option func(*Session)

// WithRemoteTimeout bounds the remote mentor call. Without a bound a
// hanging call would never reach the local fallback.
func WithRemoteTimeout(d time.Duration) Option {
	return func(s *Session) { s.remoteTimeout = d }
}

// WithFallbackDelay inserts a pause before a local reply so a live UI does
// not flip modes instantaneously. Purely cosmetic; tests leave it at zero.
func WithFallbackDelay(d time.Duration) Option {
	return func(s *Session) { s.fallbackDelay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(mentor domain.MentorClient, store domain.ProfileStore, userID domain.UserID, opts ...Option) *Session {
	s := &Session{
		mentor:        mentor,
		store:         store,
		userID:        userID,
		state:         StateIdle,
		mode:          ModeRemote,
		now:           time.Now,
		remoteTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the current turn state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode reports which engine produced the last reply.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// TurnResult is what one user turn produced.
type TurnResult struct {
	UserMessage  domain.ChatMessage
	ModelMessage domain.ChatMessage
	Mode         Mode
}

// Send runs one turn: append the user message, try the remote mentor, fall
// back to the local strategy engine on any error, append the reply, persist
// the history. A reply is always produced; the only error paths are the
// in-flight gate and context cancellation.
//
// The mode flag is per-turn: a local turn never stops the next turn from
// trying the remote mentor again.
func (s *Session) Send(ctx context.Context, profile *domain.CareerProfile, text string) (*TurnResult, error) {
	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	s.state = StateSending
	s.mu.Unlock()

	log := observability.LoggerFromContext(ctx).With("user_id", s.userID)

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Text:      text,
		Timestamp: s.now(),
	}
	profile.AppendMessage(userMsg)

	convCtx := domain.ConversationContext{
		UserID:  s.userID,
		Profile: profile,
		History: profile.ChatHistory,
	}

	callCtx := ctx
	if s.remoteTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.remoteTimeout)
		defer cancel()
	}

	reply, err := s.mentor.MentorReply(callCtx, text, convCtx)

	var mode Mode
	switch {
	case err == nil:
		mode = ModeRemote
	case ctx.Err() != nil:
		// The caller itself went away; nobody is left to read a reply.
		s.setState(StateIdle, s.mode)
		return nil, ctx.Err()
	default:
		log.Warn("remote mentor unavailable, switching to local feed", "error", err)
		mode = ModeLocal
		if s.fallbackDelay > 0 {
			select {
			case <-time.After(s.fallbackDelay):
			case <-ctx.Done():
				s.setState(StateIdle, s.mode)
				return nil, ctx.Err()
			}
		}
		reply = strategy.Respond(text, profile)
	}

	modelMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleModel,
		Text:      reply,
		Timestamp: s.now(),
	}
	profile.AppendMessage(modelMsg)

	if err := s.store.SaveProfile(ctx, s.userID, profile); err != nil {
		// Non-fatal: the user still gets their reply this session.
		log.Error("failed to persist chat history", "error", err)
	}

	if mode == ModeRemote {
		s.setState(StateSuccess, mode)
	} else {
		s.setState(StateFailedLocal, mode)
	}

	return &TurnResult{
		UserMessage:  userMsg,
		ModelMessage: modelMsg,
		Mode:         mode,
	}, nil
}

// EnsureWelcome seeds an empty conversation with the strategist greeting and
// persists it. No-op when history already exists.
func (s *Session) EnsureWelcome(ctx context.Context, profile *domain.CareerProfile) (*domain.ChatMessage, error) {
	if len(profile.ChatHistory) > 0 {
		return nil, nil
	}

	welcome := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleModel,
		Text:      strategy.WelcomeMessage(profile),
		Timestamp: s.now(),
	}
	profile.AppendMessage(welcome)

	if err := s.store.SaveProfile(ctx, s.userID, profile); err != nil {
		return nil, err
	}
	return &welcome, nil
}

func (s *Session) setState(state State, mode Mode) {
	s.mu.Lock()
	s.state = state
	s.mode = mode
	s.mu.Unlock()
}
