package domain

import "time"

// RoadmapTask is a single unit of work inside a roadmap level.
// Only the Completed flag mutates after generation.
type RoadmapTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Type        TaskType `json:"type"`
	Completed   bool     `json:"completed"`
}

// RoadmapLevel groups tasks into an ordered phase (Beginner, Intermediate, ...).
type RoadmapLevel struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tasks       []RoadmapTask `json:"tasks"`
}

// ChatMessage is one turn in the mentor conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CareerProfile is the root aggregate: one document per user, exclusively
// owned by the active session.
type CareerProfile struct {
	Name      string     `json:"name"`
	Status    UserStatus `json:"status"`
	Education string     `json:"education"`

	Interests  []string `json:"interests"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`

	AvailableHoursPerDay float64 `json:"available_hours_per_day"`
	TimelineMonths       int     `json:"timeline_months"`

	SelectedCareer string         `json:"selected_career,omitempty"`
	Roadmap        []RoadmapLevel `json:"roadmap,omitempty"`

	// While false, roadmap and engagement fields are meaningless.
	OnboardingComplete bool `json:"onboarding_complete"`

	// Engagement state, recomputed on every post-onboarding load.
	Streak             int        `json:"streak"`
	LastEngagementDate *time.Time `json:"last_engagement_date,omitempty"`

	ChatHistory []ChatMessage `json:"chat_history,omitempty"`
}

// NewProfile returns a fresh profile with the same defaults the onboarding
// form starts from.
func NewProfile() *CareerProfile {
	return &CareerProfile{
		Status:               StatusStudent,
		Interests:            []string{},
		Strengths:            []string{},
		Weaknesses:           []string{},
		AvailableHoursPerDay: 4,
		TimelineMonths:       6,
	}
}

// AllTasks flattens the roadmap in order: level order first, then task order
// within each level.
func (p *CareerProfile) AllTasks() []RoadmapTask {
	var out []RoadmapTask
	for _, level := range p.Roadmap {
		out = append(out, level.Tasks...)
	}
	return out
}

// FindTask returns a pointer into the roadmap for the task with the given id,
// or nil if no such task exists.
func (p *CareerProfile) FindTask(taskID string) *RoadmapTask {
	for li := range p.Roadmap {
		for ti := range p.Roadmap[li].Tasks {
			if p.Roadmap[li].Tasks[ti].ID == taskID {
				return &p.Roadmap[li].Tasks[ti]
			}
		}
	}
	return nil
}

// AppendMessage adds a chat turn to the history.
func (p *CareerProfile) AppendMessage(msg ChatMessage) {
	p.ChatHistory = append(p.ChatHistory, msg)
}
