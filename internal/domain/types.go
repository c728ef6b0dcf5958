package domain

type UserID string

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// UserStatus describes where the user currently stands in their career.
type UserStatus string

const (
	StatusStudent      UserStatus = "Student"
	StatusFresher      UserStatus = "Fresher"
	StatusProfessional UserStatus = "Professional"
	StatusSwitcher     UserStatus = "Career Switcher"
)

// TaskType categorizes a roadmap task.
type TaskType string

const (
	TaskSkill   TaskType = "skill"
	TaskProject TaskType = "project"
	TaskTheory  TaskType = "theory"
)
