// Package strategy is the offline safety net: a deterministic mentor that
// answers from the structured profile and roadmap already in memory. It is
// used whenever the remote mentor is unreachable, so it must never fail and
// must tolerate empty or missing profile fields on every branch.
package strategy

import (
	"fmt"
	"math"
	"strings"

	"github.com/NARENN143/Career/internal/domain"
)

// Respond synthesizes a mentor reply for the message using only profile
// data. The returned text is always non-empty.
func Respond(message string, profile *domain.CareerProfile) string {
	firstName := firstToken(profile.Name, "Learner")
	career := profile.SelectedCareer
	if career == "" {
		career = "your target role"
	}

	// Derived roadmap facts, computed once per call.
	allTasks := profile.AllTasks()
	var completed, pending []domain.RoadmapTask
	for _, t := range allTasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	var nextTask *domain.RoadmapTask
	if len(pending) > 0 {
		nextTask = &pending[0]
	}

	switch Classify(message) {
	case IntentProgressStatus:
		return progressReport(profile, firstName, allTasks, completed, nextTask)
	case IntentNextAction:
		return nextActionPlan(profile, career, nextTask)
	case IntentSkillGap:
		return growthOptimization(profile, career, pending)
	case IntentCareerAdvice:
		return deploymentStrategy(profile, career, len(completed))
	default:
		return offlineMenu(firstName, career)
	}
}

func progressReport(
	profile *domain.CareerProfile,
	firstName string,
	allTasks, completed []domain.RoadmapTask,
	nextTask *domain.RoadmapTask,
) string {
	percent := 0
	if len(allTasks) > 0 {
		percent = int(math.Round(float64(len(completed)) / float64(len(allTasks)) * 100))
	}

	phase := "Foundation"
	if len(profile.Roadmap) > 0 && profile.Roadmap[0].Title != "" {
		phase = profile.Roadmap[0].Title
	}

	nextMove := "Your roadmap is fully complete. Time to consolidate and showcase what you built."
	if nextTask != nil {
		nextMove = fmt.Sprintf(
			"Finalize your current task: *%q*. This is a critical %s building block.",
			nextTask.Title, nextTask.Type,
		)
	}

	return fmt.Sprintf(`### Strategic Progress Report: %s

Current Mastery: **%d%%**
Completed Milestones: **%d / %d**

**Observation:** You are currently in the **%s** phase. Your commitment of **%g hours/day** is sufficient to maintain this velocity.

**Next Strategic Move:**
%s`,
		firstName, percent, len(completed), len(allTasks), phase,
		profile.AvailableHoursPerDay, nextMove)
}

func nextActionPlan(profile *domain.CareerProfile, career string, nextTask *domain.RoadmapTask) string {
	if nextTask == nil {
		return fmt.Sprintf(
			"Your roadmap for **%s** is currently complete. We should look into advanced specializations or real-world project deployments.",
			career,
		)
	}

	strength := firstOr(profile.Strengths, "your core skills")

	return fmt.Sprintf(`### Operational Priority:

The local strategy engine recommends focusing on:
**Task:** %s
**Type:** %s
**Estimated Effort:** %s

**Context:** This task was prioritized because it bridges the gap between your strengths in **%s** and the requirements for **%s**.

*Action Item:* Complete the description requirements: %q`,
		nextTask.Title, strings.ToUpper(string(nextTask.Type)), nextTask.Duration,
		strength, career, nextTask.Description)
}

func growthOptimization(profile *domain.CareerProfile, career string, pending []domain.RoadmapTask) string {
	weakness := firstOr(profile.Weaknesses, "broad industry exposure")

	// Up to two pending theory/skill tasks, in roadmap order.
	var relevant []domain.RoadmapTask
	for _, t := range pending {
		if t.Type == domain.TaskTheory || t.Type == domain.TaskSkill {
			relevant = append(relevant, t)
			if len(relevant) == 2 {
				break
			}
		}
	}

	theoryPick := "Core Principles"
	if len(relevant) > 0 {
		theoryPick = relevant[0].Title
	}
	projectPick := "a practical project"
	if len(relevant) > 1 {
		projectPick = relevant[1].Title
	}

	return fmt.Sprintf(`### Growth Optimization:

I have identified **%s** as your primary bottleneck for the **%s** path.

**Remediation Strategy:**
1. **Focus on Theory:** Dedicate 30%% of your daily %gh to deep-diving into %q.
2. **Project Implementation:** Don't just read; build. Your roadmap suggests %q to validate this knowledge.

Would you like me to break down a study plan for one of these?`,
		weakness, career, profile.AvailableHoursPerDay, theoryPick, projectPick)
}

func deploymentStrategy(profile *domain.CareerProfile, career string, completedCount int) string {
	interests := strings.Join(profile.Interests, ", ")
	if interests == "" {
		interests = "your chosen fields"
	}
	weakness := firstOr(profile.Weaknesses, "technical gaps")

	return fmt.Sprintf(`### Deployment Strategy for %s:

Based on your profile "Feed", here is your competitive edge:
1. **Leverage Strengths:** Your background in **%s** makes you a unique candidate.
2. **Portfolio Focus:** Ensure you document the %d milestones you've already hit.
3. **Interview Pivot:** When asked about weaknesses, mention how you are systematically using ElevateAI to tackle **%s**.

**Tactical Tip:** Focus your portfolio on the **Project-type** tasks in your Level 2 and Level 3 modules.`,
		career, interests, completedCount, weakness)
}

func offlineMenu(firstName, career string) string {
	return fmt.Sprintf(`### Strategy Engine: Online (Local Feed Mode)

Greetings %s. I am processing your career trajectory for **%s** using your local data feed.

**Available Offline Analytics:**
* **Progress Audits:** Ask "How is my progress?"
* **Action Plans:** Ask "What is my next task?"
* **Skill Diagnostics:** Ask "What are my gaps?"
* **Tactical Advice:** Ask "How do I prep for a job?"

What objective shall we tackle in this session?`, firstName, career)
}

// firstToken returns the first whitespace-delimited token of s, or the
// fallback when s is empty or blank.
func firstToken(s, fallback string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

func firstOr(list []string, fallback string) string {
	if len(list) == 0 || list[0] == "" {
		return fallback
	}
	return list[0]
}

// WelcomeMessage is the seed message shown when a conversation has no
// history yet.
func WelcomeMessage(profile *domain.CareerProfile) string {
	career := profile.SelectedCareer
	if career == "" {
		career = "your target role"
	}
	return fmt.Sprintf(
		"Greetings, %s. I am your Master Strategist.\n\nI've synchronized your profile with current market demands for **%s** roles.\n\nWhat high-impact objective can we tackle today?",
		firstToken(profile.Name, "Learner"), career,
	)
}
