package llm

import (
	"fmt"
	"strings"

	"github.com/NARENN143/Career/internal/domain"
)

const mentorSystemTemplate = `You are the "ElevateAI Master Strategist," a world-class career development mentor.
Your mission is to guide %s to become a top-tier %s.

CAREER PRINCIPLES TO FOLLOW:
1. CLARITY: Use structured formatting (numbered lists, bold headers, bullet points). Avoid fluff.
2. ACTIONABILITY: Every piece of advice must end with a "Next Best Action."
3. GROWTH PILLARS: When giving advice, categorize it into:
   - [Hard Skills]: Specific roadmap tools/concepts.
   - [Soft Skills]: Communication, leadership, or problem-solving.
   - [Branding]: Portfolio, LinkedIn, and personal narrative.
   - [Networking]: How to meet the right people.

USER CONTEXT:
- Current Role: %s
- Interests: %s
- Commitment: %g hours/day.
- Progress: %s

TONE: Professional, visionary, confident, and relentlessly supportive.
FORMATTING: Use bold text for key concepts. Use clear spacing between paragraphs.`

// BuildMentorSystemPrompt renders the strategist identity plus the user's
// current context.
func BuildMentorSystemPrompt(p *domain.CareerProfile) string {
	career := p.SelectedCareer
	if career == "" {
		career = "their target role"
	}
	progress := "Roadmap pending."
	if len(p.Roadmap) > 0 {
		progress = "User has an active roadmap generated."
	}
	return fmt.Sprintf(
		mentorSystemTemplate,
		p.Name, career, p.Status, strings.Join(p.Interests, ", "),
		p.AvailableHoursPerDay, progress,
	)
}

// BuildCareerSuggestionPrompt asks for 3 career paths with reasoning.
func BuildCareerSuggestionPrompt(p *domain.CareerProfile) string {
	return fmt.Sprintf(
		"Based on my background: status %s, education %q, interests [%s], strengths [%s], weaknesses [%s], suggest 3 career paths. Explain why each fits.",
		p.Status, p.Education,
		strings.Join(p.Interests, ", "),
		strings.Join(p.Strengths, ", "),
		strings.Join(p.Weaknesses, ", "),
	)
}

// BuildRoadmapPrompt asks for the 4-level roadmap for the selected career.
func BuildRoadmapPrompt(p *domain.CareerProfile) string {
	return fmt.Sprintf(
		"Generate a detailed 4-level career roadmap (Beginner, Intermediate, Advanced, Job-Ready) for a %s.\nUser Profile: Status: %s, Interests: %s, Time: %gh/day, Timeline: %d months.",
		p.SelectedCareer, p.Status, strings.Join(p.Interests, ","),
		p.AvailableHoursPerDay, p.TimelineMonths,
	)
}

// BuildNewsletterPrompt asks for the daily digest at the user's current
// roadmap stage.
func BuildNewsletterPrompt(p *domain.CareerProfile) string {
	currentLevel := "Initial Stage"
	if len(p.Roadmap) > 0 && p.Roadmap[0].Title != "" {
		currentLevel = p.Roadmap[0].Title
	}
	return fmt.Sprintf(
		"Generate a daily career newsletter for a %s at the %s level. Include: focus area, industry trend, career tip, and a motivational quote.",
		p.SelectedCareer, currentLevel,
	)
}

// BuildOpportunityPrompt asks for current openings for a career path.
func BuildOpportunityPrompt(career string) string {
	return fmt.Sprintf(
		"List 5 realistic current job/internship/hackathon opportunities for %s. For each, explain 'why it matches' a motivated learner.",
		career,
	)
}
