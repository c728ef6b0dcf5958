package domain

// CareerSuggestion is one career path proposed during onboarding.
type CareerSuggestion struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// Newsletter is the daily digest generated for the dashboard.
type Newsletter struct {
	Date          string `json:"date"`
	LearningFocus string `json:"learningFocus"`
	IndustryTrend string `json:"industryTrend"`
	CareerTip     string `json:"careerTip"`
	Motivation    string `json:"motivation"`
}

// Opportunity is a job/internship/hackathon lead matched to the user's path.
type Opportunity struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Type       string  `json:"type"`
	MatchScore float64 `json:"matchScore"`
	Location   string  `json:"location"`
	WhyMatch   string  `json:"whyMatch"`
}
