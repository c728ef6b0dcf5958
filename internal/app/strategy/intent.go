package strategy

import "strings"

// Intent is the classified category of a mentor query; it selects which
// response template the local engine uses.
type Intent string

const (
	IntentProgressStatus Intent = "progress_status"
	IntentNextAction     Intent = "next_action"
	IntentSkillGap       Intent = "skill_gap"
	IntentCareerAdvice   Intent = "career_advice"
	IntentGeneral        Intent = "general"
)

// intentLexicons is evaluated top to bottom; the first lexicon with a hit
// wins. A message can contain trigger words from several lexicons, so the
// order is behavior, not an implementation detail.
var intentLexicons = []struct {
	intent   Intent
	keywords []string
}{
	{IntentProgressStatus, []string{"progress", "status", "how am i doing"}},
	{IntentNextAction, []string{"next", "what should i do", "todo", "roadmap"}},
	{IntentSkillGap, []string{"weak", "gap", "improve", "help"}},
	{IntentCareerAdvice, []string{"job", "interview", "career", "portfolio"}},
}

// Classify maps a free-text message to an Intent. Messages matching no
// lexicon resolve to IntentGeneral, never an error.
func Classify(message string) Intent {
	query := strings.ToLower(message)
	for _, lex := range intentLexicons {
		for _, kw := range lex.keywords {
			if strings.Contains(query, kw) {
				return lex.intent
			}
		}
	}
	return IntentGeneral
}
