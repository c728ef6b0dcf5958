package strategy

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"How is my progress?", IntentProgressStatus},
		{"what's my STATUS", IntentProgressStatus},
		{"how am i doing these days", IntentProgressStatus},
		{"What is my next task?", IntentNextAction},
		{"show me the roadmap", IntentNextAction},
		{"what should i do today", IntentNextAction},
		{"I feel weak at algorithms", IntentSkillGap},
		{"help me improve", IntentSkillGap},
		{"skill gap analysis", IntentSkillGap},
		{"how do I prep for a job interview", IntentCareerAdvice},
		{"review my portfolio", IntentCareerAdvice},
		{"good morning", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Errorf("Classify(%q)=%s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "progress" and "job" both match; the progress lexicon is checked
	// first, so it wins regardless of word position.
	if got := Classify("job hunt aside, how is my progress?"); got != IntentProgressStatus {
		t.Fatalf("Classify=%s, want %s", got, IntentProgressStatus)
	}
	// "next" outranks "help".
	if got := Classify("help me pick my next step"); got != IntentNextAction {
		t.Fatalf("Classify=%s, want %s", got, IntentNextAction)
	}
}
