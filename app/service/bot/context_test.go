package bot

import (
	"strings"
	"testing"
)

func TestContainsPronoun(t *testing.T) {
	cases := []struct {
		query string
		want  bool
	}{
		{"Where did he study?", true},
		{"What is her background?", true},
		{"Tell me about them", true},
		{"What is the item price?", false},
		{"Where is this company based?", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := containsPronoun(tc.query); got != tc.want {
			t.Errorf("containsPronoun(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestExtractEntity(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Who is the CEO of Tesla?", "tesla"},
		{"Tell me about Satya Nadella", "satya nadella"},
		{"What is quantum computing?", ""},
		{"The CEO of Apple is Tim Cook", "apple"},
	}

	for _, tc := range cases {
		if got := extractEntity(tc.text); got != tc.want {
			t.Errorf("extractEntity(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestContextForEmptyWithoutHistory(t *testing.T) {
	s := &Service{}

	if got := s.ContextFor("Where did he study?"); got != "" {
		t.Errorf("context without history = %q, want empty", got)
	}
}

func TestContextForEmptyWithoutPronoun(t *testing.T) {
	s := &Service{currentEntity: "apple"}
	s.history.add("Who runs Apple?", "Tim Cook runs Apple.")

	if got := s.ContextFor("What about Microsoft?"); got != "" {
		t.Errorf("context without pronoun = %q, want empty", got)
	}
}

func TestContextForReferencesEntityAndRecentTurns(t *testing.T) {
	s := &Service{currentEntity: "microsoft"}
	s.history.add("Who runs Microsoft?", "Satya Nadella runs Microsoft.")

	got := s.ContextFor("Where did he study?")

	if !strings.Contains(got, "[Context: The conversation was about microsoft]") {
		t.Errorf("context missing entity marker:\n%s", got)
	}
	if !strings.Contains(got, "Human: Who runs Microsoft?") {
		t.Errorf("context missing prior turn:\n%s", got)
	}
}

func TestContextForLimitsToTwoTurns(t *testing.T) {
	s := &Service{currentEntity: "google"}
	s.history.add("q1", "a1")
	s.history.add("q2", "a2")
	s.history.add("q3", "a3")

	got := s.ContextFor("What did they announce?")

	if strings.Contains(got, "q1") {
		t.Errorf("context includes a turn older than the last two:\n%s", got)
	}
	if !strings.Contains(got, "q2") || !strings.Contains(got, "q3") {
		t.Errorf("context missing the last two turns:\n%s", got)
	}
}

func TestTrackEntityLatestWins(t *testing.T) {
	s := &Service{}

	s.trackEntity("Tell me about OpenAI", "")
	s.trackEntity("Now about Tesla", "")

	if s.currentEntity != "tesla" {
		t.Errorf("current entity = %q, want tesla", s.currentEntity)
	}
	if len(s.entityHistory) != 2 {
		t.Errorf("entity history length = %d, want 2", len(s.entityHistory))
	}
}

func TestTrackEntityFallsBackToResponse(t *testing.T) {
	s := &Service{}

	s.trackEntity("Who is the richest person?", "That would be Elon Musk.")

	if s.currentEntity != "elon musk" {
		t.Errorf("current entity = %q, want elon musk", s.currentEntity)
	}
}

func TestTrackEntityIgnoresUnknown(t *testing.T) {
	s := &Service{currentEntity: "apple"}

	s.trackEntity("What is the weather?", "It is sunny.")

	if s.currentEntity != "apple" {
		t.Errorf("unknown entity overwrote current: %q", s.currentEntity)
	}
}
