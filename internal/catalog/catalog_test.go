package catalog

import (
	"testing"
)

func TestBuiltinQuestionBank(t *testing.T) {
	cat := NewBuiltin()

	if cat.QuestionCount() != len(builtinQuestions) {
		t.Errorf("QuestionCount() = %d, want %d", cat.QuestionCount(), len(builtinQuestions))
	}

	question, ok := cat.Question("q-sleep-hours")
	if !ok {
		t.Fatal("expected q-sleep-hours to exist")
	}
	if len(question.Options) == 0 {
		t.Error("expected q-sleep-hours to have options")
	}

	if _, ok := cat.Question("q-does-not-exist"); ok {
		t.Error("expected unknown question lookup to fail")
	}
}

func TestValidOption(t *testing.T) {
	question := Question{
		ID:      "q",
		Options: []string{"a", "b", "c"},
	}

	tests := []struct {
		name     string
		ordinal  int
		expected bool
	}{
		{"first option", 0, true},
		{"last option", 2, true},
		{"negative", -1, false},
		{"past the end", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := question.ValidOption(tt.ordinal); result != tt.expected {
				t.Errorf("ValidOption(%d) = %v, want %v", tt.ordinal, result, tt.expected)
			}
		})
	}
}

func TestWeekLookup(t *testing.T) {
	cat := NewBuiltin()

	week, ok := cat.Week("baby-month-1", "bm1-week-1")
	if !ok {
		t.Fatal("expected bm1-week-1 to exist in baby-month-1")
	}

	if week.ItemCount() != len(week.TopicIDs)+len(week.QuizIDs) {
		t.Errorf("ItemCount() = %d, want %d", week.ItemCount(), len(week.TopicIDs)+len(week.QuizIDs))
	}
	if !week.HasTopic("bm1-w1-sleep") {
		t.Error("expected bm1-w1-sleep to be a topic of bm1-week-1")
	}
	if week.HasTopic("bm1-w1-quiz-basics") {
		t.Error("a quiz id must not match as a topic")
	}
	if !week.HasQuiz("bm1-w1-quiz-basics") {
		t.Error("expected bm1-w1-quiz-basics to be a quiz of bm1-week-1")
	}

	if _, ok := cat.Week("baby-month-1", "bm2-week-1"); ok {
		t.Error("week lookup must be scoped to its journey")
	}
	if _, ok := cat.Week("no-such-journey", "bm1-week-1"); ok {
		t.Error("expected unknown journey lookup to fail")
	}
}

func TestBadgeDefinitions(t *testing.T) {
	cat := NewBuiltin()

	badges := cat.Badges()
	if len(badges) == 0 {
		t.Fatal("expected at least one badge definition")
	}

	seen := make(map[string]bool)
	for _, badge := range badges {
		if badge.ID == "" {
			t.Error("badge with empty id")
		}
		if seen[badge.ID] {
			t.Errorf("duplicate badge id %s", badge.ID)
		}
		seen[badge.ID] = true

		switch badge.Trigger {
		case TriggerWeekCompleted:
			if badge.JourneyID == "" || badge.WeekID == "" {
				t.Errorf("badge %s: week trigger requires journey and week ids", badge.ID)
			}
			if _, ok := cat.Week(badge.JourneyID, badge.WeekID); !ok {
				t.Errorf("badge %s references unknown week %s/%s", badge.ID, badge.JourneyID, badge.WeekID)
			}
		case TriggerTopicsCompleted, TriggerQuizzesCompleted:
			if badge.Threshold <= 0 {
				t.Errorf("badge %s: counting trigger requires a positive threshold", badge.ID)
			}
		case TriggerSessionCompleted:
		default:
			t.Errorf("badge %s has unknown trigger %q", badge.ID, badge.Trigger)
		}
	}
}
