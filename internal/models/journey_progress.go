package models

import "time"

// WeekProgress tracks a (user, child, journey, week) tuple's advancement
// through the week's topics and quizzes. Progress is a percentage in
// [0, 100] rounded to one decimal and never decreases.
type WeekProgress struct {
	ID               int64
	UserID           int64
	ChildID          int64
	JourneyID        string
	WeekID           string
	CompletedTopics  []string
	CompletedQuizzes []string
	Progress         float64
	StartedAt        time.Time
	CompletedAt      *time.Time
}

// CompletedCount returns the number of distinct completed items
func (p *WeekProgress) CompletedCount() int {
	return len(p.CompletedTopics) + len(p.CompletedQuizzes)
}

// HasTopic reports whether topicID is already marked complete
func (p *WeekProgress) HasTopic(topicID string) bool {
	return containsID(p.CompletedTopics, topicID)
}

// HasQuiz reports whether quizID is already marked complete
func (p *WeekProgress) HasQuiz(quizID string) bool {
	return containsID(p.CompletedQuizzes, quizID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// BadgeAward records that a (user, child) pair earned a specific badge.
// At most one award exists per (user, child, badge).
type BadgeAward struct {
	ID       int64
	UserID   int64
	ChildID  int64
	BadgeID  string
	EarnedAt time.Time
}
