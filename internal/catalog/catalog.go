// Package catalog provides the read-only content catalog consumed by the
// journey services: journeys, weeks, topics, quizzes, the bot question
// bank, and badge definitions. The catalog is immutable after
// construction; content updates ship as a new catalog version.
package catalog

// Catalog is the capability interface the services depend on
type Catalog interface {
	// Version identifies the content revision
	Version() string

	// QuestionCount returns the size of the bot question bank
	QuestionCount() int

	// Question looks up a bot question by id
	Question(questionID string) (*Question, bool)

	// Week looks up a week within a journey
	Week(journeyID, weekID string) (*Week, bool)

	// Badges returns all badge definitions
	Badges() []BadgeDefinition
}

// Question is one bot question with its ordinal answer options
type Question struct {
	ID      string
	Text    string
	Options []string
}

// ValidOption reports whether ordinal selects one of the question's options
func (q *Question) ValidOption(ordinal int) bool {
	return ordinal >= 0 && ordinal < len(q.Options)
}

// Journey is a themed multi-week content track
type Journey struct {
	ID    string
	Title string
	Weeks []Week
}

// Week is a sub-unit of a journey containing topics and quizzes
type Week struct {
	ID       string
	Title    string
	TopicIDs []string
	QuizIDs  []string
}

// ItemCount returns the total number of completable items in the week
func (w *Week) ItemCount() int {
	return len(w.TopicIDs) + len(w.QuizIDs)
}

// HasTopic reports whether topicID belongs to the week
func (w *Week) HasTopic(topicID string) bool {
	return containsID(w.TopicIDs, topicID)
}

// HasQuiz reports whether quizID belongs to the week
func (w *Week) HasQuiz(quizID string) bool {
	return containsID(w.QuizIDs, quizID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// TriggerType identifies the condition that earns a badge
type TriggerType string

const (
	// TriggerWeekCompleted fires when a specific week reaches 100% progress
	TriggerWeekCompleted TriggerType = "week_completed"
	// TriggerTopicsCompleted fires when the total completed topic count
	// across all weeks reaches Threshold
	TriggerTopicsCompleted TriggerType = "topics_completed"
	// TriggerQuizzesCompleted fires when the total completed quiz count
	// across all weeks reaches Threshold
	TriggerQuizzesCompleted TriggerType = "quizzes_completed"
	// TriggerSessionCompleted fires when a bot session is completed
	TriggerSessionCompleted TriggerType = "session_completed"
)

// BadgeDefinition declares a badge and the condition that awards it
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Trigger     TriggerType

	// Threshold applies to the counting triggers
	Threshold int

	// JourneyID and WeekID scope TriggerWeekCompleted
	JourneyID string
	WeekID    string
}

// builtin is the compiled-in catalog
type builtin struct {
	version   string
	journeys  map[string]*Journey
	questions map[string]*Question
	order     []string // question ids in presentation order
	badges    []BadgeDefinition
}

// NewBuiltin returns the catalog compiled into the binary
func NewBuiltin() Catalog {
	c := &builtin{
		version:   builtinVersion,
		journeys:  make(map[string]*Journey),
		questions: make(map[string]*Question),
	}

	for i := range builtinJourneys {
		j := &builtinJourneys[i]
		c.journeys[j.ID] = j
	}
	for i := range builtinQuestions {
		q := &builtinQuestions[i]
		c.questions[q.ID] = q
		c.order = append(c.order, q.ID)
	}
	c.badges = builtinBadges

	return c
}

func (c *builtin) Version() string {
	return c.version
}

func (c *builtin) QuestionCount() int {
	return len(c.order)
}

func (c *builtin) Question(questionID string) (*Question, bool) {
	q, ok := c.questions[questionID]
	return q, ok
}

func (c *builtin) Week(journeyID, weekID string) (*Week, bool) {
	j, ok := c.journeys[journeyID]
	if !ok {
		return nil, false
	}
	for i := range j.Weeks {
		if j.Weeks[i].ID == weekID {
			return &j.Weeks[i], true
		}
	}
	return nil, false
}

func (c *builtin) Badges() []BadgeDefinition {
	// Copy so callers cannot mutate the catalog
	badges := make([]BadgeDefinition, len(c.badges))
	copy(badges, c.badges)
	return badges
}
