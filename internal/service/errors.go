package service

// ServiceError is a sentinel error type for journey domain failures
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

const (
	// ErrNotFound covers unknown users, children, sessions, journeys,
	// weeks, topics, quizzes and questions
	ErrNotFound ServiceError = "resource not found"

	// ErrInvalidAnswer signals an answer ordinal outside the question's
	// option range
	ErrInvalidAnswer ServiceError = "answer does not match any option for this question"

	// ErrDuplicateAnswer is a non-fatal signal that the question was
	// already answered in this session; the original response is
	// returned alongside it
	ErrDuplicateAnswer ServiceError = "question already answered in this session"

	// ErrIncompleteSession signals a completion attempt before every
	// question has been answered
	ErrIncompleteSession ServiceError = "session still has unanswered questions"

	// ErrSessionNotActive signals an operation that requires an active
	// session (answering, completing) against a paused one
	ErrSessionNotActive ServiceError = "session is not active"

	// ErrSessionCompleted signals a mutation attempt on a completed,
	// terminal session
	ErrSessionCompleted ServiceError = "session is already completed"
)
