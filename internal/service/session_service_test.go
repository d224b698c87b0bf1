package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

func TestStartOrResumeCreatesSession(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)

	assert.Equal(t, models.SessionActive, session.Status)
	assert.Equal(t, env.cat.QuestionCount(), session.TotalQuestions)
	assert.Equal(t, 0, session.AnsweredQuestions)
	assert.Nil(t, session.CompletedAt)
	assert.False(t, session.StartedAt.IsZero())
}

func TestStartOrResumeReturnsOpenSession(t *testing.T) {
	env := newTestEnv(t)

	first := env.startSession(t)
	second := env.startSession(t)

	assert.Equal(t, first.ID, second.ID)
}

func TestStartOrResumeReactivatesPausedSession(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)

	_, err := env.sessions.Pause(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	resumed := env.startSession(t)

	assert.Equal(t, session.ID, resumed.ID)
	assert.Equal(t, models.SessionActive, resumed.Status)
}

func TestStartOrResumeUnknownChild(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.StartOrResume(env.user.ID, env.child.ID+999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartOrResumeForeignChild(t *testing.T) {
	env := newTestEnv(t)

	other := env.addUser(t, "other@example.com")
	otherChild := env.addChild(t, other.ID, "Bruno")

	_, err := env.sessions.StartOrResume(env.user.ID, otherChild.ID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPauseActiveSession(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)

	paused, err := env.sessions.Pause(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionPaused, paused.Status)

	// Pausing again is a no-op
	paused, err = env.sessions.Pause(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionPaused, paused.Status)
}

func TestPauseCompletedSessionRejected(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)
	env.answerAll(t, session.ID)

	_, err := env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	_, err = env.sessions.Pause(session.ID, env.user.ID, env.child.ID)
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestCompleteIncompleteSessionRejected(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)

	_, err := env.responses.RecordAnswer(session.ID, env.user.ID, env.child.ID, allQuestionIDs[0], 0, "")
	require.NoError(t, err)

	_, err = env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	assert.ErrorIs(t, err, ErrIncompleteSession)

	reloaded, err := env.sessions.GetSession(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionActive, reloaded.Status)
}

func TestCompletePausedSessionRejected(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)
	env.answerAll(t, session.ID)

	_, err := env.sessions.Pause(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	_, err = env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	assert.ErrorIs(t, err, ErrSessionNotActive)
}

func TestCompleteFullyAnsweredSession(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)
	env.answerAll(t, session.ID)

	completed, err := env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	assert.Equal(t, models.SessionCompleted, completed.Status)
	assert.Equal(t, completed.TotalQuestions, completed.AnsweredQuestions)
	require.NotNil(t, completed.CompletedAt)
}

func TestCompleteIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)
	env.answerAll(t, session.ID)

	first, err := env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	second, err := env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	assert.Equal(t, models.SessionCompleted, second.Status)
	require.NotNil(t, first.CompletedAt)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt), "completed_at must be stamped once")
}

func TestStartAfterCompleteCreatesNewSession(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)
	env.answerAll(t, session.ID)

	_, err := env.sessions.Complete(session.ID, env.user.ID, env.child.ID)
	require.NoError(t, err)

	next := env.startSession(t)

	assert.NotEqual(t, session.ID, next.ID, "completed sessions are never reopened")
	assert.Equal(t, models.SessionActive, next.Status)
	assert.Equal(t, 0, next.AnsweredQuestions)
}

func TestGetSessionEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)

	session := env.startSession(t)

	other := env.addUser(t, "other@example.com")
	otherChild := env.addChild(t, other.ID, "Bruno")

	_, err := env.sessions.GetSession(session.ID, other.ID, otherChild.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.sessions.GetSession(session.ID+999, env.user.ID, env.child.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
