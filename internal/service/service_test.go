package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// allQuestionIDs mirrors the builtin bot question bank
var allQuestionIDs = []string{
	"q-sleep-hours",
	"q-feeding-frequency",
	"q-responds-to-sound",
	"q-eye-contact",
	"q-social-smile",
	"q-head-lift",
	"q-grasp-reflex",
	"q-soothing",
	"q-follow-object",
	"q-vocalizing",
}

// testEnv wires the full service stack against a throwaway SQLite
// database with one seeded user and child.
type testEnv struct {
	db    *database.DB
	cat   catalog.Catalog
	user  *models.User
	child *models.Child

	sessionRepo  *repository.SessionRepository
	responseRepo *repository.ResponseRepository
	progressRepo *repository.ProgressRepository
	badgeRepo    *repository.BadgeRepository
	userRepo     *repository.UserRepository
	childRepo    *repository.ChildRepository

	sessions  *SessionService
	responses *ResponseService
	progress  *ProgressService
	badges    *BadgeService
	reconcile *ReconcileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations("../../migrations"))

	env := &testEnv{
		db:           db,
		cat:          catalog.NewBuiltin(),
		sessionRepo:  repository.NewSessionRepository(db),
		responseRepo: repository.NewResponseRepository(db),
		progressRepo: repository.NewProgressRepository(db),
		badgeRepo:    repository.NewBadgeRepository(db),
		userRepo:     repository.NewUserRepository(db),
		childRepo:    repository.NewChildRepository(db),
	}

	env.sessions = NewSessionService(env.sessionRepo, env.userRepo, env.childRepo, env.cat)
	env.responses = NewResponseService(env.responseRepo, env.sessionRepo, env.cat)
	env.progress = NewProgressService(env.progressRepo, env.userRepo, env.childRepo, env.cat)
	env.badges = NewBadgeService(env.badgeRepo, env.progressRepo, env.sessionRepo, env.userRepo, env.childRepo, env.cat, nil)
	env.reconcile = NewReconcileService(env.sessionRepo)

	env.user, err = env.userRepo.CreateUser("parent@example.com", "Test Parent")
	require.NoError(t, err)

	env.child, err = env.childRepo.CreateChild(env.user.ID, "Ana", nil)
	require.NoError(t, err)

	return env
}

// addChild seeds another child for the given user
func (e *testEnv) addChild(t *testing.T, userID int64, name string) *models.Child {
	t.Helper()

	child, err := e.childRepo.CreateChild(userID, name, nil)
	require.NoError(t, err)
	return child
}

// addUser seeds another account
func (e *testEnv) addUser(t *testing.T, email string) *models.User {
	t.Helper()

	user, err := e.userRepo.CreateUser(email, "Another Parent")
	require.NoError(t, err)
	return user
}

// startSession starts a fresh session for the seeded pair
func (e *testEnv) startSession(t *testing.T) *models.BotSession {
	t.Helper()

	session, err := e.sessions.StartOrResume(e.user.ID, e.child.ID)
	require.NoError(t, err)
	return session
}

// answerAll records one answer for every question in the bank
func (e *testEnv) answerAll(t *testing.T, sessionID int64) {
	t.Helper()

	for _, questionID := range allQuestionIDs {
		_, err := e.responses.RecordAnswer(sessionID, e.user.ID, e.child.ID, questionID, 0, "")
		require.NoError(t, err)
	}
}

// completeWeekOne marks every topic and quiz of bm1-week-1 as completed
func (e *testEnv) completeWeekOne(t *testing.T) *models.WeekProgress {
	t.Helper()

	week, ok := e.cat.Week("baby-month-1", "bm1-week-1")
	require.True(t, ok)

	var record *models.WeekProgress
	var err error
	for _, topicID := range week.TopicIDs {
		record, err = e.progress.RecordTopicCompletion(e.user.ID, e.child.ID, "baby-month-1", "bm1-week-1", topicID)
		require.NoError(t, err)
	}
	for _, quizID := range week.QuizIDs {
		record, err = e.progress.RecordQuizCompletion(e.user.ID, e.child.ID, "baby-month-1", "bm1-week-1", quizID)
		require.NoError(t, err)
	}
	return record
}
