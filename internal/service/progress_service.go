package service

import (
	"fmt"
	"math"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// ProgressService maintains per-week completion sets and percentages
type ProgressService struct {
	progressRepo *repository.ProgressRepository
	userRepo     *repository.UserRepository
	childRepo    *repository.ChildRepository
	catalog      catalog.Catalog
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo *repository.ProgressRepository, userRepo *repository.UserRepository, childRepo *repository.ChildRepository, cat catalog.Catalog) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		userRepo:     userRepo,
		childRepo:    childRepo,
		catalog:      cat,
	}
}

// progressPercent computes the completion percentage rounded to one
// decimal. A week with no items reports 0, never NaN.
func progressPercent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(100*float64(completed)/float64(total)*10) / 10
}

// RecordTopicCompletion marks a topic as completed for the
// (user, child, journey, week) tuple. Re-marking a completed topic is a
// no-op; the stored percentage never decreases.
func (s *ProgressService) RecordTopicCompletion(userID, childID int64, journeyID, weekID, topicID string) (*models.WeekProgress, error) {
	return s.recordCompletion(userID, childID, journeyID, weekID, topicID, true)
}

// RecordQuizCompletion marks a quiz as completed for the
// (user, child, journey, week) tuple, symmetric to topics.
func (s *ProgressService) RecordQuizCompletion(userID, childID int64, journeyID, weekID, quizID string) (*models.WeekProgress, error) {
	return s.recordCompletion(userID, childID, journeyID, weekID, quizID, false)
}

func (s *ProgressService) recordCompletion(userID, childID int64, journeyID, weekID, itemID string, isTopic bool) (*models.WeekProgress, error) {
	week, err := s.requireWeek(userID, childID, journeyID, weekID)
	if err != nil {
		return nil, err
	}

	if isTopic && !week.HasTopic(itemID) {
		return nil, ErrNotFound
	}
	if !isTopic && !week.HasQuiz(itemID) {
		return nil, ErrNotFound
	}

	if err := s.progressRepo.EnsureRow(userID, childID, journeyID, weekID); err != nil {
		return nil, err
	}

	record, err := s.progressRepo.GetForWeek(userID, childID, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("progress row missing after creation for week %s", weekID)
	}

	// Set semantics: re-adding a completed item changes nothing
	if isTopic {
		if record.HasTopic(itemID) {
			return record, nil
		}
		record.CompletedTopics = append(record.CompletedTopics, itemID)
	} else {
		if record.HasQuiz(itemID) {
			return record, nil
		}
		record.CompletedQuizzes = append(record.CompletedQuizzes, itemID)
	}

	record.Progress = progressPercent(record.CompletedCount(), week.ItemCount())

	var completedAt *time.Time
	if record.Progress >= 100 {
		now := time.Now()
		completedAt = &now
	}

	err = s.progressRepo.UpdateCompletion(record.ID, record.CompletedTopics, record.CompletedQuizzes, record.Progress, completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to persist progress: %w", err)
	}

	return s.progressRepo.GetForWeek(userID, childID, weekID)
}

// GetProgress retrieves the progress record for a (user, child, journey,
// week) tuple. When nothing has been recorded yet a zero-valued virtual
// record is returned without persisting anything.
func (s *ProgressService) GetProgress(userID, childID int64, journeyID, weekID string) (*models.WeekProgress, error) {
	if _, err := s.requireWeek(userID, childID, journeyID, weekID); err != nil {
		return nil, err
	}

	record, err := s.progressRepo.GetForWeek(userID, childID, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	if record == nil {
		return &models.WeekProgress{
			UserID:           userID,
			ChildID:          childID,
			JourneyID:        journeyID,
			WeekID:           weekID,
			CompletedTopics:  []string{},
			CompletedQuizzes: []string{},
			Progress:         0,
		}, nil
	}

	return record, nil
}

func (s *ProgressService) requireWeek(userID, childID int64, journeyID, weekID string) (*catalog.Week, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	child, err := s.childRepo.GetChildForUser(childID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up child: %w", err)
	}
	if child == nil {
		return nil, ErrNotFound
	}

	week, ok := s.catalog.Week(journeyID, weekID)
	if !ok {
		return nil, ErrNotFound
	}
	return week, nil
}
