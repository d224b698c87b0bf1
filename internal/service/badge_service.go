package service

import (
	"fmt"
	"log"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// BadgeNotifier is notified when a badge is newly earned. Implemented by
// the SES mailer; a nil notifier disables notifications.
type BadgeNotifier interface {
	NotifyBadgeEarned(user *models.User, child *models.Child, badge catalog.BadgeDefinition) error
}

// BadgeService evaluates badge triggers and grants awards
type BadgeService struct {
	badgeRepo    *repository.BadgeRepository
	progressRepo *repository.ProgressRepository
	sessionRepo  *repository.SessionRepository
	userRepo     *repository.UserRepository
	childRepo    *repository.ChildRepository
	catalog      catalog.Catalog
	notifier     BadgeNotifier
}

// NewBadgeService creates a new badge service
func NewBadgeService(badgeRepo *repository.BadgeRepository, progressRepo *repository.ProgressRepository, sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, childRepo *repository.ChildRepository, cat catalog.Catalog, notifier BadgeNotifier) *BadgeService {
	return &BadgeService{
		badgeRepo:    badgeRepo,
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		childRepo:    childRepo,
		catalog:      cat,
		notifier:     notifier,
	}
}

// badgeContext is the snapshot of state badge triggers are checked against
type badgeContext struct {
	completedWeeks    map[string]bool
	totalTopics       int
	totalQuizzes      int
	completedSessions int
}

// EvaluateAndAward checks every badge definition against the pair's
// current progress and session state and inserts one award per newly
// satisfied badge. Losing an insert race to a concurrent evaluation is a
// benign "already awarded" outcome, never an error.
func (s *BadgeService) EvaluateAndAward(userID, childID int64) ([]models.BadgeAward, error) {
	ctx, err := s.buildContext(userID, childID)
	if err != nil {
		return nil, err
	}

	var newAwards []models.BadgeAward
	for _, badge := range s.catalog.Badges() {
		if !s.satisfied(badge, ctx) {
			continue
		}

		award, created, err := s.badgeRepo.Award(userID, childID, badge.ID)
		if err != nil {
			return nil, err
		}
		if !created {
			continue
		}

		newAwards = append(newAwards, *award)
		s.notify(userID, childID, badge)
	}

	return newAwards, nil
}

// EarnedBadges retrieves all awards for a (user, child) pair
func (s *BadgeService) EarnedBadges(userID, childID int64) ([]models.BadgeAward, error) {
	child, err := s.childRepo.GetChildForUser(childID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up child: %w", err)
	}
	if child == nil {
		return nil, ErrNotFound
	}

	return s.badgeRepo.ListForPair(userID, childID)
}

func (s *BadgeService) buildContext(userID, childID int64) (*badgeContext, error) {
	records, err := s.progressRepo.GetAllForPair(userID, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress records: %w", err)
	}

	ctx := &badgeContext{completedWeeks: make(map[string]bool)}
	for _, record := range records {
		ctx.totalTopics += len(record.CompletedTopics)
		ctx.totalQuizzes += len(record.CompletedQuizzes)
		if record.Progress >= 100 {
			ctx.completedWeeks[record.WeekID] = true
		}
	}

	ctx.completedSessions, err = s.sessionRepo.CountCompletedSessions(userID, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed sessions: %w", err)
	}

	return ctx, nil
}

func (s *BadgeService) satisfied(badge catalog.BadgeDefinition, ctx *badgeContext) bool {
	switch badge.Trigger {
	case catalog.TriggerWeekCompleted:
		return ctx.completedWeeks[badge.WeekID]
	case catalog.TriggerTopicsCompleted:
		return ctx.totalTopics >= badge.Threshold
	case catalog.TriggerQuizzesCompleted:
		return ctx.totalQuizzes >= badge.Threshold
	case catalog.TriggerSessionCompleted:
		return ctx.completedSessions > 0
	}
	return false
}

// notify sends the badge-earned email; failures are logged, never
// propagated, so awarding stays independent of the mail channel.
func (s *BadgeService) notify(userID, childID int64, badge catalog.BadgeDefinition) {
	if s.notifier == nil {
		return
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil || user == nil {
		log.Printf("Warning: badge notification skipped, user %d lookup failed: %v", userID, err)
		return
	}
	child, err := s.childRepo.GetChildByID(childID)
	if err != nil || child == nil {
		log.Printf("Warning: badge notification skipped, child %d lookup failed: %v", childID, err)
		return
	}

	if err := s.notifier.NotifyBadgeEarned(user, child, badge); err != nil {
		log.Printf("Warning: failed to send badge notification for %s: %v", badge.ID, err)
	}
}
