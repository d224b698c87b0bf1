package handlers

import (
	"log"
	"net/http"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

// ProgressHandler handles journey progress and badge HTTP requests
type ProgressHandler struct {
	progressService *service.ProgressService
	badgeService    *service.BadgeService
	catalog         catalog.Catalog
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService, badgeService *service.BadgeService, cat catalog.Catalog) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		badgeService:    badgeService,
		catalog:         cat,
	}
}

// GetProgress returns the week progress for the child
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())
	journeyID := r.PathValue("journeyID")
	weekID := r.PathValue("weekID")

	record, err := h.progressService.GetProgress(userID, child.ID, journeyID, weekID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newProgressPayload(record, h.weekItemCount(journeyID, weekID)))
}

// CompleteTopic marks a topic as completed
func (h *ProgressHandler) CompleteTopic(w http.ResponseWriter, r *http.Request) {
	h.recordCompletion(w, r, r.PathValue("topicID"), true)
}

// CompleteQuiz marks a quiz as completed
func (h *ProgressHandler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	h.recordCompletion(w, r, r.PathValue("quizID"), false)
}

func (h *ProgressHandler) recordCompletion(w http.ResponseWriter, r *http.Request, itemID string, isTopic bool) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())
	journeyID := r.PathValue("journeyID")
	weekID := r.PathValue("weekID")

	var record *models.WeekProgress
	var err error
	if isTopic {
		record, err = h.progressService.RecordTopicCompletion(userID, child.ID, journeyID, weekID, itemID)
	} else {
		record, err = h.progressService.RecordQuizCompletion(userID, child.ID, journeyID, weekID, itemID)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := newProgressPayload(record, h.weekItemCount(journeyID, weekID))

	awards, err := h.badgeService.EvaluateAndAward(userID, child.ID)
	if err != nil {
		log.Printf("Warning: badge evaluation failed for user %d child %d: %v", userID, child.ID, err)
	} else if len(awards) > 0 {
		payload.NewBadges = newAwardedPayloads(awards, h.catalog)
	}

	respondJSON(w, http.StatusOK, payload)
}

// ListBadges returns all badges the child has earned
func (h *ProgressHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())

	awards, err := h.badgeService.EarnedBadges(userID, child.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Badges []awardedPayload `json:"badges"`
	}{Badges: newAwardedPayloads(awards, h.catalog)})
}

func (h *ProgressHandler) weekItemCount(journeyID, weekID string) int {
	if week, ok := h.catalog.Week(journeyID, weekID); ok {
		return week.ItemCount()
	}
	return 0
}
