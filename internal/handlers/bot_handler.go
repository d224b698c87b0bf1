package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

// BotHandler handles journey bot session HTTP requests
type BotHandler struct {
	sessionService  *service.SessionService
	responseService *service.ResponseService
	badgeService    *service.BadgeService
	catalog         catalog.Catalog
}

// NewBotHandler creates a new bot handler
func NewBotHandler(sessionService *service.SessionService, responseService *service.ResponseService, badgeService *service.BadgeService, cat catalog.Catalog) *BotHandler {
	return &BotHandler{
		sessionService:  sessionService,
		responseService: responseService,
		badgeService:    badgeService,
		catalog:         cat,
	}
}

// StartSession starts or resumes the bot session for the child
func (h *BotHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())

	session, err := h.sessionService.StartOrResume(userID, child.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newSessionPayload(session))
}

// submitAnswerRequest is the JSON body for answer submission
type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     int    `json:"answer"`
	AnswerText string `json:"answer_text"`
}

// SubmitAnswer records one answer for the active session
func (h *BotHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())

	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if req.QuestionID == "" {
		respondWithError(w, http.StatusBadRequest, "question_id is required", "", nil)
		return
	}

	response, err := h.responseService.RecordAnswer(sessionID, userID, child.ID, req.QuestionID, req.Answer, req.AnswerText)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAnswer) {
			// Non-fatal: report the originally stored answer
			respondJSON(w, http.StatusOK, answerResult{
				Recorded:        false,
				AlreadyAnswered: true,
				Response:        newResponsePayload(response),
			})
			return
		}
		respondServiceError(w, err)
		return
	}

	result := answerResult{
		Recorded:  true,
		Response:  newResponsePayload(response),
		NewBadges: h.evaluateBadges(userID, child.ID),
	}

	if session, err := h.sessionService.GetSession(sessionID, userID, child.ID); err == nil {
		payload := newSessionPayload(session)
		result.Session = &payload
	}

	respondJSON(w, http.StatusCreated, result)
}

// PauseSession pauses the session
func (h *BotHandler) PauseSession(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())

	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.Pause(sessionID, userID, child.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newSessionPayload(session))
}

// CompleteSession completes a fully answered session
func (h *BotHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	child := GetChildFromContext(r.Context())

	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionService.Complete(sessionID, userID, child.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		sessionPayload
		NewBadges []awardedPayload `json:"new_badges,omitempty"`
	}{
		sessionPayload: newSessionPayload(session),
		NewBadges:      h.evaluateBadges(userID, child.ID),
	})
}

// evaluateBadges runs badge evaluation after a state change. Evaluation
// failures are logged, not surfaced: the triggering operation already
// succeeded and re-evaluation happens on the next state change.
func (h *BotHandler) evaluateBadges(userID, childID int64) []awardedPayload {
	awards, err := h.badgeService.EvaluateAndAward(userID, childID)
	if err != nil {
		log.Printf("Warning: badge evaluation failed for user %d child %d: %v", userID, childID, err)
		return nil
	}
	if len(awards) == 0 {
		return nil
	}
	return newAwardedPayloads(awards, h.catalog)
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	sessionID, err := strconv.ParseInt(r.PathValue("sessionID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID", "", nil)
		return 0, false
	}
	return sessionID, true
}
