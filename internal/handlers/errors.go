package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

// errorBody is the JSON shape for all error responses
type errorBody struct {
	Error string `json:"error"`
}

// respondWithError writes a JSON error response, logging the underlying
// error when one is given.
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondJSON(w, status, errorBody{Error: userMsg})
}

// respondServiceError maps domain errors to HTTP status codes.
// ErrDuplicateAnswer is not handled here: it is a non-fatal outcome the
// answer handler reports as success.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found", "", nil)
	case errors.Is(err, service.ErrInvalidAnswer):
		respondWithError(w, http.StatusBadRequest, "Answer does not match any option for this question", "", nil)
	case errors.Is(err, service.ErrIncompleteSession):
		respondWithError(w, http.StatusConflict, "Session still has unanswered questions", "", nil)
	case errors.Is(err, service.ErrSessionNotActive):
		respondWithError(w, http.StatusConflict, "Session is not active", "", nil)
	case errors.Is(err, service.ErrSessionCompleted):
		respondWithError(w, http.StatusConflict, "Session is already completed", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", "Unhandled service error", err)
	}
}
