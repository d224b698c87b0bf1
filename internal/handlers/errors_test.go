package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

func TestRespondWithErrorWritesJSONBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", "", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json content type, got %q", ct)
	}

	var body errorBody
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "Teapot" {
		t.Fatalf("expected error 'Teapot', got %q", body.Error)
	}
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", service.ErrNotFound, 404},
		{"invalid answer", service.ErrInvalidAnswer, 400},
		{"incomplete session", service.ErrIncompleteSession, 409},
		{"session not active", service.ErrSessionNotActive, 409},
		{"session completed", service.ErrSessionCompleted, 409},
		{"wrapped not found", fmt.Errorf("looking up week: %w", service.ErrNotFound), 404},
		{"unknown error", errors.New("database exploded"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			respondServiceError(recorder, tt.err)

			if recorder.Code != tt.expected {
				t.Errorf("status = %d, want %d", recorder.Code, tt.expected)
			}

			var body errorBody
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Error == "" {
				t.Error("expected a non-empty error message")
			}
		})
	}
}

func TestUnknownErrorDoesNotLeakDetails(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondServiceError(recorder, errors.New("pq: connection to 10.0.0.5 refused"))

	var body errorBody
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "Something went wrong" {
		t.Fatalf("internal error details leaked to the client: %q", body.Error)
	}
}
