package service

import (
	"fmt"
	"log"

	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// ReconcileService repairs answered_questions counters that drifted from
// the true response count. The counter is a materialized cache maintained
// eagerly on each answer; this is the periodic consistency safeguard.
type ReconcileService struct {
	sessionRepo *repository.SessionRepository
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(sessionRepo *repository.SessionRepository) *ReconcileService {
	return &ReconcileService{sessionRepo: sessionRepo}
}

// ReconcileCounters finds and repairs drifted counters, returning the
// number of sessions repaired.
func (s *ReconcileService) ReconcileCounters() (int, error) {
	drifts, err := s.sessionRepo.ListCounterDrift()
	if err != nil {
		return 0, fmt.Errorf("failed to list counter drift: %w", err)
	}

	repaired := 0
	for _, drift := range drifts {
		if err := s.sessionRepo.RepairCounter(drift.SessionID, drift.ResponseCount); err != nil {
			return repaired, fmt.Errorf("failed to repair session %d: %w", drift.SessionID, err)
		}
		log.Printf("Reconciled session %d: answered_questions %d -> %d",
			drift.SessionID, drift.Answered, drift.ResponseCount)
		repaired++
	}

	return repaired, nil
}
