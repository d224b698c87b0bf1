// Command reconcile audits and repairs the answered_questions counters
// against the stored responses. Intended for operators; the server also
// runs the same reconciliation on an interval.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jhsobrinho/educareapp-sub012/internal/config"
	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Report drift without repairing")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)

	if *dryRun {
		drifts, err := sessionRepo.ListCounterDrift()
		if err != nil {
			log.Fatalf("Failed to list counter drift: %v", err)
		}

		if len(drifts) == 0 {
			fmt.Println("All session counters are consistent")
			return
		}

		for _, d := range drifts {
			fmt.Printf("session %d: answered_questions=%d, responses=%d\n",
				d.SessionID, d.Answered, d.ResponseCount)
		}
		os.Exit(1)
	}

	reconcileService := service.NewReconcileService(sessionRepo)
	repaired, err := reconcileService.ReconcileCounters()
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	fmt.Printf("Repaired %d session counters\n", repaired)
}
