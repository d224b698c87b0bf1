package repository

import (
	"database/sql"
	"fmt"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// BadgeRepository handles badge award database operations
type BadgeRepository struct {
	db database.DBTX
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db database.DBTX) *BadgeRepository {
	return &BadgeRepository{db: db}
}

const badgeColumns = "id, user_id, child_id, badge_id, earned_at"

// Award inserts an award row for (user, child, badge). The
// UNIQUE(user_id, child_id, badge_id) constraint is the authoritative
// guard: a violation means the badge was already earned, which is
// reported via created == false, never as an error.
func (r *BadgeRepository) Award(userID, childID int64, badgeID string) (*models.BadgeAward, bool, error) {
	query := `
		INSERT INTO user_journey_badges (user_id, child_id, badge_id)
		VALUES (?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, userID, childID, badgeID)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			existing, getErr := r.getByBadge(userID, childID, badgeID)
			if getErr != nil {
				return nil, false, getErr
			}
			if existing == nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to award badge: %w", err)
	}

	award, err := r.getByID(id)
	if err != nil {
		return nil, false, err
	}
	return award, true, nil
}

// ListForPair retrieves all awards for a (user, child) pair in earn order
func (r *BadgeRepository) ListForPair(userID, childID int64) ([]models.BadgeAward, error) {
	query := "SELECT " + badgeColumns + ` FROM user_journey_badges
		WHERE user_id = ? AND child_id = ?
		ORDER BY earned_at ASC, id ASC`

	rows, err := r.db.Query(query, userID, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var awards []models.BadgeAward
	for rows.Next() {
		var award models.BadgeAward
		err := rows.Scan(
			&award.ID,
			&award.UserID,
			&award.ChildID,
			&award.BadgeID,
			&award.EarnedAt,
		)
		if err != nil {
			return nil, err
		}
		awards = append(awards, award)
	}

	return awards, rows.Err()
}

func (r *BadgeRepository) getByID(id int64) (*models.BadgeAward, error) {
	query := "SELECT " + badgeColumns + " FROM user_journey_badges WHERE id = ?"
	return r.scanAward(r.db.QueryRow(query, id))
}

func (r *BadgeRepository) getByBadge(userID, childID int64, badgeID string) (*models.BadgeAward, error) {
	query := "SELECT " + badgeColumns + ` FROM user_journey_badges
		WHERE user_id = ? AND child_id = ? AND badge_id = ?`
	return r.scanAward(r.db.QueryRow(query, userID, childID, badgeID))
}

func (r *BadgeRepository) scanAward(row *sql.Row) (*models.BadgeAward, error) {
	award := &models.BadgeAward{}
	err := row.Scan(
		&award.ID,
		&award.UserID,
		&award.ChildID,
		&award.BadgeID,
		&award.EarnedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return award, nil
}
