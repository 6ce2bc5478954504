package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inclusivo-app/campus-api/internal/models"
)

// SessionRepository loads the class session roster. The roster is static
// for a term; the schedule engine reads it once at startup.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// List returns every class session in the roster.
func (r *SessionRepository) List(ctx context.Context) ([]models.ClassSession, error) {
	const query = `SELECT id, subject, professor, room, building, start_time, end_time, day_of_week, session_type
FROM class_sessions ORDER BY day_of_week, start_time ASC`
	var sessions []models.ClassSession
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, fmt.Errorf("list class sessions: %w", err)
	}
	return sessions, nil
}
