package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inclusivo-app/campus-api/internal/models"
)

// LocationRepository loads the static campus directory. Directory order
// (sort_order) is meaningful: favorites are picked from the front.
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository constructs the repository.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns the full directory in directory order.
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	const query = `SELECT id, name, building, floor, room, location_type,
       wheelchair_accessible AS "accessibility.wheelchair_accessible",
       has_elevator AS "accessibility.has_elevator",
       has_braille_signage AS "accessibility.has_braille_signage"
FROM campus_locations ORDER BY sort_order ASC`
	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("list campus locations: %w", err)
	}
	return locations, nil
}
