package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type historyRepo struct {
	db *sqlx.DB
}

// NewHistoryRepo creates the persisted tracking-history repository
func NewHistoryRepo(db *sqlx.DB) tracking.HistoryRepo {
	return &historyRepo{db: db}
}

// BulkInsert persists a batch of history entries in one transaction, then
// bounds each touched trip to its last perTripLimit entries. A failure rolls
// the whole batch back so the caller can re-enqueue it.
func (r *historyRepo) BulkInsert(ctx context.Context, entries []models.TrackingHistoryEntry, perTripLimit int) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tracking_history (trip_id, latitude, longitude, speed, recorded_at)
		VALUES (:trip_id, :latitude, :longitude, :speed, :recorded_at)`
	if _, err := tx.NamedExecContext(ctx, query, entries); err != nil {
		return fmt.Errorf("failed to bulk insert tracking history: %w", err)
	}

	// Bound history per trip, keeping only the most recent entries
	touched := make(map[string]struct{})
	for _, e := range entries {
		touched[e.TripID] = struct{}{}
	}
	trim := `DELETE FROM tracking_history
		WHERE trip_id = $1 AND id NOT IN (
			SELECT id FROM tracking_history
			WHERE trip_id = $1
			ORDER BY recorded_at DESC
			LIMIT $2
		)`
	for tripID := range touched {
		if _, err := tx.ExecContext(ctx, trim, tripID, perTripLimit); err != nil {
			return fmt.Errorf("failed to trim tracking history for trip %s: %w", tripID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tracking history: %w", err)
	}
	return nil
}

// LastByTrip returns the most recent persisted entry for a trip, or nil
func (r *historyRepo) LastByTrip(ctx context.Context, tripID string) (*models.TrackingHistoryEntry, error) {
	var entry models.TrackingHistoryEntry
	query := `SELECT trip_id, latitude, longitude, speed, recorded_at
		FROM tracking_history
		WHERE trip_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1`

	if err := r.db.GetContext(ctx, &entry, query, tripID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last tracking entry: %w", err)
	}
	return &entry, nil
}

// RouteSoFar returns the trip's persisted route in chronological order
func (r *historyRepo) RouteSoFar(ctx context.Context, tripID string, limit int) ([]models.TrackingHistoryEntry, error) {
	var entries []models.TrackingHistoryEntry
	query := `SELECT trip_id, latitude, longitude, speed, recorded_at
		FROM (
			SELECT trip_id, latitude, longitude, speed, recorded_at
			FROM tracking_history
			WHERE trip_id = $1
			ORDER BY recorded_at DESC
			LIMIT $2
		) recent
		ORDER BY recorded_at ASC`

	if err := r.db.SelectContext(ctx, &entries, query, tripID, limit); err != nil {
		return nil, fmt.Errorf("failed to get route history: %w", err)
	}
	return entries, nil
}
