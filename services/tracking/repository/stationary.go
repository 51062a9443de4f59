package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type stationaryRepo struct {
	db *sqlx.DB
}

// NewStationaryRepo creates the stationary safety event repository
func NewStationaryRepo(db *sqlx.DB) tracking.StationaryRepo {
	return &stationaryRepo{db: db}
}

func (r *stationaryRepo) Create(ctx context.Context, event *models.StationaryEvent) error {
	query := `INSERT INTO stationary_events
		(id, trip_id, passenger_id, latitude, longitude, status, started_at, alert_sent_at, call_attempts)
		VALUES (:id, :trip_id, :passenger_id, :latitude, :longitude, :status, :started_at, :alert_sent_at, :call_attempts)`

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to create stationary event: %w", err)
	}
	return nil
}

func (r *stationaryRepo) GetByID(ctx context.Context, id string) (*models.StationaryEvent, error) {
	var event models.StationaryEvent
	query := `SELECT id, trip_id, passenger_id, latitude, longitude, status, started_at,
		alert_sent_at, COALESCE(passenger_response, '') AS passenger_response, response_at,
		call_attempts, COALESCE(sos_alert_id, '') AS sos_alert_id,
		COALESCE(resolution, '') AS resolution, resolved_at
		FROM stationary_events WHERE id = $1`

	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, tracking.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get stationary event: %w", err)
	}
	return &event, nil
}

func (r *stationaryRepo) Update(ctx context.Context, event *models.StationaryEvent) error {
	query := `UPDATE stationary_events SET
		status = :status,
		passenger_response = NULLIF(:passenger_response, ''),
		response_at = :response_at,
		call_attempts = :call_attempts,
		sos_alert_id = NULLIF(:sos_alert_id, ''),
		resolution = NULLIF(:resolution, ''),
		resolved_at = :resolved_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("failed to update stationary event: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return tracking.ErrEventNotFound
	}
	return nil
}

// MarkEscalated claims the monitoring-to-escalated transition. The status
// guard lives in the statement so a passenger response recorded during the
// callback window wins and the escalation reports false instead of
// overwriting it.
func (r *stationaryRepo) MarkEscalated(ctx context.Context, id string, callAttempts int) (bool, error) {
	query := `UPDATE stationary_events
		SET status = $2, call_attempts = $3
		WHERE id = $1 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, id,
		string(models.StationaryEscalated), callAttempts,
		string(models.StationaryMonitoring))
	if err != nil {
		return false, fmt.Errorf("failed to mark stationary event escalated: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ListAwaitingResponse returns alerted monitoring events, oldest first
func (r *stationaryRepo) ListAwaitingResponse(ctx context.Context) ([]*models.StationaryEvent, error) {
	var events []*models.StationaryEvent
	query := `SELECT id, trip_id, passenger_id, latitude, longitude, status, started_at,
		alert_sent_at, COALESCE(passenger_response, '') AS passenger_response, response_at,
		call_attempts, COALESCE(sos_alert_id, '') AS sos_alert_id,
		COALESCE(resolution, '') AS resolution, resolved_at
		FROM stationary_events
		WHERE status = $1 AND alert_sent_at IS NOT NULL
		ORDER BY alert_sent_at ASC`

	if err := r.db.SelectContext(ctx, &events, query, string(models.StationaryMonitoring)); err != nil {
		return nil, fmt.Errorf("failed to list alerted stationary events: %w", err)
	}
	return events, nil
}

// RecordCallAttempt atomically increments and returns the attempt count
func (r *stationaryRepo) RecordCallAttempt(ctx context.Context, id string) (int, error) {
	var attempts int
	query := `UPDATE stationary_events SET call_attempts = call_attempts + 1
		WHERE id = $1 RETURNING call_attempts`

	if err := r.db.GetContext(ctx, &attempts, query, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, tracking.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to record call attempt: %w", err)
	}
	return attempts, nil
}
