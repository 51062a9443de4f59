package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type sosRepo struct {
	db *sqlx.DB
}

// NewSOSRepo creates the SOS alert repository
func NewSOSRepo(db *sqlx.DB) tracking.SOSRepo {
	return &sosRepo{db: db}
}

// sosRow maps the sos_alerts table; snapshot-style fields live in JSONB
type sosRow struct {
	ID             string         `db:"id"`
	TripID         string         `db:"trip_id"`
	TriggeredBy    string         `db:"triggered_by"`
	UserType       string         `db:"user_type"`
	Status         string         `db:"status"`
	Priority       string         `db:"priority"`
	Latitude       float64        `db:"latitude"`
	Longitude      float64        `db:"longitude"`
	Journey        []byte         `db:"journey"`
	Notifications  []byte         `db:"notifications_sent"`
	TrackingActive bool           `db:"tracking_active"`
	TrackingHist   []byte         `db:"tracking_history"`
	AcknowledgedBy sql.NullString `db:"acknowledged_by"`
	AcknowledgedAt sql.NullTime   `db:"acknowledged_at"`
	ResolvedBy     sql.NullString `db:"resolved_by"`
	ResolvedAt     sql.NullTime   `db:"resolved_at"`
	Resolution     sql.NullString `db:"resolution"`
	ActionsTaken   []byte         `db:"actions_taken"`
	CreatedAt      time.Time      `db:"created_at"`
}

const sosColumns = `id, trip_id, triggered_by, user_type, status, priority, latitude, longitude,
	journey, notifications_sent, tracking_active, tracking_history,
	acknowledged_by, acknowledged_at, resolved_by, resolved_at, resolution, actions_taken, created_at`

func (r *sosRepo) Create(ctx context.Context, alert *models.SOSAlert) error {
	journey, err := json.Marshal(alert.Journey)
	if err != nil {
		return fmt.Errorf("failed to marshal journey snapshot: %w", err)
	}
	history, err := json.Marshal(alert.ContinuousTracking.TrackingHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking history: %w", err)
	}

	query := `INSERT INTO sos_alerts
		(id, trip_id, triggered_by, user_type, status, priority, latitude, longitude,
		 journey, notifications_sent, tracking_active, tracking_history, actions_taken, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '[]'::jsonb, $10, $11, '[]'::jsonb, $12)`

	_, err = r.db.ExecContext(ctx, query,
		alert.ID, alert.TripID, alert.TriggeredBy, alert.UserType,
		string(alert.Status), string(alert.Priority),
		alert.Location.Latitude, alert.Location.Longitude,
		journey, alert.ContinuousTracking.IsActive, history, alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sos alert: %w", err)
	}
	return nil
}

func (r *sosRepo) GetByID(ctx context.Context, id string) (*models.SOSAlert, error) {
	var row sosRow
	query := fmt.Sprintf(`SELECT %s FROM sos_alerts WHERE id = $1`, sosColumns)

	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, tracking.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get sos alert: %w", err)
	}
	return row.toModel()
}

// Acknowledge records the operator while the alert is not yet resolved
func (r *sosRepo) Acknowledge(ctx context.Context, id, operatorID string) (*models.SOSAlert, error) {
	query := `UPDATE sos_alerts
		SET status = $2, acknowledged_by = $3, acknowledged_at = $4
		WHERE id = $1 AND status <> $5`

	result, err := r.db.ExecContext(ctx, query, id,
		string(models.SOSStatusAcknowledged), operatorID, time.Now(),
		string(models.SOSStatusResolved))
	if err != nil {
		return nil, fmt.Errorf("failed to acknowledge sos alert: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		// Distinguish missing from already resolved
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, tracking.ErrAlertAlreadyResolved
	}
	return r.GetByID(ctx, id)
}

// Resolve persists resolution metadata and stops tracking; the status guard
// makes a second resolve report rows=0 so callers get a domain error
func (r *sosRepo) Resolve(ctx context.Context, alert *models.SOSAlert) error {
	actions, err := json.Marshal(alert.ActionsTaken)
	if err != nil {
		return fmt.Errorf("failed to marshal actions taken: %w", err)
	}

	query := `UPDATE sos_alerts
		SET status = $2, resolved_by = $3, resolved_at = $4, resolution = $5,
		    actions_taken = $6, tracking_active = FALSE
		WHERE id = $1 AND status <> $2`

	result, err := r.db.ExecContext(ctx, query, alert.ID,
		string(models.SOSStatusResolved), alert.ResolvedBy, alert.ResolvedAt,
		alert.Resolution, actions)
	if err != nil {
		return fmt.Errorf("failed to resolve sos alert: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		if _, err := r.GetByID(ctx, alert.ID); err != nil {
			return err
		}
		return tracking.ErrAlertAlreadyResolved
	}
	return nil
}

// AppendTrackingPoint appends one continuous-tracking sample unless the
// alert is already resolved. The condition lives in the statement so a
// concurrent resolve cannot interleave between check and append.
func (r *sosRepo) AppendTrackingPoint(ctx context.Context, id string, entry models.TrackingHistoryEntry) (bool, error) {
	point, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("failed to marshal tracking point: %w", err)
	}

	query := `UPDATE sos_alerts
		SET tracking_history = tracking_history || $2::jsonb
		WHERE id = $1 AND status <> $3 AND tracking_active`

	result, err := r.db.ExecContext(ctx, query, id, point, string(models.SOSStatusResolved))
	if err != nil {
		return false, fmt.Errorf("failed to append tracking point: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *sosRepo) AppendNotificationOutcome(ctx context.Context, id string, outcome models.NotificationOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal notification outcome: %w", err)
	}

	query := `UPDATE sos_alerts
		SET notifications_sent = notifications_sent || $2::jsonb
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, data)
	if err != nil {
		return fmt.Errorf("failed to append notification outcome: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return tracking.ErrAlertNotFound
	}
	return nil
}

// ListActiveTracking returns unresolved alerts whose continuous tracking
// is still on, oldest first
func (r *sosRepo) ListActiveTracking(ctx context.Context) ([]*models.SOSAlert, error) {
	var rows []sosRow
	query := fmt.Sprintf(`SELECT %s FROM sos_alerts
		WHERE status <> $1 AND tracking_active
		ORDER BY created_at ASC`, sosColumns)

	if err := r.db.SelectContext(ctx, &rows, query, string(models.SOSStatusResolved)); err != nil {
		return nil, fmt.Errorf("failed to list active sos alerts: %w", err)
	}

	alerts := make([]*models.SOSAlert, 0, len(rows))
	for i := range rows {
		alert, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (row *sosRow) toModel() (*models.SOSAlert, error) {
	alert := &models.SOSAlert{
		ID:          row.ID,
		TripID:      row.TripID,
		TriggeredBy: row.TriggeredBy,
		UserType:    row.UserType,
		Status:      models.SOSStatus(row.Status),
		Priority:    models.SOSPriority(row.Priority),
		Location: models.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		ContinuousTracking: models.ContinuousTracking{IsActive: row.TrackingActive},
		CreatedAt:          row.CreatedAt,
	}

	if len(row.Journey) > 0 && string(row.Journey) != "null" {
		alert.Journey = &models.JourneySnapshot{}
		if err := json.Unmarshal(row.Journey, alert.Journey); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journey snapshot: %w", err)
		}
	}
	if len(row.Notifications) > 0 {
		if err := json.Unmarshal(row.Notifications, &alert.NotificationsSent); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
		}
	}
	if len(row.TrackingHist) > 0 {
		if err := json.Unmarshal(row.TrackingHist, &alert.ContinuousTracking.TrackingHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tracking history: %w", err)
		}
	}
	if len(row.ActionsTaken) > 0 {
		if err := json.Unmarshal(row.ActionsTaken, &alert.ActionsTaken); err != nil {
			return nil, fmt.Errorf("failed to unmarshal actions taken: %w", err)
		}
	}

	if row.AcknowledgedBy.Valid {
		alert.AcknowledgedBy = row.AcknowledgedBy.String
	}
	if row.AcknowledgedAt.Valid {
		t := row.AcknowledgedAt.Time
		alert.AcknowledgedAt = &t
	}
	if row.ResolvedBy.Valid {
		alert.ResolvedBy = row.ResolvedBy.String
	}
	if row.ResolvedAt.Valid {
		t := row.ResolvedAt.Time
		alert.ResolvedAt = &t
	}
	if row.Resolution.Valid {
		alert.Resolution = row.Resolution.String
	}
	return alert, nil
}
