package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type tripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates the read model over trips owned by the booking
// subsystem. This repository never writes.
func NewTripRepo(db *sqlx.DB) tracking.TripRepo {
	return &tripRepo{db: db}
}

func (r *tripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	query := `SELECT t.id, t.passenger_id, t.driver_id, t.status,
		t.pickup_lat, t.pickup_lng, t.dropoff_lat, t.dropoff_lng,
		COALESCE(p.phone, '') AS passenger_phone,
		COALESCE(d.full_name, '') AS driver_name,
		COALESCE(d.phone, '') AS driver_phone,
		COALESCE(v.plate, '') AS vehicle_plate,
		COALESCE(v.model, '') AS vehicle_model,
		COALESCE(v.color, '') AS vehicle_color,
		t.started_at
		FROM trips t
		LEFT JOIN passengers p ON p.id = t.passenger_id
		LEFT JOIN drivers d ON d.id = t.driver_id
		LEFT JOIN vehicles v ON v.driver_id = t.driver_id
		WHERE t.id = $1`

	if err := r.db.GetContext(ctx, &trip, query, tripID); err != nil {
		if err == sql.ErrNoRows {
			return nil, tracking.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

func (r *tripRepo) GetEmergencyContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	query := `SELECT name, phone FROM emergency_contacts WHERE user_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get emergency contacts: %w", err)
	}
	return contacts, nil
}
