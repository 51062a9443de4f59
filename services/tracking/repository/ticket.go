package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

type ticketRepo struct {
	db *sqlx.DB
}

// NewTicketRepo creates the support ticket store
func NewTicketRepo(db *sqlx.DB) tracking.TicketRepo {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	query := `INSERT INTO support_tickets
		(id, trip_id, stationary_event_id, subject, description,
		 latitude, longitude, stationary_minutes, priority, created_at)
		VALUES (:id, :trip_id, :stationary_event_id, :subject, :description,
		 :latitude, :longitude, :stationary_minutes, :priority, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, ticket); err != nil {
		return fmt.Errorf("failed to create support ticket: %w", err)
	}
	return nil
}
