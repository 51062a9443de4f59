package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

func TestStationaryGetByIDMapsRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	startedAt := time.Now().Add(-20 * time.Minute)
	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "passenger_id", "latitude", "longitude", "status",
		"started_at", "alert_sent_at", "passenger_response", "response_at",
		"call_attempts", "sos_alert_id", "resolution", "resolved_at",
	}).AddRow(
		"evt-1", "trip-1", "user-1", -6.175392, 106.827153,
		string(models.StationaryMonitoring),
		startedAt, startedAt.Add(15*time.Minute), "", nil,
		0, "", "", nil,
	)

	mock.ExpectQuery("FROM stationary_events").
		WithArgs("evt-1").
		WillReturnRows(rows)

	event, err := repo.GetByID(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", event.TripID)
	assert.Equal(t, models.StationaryMonitoring, event.Status)
	assert.Empty(t, event.PassengerResponse)
	assert.False(t, event.Resolved())
}

func TestStationaryGetByIDUnknownEvent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	mock.ExpectQuery("FROM stationary_events").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, tracking.ErrEventNotFound)
}

func TestStationaryUpdateUnknownEvent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	mock.ExpectExec("UPDATE stationary_events").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.StationaryEvent{
		ID:     "missing",
		Status: models.StationaryResolved,
	})
	assert.ErrorIs(t, err, tracking.ErrEventNotFound)
}

func TestRecordCallAttemptReturnsNewCount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	mock.ExpectQuery("UPDATE stationary_events").
		WithArgs("evt-1").
		WillReturnRows(sqlmock.NewRows([]string{"call_attempts"}).AddRow(2))

	attempts, err := repo.RecordCallAttempt(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCallAttemptUnknownEvent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	mock.ExpectQuery("UPDATE stationary_events").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"call_attempts"}))

	_, err := repo.RecordCallAttempt(context.Background(), "missing")
	assert.ErrorIs(t, err, tracking.ErrEventNotFound)
}

func TestStationaryMarkEscalatedClaimsMonitoringRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	mock.ExpectExec("UPDATE stationary_events").
		WithArgs("evt-1", string(models.StationaryEscalated), 2,
			string(models.StationaryMonitoring)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.MarkEscalated(context.Background(), "evt-1", 2)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestStationaryMarkEscalatedLosesToSettledRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	// Row already left monitoring: the guard matches nothing
	mock.ExpectExec("UPDATE stationary_events").
		WithArgs("evt-1", string(models.StationaryEscalated), 2,
			string(models.StationaryMonitoring)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.MarkEscalated(context.Background(), "evt-1", 2)
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestStationaryListAwaitingResponse(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStationaryRepo(db)

	startedAt := time.Now().Add(-40 * time.Minute)
	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "passenger_id", "latitude", "longitude", "status",
		"started_at", "alert_sent_at", "passenger_response", "response_at",
		"call_attempts", "sos_alert_id", "resolution", "resolved_at",
	}).AddRow(
		"evt-1", "trip-1", "user-1", -6.175392, 106.827153,
		string(models.StationaryMonitoring),
		startedAt, startedAt.Add(15*time.Minute), "", nil,
		1, "", "", nil,
	).AddRow(
		"evt-2", "trip-2", "user-2", -6.18, 106.83,
		string(models.StationaryMonitoring),
		startedAt.Add(5*time.Minute), startedAt.Add(20*time.Minute), "", nil,
		0, "", "", nil,
	)

	mock.ExpectQuery("FROM stationary_events").
		WithArgs(string(models.StationaryMonitoring)).
		WillReturnRows(rows)

	events, err := repo.ListAwaitingResponse(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "trip-1", events[0].TripID)
	assert.Equal(t, 1, events[0].CallAttempts)
}
