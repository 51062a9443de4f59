package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func historyEntry(tripID string, at time.Time) models.TrackingHistoryEntry {
	return models.TrackingHistoryEntry{
		TripID:    tripID,
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Speed:     32.5,
		Timestamp: at,
	}
}

func TestBulkInsertCommitsBatchAndTrims(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	now := time.Now()
	entries := []models.TrackingHistoryEntry{
		historyEntry("trip-1", now.Add(-2*time.Second)),
		historyEntry("trip-1", now.Add(-1*time.Second)),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tracking_history").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM tracking_history").
		WithArgs("trip-1", 200).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.BulkInsert(context.Background(), entries, 200)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertRollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	entries := []models.TrackingHistoryEntry{historyEntry("trip-1", time.Now())}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tracking_history").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.BulkInsert(context.Background(), entries, 200)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertEmptyBatchSkipsDB(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	err := repo.BulkInsert(context.Background(), nil, 200)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastByTripReturnsLatestEntry(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	recordedAt := time.Now().Add(-30 * time.Second)
	rows := sqlmock.NewRows([]string{"trip_id", "latitude", "longitude", "speed", "recorded_at"}).
		AddRow("trip-1", -6.175392, 106.827153, 32.5, recordedAt)

	mock.ExpectQuery("FROM tracking_history").
		WithArgs("trip-1").
		WillReturnRows(rows)

	entry, err := repo.LastByTrip(context.Background(), "trip-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "trip-1", entry.TripID)
	assert.InDelta(t, -6.175392, entry.Latitude, 1e-9)
	assert.True(t, entry.Timestamp.Equal(recordedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastByTripNoRowsIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	mock.ExpectQuery("FROM tracking_history").
		WithArgs("trip-9").
		WillReturnError(sql.ErrNoRows)

	entry, err := repo.LastByTrip(context.Background(), "trip-9")
	assert.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteSoFarReturnsChronologicalRoute(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepo(db)

	base := time.Now().Add(-5 * time.Minute)
	rows := sqlmock.NewRows([]string{"trip_id", "latitude", "longitude", "speed", "recorded_at"}).
		AddRow("trip-1", -6.1750, 106.8270, 20.0, base).
		AddRow("trip-1", -6.1755, 106.8275, 25.0, base.Add(time.Minute)).
		AddRow("trip-1", -6.1760, 106.8280, 30.0, base.Add(2*time.Minute))

	mock.ExpectQuery("FROM tracking_history").
		WithArgs("trip-1", 100).
		WillReturnRows(rows)

	entries, err := repo.RouteSoFar(context.Background(), "trip-1", 100)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Timestamp.Before(entries[1].Timestamp))
	assert.True(t, entries[1].Timestamp.Before(entries[2].Timestamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}
