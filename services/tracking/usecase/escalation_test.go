package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking/mocks"
)

type escalatorFixture struct {
	events  *mocks.MockStationaryRepo
	trips   *mocks.MockTripRepo
	tickets *mocks.MockTicketRepo
	gw      *mocks.MockBroadcastGW
	notify  *mocks.MockNotifyGW
	esc     *Escalator
}

func newEscalatorFixture(t *testing.T) (*escalatorFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &escalatorFixture{
		events:  mocks.NewMockStationaryRepo(ctrl),
		trips:   mocks.NewMockTripRepo(ctrl),
		tickets: mocks.NewMockTicketRepo(ctrl),
		gw:      mocks.NewMockBroadcastGW(ctrl),
		notify:  mocks.NewMockNotifyGW(ctrl),
	}
	f.esc = NewEscalator(f.events, f.trips, f.tickets, f.gw, f.notify, testSafetyCfg)
	return f, ctrl
}

func TestEscalationNoopAfterResponse(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	// The passenger answered between arming and firing; nothing happens
	f.events.EXPECT().GetByID(gomock.Any(), "event-1").
		Return(&models.StationaryEvent{
			ID:                "event-1",
			Status:            models.StationarySafeConfirmed,
			PassengerResponse: models.SafetyResponseSafe,
		}, nil)

	f.esc.fire("event-1")
}

func TestEscalationAnsweredCallStops(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	f.events.EXPECT().GetByID(gomock.Any(), "event-1").
		Return(&models.StationaryEvent{
			ID:     "event-1",
			TripID: "trip-1",
			Status: models.StationaryMonitoring,
		}, nil)
	f.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", PassengerPhone: "+628111"}, nil)
	f.notify.EXPECT().
		PlaceCall(gomock.Any(), "+628111", gomock.Any()).
		Return(&models.CallResult{Answered: true, CallID: "call-1"}, nil)
	f.events.EXPECT().RecordCallAttempt(gomock.Any(), "event-1").Return(1, nil)

	// Answered call: no ticket, no escalation broadcast
	f.esc.fire("event-1")
}

func TestEscalationUnansweredOpensTicket(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	f.events.EXPECT().GetByID(gomock.Any(), "event-1").
		Return(&models.StationaryEvent{
			ID:        "event-1",
			TripID:    "trip-1",
			Latitude:  -6.2,
			Longitude: 106.8,
			Status:    models.StationaryMonitoring,
		}, nil)
	f.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", PassengerPhone: "+628111"}, nil)
	f.notify.EXPECT().
		PlaceCall(gomock.Any(), "+628111", gomock.Any()).
		Return(&models.CallResult{Answered: false}, nil)
	f.events.EXPECT().RecordCallAttempt(gomock.Any(), "event-1").Return(1, nil)

	f.events.EXPECT().MarkEscalated(gomock.Any(), "event-1", 1).Return(true, nil)
	f.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ticket *models.SupportTicket) error {
			assert.Equal(t, "trip-1", ticket.TripID)
			assert.Equal(t, "event-1", ticket.StationaryEventID)
			assert.Equal(t, "high", ticket.Priority)
			return nil
		})
	f.gw.EXPECT().PublishSupportEscalation(gomock.Any(), gomock.Any())

	f.esc.fire("event-1")
}

func TestEscalationSkipsTicketWhenEventSettled(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	// The passenger responded while the safety call was in flight. The
	// monitoring row is gone by the time we try to escalate, so no ticket
	// is opened and no escalation is broadcast.
	f.events.EXPECT().GetByID(gomock.Any(), "event-1").
		Return(&models.StationaryEvent{
			ID:     "event-1",
			TripID: "trip-1",
			Status: models.StationaryMonitoring,
		}, nil)
	f.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", PassengerPhone: "+628111"}, nil)
	f.notify.EXPECT().
		PlaceCall(gomock.Any(), "+628111", gomock.Any()).
		Return(&models.CallResult{Answered: false}, nil)
	f.events.EXPECT().RecordCallAttempt(gomock.Any(), "event-1").Return(1, nil)
	f.events.EXPECT().MarkEscalated(gomock.Any(), "event-1", 1).Return(false, nil)

	f.esc.fire("event-1")
}

func TestEscalationCallFailureStillEscalates(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	f.events.EXPECT().GetByID(gomock.Any(), "event-1").
		Return(&models.StationaryEvent{
			ID:     "event-1",
			TripID: "trip-1",
			Status: models.StationaryMonitoring,
		}, nil)
	f.trips.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", PassengerPhone: "+628111"}, nil)
	f.notify.EXPECT().
		PlaceCall(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("telephony down"))
	f.events.EXPECT().RecordCallAttempt(gomock.Any(), "event-1").Return(1, nil)

	f.events.EXPECT().MarkEscalated(gomock.Any(), "event-1", 1).Return(true, nil)
	f.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishSupportEscalation(gomock.Any(), gomock.Any())

	f.esc.fire("event-1")
}

func TestEscalatorScheduleAndCancel(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	f.esc.Schedule("event-1")
	assert.True(t, f.esc.Pending("event-1"))

	// Double schedule does not re-arm
	f.esc.Schedule("event-1")

	f.esc.Cancel("event-1")
	assert.False(t, f.esc.Pending("event-1"))

	// Cancel of an unknown event is a no-op
	f.esc.Cancel("event-2")
}

func TestEscalatorCancelByAlert(t *testing.T) {
	f, ctrl := newEscalatorFixture(t)
	defer ctrl.Finish()

	f.esc.Schedule("event-1")
	f.esc.LinkAlert("alert-1", "event-1")

	f.esc.CancelByAlert("alert-1")
	assert.False(t, f.esc.Pending("event-1"))

	// Unknown alert is a no-op
	f.esc.CancelByAlert("alert-9")
}
