package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking"
	"github.com/hushryd/tracking-service/services/tracking/mocks"
)

type handlerFixture struct {
	ctrl       *gomock.Controller
	manager    *pkgws.Manager
	trackingUC *mocks.MockTrackingUC
	safetyUC   *mocks.MockSafetyUC
	sosUC      *mocks.MockSOSUC
	sessions   *mocks.MockSessionRepo
	handler    *WebSocketHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		ctrl:       ctrl,
		manager:    pkgws.NewManager(models.JWTConfig{Secret: "test-secret"}),
		trackingUC: mocks.NewMockTrackingUC(ctrl),
		safetyUC:   mocks.NewMockSafetyUC(ctrl),
		sosUC:      mocks.NewMockSOSUC(ctrl),
		sessions:   mocks.NewMockSessionRepo(ctrl),
	}
	f.handler = NewWebSocketHandler(f.manager, f.trackingUC, f.safetyUC, f.sosUC, f.sessions)
	return f
}

// connect registers a client with a nil conn; outbound frames become no-ops
// so the tests focus on routing and room state
func (f *handlerFixture) connect(connID, userID, role string) *models.WebSocketClient {
	client := &models.WebSocketClient{ConnID: connID, UserID: userID, Role: role}
	f.manager.AddClient(client)
	return client
}

func raw(t *testing.T, v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestSubscribeJoinsRoomAndPushesCurrentLocation(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	f.trackingUC.EXPECT().
		CurrentLocation(gomock.Any(), "trip-1").
		Return(&models.DriverLocationRecord{TripID: "trip-1", DriverID: "drv-1"}, nil)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSubscribe,
		Data:  raw(t, models.SubscribeRequest{TripID: "trip-1"}),
	})

	assert.Equal(t, 1, f.manager.RoomSize(constants.TripRoom("trip-1")))
	assert.Equal(t, 0, f.manager.RoomSize(constants.TripDriverRoom("trip-1")))
}

func TestSubscribeDriverJoinsDriverRoom(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "drv-1", constants.RoleDriver)

	f.trackingUC.EXPECT().
		CurrentLocation(gomock.Any(), "trip-1").
		Return(nil, tracking.ErrNoLocationData)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSubscribe,
		Data:  raw(t, models.SubscribeRequest{TripID: "trip-1"}),
	})

	assert.Equal(t, 1, f.manager.RoomSize(constants.TripRoom("trip-1")))
	assert.Equal(t, 1, f.manager.RoomSize(constants.TripDriverRoom("trip-1")))
}

func TestSubscribeWithoutTripIDSkipsRoomJoin(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	// No trackingUC expectations: the malformed payload never reaches it
	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSubscribe,
		Data:  raw(t, models.SubscribeRequest{}),
	})

	assert.Empty(t, f.manager.RoomsOf("conn-1"))
}

func TestUnsubscribeLeavesBothRooms(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "drv-1", constants.RoleDriver)
	f.manager.JoinRoom("conn-1", constants.TripRoom("trip-1"))
	f.manager.JoinRoom("conn-1", constants.TripDriverRoom("trip-1"))

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventUnsubscribe,
		Data:  raw(t, models.SubscribeRequest{TripID: "trip-1"}),
	})

	assert.Empty(t, f.manager.RoomsOf("conn-1"))
}

func TestLocationUpdateRejectedForNonDrivers(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	// Ingest must never be reached
	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  raw(t, models.LocationUpdate{TripID: "trip-1"}),
	})
}

func TestLocationUpdateStampsDriverIDAndObserves(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "drv-1", constants.RoleDriver)

	update := models.LocationUpdate{
		TripID: "trip-1",
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Timestamp: time.Now(),
		},
	}

	f.trackingUC.EXPECT().
		IngestLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.LocationUpdate) error {
			// Identity comes from the connection, not the payload
			assert.Equal(t, "drv-1", u.DriverID)
			return nil
		})
	f.safetyUC.EXPECT().ObserveLocation(gomock.Any(), gomock.Any())

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  raw(t, update),
	})
}

func TestInvalidLocationDroppedSilently(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "drv-1", constants.RoleDriver)

	f.trackingUC.EXPECT().
		IngestLocation(gomock.Any(), gomock.Any()).
		Return(tracking.ErrInvalidLocation)
	// ObserveLocation must not run for a rejected update

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  raw(t, models.LocationUpdate{TripID: "trip-1"}),
	})
}

func TestSafetyResponseErrorMapping(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	f.safetyUC.EXPECT().
		RecordResponse(gomock.Any(), "evt-1", "user-1", "safe").
		Return(nil, tracking.ErrResponseAlreadyRecorded)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSafetyResponse,
		Data:  raw(t, safetyResponseRequest{EventID: "evt-1", Response: "safe"}),
	})
}

func TestSOSTriggerNotifiesAfterCreate(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	loc := models.Location{Latitude: -6.1750, Longitude: 106.8270}
	gomock.InOrder(
		f.sosUC.EXPECT().
			Trigger(gomock.Any(), "trip-1", "user-1", constants.RolePassenger, loc).
			Return(&models.SOSAlert{ID: "alert-1", TripID: "trip-1"}, nil),
		f.sosUC.EXPECT().Notify(gomock.Any(), "alert-1").Return(nil),
	)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSOSTrigger,
		Data:  raw(t, sosTriggerRequest{TripID: "trip-1", Location: loc}),
	})
}

func TestSOSAcknowledgeRequiresOperatorRole(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	// No sosUC expectations: the role check rejects before dispatch
	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSOSAcknowledge,
		Data:  raw(t, sosActionRequest{AlertID: "alert-1"}),
	})
}

func TestSOSResolveDispatchesForSupportRole(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "sup-1", constants.RoleSupport)

	f.sosUC.EXPECT().
		Resolve(gomock.Any(), "alert-1", "sup-1", "driver located", []string{"called driver"}).
		Return([]models.SOSTimelineEntry{{Status: "resolved"}}, nil)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSOSResolve,
		Data: raw(t, sosActionRequest{
			AlertID:      "alert-1",
			Resolution:   "driver located",
			ActionsTaken: []string{"called driver"},
		}),
	})
}

func TestSessionRecoverRejoinsPersistedTrips(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-new", "user-1", constants.RolePassenger)

	record := &models.DisconnectRecord{
		ConnID:          "conn-old",
		UserID:          "user-1",
		SubscribedTrips: []string{"trip-1", "trip-2"},
	}
	gomock.InOrder(
		f.sessions.EXPECT().
			FindDisconnect(gomock.Any(), "user-1", "conn-old").
			Return(record, nil),
		f.sessions.EXPECT().
			DeleteDisconnect(gomock.Any(), "user-1", "conn-old").
			Return(nil),
	)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSessionRecover,
		Data:  raw(t, models.SessionRecoverRequest{PreviousConnectionID: "conn-old"}),
	})

	assert.Equal(t, 1, f.manager.RoomSize(constants.TripRoom("trip-1")))
	assert.Equal(t, 1, f.manager.RoomSize(constants.TripRoom("trip-2")))
}

func TestSessionRecoverExpiredWindow(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-new", "user-1", constants.RolePassenger)

	f.sessions.EXPECT().
		FindDisconnect(gomock.Any(), "user-1", "conn-old").
		Return(nil, tracking.ErrSessionNotFound)

	f.handler.handleMessage(client, models.WSMessage{
		Event: constants.EventSessionRecover,
		Data:  raw(t, models.SessionRecoverRequest{PreviousConnectionID: "conn-old"}),
	})

	assert.Empty(t, f.manager.RoomsOf("conn-new"))
}

func TestDisconnectPersistsSubscribedTrips(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)
	f.manager.JoinRoom("conn-1", constants.TripRoom("trip-1"))
	f.manager.JoinRoom("conn-1", constants.TripDriverRoom("trip-2"))

	f.sessions.EXPECT().
		SaveDisconnect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.DisconnectRecord) error {
			// Driver-only rooms are not subscriptions
			assert.Equal(t, []string{"trip-1"}, rec.SubscribedTrips)
			assert.Equal(t, "user-1", rec.UserID)
			return nil
		})

	f.handler.handleDisconnect(client)

	_, ok := f.manager.GetClient("conn-1")
	assert.False(t, ok)
}

func TestUnknownEventGetsErrorFrame(t *testing.T) {
	f := newHandlerFixture(t)
	client := f.connect("conn-1", "user-1", constants.RolePassenger)

	f.handler.handleMessage(client, models.WSMessage{
		Event: "no:such:event",
		Data:  raw(t, map[string]string{}),
	})
}
