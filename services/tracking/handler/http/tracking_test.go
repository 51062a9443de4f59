package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	pkgws "github.com/hushryd/tracking-service/internal/pkg/websocket"
	"github.com/hushryd/tracking-service/services/tracking"
	"github.com/hushryd/tracking-service/services/tracking/mocks"
)

type httpFixture struct {
	trackingUC *mocks.MockTrackingUC
	safetyUC   *mocks.MockSafetyUC
	handler    *TrackingHandler
}

func newHTTPFixture(t *testing.T) (*httpFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &httpFixture{
		trackingUC: mocks.NewMockTrackingUC(ctrl),
		safetyUC:   mocks.NewMockSafetyUC(ctrl),
	}
	f.handler = NewTrackingHandler(f.trackingUC, f.safetyUC, pkgws.NewManager(models.JWTConfig{Secret: "test"}))
	return f, ctrl
}

func serveTripRequest(handler echo.HandlerFunc, tripID string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGetTripTracked(t *testing.T) {
	f, ctrl := newHTTPFixture(t)
	defer ctrl.Finish()

	f.trackingUC.EXPECT().IsTracked(gomock.Any(), "trip-1").Return(true)

	rec := serveTripRequest(f.handler.GetTripTracked, "trip-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trip-1", body["trip_id"])
	assert.Equal(t, true, body["tracked"])
}

func TestGetTripTrackedStaleTrip(t *testing.T) {
	f, ctrl := newHTTPFixture(t)
	defer ctrl.Finish()

	f.trackingUC.EXPECT().IsTracked(gomock.Any(), "trip-2").Return(false)

	rec := serveTripRequest(f.handler.GetTripTracked, "trip-2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["tracked"])
}

func TestGetTripLocationNotFound(t *testing.T) {
	f, ctrl := newHTTPFixture(t)
	defer ctrl.Finish()

	f.trackingUC.EXPECT().CurrentLocation(gomock.Any(), "trip-9").
		Return(nil, tracking.ErrNoLocationData)

	rec := serveTripRequest(f.handler.GetTripLocation, "trip-9")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
