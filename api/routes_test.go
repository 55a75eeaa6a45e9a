package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/service/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRouteUseCase struct {
	mock.Mock
}

func (m *MockRouteUseCase) UpsertRoute(ctx context.Context, input routes.UpsertRouteInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func newRouteRouter(h *RouteHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router.Group("/api/v1"))
	return router
}

func upsertBody(mode string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"airline_id":    1,
		"flight_number": "AB123",
		"origin":        "LAX",
		"destination":   "JFK",
		"plane":         "A320",
		"seats":         180,
		"duration":      5,
		"mode":          mode,
	})
	return body
}

func TestRouteHandler_Upsert_Insert(t *testing.T) {
	service := &MockRouteUseCase{}
	router := newRouteRouter(NewRouteHandler(service))

	service.On("UpsertRoute", mock.Anything, mock.AnythingOfType("routes.UpsertRouteInput")).
		Return(&domain.Flight{Number: "AB123", AirlineID: 1, Seats: 180, Duration: 5}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/routes", bytes.NewReader(upsertBody("insert")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestRouteHandler_Upsert_Update(t *testing.T) {
	service := &MockRouteUseCase{}
	router := newRouteRouter(NewRouteHandler(service))

	service.On("UpsertRoute", mock.Anything, mock.AnythingOfType("routes.UpsertRouteInput")).
		Return(&domain.Flight{Number: "AB123", AirlineID: 1, Seats: 180, Duration: 5}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/routes", bytes.NewReader(upsertBody("update")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteHandler_Upsert_Rejections(t *testing.T) {
	testCases := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{err: domain.ErrFlightExists, wantStatus: http.StatusConflict, wantReason: "flight_exists"},
		{err: domain.ErrFlightNotFound, wantStatus: http.StatusNotFound, wantReason: "no_such_flight"},
		{err: domain.ErrAirlineNotFound, wantStatus: http.StatusNotFound, wantReason: "no_such_airline"},
		{err: domain.ErrOutOfRange, wantStatus: http.StatusUnprocessableEntity, wantReason: "out_of_range"},
		{err: domain.ErrBadUpsertMode, wantStatus: http.StatusUnprocessableEntity, wantReason: "bad_mode"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantReason, func(t *testing.T) {
			service := &MockRouteUseCase{}
			router := newRouteRouter(NewRouteHandler(service))

			service.On("UpsertRoute", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/routes", bytes.NewReader(upsertBody("insert")))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantReason, resp["reason"])
		})
	}
}
