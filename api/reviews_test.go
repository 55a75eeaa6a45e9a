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
	"github.com/ostrikov/airbooking/internal/service/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) SubmitReview(ctx context.Context, input review.SubmitReviewInput) (*domain.Rating, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func reviewBody(score int) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"passport":      "X1234567",
		"flight_number": "AB123",
		"score":         score,
		"comment":       "smooth flight",
	})
	return body
}

func TestReviewHandler_Submit_Success(t *testing.T) {
	service := &MockReviewUseCase{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewReviewHandler(service).Register(router.Group("/api/v1"))

	service.On("SubmitReview", mock.Anything, review.SubmitReviewInput{
		Passport:     "X1234567",
		FlightNumber: "AB123",
		Score:        4,
		Comment:      "smooth flight",
	}).Return(&domain.Rating{PassengerID: 7, FlightNumber: "AB123", Score: 4, Comment: "smooth flight"}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(reviewBody(4)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestReviewHandler_Submit_Rejections(t *testing.T) {
	testCases := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{err: domain.ErrNotBooked, wantStatus: http.StatusUnprocessableEntity, wantReason: "not_booked"},
		{err: domain.ErrAlreadyRated, wantStatus: http.StatusConflict, wantReason: "already_rated"},
		{err: domain.ErrScoreOutOfRange, wantStatus: http.StatusUnprocessableEntity, wantReason: "score_out_of_range"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantReason, func(t *testing.T) {
			service := &MockReviewUseCase{}
			gin.SetMode(gin.TestMode)
			router := gin.New()
			NewReviewHandler(service).Register(router.Group("/api/v1"))

			service.On("SubmitReview", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(reviewBody(6)))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantReason, resp["reason"])
		})
	}
}
