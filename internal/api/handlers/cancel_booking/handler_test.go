package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Cancel(ctx context.Context, actor domain.Actor, id int64, reason *string) (*models.BookingResponse, error) {
	args := m.Called(ctx, actor, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockBookingService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/42/cancel", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleMasterAdmin}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("Cancel", mock.Anything, mock.Anything, int64(42), mock.MatchedBy(func(reason *string) bool {
		return reason != nil && *reason == "guest called"
	})).Return(&models.BookingResponse{ID: 42, Status: "CANCELLED"}, nil)

	rec := serve(svc, `{"reason":"guest called"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CANCELLED"`)
	svc.AssertExpectations(t)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("Cancel", mock.Anything, mock.Anything, int64(42), (*string)(nil)).
		Return(&models.BookingResponse{ID: 42, Status: "CANCELLED"}, nil)

	rec := serve(svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "denied", err: permission.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "terminal status", err: bookings.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "internal", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("Cancel", mock.Anything, mock.Anything, int64(42), mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_ReasonTooLong(t *testing.T) {
	svc := new(MockBookingService)

	rec := serve(svc, `{"reason":"`+strings.Repeat("x", 501)+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
