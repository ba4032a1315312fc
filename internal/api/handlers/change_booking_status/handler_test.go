package change_booking_status

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
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ChangeStatus(ctx context.Context, actor domain.Actor, id int64, req *models.ChangeStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockBookingService, body string, withActor bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/7/status", strings.NewReader(body))
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleMasterAdmin}))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_CheckIn(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("ChangeStatus", mock.Anything, mock.Anything, int64(7), &models.ChangeStatusRequest{Status: "CHECKED_IN"}).
		Return(&models.BookingResponse{ID: 7, Status: "CHECKED_IN"}, nil)

	rec := serve(svc, `{"status":"CHECKED_IN"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CHECKED_IN"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		withActor  bool
		err        error
		wantStatus int
	}{
		{name: "no actor", body: `{"status":"CONFIRMED"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing status", body: `{}`, withActor: true, wantStatus: http.StatusBadRequest},
		{name: "unknown status", body: `{"status":"LOST"}`, withActor: true, err: bookings.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "bad transition", body: `{"status":"COMPLETED"}`, withActor: true, err: bookings.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "not found", body: `{"status":"CONFIRMED"}`, withActor: true, err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			if tt.err != nil {
				svc.On("ChangeStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.body, tt.withActor)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
