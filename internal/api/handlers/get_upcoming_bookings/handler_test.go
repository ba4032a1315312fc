package get_upcoming_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetUpcoming(ctx context.Context, actor domain.Actor, branchID int64, limit int) (*models.BookingListResponse, error) {
	args := m.Called(ctx, actor, branchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockBookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/branches/{branchId}/bookings/upcoming", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleMasterAdmin}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_DefaultLimit(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetUpcoming", mock.Anything, mock.Anything, int64(2), defaultLimit).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}}, Total: 1}, nil)

	rec := serve(svc, "/branches/2/bookings/upcoming")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"0", "abc", "101"} {
		rec := serve(new(MockBookingService), "/branches/2/bookings/upcoming?limit="+limit)
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}

func TestHandle_Forbidden(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetUpcoming", mock.Anything, mock.Anything, int64(2), 5).Return(nil, permission.ErrPermissionDenied)

	rec := serve(svc, "/branches/2/bookings/upcoming?limit=5")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
