package customer_blacklist

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
	"github.com/m04kA/TableBookingService/internal/service/customers"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Blacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error {
	return m.Called(ctx, actor, customerID, reason).Error(0)
}

func (m *MockCustomerService) RemoveBlacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error {
	return m.Called(ctx, actor, customerID, reason).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockCustomerService, method, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/customers/{customerId}/blacklist", h.HandleAdd).Methods(http.MethodPost)
	router.HandleFunc("/customers/{customerId}/blacklist", h.HandleRemove).Methods(http.MethodDelete)

	req := httptest.NewRequest(method, "/customers/7/blacklist", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleBranchAdmin}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const reason = "Repeated rude behaviour"

func TestHandleAdd(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("Blacklist", mock.Anything, mock.Anything, int64(7), reason).Return(nil)

	rec := serve(svc, http.MethodPost, `{"reason":"`+reason+`"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleRemove(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("RemoveBlacklist", mock.Anything, mock.Anything, int64(7), reason).Return(nil)

	rec := serve(svc, http.MethodDelete, `{"reason":"`+reason+`"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertNotCalled(t, "Blacklist", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "missing reason", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "short reason", body: `{"reason":"bad"}`, err: customers.ErrInvalidReason, wantStatus: http.StatusBadRequest},
		{name: "staff", body: `{"reason":"` + reason + `"}`, err: permission.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "not found", body: `{"reason":"` + reason + `"}`, err: customers.ErrCustomerNotFound, wantStatus: http.StatusNotFound},
		{name: "merged", body: `{"reason":"` + reason + `"}`, err: customers.ErrCustomerInactive, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCustomerService)
			if tt.err != nil {
				svc.On("Blacklist", mock.Anything, mock.Anything, int64(7), mock.Anything).Return(tt.err)
			}

			rec := serve(svc, http.MethodPost, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
