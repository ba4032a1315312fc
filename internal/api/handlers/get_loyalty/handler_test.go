package get_loyalty

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/loyalty"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) GetStatus(ctx context.Context, customerID int64) (*loyalty.Status, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Status), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *MockLoyaltyService, actor domain.Actor) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/customers/{customerId}/loyalty", NewHandler(svc, permission.NewChecker(), nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, "/customers/7/loyalty", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	branchID := int64(1)
	svc := new(MockLoyaltyService)
	svc.On("GetStatus", mock.Anything, int64(7)).Return(&loyalty.Status{
		Account: &domain.LoyaltyAccount{ID: 2, CustomerID: 7, PointsBalance: 11, Tier: domain.LoyaltyGold},
		Transactions: []*domain.LoyaltyTransaction{
			{ID: 1, Type: domain.LoyaltyBonus, Points: 5, Reason: "Referral bonus", CreatedAt: time.Now()},
		},
	}, nil)

	rec := serve(svc, domain.Actor{UserID: 3, Role: domain.RoleStaff, BranchID: &branchID})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pointsBalance":11`)
	assert.Contains(t, rec.Body.String(), `"type":"BONUS"`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := new(MockLoyaltyService)
	svc.On("GetStatus", mock.Anything, int64(7)).Return(nil, loyalty.ErrCustomerNotFound)

	rec := serve(svc, domain.Actor{UserID: 1, Role: domain.RoleMasterAdmin})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_UnknownRole(t *testing.T) {
	svc := new(MockLoyaltyService)

	rec := serve(svc, domain.Actor{UserID: 1, Role: domain.Role("GUEST")})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything)
}
