package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	createBooking "github.com/m04kA/TableBookingService/internal/usecase/create_booking"
	"github.com/m04kA/TableBookingService/pkg/ptr"
	"github.com/m04kA/TableBookingService/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var staff = domain.Actor{UserID: 3, Role: domain.RoleStaff, BranchID: ptr.Ptr(int64(1))}

const validBody = `{
	"branchId": 1,
	"tableId": 5,
	"customer": {"fullName": "Ivan Petrov", "email": "ivan@example.com"},
	"bookingDate": "2025-03-10",
	"startTime": "19:00",
	"partySize": 4,
	"source": "PHONE"
}`

func serve(h *Handler, body string, withActor bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), staff))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Actor.UserID == 3 &&
			req.BranchID == 1 &&
			*req.TableID == 5 &&
			req.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			req.Time == types.TimeString("19:00") &&
			req.Source == domain.SourcePhone &&
			req.Customer.FullName == "Ivan Petrov"
	})).Return(&createBooking.Response{
		Outcome: createBooking.OutcomeConfirmed,
		Booking: &models.BookingResponse{ID: 42, Code: "ABC234", Status: "CONFIRMED"},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"confirmed"`)
	assert.Contains(t, rec.Body.String(), `"code":"ABC234"`)
	assert.Contains(t, rec.Body.String(), `"suggestions":[]`)
	uc.AssertExpectations(t)
}

func TestHandle_UnavailableReturnsSuggestions(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
		Outcome:     createBooking.OutcomeWaitlisted,
		Suggestions: []string{"18:00", "20:00"},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), validBody, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"waitlisted"`)
	assert.Contains(t, rec.Body.String(), `"suggestions":["18:00","20:00"]`)
	assert.NotContains(t, rec.Body.String(), `"booking"`)
	assert.NotContains(t, rec.Body.String(), `"waitlistEntryId"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		withActor  bool
		ucErr      error
		wantStatus int
	}{
		{name: "no actor", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "broken json", body: `{"branchId":`, withActor: true, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"branchId":1,"foo":1}`, withActor: true, wantStatus: http.StatusBadRequest},
		{
			name:       "bad time",
			body:       strings.Replace(validBody, `"19:00"`, `"7pm"`, 1),
			withActor:  true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "party too large",
			body:       strings.Replace(validBody, `"partySize": 4`, `"partySize": 51`, 1),
			withActor:  true,
			wantStatus: http.StatusBadRequest,
		},
		{name: "denied", body: validBody, withActor: true, ucErr: permission.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "slot taken", body: validBody, withActor: true, ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "slot locked", body: validBody, withActor: true, ucErr: createBooking.ErrSlotLocked, wantStatus: http.StatusConflict},
		{name: "blacklisted", body: validBody, withActor: true, ucErr: createBooking.ErrCustomerBlacklisted, wantStatus: http.StatusConflict},
		{name: "closed", body: validBody, withActor: true, ucErr: createBooking.ErrBranchClosed, wantStatus: http.StatusBadRequest},
		{name: "table missing", body: validBody, withActor: true, ucErr: createBooking.ErrTableNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: validBody, withActor: true, ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, nopLogger{}), tt.body, tt.withActor)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
