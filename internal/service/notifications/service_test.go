package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/cache"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/mailer"
	"github.com/m04kA/TableBookingService/pkg/metrics"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus, at time.Time) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, email mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}

func newService(repo NotificationRepository, sender EmailSender, bus *events.MemoryBus) *Service {
	return NewService(Dependencies{
		Repository: repo,
		Cache:      cache.NewMemory(),
		Mailer:     sender,
		Publisher:  bus,
		Metrics:    metrics.Noop{},
		Logger:     MockLogger{},
	}, time.Hour)
}

func inApp() Message {
	return Message{
		RecipientType: domain.RecipientCustomer,
		RecipientID:   7,
		Channel:       domain.ChannelInApp,
		Title:         "Table available",
		BranchID:      1,
	}
}

func TestSend_Ephemeral(t *testing.T) {
	bus := events.NewMemoryBus()
	var published []events.Event
	bus.Subscribe(func(_ context.Context, e events.Event) { published = append(published, e) })

	svc := newService(nil, new(MockEmailSender), bus)

	delivery, err := svc.Send(context.Background(), inApp())

	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryEphemeral, delivery.Kind)
	assert.NotEmpty(t, delivery.EphemeralID)
	assert.Equal(t, domain.NotificationSent, delivery.Notification.Status)
	require.Len(t, published, 1)
	assert.Equal(t, events.NotificationSent, published[0].Type)
	assert.Equal(t, delivery.EphemeralID, published[0].Payload["ephemeral_id"])
}

func TestSend_Persisted(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Notification{ID: 15, Channel: domain.ChannelInApp, Title: "Table available"}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(15), domain.NotificationSent, mock.Anything).Return(nil)

	svc := newService(repo, new(MockEmailSender), events.NewMemoryBus())

	delivery, err := svc.Send(context.Background(), inApp())

	require.NoError(t, err)
	assert.True(t, delivery.IsPersisted())
	assert.Equal(t, int64(15), delivery.Notification.ID)
	repo.AssertExpectations(t)
}

func TestSend_SkippedByPreferences(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := newService(repo, new(MockEmailSender), events.NewMemoryBus())

	require.NoError(t, svc.SetPreferences(context.Background(), domain.RecipientCustomer, 7,
		Preferences{domain.ChannelInApp: false}))

	delivery, err := svc.Send(context.Background(), inApp())

	require.NoError(t, err)
	assert.Equal(t, domain.DeliverySkipped, delivery.Kind)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSend_Email(t *testing.T) {
	t.Run("requires address", func(t *testing.T) {
		svc := newService(nil, new(MockEmailSender), events.NewMemoryBus())
		msg := inApp()
		msg.Channel = domain.ChannelEmail

		_, err := svc.Send(context.Background(), msg)

		assert.ErrorIs(t, err, ErrNoEmailAddress)
	})

	t.Run("failure marks notification failed", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			return e.To == "ivan@example.com" && e.Subject == "Table available"
		})).Return(errors.New("smtp down"))

		svc := newService(nil, sender, events.NewMemoryBus())
		msg := inApp()
		msg.Channel = domain.ChannelEmail
		msg.Email = "ivan@example.com"

		delivery, err := svc.Send(context.Background(), msg)

		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.Equal(t, domain.NotificationFailed, delivery.Notification.Status)
	})
}

func TestSend_Invalid(t *testing.T) {
	svc := newService(nil, new(MockEmailSender), events.NewMemoryBus())
	msg := inApp()
	msg.Channel = "FAX"

	_, err := svc.Send(context.Background(), msg)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSendEmail_Background(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("Send", mock.Anything, mailer.Email{To: "ivan@example.com", Subject: "Hi", Body: "Body"}).Return(nil)

	svc := newService(nil, sender, events.NewMemoryBus())
	svc.SendEmail(context.Background(), "ivan@example.com", "Hi", "Body")
	svc.Wait()

	sender.AssertExpectations(t)
}
