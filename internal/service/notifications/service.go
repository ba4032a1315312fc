package notifications

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/mailer"
)

const emailTimeout = 30 * time.Second

// Dependencies зависимости сервиса уведомлений. Repository может быть nil:
// тогда уведомления не сохраняются
type Dependencies struct {
	Repository NotificationRepository
	Cache      Cache
	Mailer     EmailSender
	Publisher  EventPublisher
	Metrics    Metrics
	Logger     Logger
}

// Service отправка уведомлений сотрудникам и клиентам
type Service struct {
	repo      NotificationRepository
	cache     Cache
	mailer    EmailSender
	publisher EventPublisher
	metrics   Metrics
	logger    Logger
	prefsTTL  time.Duration
	now       func() time.Time

	wg sync.WaitGroup
}

// NewService создает сервис уведомлений
func NewService(deps Dependencies, prefsTTL time.Duration) *Service {
	return &Service{
		repo:      deps.Repository,
		cache:     deps.Cache,
		mailer:    deps.Mailer,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
		prefsTTL:  prefsTTL,
		now:       time.Now,
	}
}

// Message уведомление к отправке
type Message struct {
	RecipientType domain.RecipientType
	RecipientID   int64
	Channel       domain.NotificationChannel
	Title         string
	Body          string
	Data          map[string]interface{}
	// Email адрес для канала EMAIL
	Email string
	// BranchID филиал для realtime-события, 0 - без филиала
	BranchID int64
}

// Send отправляет уведомление по каналу с учётом настроек получателя
func (s *Service) Send(ctx context.Context, msg Message) (domain.Delivery, error) {
	if msg.RecipientID <= 0 || strings.TrimSpace(msg.Title) == "" || !isKnownChannel(msg.Channel) {
		return domain.Delivery{}, ErrInvalidMessage
	}
	if msg.Channel == domain.ChannelEmail && strings.TrimSpace(msg.Email) == "" {
		return domain.Delivery{}, ErrNoEmailAddress
	}

	notification := domain.Notification{
		RecipientType: msg.RecipientType,
		RecipientID:   msg.RecipientID,
		Channel:       msg.Channel,
		Title:         msg.Title,
		Message:       msg.Body,
		Data:          msg.Data,
		Status:        domain.NotificationPending,
	}

	// 1. Канал отключен получателем
	if !s.GetPreferences(ctx, msg.RecipientType, msg.RecipientID).Allows(msg.Channel) {
		s.metrics.IncNotification(string(msg.Channel), "skipped")
		return domain.Delivery{Kind: domain.DeliverySkipped, Notification: notification}, nil
	}

	// 2. Сохраняем или выдаём временный ID
	delivery := domain.Delivery{Kind: domain.DeliveryEphemeral}
	if s.repo != nil {
		stored, err := s.repo.Create(ctx, &notification)
		if err != nil {
			return domain.Delivery{}, fmt.Errorf("%w: Send - store notification: %w", ErrInternal, err)
		}
		notification = *stored
		delivery.Kind = domain.DeliveryPersisted
	} else {
		delivery.EphemeralID = uuid.NewString()
	}

	// 3. Доставка
	sendErr := s.deliver(ctx, msg)
	now := s.now()
	status := domain.NotificationSent
	if sendErr != nil {
		status = domain.NotificationFailed
	} else {
		notification.SentAt = &now
	}
	notification.Status = status

	if delivery.IsPersisted() {
		if err := s.repo.UpdateStatus(ctx, notification.ID, status, now); err != nil {
			s.logger.Error("Send: failed to update notification id=%d status: %v", notification.ID, err)
		}
	}
	delivery.Notification = notification

	// 4. Realtime-событие
	s.publish(ctx, msg, delivery)

	if sendErr != nil {
		s.metrics.IncNotification(string(msg.Channel), "failed")
		s.logger.Error("Send: %s to %s=%d failed: %v", msg.Channel, msg.RecipientType, msg.RecipientID, sendErr)
		return delivery, fmt.Errorf("%w: %w", ErrDeliveryFailed, sendErr)
	}

	s.metrics.IncNotification(string(msg.Channel), "sent")
	return delivery, nil
}

// SendEmail отправляет письмо в фоне, ошибка только логируется
func (s *Service) SendEmail(ctx context.Context, to, subject, body string) {
	if strings.TrimSpace(to) == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emailTimeout)
		defer cancel()

		err := s.mailer.Send(sendCtx, mailer.Email{To: to, Subject: subject, Body: body})
		if err != nil {
			s.metrics.IncNotification(string(domain.ChannelEmail), "failed")
			s.logger.Error("SendEmail: to=%s subject=%q: %v", to, subject, err)
			return
		}
		s.metrics.IncNotification(string(domain.ChannelEmail), "sent")
	}()
}

// Wait дожидается фоновых писем
func (s *Service) Wait() {
	s.wg.Wait()
}

// deliver EMAIL уходит через почтовый сервер, остальные каналы доставляются realtime-событием
func (s *Service) deliver(ctx context.Context, msg Message) error {
	if msg.Channel != domain.ChannelEmail {
		return nil
	}
	return s.mailer.Send(ctx, mailer.Email{To: msg.Email, Subject: msg.Title, Body: msg.Body})
}

func (s *Service) publish(ctx context.Context, msg Message, delivery domain.Delivery) {
	payload := map[string]interface{}{
		"recipient_type": string(msg.RecipientType),
		"recipient_id":   msg.RecipientID,
		"channel":        string(msg.Channel),
		"title":          msg.Title,
		"status":         string(delivery.Notification.Status),
		"delivery":       string(delivery.Kind),
	}
	if delivery.IsPersisted() {
		payload["notification_id"] = delivery.Notification.ID
	} else {
		payload["ephemeral_id"] = delivery.EphemeralID
	}

	err := s.publisher.Publish(ctx, events.Event{
		Type:       events.NotificationSent,
		BranchID:   msg.BranchID,
		Payload:    payload,
		OccurredAt: s.now(),
	})
	if err != nil {
		s.logger.Warn("Send: failed to publish notification event: %v", err)
	}
}

func isKnownChannel(channel domain.NotificationChannel) bool {
	switch channel {
	case domain.ChannelEmail, domain.ChannelSMS, domain.ChannelPush, domain.ChannelInApp:
		return true
	}
	return false
}
