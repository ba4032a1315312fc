package domain

import "time"

// NotificationChannel канал доставки
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelPush  NotificationChannel = "PUSH"
	ChannelInApp NotificationChannel = "IN_APP"
)

// NotificationStatus статус уведомления
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
	NotificationRead    NotificationStatus = "READ"
)

// RecipientType тип получателя
type RecipientType string

const (
	RecipientStaff    RecipientType = "STAFF"
	RecipientCustomer RecipientType = "CUSTOMER"
)

// Notification уведомление
type Notification struct {
	ID            int64
	RecipientType RecipientType
	RecipientID   int64
	Channel       NotificationChannel
	Title         string
	Message       string
	Data          map[string]interface{}
	Status        NotificationStatus
	SentAt        *time.Time
	CreatedAt     time.Time
}

// DeliveryKind способ, которым уведомление было обработано
type DeliveryKind string

const (
	// DeliveryPersisted уведомление сохранено в хранилище
	DeliveryPersisted DeliveryKind = "PERSISTED"
	// DeliveryEphemeral хранилище не настроено, уведомление существует только в памяти
	DeliveryEphemeral DeliveryKind = "EPHEMERAL"
	// DeliverySkipped канал отключен в настройках получателя
	DeliverySkipped DeliveryKind = "SKIPPED"
)

// Delivery результат отправки уведомления.
// Для Persisted Notification.ID - ID записи, для Ephemeral - EphemeralID
type Delivery struct {
	Kind         DeliveryKind
	Notification Notification
	EphemeralID  string
}

// IsPersisted уведомление сохранено
func (d Delivery) IsPersisted() bool {
	return d.Kind == DeliveryPersisted
}
