package automation

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// Dependencies зависимости сервиса автоматизации
type Dependencies struct {
	Calendar     Calendar
	Availability AvailabilityChecker
	Waitlist     WaitlistRepository
	Customers    CustomerRepository
	Timeline     TimelineRecorder
	Notifier     Notifier
	Scheduler    Scheduler
	Publisher    EventPublisher
	Logger       Logger
}

// Settings политики автоматизации
type Settings struct {
	DefaultDurationMinutes int
	AutoConfirmRatio       float64
	Location               *time.Location
}

// Service автоподтверждение, подбор альтернатив, лист ожидания и напоминания
type Service struct {
	calendar     Calendar
	availability AvailabilityChecker
	waitlist     WaitlistRepository
	customers    CustomerRepository
	timeline     TimelineRecorder
	notifier     Notifier
	scheduler    Scheduler
	publisher    EventPublisher
	logger       Logger

	duration int
	ratio    float64
	loc      *time.Location
	now      func() time.Time
}

// NewService создает сервис автоматизации
func NewService(deps Dependencies, settings Settings) *Service {
	if settings.DefaultDurationMinutes <= 0 {
		settings.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
	if settings.AutoConfirmRatio <= 0 {
		settings.AutoConfirmRatio = domain.DefaultAutoConfirmRatio
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &Service{
		calendar:     deps.Calendar,
		availability: deps.Availability,
		waitlist:     deps.Waitlist,
		customers:    deps.Customers,
		timeline:     deps.Timeline,
		notifier:     deps.Notifier,
		scheduler:    deps.Scheduler,
		publisher:    deps.Publisher,
		logger:       deps.Logger,
		duration:     settings.DefaultDurationMinutes,
		ratio:        settings.AutoConfirmRatio,
		loc:          settings.Location,
		now:          time.Now,
	}
}
