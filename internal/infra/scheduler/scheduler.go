package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	// ErrSchedule возвращается, когда задачу не удалось поставить в планировщик
	ErrSchedule = errors.New("scheduler: failed to schedule job")
)

// Task функция задачи. ctx отменяется при остановке планировщика
type Task func(ctx context.Context)

// Scheduler отменяемые одноразовые таймеры и периодические задачи поверх gocron
// Одноразовая задача адресуется уникальным ключом: повторная постановка с тем же ключом
// заменяет предыдущую
type Scheduler struct {
	cron   gocron.Scheduler
	logger Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	jobs map[string]scheduledJob
}

type scheduledJob struct {
	id   uuid.UUID
	tags []string
}

// New создает планировщик. Запуск - Start
func New(logger Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("%w: init: %v", ErrSchedule, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]scheduledJob),
	}, nil
}

// Start запускает выполнение задач
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Shutdown останавливает планировщик и дожидается запущенных задач
func (s *Scheduler) Shutdown() error {
	s.cancel()
	return s.cron.Shutdown()
}

// ScheduleOnce ставит одноразовую задачу на момент runAt
// Момент в прошлом означает немедленный запуск
func (s *Scheduler) ScheduleOnce(key string, runAt time.Time, task Task, tags ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(key)

	start := gocron.OneTimeJobStartImmediately()
	if runAt.After(time.Now()) {
		start = gocron.OneTimeJobStartDateTime(runAt)
	}

	job, err := s.cron.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(func() { task(s.ctx) }),
		gocron.WithName(key),
		gocron.WithTags(tags...),
		gocron.WithEventListeners(
			gocron.AfterJobRuns(func(jobID uuid.UUID, jobName string) {
				s.forget(jobName, jobID)
			}),
			gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
				s.logger.Error("Scheduler: job %s panicked: %v", jobName, recoverData)
				s.forget(jobName, jobID)
			}),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchedule, key, err)
	}

	s.jobs[key] = scheduledJob{id: job.ID(), tags: tags}
	return nil
}

// Every ставит периодическую задачу. Следующий запуск не начинается, пока не закончился предыдущий
func (s *Scheduler) Every(name string, interval time.Duration, task Task) error {
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { task(s.ctx) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchedule, name, err)
	}
	return nil
}

// Cancel снимает одноразовую задачу по ключу. Отсутствующий ключ не ошибка
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
}

// CancelByTag снимает все задачи с тегом
func (s *Scheduler) CancelByTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.RemoveByTags(tag)
	for key, job := range s.jobs {
		for _, t := range job.tags {
			if t == tag {
				delete(s.jobs, key)
				break
			}
		}
	}
}

// Pending ключи одноразовых задач, ещё не выполненных
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.jobs))
	for key := range s.jobs {
		keys = append(keys, key)
	}
	return keys
}

func (s *Scheduler) removeLocked(key string) {
	job, ok := s.jobs[key]
	if !ok {
		return
	}
	if err := s.cron.RemoveJob(job.id); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		s.logger.Warn("Scheduler: failed to remove job %s: %v", key, err)
	}
	delete(s.jobs, key)
}

func (s *Scheduler) forget(key string, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.jobs[key]; ok && current.id == id {
		delete(s.jobs, key)
	}
}
