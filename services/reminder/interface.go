package reminder

import (
	"context"
	"time"

	reminderRepo "dairy/database/repository/reminder"
	"dairy/models"
	"dairy/services/notification"
	"dairy/services/payment"

	"github.com/hibiken/asynq"
)

const (
	DefaultMorningTime = "08:00"
	DefaultNightTime   = "20:00"
	MaxDurationDays    = 31
)

// ReminderService stores per-shift reminder settings, schedules the daily
// tasks and dispatches them when they fire.
type ReminderService interface {
	// SaveReminder persists the setting and returns how many daily tasks are queued.
	SaveReminder(ctx context.Context, session models.Session, req models.ReminderRequest) (*models.ReminderSetting, int, error)
	GetReminderTimes(ctx context.Context, session models.Session) (*models.ReminderTimes, error)
	// Dispatch handles one fired reminder task.
	Dispatch(ctx context.Context, payload models.ReminderPayload) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	Payments payment.PaymentService
	Notifier notification.Notifier
	Queue    TaskEnqueuer // nil disables scheduling
	Location *time.Location
	Now      func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReminderService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}
