package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"dairy/models"

	"github.com/hibiken/asynq"
)

const TypePaymentReminder = "reminder:payment"

// ReminderTaskID is stable per account, shift, date and time so re-saving the
// same setting does not enqueue duplicates.
func ReminderTaskID(p models.ReminderPayload) string {
	return fmt.Sprintf("payment-reminder:%s:%s:%s:%s", p.AccountID, p.Shift, p.FireDate, p.Time)
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload)),
		asynq.MaxRetry(3),
		asynq.Retention(24 * time.Hour),
	}

	return task, opts, nil
}

// DecodeReminder parses a task body produced by NewReminderTask.
func DecodeReminder(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}
