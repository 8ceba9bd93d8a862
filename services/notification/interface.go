package notification

import (
	"context"
	"sync"

	"dairy/models"

	"go.uber.org/zap"
)

// Notifier delivers reminder messages to an account owner.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// LogNotifier writes notifications to the structured log. Mail delivery is
// not wired; this keeps reminders observable.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l *LogNotifier) Notify(_ context.Context, n models.Notification) error {
	l.Logger.Info("Payment reminder",
		zap.String("accountId", n.AccountID),
		zap.String("shift", n.Shift.String()),
		zap.String("title", n.Title),
		zap.String("body", n.Body),
		zap.Any("data", n.Data))
	return nil
}

// RecordingNotifier keeps every notification in memory.
type RecordingNotifier struct {
	mu   sync.Mutex
	Sent []models.Notification
}

func (r *RecordingNotifier) Notify(_ context.Context, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, n)
	return nil
}

func (r *RecordingNotifier) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}
