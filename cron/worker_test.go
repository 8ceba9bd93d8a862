package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"dairy/models"
	"dairy/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var fireAt = time.Date(2024, 2, 11, 8, 0, 0, 0, time.UTC)

type stubReminders struct {
	dispatched []models.ReminderPayload
	err        error
}

func (s *stubReminders) SaveReminder(context.Context, models.Session, models.ReminderRequest) (*models.ReminderSetting, int, error) {
	return nil, 0, nil
}

func (s *stubReminders) GetReminderTimes(context.Context, models.Session) (*models.ReminderTimes, error) {
	return nil, nil
}

func (s *stubReminders) Dispatch(_ context.Context, p models.ReminderPayload) error {
	s.dispatched = append(s.dispatched, p)
	return s.err
}

func TestHandleReminderTaskDispatches(t *testing.T) {
	svc := &stubReminders{}
	p := models.ReminderPayload{ReminderID: "r1", AccountID: "acct-1", Shift: models.ShiftMorning, FireDate: "2024-02-11", Time: "08:00"}
	task, _, err := tasks.NewReminderTask(p, fireAt)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	if err := handleReminderTask(svc)(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(svc.dispatched) != 1 || svc.dispatched[0] != p {
		t.Fatalf("unexpected dispatches %+v", svc.dispatched)
	}
}

func TestHandleReminderTaskPropagatesDispatchError(t *testing.T) {
	boom := errors.New("notifier down")
	svc := &stubReminders{err: boom}
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{AccountID: "acct-1", Shift: models.ShiftNight}, fireAt)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if err := handleReminderTask(svc)(context.Background(), task); !errors.Is(err, boom) {
		t.Fatalf("expected dispatch error to be retried, got %v", err)
	}
}

func TestHandleReminderTaskSkipsMalformedPayload(t *testing.T) {
	svc := &stubReminders{}
	err := handleReminderTask(svc)(context.Background(), asynq.NewTask(tasks.TypePaymentReminder, []byte("not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
	if len(svc.dispatched) != 0 {
		t.Fatalf("malformed task must not be dispatched")
	}
}

func TestNewMuxRoutesReminderTasks(t *testing.T) {
	svc := &stubReminders{}
	mux := NewMux(svc)
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{AccountID: "acct-1", Shift: models.ShiftMorning}, fireAt)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(svc.dispatched) != 1 {
		t.Fatalf("expected the mux to reach the reminder handler")
	}
}

func TestServerConfigUsesDefaultQueue(t *testing.T) {
	cfg := ServerConfig(zap.NewNop())
	if cfg.Concurrency != 4 {
		t.Fatalf("expected concurrency 4, got %d", cfg.Concurrency)
	}
	if cfg.Queues["default"] != 1 || len(cfg.Queues) != 1 {
		t.Fatalf("unexpected queues %v", cfg.Queues)
	}
	if cfg.Logger == nil {
		t.Fatalf("expected a logger to be set")
	}
}
