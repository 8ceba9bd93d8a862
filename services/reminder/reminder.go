package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dairy/models"
	"dairy/services/tasks"
	"dairy/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func (s *DefaultReminderService) SaveReminder(ctx context.Context, session models.Session, req models.ReminderRequest) (*models.ReminderSetting, int, error) {
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, 0, utils.NewValidationError("invalid shift %q", req.Shift)
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(req.Time))
	if err != nil {
		return nil, 0, utils.NewValidationError("invalid time %q, expected HH:MM", req.Time)
	}
	duration := req.DurationDays
	if duration == 0 {
		duration = 1
	}
	if duration < 1 || duration > MaxDurationDays {
		return nil, 0, utils.NewValidationError("durationDays must be between 1 and %d", MaxDurationDays)
	}

	setting := models.ReminderSetting{
		AccountID:    session.AccountID,
		Shift:        shift,
		Enabled:      req.Enabled,
		Time:         clock.Format("15:04"),
		DurationDays: duration,
	}
	if err := s.Repo.Upsert(ctx, setting); err != nil {
		return nil, 0, err
	}

	scheduled := 0
	if setting.Enabled {
		scheduled, err = s.schedule(ctx, setting, clock)
		if err != nil {
			return nil, 0, err
		}
	}
	utils.GetLogger().Info("Reminder saved",
		zap.String("accountId", session.AccountID),
		zap.String("shift", shift.String()),
		zap.Bool("enabled", setting.Enabled),
		zap.String("time", setting.Time),
		zap.Int("durationDays", duration),
		zap.Int("scheduled", scheduled))
	return &setting, scheduled, nil
}

// schedule enqueues one task per day starting today. Times already past are skipped.
func (s *DefaultReminderService) schedule(ctx context.Context, setting models.ReminderSetting, clock time.Time) (int, error) {
	if s.Queue == nil {
		utils.GetLogger().Warn("Reminder queue not configured, nothing scheduled",
			zap.String("accountId", setting.AccountID), zap.String("shift", setting.Shift.String()))
		return 0, nil
	}

	loc := s.location()
	now := s.now().In(loc)
	scheduled := 0
	for i := 0; i < setting.DurationDays; i++ {
		day := now.AddDate(0, 0, i)
		fireAt := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
		if !fireAt.After(now) {
			continue
		}

		payload := models.ReminderPayload{
			AccountID: setting.AccountID,
			Shift:     setting.Shift,
			FireDate:  fireAt.Format(models.DateLayout),
			Time:      setting.Time,
			Title:     fmt.Sprintf("%s payment reminder", setting.Shift),
		}
		payload.ReminderID = tasks.ReminderTaskID(payload)

		task, opts, err := tasks.NewReminderTask(payload, fireAt)
		if err != nil {
			return scheduled, err
		}
		_, err = s.Queue.EnqueueContext(ctx, task, opts...)
		switch {
		case errors.Is(err, asynq.ErrTaskIDConflict):
			// Already queued by an earlier save.
		case err != nil:
			utils.IncReminderTask("enqueue", utils.ResultError)
			return scheduled, fmt.Errorf("failed to enqueue reminder: %w", err)
		default:
			utils.IncReminderTask("enqueue", utils.ResultSuccess)
		}
		scheduled++
	}
	return scheduled, nil
}

func (s *DefaultReminderService) GetReminderTimes(ctx context.Context, session models.Session) (*models.ReminderTimes, error) {
	times := &models.ReminderTimes{
		Success: true,
		Morning: DefaultMorningTime,
		Night:   DefaultNightTime,
	}
	for _, shift := range models.Shifts {
		setting, err := s.Repo.Get(ctx, session.AccountID, shift)
		if utils.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		switch shift {
		case models.ShiftMorning:
			times.Morning, times.EnabledMorning = setting.Time, setting.Enabled
		case models.ShiftNight:
			times.Night, times.EnabledNight = setting.Time, setting.Enabled
		}
	}
	return times, nil
}

// Dispatch sends the reminder unless the setting was disabled or moved to a
// different time after the task was queued.
func (s *DefaultReminderService) Dispatch(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger().With(
		zap.String("reminderId", payload.ReminderID),
		zap.String("accountId", payload.AccountID),
		zap.String("shift", payload.Shift.String()))

	setting, err := s.Repo.Get(ctx, payload.AccountID, payload.Shift)
	if utils.IsNotFound(err) {
		logger.Info("Reminder setting removed, skipping")
		utils.IncReminderTask("dispatch", "skipped")
		return nil
	}
	if err != nil {
		return err
	}
	if !setting.Enabled || setting.Time != payload.Time {
		logger.Info("Reminder stale, skipping", zap.Bool("enabled", setting.Enabled), zap.String("time", setting.Time))
		utils.IncReminderTask("dispatch", "skipped")
		return nil
	}

	session := models.Session{AccountID: payload.AccountID, Shift: payload.Shift}
	unpaid, err := s.Payments.Unpaid(ctx, session, payload.Shift)
	if err != nil {
		utils.IncReminderTask("dispatch", utils.ResultError)
		return err
	}
	if len(unpaid) == 0 {
		logger.Info("All customers paid, no reminder sent")
		utils.IncReminderTask("dispatch", "skipped")
		return nil
	}

	body := payload.Body
	if body == "" {
		body = fmt.Sprintf("%d unpaid: %s", len(unpaid), strings.Join(unpaid, ", "))
	}
	err = s.Notifier.Notify(ctx, models.Notification{
		AccountID: payload.AccountID,
		Shift:     payload.Shift,
		Title:     payload.Title,
		Body:      body,
		Data: map[string]string{
			"reminderId": payload.ReminderID,
			"fireDate":   payload.FireDate,
		},
		CreatedAt: s.now(),
	})
	utils.IncReminderTask("dispatch", utils.ResultOf(err))
	return err
}
