package cron

import (
	"context"
	"time"

	"dairy/config"
	"dairy/services/reminder"
	"dairy/services/tasks"
	"dairy/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// NewMux routes reminder tasks to the reminder service.
func NewMux(svc reminder.ReminderService) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentReminder, handleReminderTask(svc))
	return mux
}

// ServerConfig is the worker configuration. Reminder tasks carry their own
// ProcessAt time, so the worker needs no timezone.
func ServerConfig(logger *zap.Logger) asynq.Config {
	return asynq.Config{
		Concurrency: 4,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	}
}

// InitReminderWorker runs the async worker in background until ctx is done.
func InitReminderWorker(ctx context.Context, svc reminder.ReminderService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(RedisOpt(), ServerConfig(logger))
	mux := NewMux(svc)

	// Start Redis health monitor
	go monitorRedisConnection(ctx)

	// Start async worker with retry logic
	go func() {
		logger.Info("[ReminderWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Warn("[ReminderWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[ReminderWorker] max retry attempts reached, reminders disabled")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleReminderTask(svc reminder.ReminderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.DecodeReminder(task)
		if err != nil {
			utils.GetLogger().Error("[ReminderHandler] invalid payload", zap.Error(err))
			// A malformed payload will never succeed.
			return asynq.SkipRetry
		}

		utils.GetLogger().Debug("[ReminderHandler] triggering reminder",
			zap.String("accountId", p.AccountID),
			zap.String("shift", p.Shift.String()),
			zap.String("fireDate", p.FireDate))
		if err := svc.Dispatch(ctx, p); err != nil {
			utils.GetLogger().Error("[ReminderHandler] failed to send reminder", zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("[ReminderWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
