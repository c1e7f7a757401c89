package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"glamora/config"
	"glamora/utils"
)

// TypeBookingReconcile is the task type for the periodic booking sweep.
const TypeBookingReconcile = "booking:reconcile"

// Reconciler completes pending/confirmed bookings whose date has passed.
type Reconciler interface {
	ReconcilePastBookings(ctx context.Context) (int64, error)
}

// InitReconcileWorker starts the async worker and the scheduler that
// enqueues the reconciliation task hourly. Both run in background.
func InitReconcileWorker(rec Reconciler) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReconcile, handleReconcileTask(rec))

	go func() {
		logger.Info("Starting booking reconciliation worker")
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reconciliation worker failed to start",
					zap.Int("attempt", attempt), zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("Reconciliation worker gave up after max attempts")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts, logger)
}

func handleReconcileTask(rec Reconciler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := rec.ReconcilePastBookings(ctx)
		if err != nil {
			utils.GetLogger().Error("Booking reconciliation failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Booking reconciliation pass finished", zap.Int64("completed", n))
		return nil
	}
}

func runScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})

	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingReconcile, nil)); err != nil {
		logger.Error("Failed to register reconciliation schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("Reconciliation scheduler stopped", zap.Error(err))
	}
}
