package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/config"
	"journal-backend/internal/shared"
)

// Scheduler registers recurring maintenance jobs.
type Scheduler struct {
	scheduler    *asynq.Scheduler
	workerConfig config.WorkerConfig
}

func NewScheduler(redisAddr string, workerConfig config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:    scheduler,
		workerConfig: workerConfig,
	}
}

// RegisterMaintenanceJobs wires all cron entries.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerPruneOldNotificationsJob()
}

// Daily at 3 AM UTC, a low-traffic window. Old notifications are pure
// noise past the retention window and only grow the table.
func (s *Scheduler) registerPruneOldNotificationsJob() error {
	payload, err := json.Marshal(shared.PruneOldNotificationsPayload{
		OlderThanDays: s.workerConfig.NotificationRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePruneOldNotifications, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to register PruneOldNotifications job")
		return err
	}

	log.Info().Msg("registered PruneOldNotifications: daily at 3 AM")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
