package main

import (
	"github.com/rs/zerolog/log"

	"journal-backend/internal/config"
	"journal-backend/internal/infrastructure/queue"
)

type asynqScheduler struct {
	*queue.Scheduler
}

func startScheduler(redisAddr string, workerConfig config.WorkerConfig) *asynqScheduler {
	scheduler := queue.NewScheduler(redisAddr, workerConfig)

	if err := scheduler.RegisterMaintenanceJobs(); err != nil {
		log.Fatal().Err(err).Msg("failed to register scheduled jobs")
	}

	go func() {
		log.Info().Msg("scheduler starting")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	s.Scheduler.Shutdown()
}
