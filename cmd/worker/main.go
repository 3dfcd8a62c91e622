package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"journal-backend/pkg/container"
	"journal-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	// The worker consumes tasks; it never enqueues, so no queue client.
	c, err := container.NewContainerWithOptions(container.Options{WithQueue: false})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer c.Cleanup()

	handlers := newHandlerRegistry(c)

	srv := startAsynqServer(c.Config.Redis.Host, handlers)
	scheduler := startScheduler(c.Config.Redis.Host, c.Config.Worker)

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("worker shutting down")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("worker stopped")
}
