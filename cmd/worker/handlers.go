package main

import (
	"github.com/hibiken/asynq"

	"journal-backend/internal/domains/notification/job"
	"journal-backend/internal/shared"
	"journal-backend/pkg/container"
)

// handlerRegistry holds every task handler with its dependencies.
type handlerRegistry struct {
	fanOutEntry *job.FanOutEntryHandler
	pruneOld    *job.PruneOldHandler
}

func newHandlerRegistry(c *container.Container) *handlerRegistry {
	return &handlerRegistry{
		fanOutEntry: job.NewFanOutEntryHandler(c.NotificationRepo, c.SocialRepo),
		pruneOld:    job.NewPruneOldHandler(c.NotificationRepo),
	}
}

func (h *handlerRegistry) register(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeEntryFanOut, h.fanOutEntry.ProcessTask)
	mux.HandleFunc(shared.TypePruneOldNotifications, h.pruneOld.ProcessTask)
}
