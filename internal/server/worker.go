package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
)

// Worker keeps a FeedServer up to date by re-running the sync pipeline.
type Worker struct {
	Generator *engine.Generator
	Config    engine.SyncConfig
	Interval  time.Duration
	Server    *FeedServer

	kick chan struct{}
}

// NewWorker returns a worker syncing every interval into srv.
func NewWorker(gen *engine.Generator, cfg engine.SyncConfig, interval time.Duration, srv *FeedServer) *Worker {
	if interval <= 0 {
		interval = config.DefaultRefreshMin * time.Minute
	}
	return &Worker{
		Generator: gen,
		Config:    cfg,
		Interval:  interval,
		Server:    srv,
		kick:      make(chan struct{}, config.ChannelBufferSize),
	}
}

// Kick requests an immediate sync. Requests made while one is pending are merged.
func (w *Worker) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Run syncs once, then on every tick or kick, until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	_ = w.SyncOnce(ctx, false)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	log.Info(config.MsgWorkerStart, config.LogKeyInterval, w.Interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return
		case <-w.kick:
			_ = w.SyncOnce(ctx, true)
		case <-ticker.C:
			_ = w.SyncOnce(ctx, false)
		}
	}
}

// SyncOnce runs the pipeline and publishes the result. On failure the
// previous feed stays served.
func (w *Worker) SyncOnce(ctx context.Context, manual bool) error {
	slog.Info(config.MsgSyncRequested,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyManual, manual)

	ics, entries, today, err := w.Generator.RunSync(ctx, w.Config)
	w.Server.Metrics().ObserveSync(err)
	if err != nil {
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err)
		return err
	}

	w.Server.Update(ics, entries)
	slog.Info(config.MsgSyncFinished,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyCount, len(entries),
		config.LogKeyToday, today)
	return nil
}
