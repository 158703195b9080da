package workers

import (
	"context"

	"github.com/akgarhwal/vault/internal/logger"
)

// MirrorWorker runs a job each time it is triggered. Triggers that arrive
// while a run is pending collapse into one, so a burst of mutations causes
// at most one extra write of the mirror.
type MirrorWorker struct {
	job     func(context.Context) error
	pending chan struct{}
	done    chan struct{}

	logger *logger.Logger
}

func NewMirrorWorker(job func(context.Context) error, log *logger.Logger) *MirrorWorker {
	return &MirrorWorker{
		job:     job,
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}, 1),
		logger:  log,
	}
}

// Trigger schedules a run. It never blocks.
func (w *MirrorWorker) Trigger() {
	select {
	case w.pending <- struct{}{}:
	default:
	}
}

// Done receives a value after each completed run. Only the most recent
// completion is buffered.
func (w *MirrorWorker) Done() <-chan struct{} {
	return w.done
}

func (w *MirrorWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// flush a request that arrived before shutdown
			select {
			case <-w.pending:
				w.runJob(context.WithoutCancel(ctx))
			default:
			}
			return
		case <-w.pending:
			if ctx.Err() != nil {
				w.runJob(context.WithoutCancel(ctx))
				return
			}
			w.runJob(ctx)
		}
	}
}

func (w *MirrorWorker) runJob(ctx context.Context) {
	if err := w.job(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "MirrorWorker.Run").Msg("mirror update failed")
	}
	select {
	case w.done <- struct{}{}:
	default:
	}
}
