package interactionlog

import (
	"context"

	"github.com/rs/zerolog"
)

// Recorder appends interaction log records best-effort. A failed write must
// never abort the orchestration call that triggered it, so Record swallows
// repository errors after logging them.
type Recorder struct {
	repo      Repository
	logger    zerolog.Logger
	onDropped func()
}

// NewRecorder creates a new Recorder. onDropped is called once per record
// lost to a write failure; nil is allowed.
func NewRecorder(repo Repository, logger zerolog.Logger, onDropped func()) *Recorder {
	return &Recorder{repo: repo, logger: logger, onDropped: onDropped}
}

// Record appends the entry synchronously. Write failures are reported through
// the process log and the drop callback only.
func (r *Recorder) Record(ctx context.Context, entry *InteractionLog) {
	if entry == nil {
		return
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Error().
			Err(err).
			Str("provider", entry.Provider).
			Bool("success", entry.Success).
			Msg("failed to persist interaction log record")
		if r.onDropped != nil {
			r.onDropped()
		}
	}
}
