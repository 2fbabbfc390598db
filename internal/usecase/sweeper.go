package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/repository"
)

// ExpirySweeper periodically evicts terminal jobs older than the retention
// window so the in-memory store cannot grow without bound.
type ExpirySweeper struct {
	store     repository.JobRepository
	interval  time.Duration
	retention time.Duration
	logger    *zap.Logger
}

// NewExpirySweeper creates a sweeper; it does nothing until Start is called
func NewExpirySweeper(store repository.JobRepository, interval, retention time.Duration, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		store:     store,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Start launches the sweep loop in the background and returns immediately.
// The loop stops when ctx is cancelled. A failing sweep is logged and
// retried on the next tick; it never takes the process down.
func (s *ExpirySweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("expiry sweeper stopped")
				return
			case now := <-ticker.C:
				s.sweep(now)
			}
		}
	}()
}

func (s *ExpirySweeper) sweep(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("sweep panicked", zap.Any("panic", r))
		}
	}()

	if removed := s.store.DeleteExpired(now.UTC(), s.retention); removed > 0 {
		s.logger.Info("expired jobs removed", zap.Int("count", removed))
	}
}
