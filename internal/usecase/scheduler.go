package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/entity"
	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/repository"
	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/service"
	"github.com/naza-official/bart-one-shot-classification-service/internal/infrastructure/metrics"
)

// BatchScheduler turns a validated batch submission into a running job. A
// worker goroutine is launched per job and gated by a fixed-size semaphore,
// so Submit never blocks on classifier latency while overall concurrency
// stays bounded. Titles within one job are classified sequentially: the
// inference collaborator is assumed non-reentrant.
type BatchScheduler struct {
	store      repository.JobRepository
	classifier service.Classifier
	sem        chan struct{}
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBatchScheduler creates a scheduler running at most workers jobs at once.
// Metrics may be nil.
func NewBatchScheduler(store repository.JobRepository, classifier service.Classifier, workers int, m *metrics.Metrics, logger *zap.Logger) *BatchScheduler {
	if workers < 1 {
		workers = 1
	}
	return &BatchScheduler{
		store:      store,
		classifier: classifier,
		sem:        make(chan struct{}, workers),
		metrics:    m,
		logger:     logger,
	}
}

// Submit creates the job record and hands the per-title work to a background
// worker. It returns as soon as the record exists; the job is still queued.
func (s *BatchScheduler) Submit(titles, categories []string) *entity.Job {
	job := s.store.Create(titles, categories)
	if s.metrics != nil {
		s.metrics.JobsSubmitted.Inc()
	}

	go s.run(job.ID, job.Titles, job.Categories)

	return job
}

func (s *BatchScheduler) run(id uuid.UUID, titles, categories []string) {
	s.sem <- struct{}{}
	defer func() { <-s.sem }()

	s.store.AppendLog(id, fmt.Sprintf("starting classification of %d titles", len(titles)))
	s.logger.Info("job started",
		zap.String("job_id", id.String()),
		zap.Int("titles", len(titles)))

	for i, title := range titles {
		if i == 0 {
			s.store.BeginProcessing(id)
		}

		start := time.Now()
		scores, err := s.classifier.Classify(context.Background(), title, categories)
		if s.metrics != nil {
			s.metrics.ClassifyDuration.Observe(time.Since(start).Seconds())
		}

		if err != nil {
			// one bad title fails the whole job
			s.store.AppendLog(id, fmt.Sprintf("classification failed on title %d/%d: %v", i+1, len(titles), err))
			s.store.MarkFailed(id, err.Error())
			if s.metrics != nil {
				s.metrics.JobsFinished.WithLabelValues(string(entity.JobStatusFailed)).Inc()
			}
			s.logger.Error("job failed",
				zap.String("job_id", id.String()),
				zap.Int("processed", i),
				zap.Error(err))
			return
		}

		s.store.RecordResult(id, i, entity.Result{
			Title:     title,
			Predicted: service.TopLabel(categories, scores),
			Scores:    scores,
		})
		if s.metrics != nil {
			s.metrics.TitlesClassified.Inc()
		}
	}

	s.store.AppendLog(id, "job completed successfully")
	if s.metrics != nil {
		s.metrics.JobsFinished.WithLabelValues(string(entity.JobStatusCompleted)).Inc()
	}
	s.logger.Info("job completed", zap.String("job_id", id.String()))
}
