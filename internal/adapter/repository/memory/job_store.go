package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/entity"
	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/repository"
)

// jobStore is the in-memory job registry. A single mutex with short critical
// sections guards the map and every record, so a reader can never observe a
// half-applied update (processed count incremented without its result slot,
// or vice versa).
type jobStore struct {
	mu     sync.RWMutex
	jobs   map[uuid.UUID]*entity.Job
	logger *zap.Logger
}

// NewJobStore creates an empty in-memory job store
func NewJobStore(logger *zap.Logger) repository.JobRepository {
	return &jobStore{
		jobs:   make(map[uuid.UUID]*entity.Job),
		logger: logger,
	}
}

func (s *jobStore) Create(titles, categories []string) *entity.Job {
	job := entity.NewJob(titles, categories)

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	return job.Clone()
}

func (s *jobStore) Get(id uuid.UUID) *entity.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil
	}
	return job.Clone()
}

func (s *jobStore) BeginProcessing(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		s.logger.Warn("begin processing for unknown job", zap.String("job_id", id.String()))
		return
	}
	if job.Status != entity.JobStatusQueued {
		return
	}

	job.Status = entity.JobStatusProcessing
	if job.StartedAt == nil {
		now := time.Now().UTC()
		job.StartedAt = &now
	}
}

func (s *jobStore) RecordResult(id uuid.UUID, index int, result entity.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		// A straggling worker finishing after the sweeper ran must not
		// resurrect or corrupt the slot.
		s.logger.Warn("late result for unknown job",
			zap.String("job_id", id.String()),
			zap.Int("index", index))
		return
	}
	if job.IsTerminal() {
		s.logger.Warn("result for terminal job ignored",
			zap.String("job_id", id.String()),
			zap.String("status", string(job.Status)),
			zap.Int("index", index))
		return
	}
	if index < 0 || index >= len(job.Results) || job.Results[index] != nil {
		s.logger.Error("result index out of range or already written",
			zap.String("job_id", id.String()),
			zap.Int("index", index))
		return
	}

	job.Results[index] = &result
	job.ProcessedCount++

	if job.ProcessedCount == len(job.Titles) {
		job.Status = entity.JobStatusCompleted
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
}

func (s *jobStore) MarkFailed(id uuid.UUID, cause string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		s.logger.Warn("failure report for unknown job", zap.String("job_id", id.String()))
		return
	}
	if job.IsTerminal() {
		return
	}

	job.Status = entity.JobStatusFailed
	job.Error = cause
	now := time.Now().UTC()
	job.CompletedAt = &now
}

func (s *jobStore) AppendLog(id uuid.UUID, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Log = append(job.Log, line)
}

func (s *jobStore) DeleteExpired(now time.Time, retention time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, job := range s.jobs {
		if job.CompletedAt == nil {
			// Active jobs are never evicted; a stuck worker should surface
			// as a diagnosable stall, not silently vanish.
			continue
		}
		if now.Sub(*job.CompletedAt) > retention {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

func (s *jobStore) Stats() repository.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := repository.StoreStats{TotalCount: len(s.jobs)}
	for _, job := range s.jobs {
		if job.IsActive() {
			stats.ActiveCount++
		}
	}
	return stats
}
