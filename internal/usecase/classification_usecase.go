package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/entity"
	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/repository"
	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/service"
)

// Error definitions for the classification usecase
var (
	ErrJobNotFound           = errors.New("job not found")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrBatchTooLarge         = errors.New("batch exceeds maximum size")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

// ResultCache caches serialized single-classification results. A nil cache
// disables caching.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// ClassifyOutput is the response for a synchronous classification
type ClassifyOutput struct {
	Title      string             `json:"title"`
	Categories []string           `json:"categories"`
	Predicted  string             `json:"predicted"`
	Scores     map[string]float64 `json:"scores"`
}

// BatchOutput is the immediate response for a batch submission
type BatchOutput struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// JobStatusOutput is the status view of a job. Progress is derived from the
// processed count at read time.
type JobStatusOutput struct {
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	Progress    float64    `json:"progress"`
	Total       int        `json:"total"`
	Categories  []string   `json:"categories"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// JobResultsOutput is the results view of a job. Results holds one fully
// populated entry per processed title, so it is shorter than Total while the
// job is still running.
type JobResultsOutput struct {
	JobID      string           `json:"job_id"`
	Results    []*entity.Result `json:"results"`
	Total      int              `json:"total"`
	Categories []string         `json:"categories"`
}

// JobLogOutput is the worker log view of a job
type JobLogOutput struct {
	JobID string `json:"job_id"`
	Log   string `json:"log"`
}

// HealthOutput reports job store occupancy
type HealthOutput struct {
	Status     string `json:"status"`
	ActiveJobs int    `json:"active_jobs"`
	TotalJobs  int    `json:"total_jobs"`
}

// ClassificationUsecase defines the business logic for single and batch
// classification
type ClassificationUsecase interface {
	Classify(ctx context.Context, title string, categories []string) (*ClassifyOutput, error)
	SubmitBatch(titles, categories []string) (*BatchOutput, error)
	GetStatus(id uuid.UUID) (*JobStatusOutput, error)
	GetResults(id uuid.UUID) (*JobResultsOutput, error)
	GetLog(id uuid.UUID) (*JobLogOutput, error)
	Health() *HealthOutput
}

type classificationUsecase struct {
	store      repository.JobRepository
	scheduler  *BatchScheduler
	classifier service.Classifier
	cache      ResultCache
	maxBatch   int
	logger     *zap.Logger
}

// NewClassificationUsecase creates the classification usecase. Cache may be
// nil, in which case every synchronous classify hits the model.
func NewClassificationUsecase(
	store repository.JobRepository,
	scheduler *BatchScheduler,
	classifier service.Classifier,
	cache ResultCache,
	maxBatch int,
	logger *zap.Logger,
) ClassificationUsecase {
	return &classificationUsecase{
		store:      store,
		scheduler:  scheduler,
		classifier: classifier,
		cache:      cache,
		maxBatch:   maxBatch,
		logger:     logger,
	}
}

func (u *classificationUsecase) Classify(ctx context.Context, title string, categories []string) (*ClassifyOutput, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: categories are required", ErrInvalidRequest)
	}

	key := cacheKey(title, categories)
	if u.cache != nil {
		if payload, err := u.cache.Get(ctx, key); err != nil {
			u.logger.Warn("cache read failed", zap.Error(err))
		} else if payload != nil {
			var out ClassifyOutput
			if err := json.Unmarshal(payload, &out); err == nil {
				return &out, nil
			}
			u.logger.Warn("dropping malformed cache entry", zap.String("key", key))
		}
	}

	scores, err := u.classifier.Classify(ctx, title, categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	out := &ClassifyOutput{
		Title:      title,
		Categories: categories,
		Predicted:  service.TopLabel(categories, scores),
		Scores:     scores,
	}

	if u.cache != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := u.cache.Set(ctx, key, payload); err != nil {
				u.logger.Warn("cache write failed", zap.Error(err))
			}
		}
	}

	return out, nil
}

func (u *classificationUsecase) SubmitBatch(titles, categories []string) (*BatchOutput, error) {
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: titles are required", ErrInvalidRequest)
	}
	if len(titles) > u.maxBatch {
		return nil, fmt.Errorf("%w: got %d titles, maximum is %d", ErrBatchTooLarge, len(titles), u.maxBatch)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: categories are required", ErrInvalidRequest)
	}

	job := u.scheduler.Submit(titles, categories)

	return &BatchOutput{
		JobID:  job.ID.String(),
		Status: string(job.Status),
		Total:  job.Total(),
	}, nil
}

func (u *classificationUsecase) GetStatus(id uuid.UUID) (*JobStatusOutput, error) {
	job := u.store.Get(id)
	if job == nil {
		return nil, ErrJobNotFound
	}

	return &JobStatusOutput{
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt,
		Progress:    job.Progress(),
		Total:       job.Total(),
		Categories:  job.Categories,
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
		Duration:    job.Duration(),
		Error:       job.Error,
	}, nil
}

func (u *classificationUsecase) GetResults(id uuid.UUID) (*JobResultsOutput, error) {
	job := u.store.Get(id)
	if job == nil {
		return nil, ErrJobNotFound
	}

	// Slots beyond ProcessedCount are still nil; only hand out the fully
	// populated prefix.
	results := job.Results[:job.ProcessedCount]

	return &JobResultsOutput{
		JobID:      job.ID.String(),
		Results:    results,
		Total:      job.Total(),
		Categories: job.Categories,
	}, nil
}

func (u *classificationUsecase) GetLog(id uuid.UUID) (*JobLogOutput, error) {
	job := u.store.Get(id)
	if job == nil {
		return nil, ErrJobNotFound
	}

	return &JobLogOutput{
		JobID: job.ID.String(),
		Log:   strings.Join(job.Log, "\n"),
	}, nil
}

func (u *classificationUsecase) Health() *HealthOutput {
	stats := u.store.Stats()
	return &HealthOutput{
		Status:     "healthy",
		ActiveJobs: stats.ActiveCount,
		TotalJobs:  stats.TotalCount,
	}
}

func cacheKey(title string, categories []string) string {
	h := sha256.New()
	h.Write([]byte(title))
	for _, c := range categories {
		h.Write([]byte{0})
		h.Write([]byte(c))
	}
	return "classify:" + hex.EncodeToString(h.Sum(nil))
}
