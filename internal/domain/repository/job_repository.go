package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/naza-official/bart-one-shot-classification-service/internal/domain/entity"
)

// StoreStats summarizes the current contents of the job store
type StoreStats struct {
	ActiveCount int
	TotalCount  int
}

// JobRepository is the single source of truth for job state. Implementations
// must be safe for concurrent use; every read returns a snapshot, never the
// live record.
type JobRepository interface {
	// Create inserts a new queued job and returns a snapshot of it.
	Create(titles, categories []string) *entity.Job

	// Get returns a snapshot of the job, or nil if it is unknown or expired.
	Get(id uuid.UUID) *entity.Job

	// BeginProcessing transitions queued → processing and sets StartedAt.
	// No-op if the job is already processing or terminal.
	BeginProcessing(id uuid.UUID)

	// RecordResult writes the result slot for one title and increments the
	// processed count in a single atomic step. When the last title is
	// recorded the job transitions to completed. Late writes against unknown
	// or terminal jobs are logged no-ops.
	RecordResult(id uuid.UUID, index int, result entity.Result)

	// MarkFailed transitions the job to failed with a cause. Terminal; later
	// writes against the job are no-ops.
	MarkFailed(id uuid.UUID, cause string)

	// AppendLog attaches a worker log line to the job record.
	AppendLog(id uuid.UUID, line string)

	// DeleteExpired removes every terminal job whose CompletedAt is older
	// than the retention window and returns how many were removed. Active
	// jobs are never removed regardless of age.
	DeleteExpired(now time.Time, retention time.Duration) int

	// Stats reports active (queued or processing) and total retained jobs.
	Stats() StoreStats
}
