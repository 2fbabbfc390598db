package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the current state of a classification job
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Result holds the classification outcome for a single title
type Result struct {
	Title     string             `json:"title"`
	Predicted string             `json:"predicted"`
	Scores    map[string]float64 `json:"scores"`
}

// Job represents one batch classification request and its accumulated state.
// Titles and Categories are immutable after creation; Results is aligned by
// index with Titles and entries stay nil until the corresponding title has
// been classified.
type Job struct {
	ID             uuid.UUID  `json:"id"`
	Status         JobStatus  `json:"status"`
	Titles         []string   `json:"titles"`
	Categories     []string   `json:"categories"`
	Results        []*Result  `json:"results"`
	ProcessedCount int        `json:"processed_count"`
	Error          string     `json:"error,omitempty"`
	Log            []string   `json:"log,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// NewJob creates a queued Job for the given titles and categories
func NewJob(titles, categories []string) *Job {
	return &Job{
		ID:         uuid.New(),
		Status:     JobStatusQueued,
		Titles:     append([]string(nil), titles...),
		Categories: append([]string(nil), categories...),
		Results:    make([]*Result, len(titles)),
		CreatedAt:  time.Now().UTC(),
	}
}

// Total returns the number of titles in the batch
func (j *Job) Total() int {
	return len(j.Titles)
}

// Progress returns completion as a percentage in [0,100]
func (j *Job) Progress() float64 {
	if len(j.Titles) == 0 {
		return 0
	}
	return float64(j.ProcessedCount) / float64(len(j.Titles)) * 100
}

// Duration returns elapsed seconds since the job started: wall clock while
// still processing, StartedAt to CompletedAt once terminal. Returns nil if
// the job has not started.
func (j *Job) Duration() *float64 {
	if j.StartedAt == nil {
		return nil
	}
	var d float64
	if j.CompletedAt != nil {
		d = j.CompletedAt.Sub(*j.StartedAt).Seconds()
	} else {
		d = time.Since(*j.StartedAt).Seconds()
	}
	return &d
}

// IsTerminal returns true once the job is completed or failed
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// IsActive returns true while the job is queued or processing
func (j *Job) IsActive() bool {
	return j.Status == JobStatusQueued || j.Status == JobStatusProcessing
}

// Clone returns a deep copy of the job. The store hands out clones so that
// callers can never mutate the live record.
func (j *Job) Clone() *Job {
	c := *j
	c.Titles = append([]string(nil), j.Titles...)
	c.Categories = append([]string(nil), j.Categories...)
	c.Log = append([]string(nil), j.Log...)
	c.Results = make([]*Result, len(j.Results))
	for i, r := range j.Results {
		if r == nil {
			continue
		}
		rc := *r
		rc.Scores = make(map[string]float64, len(r.Scores))
		for k, v := range r.Scores {
			rc.Scores[k] = v
		}
		c.Results[i] = &rc
	}
	if j.StartedAt != nil {
		t := *j.StartedAt
		c.StartedAt = &t
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
