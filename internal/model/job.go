package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobState represents the stage a download job is currently in
type JobState string

const (
	// JobStateIdle means the job has been created but not started
	JobStateIdle JobState = "Idle"

	// JobStateFetchingMetadata means title/uploader/thumbnail are being resolved
	JobStateFetchingMetadata JobState = "FetchingMetadata"

	// JobStateDisplayingPreview means metadata has been handed to the UI
	JobStateDisplayingPreview JobState = "DisplayingPreview"

	// JobStateSelectingStream means a concrete stream is being picked
	JobStateSelectingStream JobState = "SelectingStream"

	// JobStateDownloading means bytes are being transferred
	JobStateDownloading JobState = "Downloading"

	// JobStateTagging means tags are being embedded (audio mode only)
	JobStateTagging JobState = "Tagging"

	// JobStateFinalizing means the artifact is being placed at its destination
	JobStateFinalizing JobState = "Finalizing"

	// JobStateDone means the job finished successfully
	JobStateDone JobState = "Done"

	// JobStateFailed means the job failed at some stage
	JobStateFailed JobState = "Failed"
)

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsTerminal returns true if the job reached a final state
func (s JobState) IsTerminal() bool {
	return s == JobStateDone || s == JobStateFailed
}

// DownloadJob is the transient state for one item's pipeline run. Exactly one
// job is active at a time; a playlist expands into sequential jobs, not a
// fan-out. Temporary files tracked here are removed when the job reaches a
// terminal state, success or failure alike.
type DownloadJob struct {
	ID            string
	SourceURL     string
	Mode          Mode
	State         JobState
	TempMediaPath string
	TempThumbPath string
	FinalPath     string
	Progress      float64 // 0.0 to 1.0
	LastError     string
	StartedAt     time.Time
	FinishedAt    time.Time
}

// NewDownloadJob creates a job for one item in the given mode
func NewDownloadJob(item Item, mode Mode) *DownloadJob {
	return &DownloadJob{
		ID:        generateJobID(),
		SourceURL: item.URL,
		Mode:      mode,
		State:     JobStateIdle,
		StartedAt: time.Now(),
	}
}

// SetProgress records a completion fraction. Values are clamped to [0, 1]
// and never move backwards, so reported progress stays monotonic even if the
// platform misreports the total size.
func (j *DownloadJob) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if fraction > j.Progress {
		j.Progress = fraction
	}
}

// Percent returns the progress as an integer percentage 0-100
func (j *DownloadJob) Percent() int {
	return int(j.Progress * 100)
}

// Finish moves the job into a terminal state and stamps the finish time
func (j *DownloadJob) Finish(state JobState) {
	j.State = state
	j.FinishedAt = time.Now()
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return fmt.Sprintf("job-%s", uuid.NewString())
}
