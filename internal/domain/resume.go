package domain

import (
	"io"
)

// ResumeRecord is a persisted reference to a resume that matched the latest keyword set.
type ResumeRecord struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// UploadedFile is the transient, request-scoped handle of one uploaded part.
// It is never persisted; see ObjectRef for the durable reference.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// ObjectRef identifies a binary held by the object store.
type ObjectRef struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// OutcomeStatus is the terminal state of one file in a batch.
type OutcomeStatus string

const (
	OutcomeMatched    OutcomeStatus = "matched"
	OutcomeNotMatched OutcomeStatus = "not_matched"
	OutcomeFailed     OutcomeStatus = "failed"
)

// ProcessingStage names the step a file failed in.
type ProcessingStage string

const (
	StageUpload  ProcessingStage = "upload"
	StageFetch   ProcessingStage = "fetch"
	StageExtract ProcessingStage = "extract"
	StagePersist ProcessingStage = "persist"
)

// FileOutcome records what happened to a single uploaded file.
type FileOutcome struct {
	Filename string          `json:"filename"`
	Ref      ObjectRef       `json:"ref"`
	Status   OutcomeStatus   `json:"status"`
	Stage    ProcessingStage `json:"stage,omitempty"`
	Err      error           `json:"-"`
}

// IngestionResult summarises one ingestion batch.
// Outcomes are in upload order.
type IngestionResult struct {
	InsertedCount int           `json:"inserted_count"`
	Outcomes      []FileOutcome `json:"outcomes"`
}

// Failed returns the outcomes that did not complete.
func (r *IngestionResult) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
