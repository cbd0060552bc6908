package domain

import (
	"encoding/json"
	"errors"
	"testing"

	apperrors "resume-filter/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionResult_Failed(t *testing.T) {
	result := &IngestionResult{
		InsertedCount: 1,
		Outcomes: []FileOutcome{
			{Filename: "a.pdf", Status: OutcomeMatched},
			{Filename: "b.pdf", Status: OutcomeFailed, Stage: StageExtract, Err: errors.New("bad xref")},
			{Filename: "c.pdf", Status: OutcomeNotMatched},
			{Filename: "d.pdf", Status: OutcomeFailed, Stage: StageUpload},
		},
	}

	failed := result.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "b.pdf", failed[0].Filename)
	assert.Equal(t, "d.pdf", failed[1].Filename)

	assert.Empty(t, (&IngestionResult{}).Failed())
}

func TestResumeRecord_JSON(t *testing.T) {
	data, err := json.Marshal(ResumeRecord{ID: 3, Filename: "cv.pdf", URL: "https://cdn.test/cv.pdf"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"filename":"cv.pdf","url":"https://cdn.test/cv.pdf"}`, string(data))
}

func TestFileOutcome_JSONOmitsError(t *testing.T) {
	data, err := json.Marshal(FileOutcome{Filename: "a.pdf", Status: OutcomeFailed, Stage: StageFetch, Err: errors.New("secret dsn")})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"stage":"fetch"`)
}

func TestValidationErrors(t *testing.T) {
	for err, msg := range map[error]string{
		ErrNoKeywordsProvided: "No keywords provided",
		ErrInvalidKeywords:    "Invalid keywords",
		ErrNoFilesProvided:    "No files uploaded",
	} {
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, msg, appErr.Message)
		assert.Equal(t, 400, appErr.StatusCode)
	}
}
