package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

// IngestionService runs one keyword-filtered batch at a time: stage every
// upload, clear the resumes table, then insert the files whose text matches.
type IngestionService struct {
	store     domain.ObjectStore
	repo      domain.ResumeRepository
	extractor domain.TextExtractor
	logger    domain.Logger
	folder    string

	// held for the whole batch so clear + inserts of two batches never interleave
	mu sync.Mutex
}

func NewIngestionService(
	store domain.ObjectStore,
	repo domain.ResumeRepository,
	extractor domain.TextExtractor,
	folder string,
	logger domain.Logger,
) *IngestionService {
	return &IngestionService{
		store:     store,
		repo:      repo,
		extractor: extractor,
		logger:    logger,
		folder:    strings.Trim(folder, "/"),
	}
}

// staged pairs an upload with the index of its outcome.
type staged struct {
	idx      int
	filename string
	ref      domain.ObjectRef
}

func (s *IngestionService) Ingest(ctx context.Context, files []domain.UploadedFile, rawKeywords string) (*domain.IngestionResult, error) {
	keywords, err := ParseKeywords(rawKeywords)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.ErrNoFilesProvided
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Starting ingestion batch", "files", len(files), "keywords", keywords)

	result := &domain.IngestionResult{
		Outcomes: make([]domain.FileOutcome, len(files)),
	}

	ready := make([]staged, 0, len(files))
	for i, file := range files {
		result.Outcomes[i].Filename = file.Filename

		ref, err := s.stage(ctx, file)
		if err != nil {
			s.fail(result, i, domain.StageUpload, err)
			continue
		}
		s.logger.Debug("Staged resume", "filename", file.Filename, "size", file.Size, "key", ref.Key)
		result.Outcomes[i].Ref = ref
		ready = append(ready, staged{idx: i, filename: file.Filename, ref: ref})
	}

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Error("Failed to clear resumes table, continuing", err)
	}

	for _, st := range ready {
		s.process(ctx, result, st, keywords)
	}

	s.logger.Info("Ingestion batch finished",
		"files", len(files),
		"inserted", result.InsertedCount,
		"failed", len(result.Failed()),
	)
	return result, nil
}

// stage copies the upload into the object store under a fresh key.
// The body is buffered so the store client gets a seekable reader; a body
// shorter or longer than the declared size is rejected.
func (s *IngestionService) stage(ctx context.Context, file domain.UploadedFile) (domain.ObjectRef, error) {
	rc, err := file.Open()
	if err != nil {
		return domain.ObjectRef{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.ObjectRef{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if file.Size > 0 && int64(len(data)) != file.Size {
		return domain.ObjectRef{}, fmt.Errorf("upload size mismatch: read %d of %d bytes", len(data), file.Size)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return s.store.Put(ctx, s.objectKey(file.Filename), bytes.NewReader(data), contentType)
}

func (s *IngestionService) objectKey(filename string) string {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	if s.folder == "" {
		return name
	}
	return path.Join(s.folder, name)
}

func (s *IngestionService) process(ctx context.Context, result *domain.IngestionResult, st staged, keywords []string) {
	data, err := s.store.Fetch(ctx, st.ref)
	if err != nil {
		s.fail(result, st.idx, domain.StageFetch, err)
		return
	}

	text, err := s.extractor.Extract(st.filename, data)
	if err != nil {
		s.fail(result, st.idx, domain.StageExtract, err)
		return
	}

	if !MatchesAny(text, keywords) {
		result.Outcomes[st.idx].Status = domain.OutcomeNotMatched
		s.logger.Debug("Resume did not match", "filename", st.filename)
		return
	}

	if _, err := s.repo.Create(ctx, st.filename, st.ref.URL); err != nil {
		s.fail(result, st.idx, domain.StagePersist, err)
		return
	}

	result.Outcomes[st.idx].Status = domain.OutcomeMatched
	result.InsertedCount++
	s.logger.Debug("Resume matched", "filename", st.filename, "url", st.ref.URL)
}

func (s *IngestionService) fail(result *domain.IngestionResult, idx int, stage domain.ProcessingStage, cause error) {
	out := &result.Outcomes[idx]
	out.Status = domain.OutcomeFailed
	out.Stage = stage
	out.Err = apperrors.NewProcessingError(fmt.Sprintf("%s failed for %s", stage, out.Filename), cause)
	s.logger.Error("Failed to process resume", cause, "filename", out.Filename, "stage", string(stage))
}
