package service

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"
)

type ResumeService struct {
	repo   domain.ResumeRepository
	logger domain.Logger
}

func NewResumeService(repo domain.ResumeRepository, logger domain.Logger) *ResumeService {
	return &ResumeService{
		repo:   repo,
		logger: logger,
	}
}

// ListResumes returns every stored record in store order, never nil on success.
func (s *ResumeService) ListResumes(ctx context.Context) ([]domain.ResumeRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list resumes", err)
		return nil, apperrors.NewUnavailableError("Database error", fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err))
	}
	if records == nil {
		records = []domain.ResumeRecord{}
	}
	return records, nil
}
