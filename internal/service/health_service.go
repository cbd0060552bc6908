package service

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"
)

// HealthService reports readiness by running each registered checker in order.
type HealthService struct {
	checkers []domain.HealthChecker
	logger   domain.Logger
}

func NewHealthService(logger domain.Logger, checkers ...domain.HealthChecker) *HealthService {
	return &HealthService{
		checkers: checkers,
		logger:   logger,
	}
}

// Ready returns the first failing check as an unavailable error.
func (s *HealthService) Ready(ctx context.Context) error {
	for _, c := range s.checkers {
		if err := c.Check(ctx); err != nil {
			s.logger.Warn("Readiness check failed", "check", c.Name(), "error", err)
			return apperrors.NewUnavailableError("Service not ready", fmt.Errorf("%s: %w", c.Name(), err))
		}
	}
	return nil
}

// RecordStoreChecker pings the resumes table backend.
type RecordStoreChecker struct {
	repo domain.ResumeRepository
}

func NewRecordStoreChecker(repo domain.ResumeRepository) *RecordStoreChecker {
	return &RecordStoreChecker{repo: repo}
}

func (c *RecordStoreChecker) Name() string { return "record_store" }

func (c *RecordStoreChecker) Check(ctx context.Context) error {
	return c.repo.Ping(ctx)
}
