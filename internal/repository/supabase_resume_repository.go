package repository

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// SupabaseResumeRepository implements domain.ResumeRepository over PostgREST.
// The resumes table must exist with a bigint identity id column.
type SupabaseResumeRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseResumeRepository creates a new Supabase resume repository
func NewSupabaseResumeRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *SupabaseResumeRepository {
	return &SupabaseResumeRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

type supabaseResumeRow struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// table returns a fresh query builder. postgrest-go is not context aware, so
// a cancelled ctx is only honoured before the request starts.
func (r *SupabaseResumeRepository) table(ctx context.Context) (*postgrest.QueryBuilder, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, domain.ErrClientNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return client.From(resumesTable), nil
}

// Clear deletes every row. PostgREST refuses unfiltered deletes, hence the id filter.
func (r *SupabaseResumeRepository) Clear(ctx context.Context) error {
	q, err := r.table(ctx)
	if err != nil {
		return err
	}

	if _, _, err := q.Delete("minimal", "").Gte("id", "0").Execute(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", resumesTable, err)
	}
	return nil
}

func (r *SupabaseResumeRepository) Create(ctx context.Context, filename string, url string) (*domain.ResumeRecord, error) {
	q, err := r.table(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"filename": filename,
		"url":      url,
	}

	var rows []supabaseResumeRow
	if _, err := q.Insert(payload, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert into %s returned no rows", resumesTable)
	}

	return &domain.ResumeRecord{ID: rows[0].ID, Filename: rows[0].Filename, URL: rows[0].URL}, nil
}

func (r *SupabaseResumeRepository) List(ctx context.Context) ([]domain.ResumeRecord, error) {
	q, err := r.table(ctx)
	if err != nil {
		return nil, err
	}

	var rows []supabaseResumeRow
	_, err = q.Select("id, filename, url", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	records := make([]domain.ResumeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ResumeRecord{ID: row.ID, Filename: row.Filename, URL: row.URL})
	}
	r.logger.Debug("Listed resumes", "count", len(records))
	return records, nil
}

func (r *SupabaseResumeRepository) Ping(ctx context.Context) error {
	q, err := r.table(ctx)
	if err != nil {
		return err
	}

	if _, _, err := q.Select("id", "", false).Limit(1, "").Execute(); err != nil {
		return fmt.Errorf("failed to reach %s: %w", resumesTable, err)
	}
	return nil
}
