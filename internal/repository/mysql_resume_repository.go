package repository

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"

	"gorm.io/gorm"
)

const resumesTable = "resumes"

// resumeRow is the gorm model of the resumes table.
type resumeRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Filename string `gorm:"column:filename;size:255;not null"`
	URL      string `gorm:"column:url;size:2048;not null"`
}

func (resumeRow) TableName() string {
	return resumesTable
}

func (r resumeRow) toDomain() domain.ResumeRecord {
	return domain.ResumeRecord{ID: r.ID, Filename: r.Filename, URL: r.URL}
}

// MySQLResumeRepository implements domain.ResumeRepository on top of gorm.
type MySQLResumeRepository struct {
	db     *gorm.DB
	logger domain.Logger
}

// NewMySQLResumeRepository creates a new MySQL resume repository
func NewMySQLResumeRepository(db *gorm.DB, logger domain.Logger) *MySQLResumeRepository {
	return &MySQLResumeRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the resumes table when it does not exist.
func (r *MySQLResumeRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&resumeRow{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", resumesTable, err)
	}
	return nil
}

// Clear empties the table and resets the id sequence.
func (r *MySQLResumeRepository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("TRUNCATE TABLE `" + resumesTable + "`").Error; err != nil {
		return fmt.Errorf("failed to truncate %s: %w", resumesTable, err)
	}
	return nil
}

func (r *MySQLResumeRepository) Create(ctx context.Context, filename string, url string) (*domain.ResumeRecord, error) {
	row := resumeRow{Filename: filename, URL: url}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to insert resume: %w", err)
	}

	rec := row.toDomain()
	return &rec, nil
}

func (r *MySQLResumeRepository) List(ctx context.Context) ([]domain.ResumeRecord, error) {
	var rows []resumeRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	records := make([]domain.ResumeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *MySQLResumeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql pool: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
