package domain

import (
	"context"
	"io"
)

// TextExtractor turns raw document bytes into plain text
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

// ObjectStore defines the interface for binary blob storage
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (ObjectRef, error)
	Fetch(ctx context.Context, ref ObjectRef) ([]byte, error)
}

// ResumeRepository defines the interface for the resumes table
type ResumeRepository interface {
	Clear(ctx context.Context) error
	Create(ctx context.Context, filename string, url string) (*ResumeRecord, error)
	List(ctx context.Context) ([]ResumeRecord, error)
	Ping(ctx context.Context) error
}

// IngestionService runs keyword-filtered ingestion batches
type IngestionService interface {
	Ingest(ctx context.Context, files []UploadedFile, rawKeywords string) (*IngestionResult, error)
}

// ResumeService serves the listing query
type ResumeService interface {
	ListResumes(ctx context.Context) ([]ResumeRecord, error)
}

// HealthChecker represents a dependency health check.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthService verifies that every dependency is reachable.
type HealthService interface {
	Ready(ctx context.Context) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetCORSAllowedOrigins() []string

	GetRecordStore() string
	GetDatabaseDSN() string
	GetDatabaseHost() string
	GetDatabasePort() string
	GetDatabaseUser() string
	GetDatabasePassword() string
	GetDatabaseName() string

	GetObjectStore() string
	GetCloudName() string
	GetCloudAPIKey() string
	GetCloudAPISecret() string
	GetCloudEndpoint() string
	GetCloudRegion() string
	GetCloudPublicURL() string
	GetCloudFolder() string

	GetSupabaseURL() string
	GetSupabaseKey() string
}
