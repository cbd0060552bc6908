package config

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"
	"resume-filter/internal/infra/mysql"
	infras3 "resume-filter/internal/infra/s3"
	"resume-filter/internal/infra/supabase"
	"resume-filter/internal/repository"
	"resume-filter/internal/service"
	"resume-filter/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	SupabaseClient   domain.SupabaseClient
	ResumeRepository domain.ResumeRepository
	ObjectStore      domain.ObjectStore
	IngestionService domain.IngestionService
	ResumeService    domain.ResumeService
	HealthService    domain.HealthService

	closers []func() error
}

// NewContainer reads the environment and wires the configured backends.
func NewContainer(ctx context.Context) (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())

	c := &Container{
		Config: config,
		Logger: appLogger,
	}
	if config.GetRecordStore() == RecordStoreSupabase || config.GetObjectStore() == ObjectStoreSupabase {
		client := supabase.NewClient(config, appLogger)
		if err := client.Initialize(); err != nil {
			return nil, err
		}
		c.SupabaseClient = client
	}

	if err := c.initRecordStore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.initObjectStore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	extractor := service.NewDocumentTextExtractor(appLogger)
	c.IngestionService = service.NewIngestionService(c.ObjectStore, c.ResumeRepository, extractor, config.GetCloudFolder(), appLogger)
	c.ResumeService = service.NewResumeService(c.ResumeRepository, appLogger)
	c.HealthService = service.NewHealthService(appLogger, service.NewRecordStoreChecker(c.ResumeRepository))

	appLogger.Info("Container initialized",
		"record_store", config.GetRecordStore(),
		"object_store", config.GetObjectStore(),
	)
	return c, nil
}

func (c *Container) initRecordStore(ctx context.Context) error {
	switch driver := c.Config.GetRecordStore(); driver {
	case RecordStoreMySQL:
		db, err := mysql.Connect(ctx, c.Config, c.Logger)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("mysql pool: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)

		repo := repository.NewMySQLResumeRepository(db, c.Logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		c.ResumeRepository = repo
	case RecordStoreSupabase:
		c.ResumeRepository = repository.NewSupabaseResumeRepository(c.SupabaseClient, c.Logger)
	default:
		return fmt.Errorf("%w: RECORD_STORE=%q", domain.ErrUnknownStoreDriver, driver)
	}
	return nil
}

func (c *Container) initObjectStore(ctx context.Context) error {
	switch driver := c.Config.GetObjectStore(); driver {
	case ObjectStoreS3:
		client, err := infras3.NewClient(ctx, c.Config)
		if err != nil {
			return err
		}
		c.ObjectStore = service.NewS3ObjectStore(client, c.Config.GetCloudName(), c.Config.GetCloudPublicURL(), c.Logger)
	case ObjectStoreSupabase:
		if c.Config.GetCloudName() == "" {
			return fmt.Errorf("CLOUD_NAME (bucket) must be provided")
		}
		c.ObjectStore = service.NewSupabaseObjectStore(c.SupabaseClient, c.Config.GetCloudName(), c.Logger)
	default:
		return fmt.Errorf("%w: OBJECT_STORE=%q", domain.ErrUnknownStoreDriver, driver)
	}
	return nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// Close releases database connections and flushes the logger.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s, ok := c.Logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	return firstErr
}
