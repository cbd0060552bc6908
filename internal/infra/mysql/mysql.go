// Package mysql opens the gorm connection backing the resumes table.
package mysql

import (
	"context"
	"fmt"
	"net"
	"time"

	"resume-filter/internal/domain"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// BuildDSN returns the configured DSN, or assembles one from host/user/password/name.
func BuildDSN(cfg domain.Config) (string, error) {
	if dsn := cfg.GetDatabaseDSN(); dsn != "" {
		return dsn, nil
	}
	if cfg.GetDatabaseHost() == "" || cfg.GetDatabaseName() == "" {
		return "", fmt.Errorf("DB_HOST and DB_NAME (or DB_DSN) must be provided")
	}

	dc := mysqldriver.NewConfig()
	dc.User = cfg.GetDatabaseUser()
	dc.Passwd = cfg.GetDatabasePassword()
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.GetDatabaseHost(), cfg.GetDatabasePort())
	dc.DBName = cfg.GetDatabaseName()
	dc.ParseTime = true
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN(), nil
}

// Connect opens a gorm pool and pings it to ensure connectivity.
func Connect(ctx context.Context, cfg domain.Config, logger domain.Logger) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	logger.Info("Connected to MySQL", "addr", cfg.GetDatabaseHost(), "database", cfg.GetDatabaseName())
	return db, nil
}
