package config

import (
	"os"
	"strconv"
	"strings"

	"resume-filter/internal/domain"
)

const (
	RecordStoreMySQL    = "mysql"
	RecordStoreSupabase = "supabase"

	ObjectStoreS3       = "s3"
	ObjectStoreSupabase = "supabase"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	MaxFileSize        int64
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	RecordStore string
	DBDSN       string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string

	ObjectStore    string
	CloudName      string
	CloudAPIKey    string
	CloudAPISecret string
	CloudEndpoint  string
	CloudRegion    string
	CloudPublicURL string
	CloudFolder    string

	SupabaseURL string
	SupabaseKey string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Most PaaS hosts provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "console"),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),

		RecordStore: strings.ToLower(getEnvOrDefault("RECORD_STORE", RecordStoreMySQL)),
		DBDSN:       getEnvOrDefault("DB_DSN", ""),
		DBHost:      getEnvOrDefault("DB_HOST", ""),
		DBPort:      getEnvOrDefault("DB_PORT", "3306"),
		DBUser:      getEnvOrDefault("DB_USER", ""),
		DBPass:      getEnvOrDefault("DB_PASS", ""),
		DBName:      getEnvOrDefault("DB_NAME", ""),

		ObjectStore:    strings.ToLower(getEnvOrDefault("OBJECT_STORE", ObjectStoreS3)),
		CloudName:      getEnvOrDefault("CLOUD_NAME", ""),
		CloudAPIKey:    getEnvOrDefault("CLOUD_API_KEY", ""),
		CloudAPISecret: getEnvOrDefault("CLOUD_API_SECRET", ""),
		CloudEndpoint:  getEnvOrDefault("CLOUD_ENDPOINT", ""),
		CloudRegion:    getEnvOrDefault("CLOUD_REGION", "auto"),
		CloudPublicURL: strings.TrimRight(getEnvOrDefault("CLOUD_PUBLIC_URL", ""), "/"),
		CloudFolder:    strings.Trim(getEnvOrDefault("CLOUD_FOLDER", "resumes"), "/"),

		SupabaseURL: getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey: getEnvOrDefault("SUPABASE_KEY", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the multipart memory budget in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log encoding (console or json)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetCORSAllowedOrigins returns the allowed CORS origins
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// GetRecordStore returns the record store driver
func (c *AppConfig) GetRecordStore() string {
	return c.RecordStore
}

func (c *AppConfig) GetDatabaseDSN() string      { return c.DBDSN }
func (c *AppConfig) GetDatabaseHost() string     { return c.DBHost }
func (c *AppConfig) GetDatabasePort() string     { return c.DBPort }
func (c *AppConfig) GetDatabaseUser() string     { return c.DBUser }
func (c *AppConfig) GetDatabasePassword() string { return c.DBPass }
func (c *AppConfig) GetDatabaseName() string     { return c.DBName }

// GetObjectStore returns the object store driver
func (c *AppConfig) GetObjectStore() string {
	return c.ObjectStore
}

// GetCloudName returns the bucket holding uploaded resumes
func (c *AppConfig) GetCloudName() string {
	return c.CloudName
}

func (c *AppConfig) GetCloudAPIKey() string    { return c.CloudAPIKey }
func (c *AppConfig) GetCloudAPISecret() string { return c.CloudAPISecret }
func (c *AppConfig) GetCloudEndpoint() string  { return c.CloudEndpoint }
func (c *AppConfig) GetCloudRegion() string    { return c.CloudRegion }
func (c *AppConfig) GetCloudPublicURL() string { return c.CloudPublicURL }
func (c *AppConfig) GetCloudFolder() string    { return c.CloudFolder }

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase service key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
