package repository

import (
	"testing"

	"resume-filter/internal/domain"

	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"
)

type MockLogger struct{}

func NewMockLogger() domain.Logger {
	return &MockLogger{}
}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

type testSupabaseClient struct {
	client *supabase.Client
}

func newTestSupabaseClient(t *testing.T, url string) *testSupabaseClient {
	t.Helper()
	client, err := supabase.NewClient(url, "test-key", nil)
	require.NoError(t, err)
	return &testSupabaseClient{client: client}
}

func (c *testSupabaseClient) Initialize() error    { return nil }
func (c *testSupabaseClient) DB() *supabase.Client { return c.client }

type nilSupabaseClient struct{}

func (nilSupabaseClient) Initialize() error    { return domain.ErrClientNotReady }
func (nilSupabaseClient) DB() *supabase.Client { return nil }
