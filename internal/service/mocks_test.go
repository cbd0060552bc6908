package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"resume-filter/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// MockLogger discards everything.
type MockLogger struct{}

func NewMockLogger() domain.Logger {
	return &MockLogger{}
}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

// MockObjectStore keeps objects in memory.
type MockObjectStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	putErr   map[string]error // keyed by content
	fetchErr error
	puts     int
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		objects: make(map[string][]byte),
		putErr:  make(map[string]error),
	}
}

func (m *MockObjectStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (domain.ObjectRef, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return domain.ObjectRef{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.putErr[string(data)]; ok {
		return domain.ObjectRef{}, err
	}
	m.puts++
	m.objects[key] = data
	return domain.ObjectRef{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (m *MockObjectStore) Fetch(ctx context.Context, ref domain.ObjectRef) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	data, ok := m.objects[ref.Key]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return data, nil
}

// MockResumeRepository is an in-memory resumes table.
type MockResumeRepository struct {
	mu        sync.Mutex
	records   []domain.ResumeRecord
	nextID    int64
	clearErr  error
	createErr map[string]error // keyed by filename
	listErr   error
	pingErr   error
	clears    int
}

func NewMockResumeRepository() *MockResumeRepository {
	return &MockResumeRepository{
		nextID:    1,
		createErr: make(map[string]error),
	}
}

func (m *MockResumeRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.records = nil
	m.nextID = 1
	return nil
}

func (m *MockResumeRepository) Create(ctx context.Context, filename string, url string) (*domain.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.createErr[filename]; ok {
		return nil, err
	}
	rec := domain.ResumeRecord{ID: m.nextID, Filename: filename, URL: url}
	m.nextID++
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *MockResumeRepository) List(ctx context.Context) ([]domain.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.ResumeRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MockResumeRepository) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *MockResumeRepository) filenames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.records))
	for _, r := range m.records {
		names = append(names, r.Filename)
	}
	return names
}

// MockTextExtractor treats file bytes as their own text, unless told otherwise.
type MockTextExtractor struct {
	errs map[string]error // keyed by content
}

func NewMockTextExtractor() *MockTextExtractor {
	return &MockTextExtractor{errs: make(map[string]error)}
}

func (m *MockTextExtractor) Extract(filename string, data []byte) (string, error) {
	if err, ok := m.errs[string(data)]; ok {
		return "", err
	}
	return string(data), nil
}

// uploaded builds an in-memory upload.
func uploaded(name, content string) domain.UploadedFile {
	return domain.UploadedFile{
		Filename:    name,
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
	}
}

func unreadable(name string) domain.UploadedFile {
	return domain.UploadedFile{
		Filename: name,
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("multipart part vanished")
		},
	}
}

// testSupabaseClient points a real supabase client at a test server.
type testSupabaseClient struct {
	client *supabase.Client
}

func newTestSupabaseClient(url string) (*testSupabaseClient, error) {
	client, err := supabase.NewClient(url, "test-key", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create test client: %w", err)
	}
	return &testSupabaseClient{client: client}, nil
}

func (c *testSupabaseClient) Initialize() error    { return nil }
func (c *testSupabaseClient) DB() *supabase.Client { return c.client }

type nilSupabaseClient struct{}

func (nilSupabaseClient) Initialize() error    { return domain.ErrClientNotReady }
func (nilSupabaseClient) DB() *supabase.Client { return nil }
