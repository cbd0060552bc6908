package supabase

import (
	"fmt"

	"resume-filter/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Client implements the domain.SupabaseClient interface
type Client struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewClient creates a new Supabase client instance. Call Initialize before use.
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{
		config: config,
		logger: logger,
	}
}

// DB returns the underlying client, nil until Initialize succeeds
func (s *Client) DB() *supabase.Client {
	return s.client
}

// Initialize establishes a connection to Supabase
func (s *Client) Initialize() error {
	if s.client != nil {
		return nil
	}

	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}
