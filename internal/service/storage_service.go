package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resume-filter/internal/domain"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseObjectStore keeps resume binaries in a Supabase Storage bucket.
// The bucket must be public for the returned URLs to be retrievable.
type SupabaseObjectStore struct {
	supabaseClient domain.SupabaseClient
	bucket         string
	logger         domain.Logger
}

func NewSupabaseObjectStore(
	supabaseClient domain.SupabaseClient,
	bucket string,
	logger domain.Logger,
) *SupabaseObjectStore {
	return &SupabaseObjectStore{
		supabaseClient: supabaseClient,
		bucket:         bucket,
		logger:         logger,
	}
}

func (s *SupabaseObjectStore) Put(
	ctx context.Context,
	key string,
	body io.Reader,
	contentType string,
) (domain.ObjectRef, error) {
	client := s.supabaseClient.DB()
	if client == nil {
		return domain.ObjectRef{}, domain.ErrClientNotReady
	}
	if err := ctx.Err(); err != nil {
		return domain.ObjectRef{}, err
	}

	upsert := false
	if _, err := client.Storage.UploadFile(s.bucket, key, body, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}); err != nil {
		return domain.ObjectRef{}, fmt.Errorf("storage upload failed: %w", err)
	}

	ref := domain.ObjectRef{
		Key: key,
		URL: client.Storage.GetPublicUrl(s.bucket, key).SignedURL,
	}
	s.logger.Debug("Stored object", "bucket", s.bucket, "key", key)
	return ref, nil
}

func (s *SupabaseObjectStore) Fetch(ctx context.Context, ref domain.ObjectRef) ([]byte, error) {
	client := s.supabaseClient.DB()
	if client == nil {
		return nil, domain.ErrClientNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := client.Storage.DownloadFile(s.bucket, ref.Key)
	if err != nil {
		if isStorageNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref.Key)
		}
		return nil, fmt.Errorf("storage download failed: %w", err)
	}
	return data, nil
}

// isStorageNotFound recognises a missing object. Supabase Storage reports the
// status as a string field that storage-go does not decode, so the message is
// checked as well.
func isStorageNotFound(err error) bool {
	var se *storage_go.StorageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == http.StatusNotFound || strings.Contains(strings.ToLower(se.Message), "not found")
}
