package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"resume-filter/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by S3ObjectStore.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3ObjectStore keeps resume binaries in an S3-compatible bucket (S3, R2, MinIO).
type S3ObjectStore struct {
	client    S3API
	bucket    string
	publicURL string
	logger    domain.Logger
}

// NewS3ObjectStore creates an object store. publicURL is the base under which
// keys are publicly reachable; when empty, URLs use the s3:// scheme.
func NewS3ObjectStore(client S3API, bucket, publicURL string, logger domain.Logger) *S3ObjectStore {
	return &S3ObjectStore{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
		logger:    logger,
	}
}

func (s *S3ObjectStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (domain.ObjectRef, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return domain.ObjectRef{}, fmt.Errorf("failed to put object: %w", err)
	}

	s.logger.Debug("Stored object", "bucket", s.bucket, "key", key)
	return domain.ObjectRef{Key: key, URL: s.objectURL(key)}, nil
}

func (s *S3ObjectStore) Fetch(ctx context.Context, ref domain.ObjectRef) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref.Key)
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

func (s *S3ObjectStore) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key)
}
