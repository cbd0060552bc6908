// Package s3 builds the S3-compatible client used for resume binaries
// (AWS S3, Cloudflare R2, MinIO).
package s3

import (
	"context"
	"fmt"

	"resume-filter/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewClient creates an S3 client from the cloud credentials in cfg.
func NewClient(ctx context.Context, cfg domain.Config) (*s3.Client, error) {
	if cfg.GetCloudName() == "" {
		return nil, fmt.Errorf("CLOUD_NAME (bucket) must be provided")
	}
	if cfg.GetCloudAPIKey() == "" || cfg.GetCloudAPISecret() == "" {
		return nil, fmt.Errorf("CLOUD_API_KEY and CLOUD_API_SECRET must be provided")
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.GetCloudAPIKey(), cfg.GetCloudAPISecret(), "")),
		config.WithRegion(cfg.GetCloudRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := cfg.GetCloudEndpoint()
	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
