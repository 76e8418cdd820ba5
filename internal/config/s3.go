package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	AWS        AWSConfig
	BucketName string
}

// DefaultS3Config returns the revenue report archive bucket settings
func DefaultS3Config() *S3Config {
	return &S3Config{
		AWS:        loadAWSConfig("AWS_S3_ENDPOINT"),
		BucketName: getEnvWithDefault("S3_REPORT_BUCKET", "rental-revenue-reports"),
	}
}

// GetClient creates an S3 client, forcing path-style addressing behind a custom endpoint
func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.AWS.load(ctx, s3.ServiceID)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.AWS.Endpoint != "" {
			o.UsePathStyle = true
		}
	}), nil
}
