package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSConfig struct {
	AWS               AWSConfig
	IndexQueueURL     string
	ReconcileQueueURL string
	ArchiveQueueURL   string
}

func DefaultSQSConfig() *SQSConfig {
	return &SQSConfig{
		AWS:               loadAWSConfig("AWS_SQS_ENDPOINT"),
		IndexQueueURL:     getEnvWithDefault("AWS_SQS_INDEX_QUEUE_URL", "http://localhost:4566/000000000000/rental-index-queue"),
		ReconcileQueueURL: getEnvWithDefault("AWS_SQS_RECONCILE_QUEUE_URL", "http://localhost:4566/000000000000/rental-reconcile-queue"),
		ArchiveQueueURL:   getEnvWithDefault("AWS_SQS_ARCHIVE_QUEUE_URL", "http://localhost:4566/000000000000/rental-archive-queue"),
	}
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.AWS.load(ctx, sqs.ServiceID)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(cfg), nil
}
