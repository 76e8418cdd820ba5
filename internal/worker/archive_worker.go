package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

//go:generate mockery --name ReportSource --output ../mocks
type ReportSource interface {
	MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error)
}

//go:generate mockery --name ObjectStore --output ../mocks
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ArchiveWorker writes closed monthly revenue reports to S3
type ArchiveWorker struct {
	*poller
	reports ReportSource
	store   ObjectStore
	bucket  string
	logger  *logger.Logger
}

type reportArchive struct {
	ArchivedAt   time.Time                 `json:"archived_at"`
	PaymentCount int                       `json:"payment_count"`
	Report       dto.MonthlyReportResponse `json:"report"`
}

func NewArchiveWorker(
	mq MessageQueue,
	queueURL string,
	reports ReportSource,
	store ObjectStore,
	bucket string,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ArchiveWorker {
	w := &ArchiveWorker{
		reports: reports,
		store:   store,
		bucket:  bucket,
		logger:  logger,
	}
	w.poller = newPoller("Archive", mq, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *ArchiveWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeReportArchive {
		return poison("unknown message type: %s", msg.Type)
	}
	if msg.Year <= 0 {
		return poison("archive message for month %d has no year", msg.Month)
	}
	if msg.Month < 1 || msg.Month > 12 {
		return poison("archive message for %04d has month %d", msg.Year, msg.Month)
	}

	w.logger.Infof("Processing archive message for %04d-%02d", msg.Year, msg.Month)

	report, err := w.reports.MonthlyReport(ctx, msg.Month, msg.Year)
	if errors.Is(err, domain.ErrValidation) {
		return poison("invalid report period %04d-%02d: %v", msg.Year, msg.Month, err)
	}
	if err != nil {
		return fmt.Errorf("failed to build report for %04d-%02d: %w", msg.Year, msg.Month, err)
	}

	return w.archiveReport(ctx, report, msg.Year, msg.Month)
}

func (w *ArchiveWorker) archiveReport(ctx context.Context, report *domain.MonthlyReport, year, month int) error {
	key := domain.ArchiveKey(year, month)
	archivedAt := time.Now().UTC()

	body, err := json.MarshalIndent(reportArchive{
		ArchivedAt:   archivedAt,
		PaymentCount: len(report.Items),
		Report:       dto.FromMonthlyReport(report),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	_, err = w.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"archived-at":   archivedAt.Format(time.RFC3339),
			"payment-count": strconv.Itoa(len(report.Items)),
			"total":         strconv.FormatFloat(report.Total, 'f', -1, 64),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to S3: %w", err)
	}

	w.logger.Infof("Successfully uploaded report to S3: s3://%s/%s", w.bucket, key)
	return nil
}
