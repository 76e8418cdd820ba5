package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

// PaymentRepository has no update or delete: the ledger is append-only.
type PaymentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRepository(writerDB, readerDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.Date = payment.Date.UTC()
	return r.writerDB.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0)
	if err := r.readerDB.WithContext(ctx).Order("date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0)
	if err := r.readerDB.WithContext(ctx).
		Where("date >= ? AND date < ?", start.UTC(), end.UTC()).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
