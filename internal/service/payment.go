package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
	"github.com/kingrain94/rental-manager-api/pkg/utils"
)

// PaymentService records rent payments and reduces them into monthly revenue.
// Months are evaluated in the report location.
type PaymentService struct {
	notifier
	repo     repository.Repository
	location *time.Location
	logger   *logger.Logger
	now      func() time.Time
}

func NewPaymentService(repo repository.Repository, location *time.Location, logger *logger.Logger) *PaymentService {
	if location == nil {
		location = time.UTC
	}
	return &PaymentService{
		repo:     repo,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Record appends a payment, copying the tenant's current name and room number onto it.
func (s *PaymentService) Record(ctx context.Context, fields domain.PaymentFields) (*domain.Payment, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, fields.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tenant", fields.TenantID)
		}
		return nil, storeError("get tenant", err)
	}

	date := fields.Date
	if date.IsZero() {
		date = s.now()
	}

	payment := &domain.Payment{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
		RoomNumber: tenant.RoomNumber,
		Amount:     fields.Amount,
		Date:       date,
		Note:       fields.Note,
	}
	if err := s.repo.Payment().Create(ctx, payment); err != nil {
		return nil, storeError("record payment", err)
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("tenant_id", payment.TenantID),
		zap.Float64("amount", payment.Amount))
	s.changed(ctx, domain.CollectionPayments)
	return payment, nil
}

// History returns every payment, newest first.
func (s *PaymentService) History(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.Payment().List(ctx)
	if err != nil {
		return nil, storeError("list payments", err)
	}
	return payments, nil
}

// MonthlyReport sums the payments of one month. A zero year includes that month of every year.
func (s *PaymentService) MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error) {
	if err := domain.ValidateMonth(month); err != nil {
		return nil, err
	}
	if year < 0 {
		return nil, domain.NewValidationError("year", "must not be negative")
	}

	var (
		payments []domain.Payment
		err      error
	)
	if year == 0 {
		payments, err = s.repo.Payment().List(ctx)
	} else {
		start, end := utils.MonthBounds(year, time.Month(month), s.location)
		payments, err = s.repo.Payment().ListBetween(ctx, start, end)
	}
	if err != nil {
		return nil, storeError("list payments", err)
	}

	report := domain.FormatMonthlyReport(domain.InLocation(payments, s.location), month, year)
	return &report, nil
}
