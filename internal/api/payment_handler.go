package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
)

//go:generate mockery --name PaymentService --output ../mocks
type PaymentService interface {
	Record(ctx context.Context, fields domain.PaymentFields) (*domain.Payment, error)
	History(ctx context.Context) ([]domain.Payment, error)
	MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error)
}

type PaymentHandler struct {
	*BaseHandler
	service  PaymentService
	location *time.Location
}

// NewPaymentHandler reads date-only payment dates in location, the revenue report time zone
func NewPaymentHandler(service PaymentService, location *time.Location) *PaymentHandler {
	if location == nil {
		location = time.UTC
	}
	return &PaymentHandler{service: service, location: location}
}

// RecordPayment godoc
// @Summary Record a payment
// @Description Record a rent payment. Tenant name and room are copied from the tenant at this moment.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.PaymentRequest true "Payment object"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error "Unknown tenant"
// @Failure 503 {object} dto.Error
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	fields, err := req.ToPaymentFields(h.location)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	payment, err := h.service.Record(h.RequestCtx(c), fields)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPayment(payment))
}

// ListPayments godoc
// @Summary Payment history
// @Description All payments, newest first
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.History(h.RequestCtx(c))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPayments(payments))
}

// GetRevenue godoc
// @Summary Monthly revenue
// @Description Payments of one month, newest first, with their total. Without year the month of every year is included.
// @Tags payments
// @Produce json
// @Param month query int true "Month 1-12"
// @Param year query int false "Year"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /payments/revenue [get]
func (h *PaymentHandler) GetRevenue(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.WriteError(c, domain.NewValidationError("month", "must be a number between 1 and 12"))
		return
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			h.WriteError(c, domain.NewValidationError("year", "must be a number"))
			return
		}
	}

	report, err := h.service.MonthlyReport(h.RequestCtx(c), month, year)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMonthlyReport(report))
}
