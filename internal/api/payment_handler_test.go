package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPaymentService
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockPaymentService)
	handler := NewPaymentHandler(s.mockService, time.UTC)

	s.router.POST("/payments", handler.RecordPayment)
	s.router.GET("/payments", handler.ListPayments)
	s.router.GET("/payments/revenue", handler.GetRevenue)
}

func TestPaymentHandler(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) post(body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_Success() {
	// Arrange
	date := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	s.mockService.On("Record", mock.Anything, domain.PaymentFields{
		TenantID: "t1",
		Amount:   500000,
		Date:     date,
		Note:     "January",
	}).Return(&domain.Payment{ID: "p1", TenantID: "t1", TenantName: "Alice", Amount: 500000, Date: date}, nil)

	// Act
	w := s.post(dto.PaymentRequest{TenantID: "t1", Amount: 500000, Date: "2024-01-03", Note: "January"})

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.PaymentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Alice", response.TenantName)
	s.mockService.AssertExpectations(s.T())
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_BadDate() {
	w := s.post(dto.PaymentRequest{TenantID: "t1", Amount: 1, Date: "03/01/2024"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_UnknownTenant() {
	s.mockService.On("Record", mock.Anything, mock.AnythingOfType("domain.PaymentFields")).
		Return(nil, fmt.Errorf("tenant %q %w", "ghost", service.ErrNotFound))

	w := s.post(dto.PaymentRequest{TenantID: "ghost", Amount: 1})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PaymentHandlerTestSuite) TestListPayments() {
	s.mockService.On("History", mock.Anything).Return([]domain.Payment{{ID: "p2"}, {ID: "p1"}}, nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments", nil))

	s.Equal(http.StatusOK, w.Code)
	var response []dto.PaymentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal("p2", response[0].ID)
}

func (s *PaymentHandlerTestSuite) TestGetRevenue() {
	tests := []struct {
		name     string
		query    string
		month    int
		year     int
		expected int
	}{
		{name: "month only", query: "month=1", month: 1, year: 0, expected: http.StatusOK},
		{name: "month and year", query: "month=2&year=2024", month: 2, year: 2024, expected: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Arrange
			s.mockService.On("MonthlyReport", mock.Anything, tt.month, tt.year).Return(&domain.MonthlyReport{
				Month: tt.month,
				Year:  tt.year,
				Items: []domain.Payment{{ID: "p1", Amount: 700000}, {ID: "p2", Amount: 500000}},
				Total: 1200000,
			}, nil).Once()

			// Act
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/revenue?"+tt.query, nil))

			// Assert
			s.Equal(tt.expected, w.Code)
			var response dto.MonthlyReportResponse
			s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
			s.Equal(float64(1200000), response.Total)
			s.Equal(tt.month, response.Month)
		})
	}
}

func (s *PaymentHandlerTestSuite) TestGetRevenue_InvalidQuery() {
	for _, query := range []string{"", "month=jan", "month=1&year=last"} {
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/revenue?"+query, nil))

		s.Equal(http.StatusBadRequest, w.Code, query)
	}
	s.mockService.AssertNotCalled(s.T(), "MonthlyReport", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentHandlerTestSuite) TestGetRevenue_MonthOutOfRange() {
	s.mockService.On("MonthlyReport", mock.Anything, 13, 0).
		Return(nil, domain.NewValidationError("month", "must be between 1 and 12"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/revenue?month=13", nil))

	s.Equal(http.StatusBadRequest, w.Code)
}
