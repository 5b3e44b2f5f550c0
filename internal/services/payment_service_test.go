package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	activity *MockActivityService
	service  PaymentService
	ctx      context.Context
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	repos := newTestRepositories()
	suite.activity = new(MockActivityService)
	suite.activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.service = NewPaymentService(repos.Payments, suite.activity, newTestClock())
	suite.ctx = context.Background()
}

func (suite *PaymentServiceTestSuite) TestList_Filters() {
	tests := []struct {
		name     string
		filter   models.PaymentFilter
		expected int
	}{
		{"no filter", models.PaymentFilter{}, 5},
		{"all month all status", models.PaymentFilter{Month: "All", Status: "All"}, 5},
		{"february", models.PaymentFilter{Month: "Feb"}, 4},
		{"january", models.PaymentFilter{Month: "Jan"}, 1},
		{"overdue", models.PaymentFilter{Status: models.PaymentRecordOverdue}, 2},
		{"february and overdue", models.PaymentFilter{Month: "Feb", Status: models.PaymentRecordOverdue}, 1},
		{"march", models.PaymentFilter{Month: "Mar"}, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			payments, err := suite.service.List(suite.ctx, tt.filter)
			suite.NoError(err)
			suite.Len(payments, tt.expected)
		})
	}
}

func (suite *PaymentServiceTestSuite) TestList_RejectsUnknownFilter() {
	_, err := suite.service.List(suite.ctx, models.PaymentFilter{Month: "February"})
	_, ok := common.AsFieldError(err)
	suite.True(ok)

	_, err = suite.service.List(suite.ctx, models.PaymentFilter{Status: "Due"})
	_, ok = common.AsFieldError(err)
	suite.True(ok)
}

func (suite *PaymentServiceTestSuite) TestSummary() {
	summary, err := suite.service.Summary(suite.ctx, models.PaymentFilter{})
	suite.NoError(err)
	suite.Equal(&models.PaymentSummary{
		TotalExpected:  240000,
		TotalCollected: 90000,
		Outstanding:    150000,
		PaidCount:      2,
		PendingCount:   1,
		OverdueCount:   2,
	}, summary)
}

func (suite *PaymentServiceTestSuite) TestRecord() {
	payment, err := suite.service.Record(suite.ctx, 3, &RecordPaymentRequest{Method: models.PaymentMethodCash})
	suite.NoError(err)
	suite.Equal(models.PaymentRecordPaid, payment.Status)
	suite.Equal(models.PaymentMethodCash, payment.Method)
	suite.Equal("2024-02-14", payment.PaymentDate.String())
	suite.activity.AssertCalled(suite.T(), "Record", mock.Anything, models.ActivityPayment, "Payment Received", "KES 50,000 from Carol Kipchoge via Cash")
}

func (suite *PaymentServiceTestSuite) TestRecord_Errors() {
	_, err := suite.service.Record(suite.ctx, 3, &RecordPaymentRequest{Method: "Cheque"})
	_, ok := common.AsFieldError(err)
	suite.True(ok)

	_, err = suite.service.Record(suite.ctx, 42, &RecordPaymentRequest{Method: models.PaymentMethodMpesa})
	suite.True(errors.Is(err, repositories.ErrNotFound))
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
