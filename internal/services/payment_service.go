package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type PaymentService interface {
	List(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error)
	GetByID(ctx context.Context, id int) (*models.Payment, error)
	Summary(ctx context.Context, filter models.PaymentFilter) (*models.PaymentSummary, error)
	Record(ctx context.Context, id int, req *RecordPaymentRequest) (*models.Payment, error)
}

// RecordPaymentRequest marks a payment as received. PaymentDate defaults to today.
type RecordPaymentRequest struct {
	Method      string      `json:"method"`
	PaymentDate models.Date `json:"payment_date"`
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	activity    ActivityService
	clock       clockwork.Clock
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, activity ActivityService, clock clockwork.Clock) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		activity:    activity,
		clock:       clock,
	}
}

// MatchesPayment ANDs the due date month filter with the status filter.
func MatchesPayment(payment *models.Payment, filter models.PaymentFilter) bool {
	if filter.Month != "" && filter.Month != "All" && payment.DueDate.MonthAbbrev() != filter.Month {
		return false
	}
	if filter.Status != "" && filter.Status != "All" && payment.Status != filter.Status {
		return false
	}
	return true
}

func (s *paymentService) List(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error) {
	if err := filter.Validate(); err != nil {
		return nil, common.NewFieldError("filter", err.Error())
	}

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Payment, 0, len(payments))
	for _, payment := range payments {
		if MatchesPayment(payment, filter) {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (s *paymentService) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

// Summary totals the payments selected by filter.
func (s *paymentService) Summary(ctx context.Context, filter models.PaymentFilter) (*models.PaymentSummary, error) {
	payments, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return SummarizePayments(payments), nil
}

func SummarizePayments(payments []*models.Payment) *models.PaymentSummary {
	summary := &models.PaymentSummary{}
	for _, payment := range payments {
		summary.TotalExpected += payment.Amount
		switch payment.Status {
		case models.PaymentRecordPaid:
			summary.TotalCollected += payment.Amount
			summary.PaidCount++
		case models.PaymentRecordPending:
			summary.PendingCount++
		case models.PaymentRecordOverdue:
			summary.OverdueCount++
		}
	}
	summary.Outstanding = summary.TotalExpected - summary.TotalCollected
	return summary
}

func (s *paymentService) Record(ctx context.Context, id int, req *RecordPaymentRequest) (*models.Payment, error) {
	method := strings.TrimSpace(req.Method)
	switch method {
	case models.PaymentMethodMpesa, models.PaymentMethodBankTransfer, models.PaymentMethodCash:
	default:
		return nil, common.NewFieldError("method", "must be one of: M-Pesa, Bank Transfer, Cash")
	}
	paidOn := req.PaymentDate
	if paidOn.IsZero() {
		paidOn = models.DateOf(s.clock.Now())
	}

	payment, err := s.paymentRepo.Mutate(ctx, id, func(p *models.Payment) {
		p.Status = models.PaymentRecordPaid
		p.Method = method
		p.PaymentDate = paidOn
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityPayment, "Payment Received",
		fmt.Sprintf("%s from %s via %s", common.FormatKES(payment.Amount), payment.Tenant, method))
	return payment, nil
}
