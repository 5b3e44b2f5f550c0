package models

import "fmt"

type PaymentRecordStatus string

const (
	PaymentRecordPaid    PaymentRecordStatus = "Paid"
	PaymentRecordPending PaymentRecordStatus = "Pending"
	PaymentRecordOverdue PaymentRecordStatus = "Overdue"
)

func (s PaymentRecordStatus) Valid() bool {
	switch s {
	case PaymentRecordPaid, PaymentRecordPending, PaymentRecordOverdue:
		return true
	}
	return false
}

// Payment methods accepted when recording a payment.
const (
	PaymentMethodMpesa        = "M-Pesa"
	PaymentMethodBankTransfer = "Bank Transfer"
	PaymentMethodCash         = "Cash"
)

type Payment struct {
	ID          int                 `json:"id"`
	Tenant      string              `json:"tenant"`
	Room        string              `json:"room"`
	Amount      int64               `json:"amount"`
	DueDate     Date                `json:"due_date"`
	Status      PaymentRecordStatus `json:"status"`
	PaymentDate Date                `json:"payment_date"`
	Method      string              `json:"method"`
}

// PaymentFilter matches on the due date month and the payment status.
type PaymentFilter struct {
	Month  string              `query:"month"`
	Status PaymentRecordStatus `query:"status"`
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Validate rejects unknown months and statuses. "All" and empty disable a filter.
func (f PaymentFilter) Validate() error {
	if f.Month != "" && f.Month != "All" {
		known := false
		for _, m := range months {
			if m == f.Month {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("month must be All or a three letter month name")
		}
	}
	if f.Status != "" && f.Status != "All" && !f.Status.Valid() {
		return fmt.Errorf("status must be one of: All, Paid, Pending, Overdue")
	}
	return nil
}

// PaymentSummary backs the summary cards on the payments tab.
type PaymentSummary struct {
	TotalExpected  int64 `json:"total_expected"`
	TotalCollected int64 `json:"total_collected"`
	Outstanding    int64 `json:"outstanding"`
	PaidCount      int   `json:"paid_count"`
	PendingCount   int   `json:"pending_count"`
	OverdueCount   int   `json:"overdue_count"`
}
