package models

import "fmt"

// PaymentStatus is the rent status shown against a tenant.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusDue     PaymentStatus = "Due"
	PaymentStatusOverdue PaymentStatus = "Overdue"
)

// Valid reports whether s is one of the known tenant payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusDue, PaymentStatusOverdue:
		return true
	}
	return false
}

// Toggled flips Paid to Due and anything else to Paid.
func (s PaymentStatus) Toggled() PaymentStatus {
	if s == PaymentStatusPaid {
		return PaymentStatusDue
	}
	return PaymentStatusPaid
}

// Lease status labels shown on the tenants tab.
const (
	LeaseLabelActive       = "Active"
	LeaseLabelExpiringSoon = "Lease Expiring Soon"
)

type Tenant struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	Room        string        `json:"room"`
	Rent        int64         `json:"rent"`
	Status      PaymentStatus `json:"status"`
	LastPayment Date          `json:"last_payment"`
	MoveInDate  Date          `json:"move_in_date"`
	LeaseExpiry Date          `json:"lease_expiry"`
}

// TenantView is a tenant with its derived lease label.
type TenantView struct {
	Tenant
	LeaseStatus string `json:"lease_status"`
}

// TenantFilter narrows a tenant listing.
type TenantFilter struct {
	Search string        `query:"search"`
	Status PaymentStatus `query:"status"`
}

// ValidateStatus returns an error for unknown statuses; empty and "All" pass.
func (f TenantFilter) ValidateStatus() error {
	if f.Status == "" || f.Status == "All" || f.Status.Valid() {
		return nil
	}
	return fmt.Errorf("status must be one of: All, Paid, Due, Overdue")
}
