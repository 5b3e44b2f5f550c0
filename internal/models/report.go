package models

import "time"

// ReportKind identifies a report in the catalogue.
type ReportKind string

const (
	ReportRevenue        ReportKind = "revenue"
	ReportOccupancy      ReportKind = "occupancy"
	ReportPaymentHistory ReportKind = "payment-history"
	ReportMaintenance    ReportKind = "maintenance"
)

type ReportDefinition struct {
	Kind        ReportKind `json:"kind"`
	Title       string     `json:"title"`
	Period      string     `json:"period"`
	Description string     `json:"description"`
}

// Report is a generated report body.
type Report struct {
	Kind        ReportKind     `json:"kind"`
	Title       string         `json:"title"`
	GeneratedAt time.Time      `json:"generated_at"`
	Data        map[string]any `json:"data"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type MonthlyLatePayments struct {
	Month string `json:"month"`
	Late  int    `json:"late"`
}

// ReportAnalytics holds the chart series on the reports tab.
type ReportAnalytics struct {
	MonthlyRevenue []MonthlyRevenue      `json:"monthly_revenue"`
	Occupancy      []Slice               `json:"occupancy"`
	LatePayments   []MonthlyLatePayments `json:"late_payments"`
}
