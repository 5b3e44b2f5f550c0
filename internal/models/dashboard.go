package models

import "time"

// Overview is the KPI block at the top of the dashboard.
type Overview struct {
	TotalCollected        int64   `json:"total_collected"`
	TotalUpcoming         int64   `json:"total_upcoming"`
	Occupied              int     `json:"occupied"`
	Vacant                int     `json:"vacant"`
	OccupancyRate         float64 `json:"occupancy_rate"`
	PendingMaintenance    int     `json:"pending_maintenance"`
	InProgressMaintenance int     `json:"in_progress_maintenance"`
	PaidCount             int     `json:"paid_count"`
	TenantCount           int     `json:"tenant_count"`
	OverdueCount          int     `json:"overdue_count"`
	OverdueAmount         int64   `json:"overdue_amount"`
}

// MonthlyCollection is a point on the rent collection trend.
type MonthlyCollection struct {
	Month     string `json:"month"`
	Collected int64  `json:"collected"`
	Target    int64  `json:"target"`
}

// Slice is a named value for pie style breakdowns.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DashboardSnapshot bundles everything the overview tab renders.
type DashboardSnapshot struct {
	Overview       Overview            `json:"overview"`
	RentCollection []MonthlyCollection `json:"rent_collection"`
	Occupancy      []Slice             `json:"occupancy"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// GreetingAlert is a dismissible alert shown under the greeting.
type GreetingAlert struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Greeting struct {
	Text   string          `json:"text"`
	Name   string          `json:"name"`
	Alerts []GreetingAlert `json:"alerts"`
}

// FeedItem is one top bar notification.
type FeedItem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type NotificationFeed struct {
	Items              []FeedItem `json:"items"`
	LatePayments       int        `json:"late_payments"`
	LeaseAlerts        int        `json:"lease_alerts"`
	MaintenancePending int        `json:"maintenance_pending"`
	Total              int        `json:"total"`
}

// SearchResults is the top bar search response.
type SearchResults struct {
	Query   string       `json:"query"`
	Tenants []TenantView `json:"tenants"`
	Rooms   []Room       `json:"rooms"`
}
