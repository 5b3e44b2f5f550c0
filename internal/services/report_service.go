package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"renti/internal/analytics"
	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type ReportService interface {
	Catalogue(ctx context.Context) []models.ReportDefinition
	Generate(ctx context.Context, kind models.ReportKind) (*models.Report, error)
	Analytics(ctx context.Context) (*models.ReportAnalytics, error)
}

type reportService struct {
	repos     *repositories.Repositories
	analytics *analytics.AnalyticsService
	clock     clockwork.Clock
}

func NewReportService(repos *repositories.Repositories, analyticsService *analytics.AnalyticsService, clock clockwork.Clock) ReportService {
	return &reportService{
		repos:     repos,
		analytics: analyticsService,
		clock:     clock,
	}
}

// Catalogue lists the available reports with periods relative to today.
func (s *reportService) Catalogue(ctx context.Context) []models.ReportDefinition {
	now := s.clock.Now()
	current := now.Format("January 2006")
	previous := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	history := fmt.Sprintf("%s - %s", previous.Format("January"), current)
	if previous.Year() != now.Year() {
		history = fmt.Sprintf("%s - %s", previous.Format("January 2006"), current)
	}

	return []models.ReportDefinition{
		{
			Kind:        models.ReportRevenue,
			Title:       "Monthly Revenue Report",
			Period:      current,
			Description: "Comprehensive revenue summary including payments, outstanding amounts, and trends.",
		},
		{
			Kind:        models.ReportOccupancy,
			Title:       "Occupancy Report",
			Period:      current,
			Description: "Overview of room occupancy rates, vacant units, and tenant status.",
		},
		{
			Kind:        models.ReportPaymentHistory,
			Title:       "Tenant Payment History",
			Period:      history,
			Description: "Detailed payment records for all tenants including payment dates and methods.",
		},
		{
			Kind:        models.ReportMaintenance,
			Title:       "Maintenance Summary",
			Period:      current,
			Description: "Summary of all maintenance requests, completion rates, and pending issues.",
		},
	}
}

func (s *reportService) Generate(ctx context.Context, kind models.ReportKind) (*models.Report, error) {
	var title string
	for _, definition := range s.Catalogue(ctx) {
		if definition.Kind == kind {
			title = definition.Title
		}
	}
	if title == "" {
		return nil, common.NewFieldError("kind", "must be one of: revenue, occupancy, payment-history, maintenance")
	}

	var (
		data map[string]any
		err  error
	)
	switch kind {
	case models.ReportRevenue:
		data, err = s.revenue(ctx)
	case models.ReportOccupancy:
		data, err = s.occupancy(ctx)
	case models.ReportPaymentHistory:
		data, err = s.paymentHistory(ctx)
	case models.ReportMaintenance:
		data, err = s.maintenance(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s report: %w", kind, err)
	}

	return &models.Report{
		Kind:        kind,
		Title:       title,
		GeneratedAt: s.clock.Now(),
		Data:        data,
	}, nil
}

func (s *reportService) Analytics(ctx context.Context) (*models.ReportAnalytics, error) {
	return s.analytics.ReportAnalytics(ctx)
}

func (s *reportService) revenue(ctx context.Context) (map[string]any, error) {
	payments, err := s.repos.Payments.List(ctx)
	if err != nil {
		return nil, err
	}
	overview, err := s.analytics.Overview(ctx)
	if err != nil {
		return nil, err
	}
	series, err := s.analytics.ReportAnalytics(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"payments":        SummarizePayments(payments),
		"total_collected": overview.TotalCollected,
		"total_upcoming":  overview.TotalUpcoming,
		"overdue_amount":  overview.OverdueAmount,
		"monthly_revenue": series.MonthlyRevenue,
	}, nil
}

func (s *reportService) occupancy(ctx context.Context) (map[string]any, error) {
	rooms, err := s.repos.Rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	tenants, err := s.repos.Tenants.List(ctx)
	if err != nil {
		return nil, err
	}

	vacant := []string{}
	for _, room := range rooms {
		if room.Status == models.RoomStatusVacant {
			vacant = append(vacant, room.Number)
		}
	}
	statuses := map[models.PaymentStatus]int{}
	for _, tenant := range tenants {
		statuses[tenant.Status]++
	}

	occupied := len(rooms) - len(vacant)
	return map[string]any{
		"total_rooms":     len(rooms),
		"occupied_rooms":  occupied,
		"vacant_rooms":    vacant,
		"occupancy_rate":  analytics.OccupancyRate(occupied, len(vacant)),
		"tenant_statuses": statuses,
	}, nil
}

func (s *reportService) paymentHistory(ctx context.Context) (map[string]any, error) {
	payments, err := s.repos.Payments.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].DueDate.After(payments[j].DueDate.Time)
	})
	return map[string]any{
		"payments": payments,
		"summary":  SummarizePayments(payments),
	}, nil
}

func (s *reportService) maintenance(ctx context.Context) (map[string]any, error) {
	requests, err := s.repos.Maintenance.List(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[models.MaintenanceStatus]int{}
	openByPriority := map[models.MaintenancePriority]int{}
	for _, request := range requests {
		byStatus[request.Status]++
		if request.Status != models.MaintenanceStatusCompleted {
			openByPriority[request.Priority]++
		}
	}

	completionRate := 0.0
	if len(requests) > 0 {
		completionRate = math.Round(float64(byStatus[models.MaintenanceStatusCompleted])/float64(len(requests))*1000) / 10
	}
	return map[string]any{
		"total":            len(requests),
		"by_status":        byStatus,
		"open_by_priority": openByPriority,
		"completion_rate":  completionRate,
	}, nil
}
