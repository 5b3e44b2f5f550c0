package analytics

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"renti/internal/caching"
	"renti/internal/models"
	"renti/internal/repositories"
)

const (
	// VacantRooms is the vacant count shown on the overview. It is fixed and
	// does not follow the rooms collection.
	VacantRooms = 2

	trendMonths      = 6
	trendBase        = 1_800_000
	trendGrowth      = 100_000
	trendLatePenalty = 50_000
)

// Static report series shown on the reports tab.
var (
	monthlyRevenue = []int64{12000, 13500, 12800, 14000, 15000, 14500, 15500, 16000, 15800, 16200, 17000, 17500}
	latePayments   = []int{3, 2, 4, 1, 2, 3, 2, 1, 2, 3, 2, 1}
)

// AnalyticsService computes the dashboard KPIs and chart series.
type AnalyticsService struct {
	tenantRepo      repositories.TenantRepository
	roomRepo        repositories.RoomRepository
	maintenanceRepo repositories.MaintenanceRepository
	cacheService    caching.CacheService
	clock           clockwork.Clock
	cacheTTL        time.Duration

	// instance scopes cache keys to this process; revisions restart at
	// zero on every boot and a shared redis must not serve stale snapshots.
	instance uuid.UUID
}

func NewAnalyticsService(tenantRepo repositories.TenantRepository, roomRepo repositories.RoomRepository, maintenanceRepo repositories.MaintenanceRepository, cacheService caching.CacheService, clock clockwork.Clock, cacheTTL time.Duration) *AnalyticsService {
	return &AnalyticsService{
		tenantRepo:      tenantRepo,
		roomRepo:        roomRepo,
		maintenanceRepo: maintenanceRepo,
		cacheService:    cacheService,
		clock:           clock,
		cacheTTL:        cacheTTL,
		instance:        uuid.New(),
	}
}

// ComputeOverview aggregates the KPI block from tenants and maintenance requests.
func ComputeOverview(tenants []*models.Tenant, requests []*models.MaintenanceRequest) models.Overview {
	overview := models.Overview{
		Occupied:    len(tenants),
		Vacant:      VacantRooms,
		TenantCount: len(tenants),
	}

	for _, tenant := range tenants {
		switch tenant.Status {
		case models.PaymentStatusPaid:
			overview.TotalCollected += tenant.Rent
			overview.PaidCount++
		case models.PaymentStatusDue:
			overview.TotalUpcoming += tenant.Rent
		case models.PaymentStatusOverdue:
			overview.TotalUpcoming += tenant.Rent
			overview.OverdueCount++
			overview.OverdueAmount += tenant.Rent
		}
	}
	overview.OccupancyRate = OccupancyRate(overview.Occupied, overview.Vacant)

	for _, request := range requests {
		switch request.Status {
		case models.MaintenanceStatusPending:
			overview.PendingMaintenance++
		case models.MaintenanceStatusInProgress:
			overview.InProgressMaintenance++
		}
	}
	return overview
}

// OccupancyRate is occupied/(occupied+vacant) as a percentage with one decimal.
func OccupancyRate(occupied, vacant int) float64 {
	total := occupied + vacant
	if total == 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(total)*1000) / 10
}

// RentCollectionTrend returns six months ending at now's month. Earlier
// months are a synthetic growth curve; the current month is collected.
func RentCollectionTrend(collected int64, now time.Time) []models.MonthlyCollection {
	trend := make([]models.MonthlyCollection, 0, trendMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)

	for i := 0; i < trendMonths; i++ {
		month := first.AddDate(0, i, 0).Format("Jan")
		grown := int64(trendBase + trendGrowth*i)
		point := models.MonthlyCollection{
			Month:     month,
			Collected: grown,
			Target:    grown + int64(trendLatePenalty*(trendMonths-2-i)),
		}
		switch i {
		case trendMonths - 2:
			point.Collected = grown - trendLatePenalty
			point.Target = grown
		case trendMonths - 1:
			point.Collected = collected
			point.Target = grown
		}
		trend = append(trend, point)
	}
	return trend
}

// OccupancySlices splits the overview into the occupied/vacant pie.
func OccupancySlices(overview models.Overview) []models.Slice {
	return []models.Slice{
		{Name: "Occupied", Value: float64(overview.Occupied)},
		{Name: "Vacant", Value: float64(overview.Vacant)},
	}
}

// OverdueBanner is the overview warning line, empty when nothing is overdue.
func OverdueBanner(overview models.Overview, formatAmount func(int64) string) string {
	if overview.OverdueCount == 0 {
		return ""
	}
	suffix := ""
	if overview.OverdueCount > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("%s overdue from %d tenant%s", formatAmount(overview.OverdueAmount), overview.OverdueCount, suffix)
}

func (a *AnalyticsService) Overview(ctx context.Context) (*models.Overview, error) {
	tenants, err := a.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := a.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	overview := ComputeOverview(tenants, requests)
	return &overview, nil
}

// Snapshot returns the overview tab payload, cached until tenants or
// maintenance change or the TTL runs out.
func (a *AnalyticsService) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	cacheKey := a.snapshotKey()

	var cached models.DashboardSnapshot
	found, err := caching.GetJSON(ctx, a.cacheService, cacheKey, &cached)
	if err != nil {
		log.Printf("WARN: failed to read cached dashboard snapshot: %v", err)
	}
	if found {
		return &cached, nil
	}

	overview, err := a.Overview(ctx)
	if err != nil {
		return nil, err
	}
	now := a.clock.Now()
	snapshot := &models.DashboardSnapshot{
		Overview:       *overview,
		RentCollection: RentCollectionTrend(overview.TotalCollected, now),
		Occupancy:      OccupancySlices(*overview),
		GeneratedAt:    now,
	}

	if err := caching.SetJSON(ctx, a.cacheService, cacheKey, snapshot, a.cacheTTL); err != nil {
		log.Printf("WARN: failed to cache dashboard snapshot: %v", err)
	}
	return snapshot, nil
}

// ReportAnalytics returns the reports tab chart series. Occupancy follows
// the rooms collection.
func (a *AnalyticsService) ReportAnalytics(ctx context.Context) (*models.ReportAnalytics, error) {
	rooms, err := a.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	occupied := 0
	for _, room := range rooms {
		if room.Status == models.RoomStatusOccupied {
			occupied++
		}
	}
	occupiedPct, vacantPct := 0.0, 0.0
	if len(rooms) > 0 {
		occupiedPct = OccupancyRate(occupied, len(rooms)-occupied)
		vacantPct = math.Round((100-occupiedPct)*10) / 10
	}

	result := &models.ReportAnalytics{
		Occupancy: []models.Slice{
			{Name: "Occupied", Value: occupiedPct},
			{Name: "Vacant", Value: vacantPct},
		},
	}
	for i, revenue := range monthlyRevenue {
		month := time.Month(i + 1).String()[:3]
		result.MonthlyRevenue = append(result.MonthlyRevenue, models.MonthlyRevenue{Month: month, Revenue: revenue})
		result.LatePayments = append(result.LatePayments, models.MonthlyLatePayments{Month: month, Late: latePayments[i]})
	}
	return result, nil
}

// CacheKey builds a key that changes whenever tenants, rooms or maintenance
// change, for caching anything derived from them.
func (a *AnalyticsService) CacheKey(name string) string {
	return fmt.Sprintf("%s%s:%s:t%d:r%d:m%d", caching.KeyPrefix, name, a.instance,
		a.tenantRepo.Revision(), a.roomRepo.Revision(), a.maintenanceRepo.Revision())
}

func (a *AnalyticsService) snapshotKey() string {
	return a.CacheKey("dashboard")
}
