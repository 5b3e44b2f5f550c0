package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renti/internal/analytics"
	"renti/internal/caching"
	"renti/internal/common"
	"renti/internal/models"
)

func newTestReportService(t *testing.T) ReportService {
	t.Helper()
	repos := newTestRepositories()
	clock := newTestClock()
	cache := caching.NewMemoryCacheService(100)
	t.Cleanup(func() { cache.Close() })
	analyticsService := analytics.NewAnalyticsService(repos.Tenants, repos.Rooms, repos.Maintenance, cache, clock, time.Minute)
	return NewReportService(repos, analyticsService, clock)
}

func TestReportService_Catalogue(t *testing.T) {
	service := newTestReportService(t)

	catalogue := service.Catalogue(context.Background())
	require.Len(t, catalogue, 4)
	assert.Equal(t, "Monthly Revenue Report", catalogue[0].Title)
	assert.Equal(t, "February 2024", catalogue[0].Period)
	assert.Equal(t, "January - February 2024", catalogue[2].Period)
}

func TestReportService_Generate(t *testing.T) {
	service := newTestReportService(t)
	ctx := context.Background()

	revenue, err := service.Generate(ctx, models.ReportRevenue)
	require.NoError(t, err)
	assert.Equal(t, "Monthly Revenue Report", revenue.Title)
	assert.Equal(t, int64(135000), revenue.Data["total_collected"])
	assert.Equal(t, int64(145000), revenue.Data["total_upcoming"])

	occupancy, err := service.Generate(ctx, models.ReportOccupancy)
	require.NoError(t, err)
	assert.Equal(t, 8, occupancy.Data["total_rooms"])
	assert.Equal(t, []string{"2A", "4B"}, occupancy.Data["vacant_rooms"])
	assert.Equal(t, 75.0, occupancy.Data["occupancy_rate"])

	maintenance, err := service.Generate(ctx, models.ReportMaintenance)
	require.NoError(t, err)
	assert.Equal(t, 4, maintenance.Data["total"])
	assert.Equal(t, 25.0, maintenance.Data["completion_rate"])

	history, err := service.Generate(ctx, models.ReportPaymentHistory)
	require.NoError(t, err)
	payments := history.Data["payments"].([]*models.Payment)
	require.Len(t, payments, 5)
	assert.Equal(t, "David Kipchoge", payments[4].Tenant)

	_, err = service.Generate(ctx, "tax")
	_, ok := common.AsFieldError(err)
	assert.True(t, ok)
}

func TestReportService_Analytics(t *testing.T) {
	service := newTestReportService(t)

	series, err := service.Analytics(context.Background())
	require.NoError(t, err)
	require.Len(t, series.MonthlyRevenue, 12)
	assert.Equal(t, models.MonthlyRevenue{Month: "Jan", Revenue: 12000}, series.MonthlyRevenue[0])
	assert.Equal(t, models.MonthlyLatePayments{Month: "Dec", Late: 1}, series.LatePayments[11])
	assert.Equal(t, []models.Slice{{Name: "Occupied", Value: 75}, {Name: "Vacant", Value: 25}}, series.Occupancy)
}

func TestLandingService(t *testing.T) {
	service, err := NewLandingService()
	require.NoError(t, err)

	content := service.Content()
	assert.Equal(t, "Manage Rent & Tenants Effortlessly", content.Hero.Headline)
	assert.Len(t, content.Features, 4)
	assert.Len(t, content.HowItWorks, 3)
	assert.Equal(t, "01", content.HowItWorks[0].Step)
	assert.Len(t, content.Testimonials, 3)
	assert.Equal(t, "Get Started Free", content.CTA.Button)

	_, err = ParseLandingContent([]byte("features: []"))
	assert.Error(t, err)
}
