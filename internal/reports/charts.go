package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"renti/internal/analytics"
	"renti/internal/caching"
	"renti/internal/models"
)

const chartHeight = "360px"

// Chart names.
const (
	ChartRentCollection = "rent-collection"
	ChartMonthlyRevenue = "monthly-revenue"
	ChartOccupancy      = "occupancy"
	ChartLatePayments   = "late-payments"
)

// ErrUnknownChart is returned for a chart name with no renderer.
var ErrUnknownChart = errors.New("unknown chart")

// ChartNames lists every chart the renderer can draw.
var ChartNames = []string{ChartRentCollection, ChartMonthlyRevenue, ChartOccupancy, ChartLatePayments}

// ChartRenderer draws dashboard charts as standalone HTML pages.
type ChartRenderer struct {
	analytics *analytics.AnalyticsService
	cache     caching.CacheService
	ttl       time.Duration
}

func NewChartRenderer(analyticsService *analytics.AnalyticsService, cache caching.CacheService, ttl time.Duration) *ChartRenderer {
	return &ChartRenderer{analytics: analyticsService, cache: cache, ttl: ttl}
}

// Render returns the HTML for name, from cache while the underlying data
// has not changed.
func (r *ChartRenderer) Render(ctx context.Context, name string) (string, error) {
	key := r.analytics.CacheKey("chart:" + name)
	if cached, found, err := r.cache.Get(ctx, key); err != nil {
		log.Printf("WARN: failed to read cached chart %s: %v", name, err)
	} else if found {
		return string(cached), nil
	}

	html, err := r.render(ctx, name)
	if err != nil {
		return "", err
	}
	if err := r.cache.Set(ctx, key, []byte(html), r.ttl); err != nil {
		log.Printf("WARN: failed to cache chart %s: %v", name, err)
	}
	return html, nil
}

func (r *ChartRenderer) render(ctx context.Context, name string) (string, error) {
	switch name {
	case ChartRentCollection:
		snapshot, err := r.analytics.Snapshot(ctx)
		if err != nil {
			return "", err
		}
		return renderRentCollection(snapshot.RentCollection)
	case ChartMonthlyRevenue, ChartOccupancy, ChartLatePayments:
		series, err := r.analytics.ReportAnalytics(ctx)
		if err != nil {
			return "", err
		}
		switch name {
		case ChartMonthlyRevenue:
			return renderMonthlyRevenue(series.MonthlyRevenue)
		case ChartOccupancy:
			return renderOccupancy(series.Occupancy)
		default:
			return renderLatePayments(series.LatePayments)
		}
	}
	return "", fmt.Errorf("chart %q: %w", name, ErrUnknownChart)
}

func renderRentCollection(points []models.MonthlyCollection) (string, error) {
	months := make([]string, len(points))
	collected := make([]opts.LineData, len(points))
	target := make([]opts.LineData, len(points))
	for i, point := range points {
		months[i] = point.Month
		collected[i] = opts.LineData{Name: point.Month, Value: point.Collected}
		target[i] = opts.LineData{Name: point.Month, Value: point.Target}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Rent Collection", "Collected vs target (KES)")...)
	line.SetXAxis(months).
		AddSeries("Collected", collected).
		AddSeries("Target", target)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func renderMonthlyRevenue(points []models.MonthlyRevenue) (string, error) {
	months := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		months[i] = point.Month
		data[i] = opts.LineData{Name: point.Month, Value: point.Revenue}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Monthly Revenue", "")...)
	line.SetXAxis(months).AddSeries("Revenue", data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func renderOccupancy(slices []models.Slice) (string, error) {
	data := make([]opts.PieData, len(slices))
	for i, slice := range slices {
		data[i] = opts.PieData{Name: slice.Name, Value: slice.Value}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions("Occupancy", "Share of rooms (%)")...)
	pie.AddSeries("Occupancy", data)
	return renderChart(pie)
}

func renderLatePayments(points []models.MonthlyLatePayments) (string, error) {
	months := make([]string, len(points))
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		months[i] = point.Month
		data[i] = opts.BarData{Name: point.Month, Value: point.Late}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Late Payments", "Tenants paying late per month")...)
	bar.SetXAxis(months).AddSeries("Late", data)
	return renderChart(bar)
}

func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeWesteros,
			Width:     "100%",
			Height:    chartHeight,
			PageTitle: "Renti - " + title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.String(), nil
}
