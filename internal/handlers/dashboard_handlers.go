package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"renti/internal/analytics"
	"renti/internal/common"
	"renti/internal/services"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

// DashboardHandlers serves the overview tab and the top bar.
type DashboardHandlers struct {
	analytics *analytics.AnalyticsService
	greeting  services.GreetingService
	activity  services.ActivityService
	feed      services.NotificationFeedService
	search    services.SearchService
}

func NewDashboardHandlers(
	analyticsService *analytics.AnalyticsService,
	greeting services.GreetingService,
	activity services.ActivityService,
	feed services.NotificationFeedService,
	search services.SearchService,
) *DashboardHandlers {
	return &DashboardHandlers{
		analytics: analyticsService,
		greeting:  greeting,
		activity:  activity,
		feed:      feed,
		search:    search,
	}
}

// Snapshot returns KPIs and chart series for the overview tab.
func (h *DashboardHandlers) Snapshot(c echo.Context) error {
	snapshot, err := h.analytics.Snapshot(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Dashboard")
	}
	return c.JSON(http.StatusOK, snapshot)
}

func (h *DashboardHandlers) Overview(c echo.Context) error {
	overview, err := h.analytics.Overview(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Dashboard")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"overview": overview,
		"banner":   analytics.OverdueBanner(*overview, common.FormatKES),
	})
}

func (h *DashboardHandlers) Greeting(c echo.Context) error {
	greeting, err := h.greeting.Current(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Greeting")
	}
	return c.JSON(http.StatusOK, greeting)
}

func (h *DashboardHandlers) DismissAlert(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Alert")
	}
	if err := h.greeting.Dismiss(id); err != nil {
		return respondError(c, err, "Alert")
	}
	return c.NoContent(http.StatusNoContent)
}

// RecentActivity returns the newest entries, ?limit= capped at 50.
func (h *DashboardHandlers) RecentActivity(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return common.SendValidationError(c, "limit", "must be a positive integer")
		}
		limit = min(parsed, maxActivityLimit)
	}

	activity, err := h.activity.Recent(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err, "Activity")
	}
	return c.JSON(http.StatusOK, activity)
}

func (h *DashboardHandlers) Notifications(c echo.Context) error {
	feed, err := h.feed.Feed(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Notifications")
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *DashboardHandlers) Search(c echo.Context) error {
	results, err := h.search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err, "Search")
	}
	return c.JSON(http.StatusOK, results)
}
