package app

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"renti/internal/handlers"
	"renti/internal/middleware"
)

type routeHandlers struct {
	tenants     *handlers.TenantHandlers
	rooms       *handlers.RoomHandlers
	maintenance *handlers.MaintenanceHandlers
	leases      *handlers.LeaseHandlers
	payments    *handlers.PaymentHandlers
	settings    *handlers.SettingsHandlers
	assistant   *handlers.AssistantHandlers
	dashboard   *handlers.DashboardHandlers
	reports     *handlers.ReportHandlers
	landing     *handlers.LandingHandlers
	system      *handlers.SystemHandlers
	ussd        *handlers.USSDHandlers
}

func newEcho(h routeHandlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints
	e.GET("/health", h.system.HealthCheck)
	e.GET("/health/ready", h.system.ReadinessCheck)
	e.GET("/health/live", h.system.LivenessCheck)

	// USSD gateway callback, trailing slash handled by the Pre middleware
	e.Any("/ussd", h.ussd.Callback)

	v1 := versionMiddleware.VersionRoute(e, "v1")

	v1.GET("/landing", h.landing.Content)

	v1.GET("/dashboard", h.dashboard.Snapshot)
	v1.GET("/dashboard/overview", h.dashboard.Overview)
	v1.GET("/greeting", h.dashboard.Greeting)
	v1.DELETE("/greeting/alerts/:id", h.dashboard.DismissAlert)
	v1.GET("/activity", h.dashboard.RecentActivity)
	v1.GET("/notifications", h.dashboard.Notifications)
	v1.GET("/search", h.dashboard.Search)

	v1.GET("/tenants", h.tenants.ListTenants)
	v1.POST("/tenants", h.tenants.CreateTenant)
	v1.GET("/tenants/:id", h.tenants.GetTenant)
	v1.PUT("/tenants/:id", h.tenants.UpdateTenant)
	v1.DELETE("/tenants/:id", h.tenants.DeleteTenant)
	v1.POST("/tenants/:id/toggle-payment", h.tenants.TogglePaymentStatus)

	v1.GET("/rooms", h.rooms.ListRooms)
	v1.POST("/rooms", h.rooms.CreateRoom)
	v1.GET("/rooms/grid", h.rooms.RoomGrid)
	v1.GET("/rooms/grid/:number", h.rooms.RoomTile)
	v1.GET("/rooms/:id", h.rooms.GetRoom)
	v1.PUT("/rooms/:id", h.rooms.UpdateRoom)
	v1.DELETE("/rooms/:id", h.rooms.DeleteRoom)

	v1.GET("/maintenance", h.maintenance.ListRequests)
	v1.POST("/maintenance", h.maintenance.CreateRequest)
	v1.GET("/maintenance/:id", h.maintenance.GetRequest)
	v1.POST("/maintenance/:id/approve", h.maintenance.ApproveRequest)
	v1.POST("/maintenance/:id/reject", h.maintenance.RejectRequest)
	v1.PUT("/maintenance/:id/status", h.maintenance.UpdateStatus)
	v1.PUT("/maintenance/:id/vendor", h.maintenance.AssignVendor)

	v1.GET("/leases", h.leases.ListLeases)
	v1.GET("/leases/expiring", h.leases.ExpiringLeases)
	v1.POST("/leases/:id/renew", h.leases.RenewLease)

	v1.GET("/payments", h.payments.ListPayments)
	v1.GET("/payments/summary", h.payments.PaymentSummary)
	v1.GET("/payments/:id", h.payments.GetPayment)
	v1.POST("/payments/:id/record", h.payments.RecordPayment)

	v1.GET("/reports", h.reports.Catalogue)
	v1.GET("/reports/analytics", h.reports.Analytics)
	v1.GET("/reports/charts", h.reports.Charts)
	v1.GET("/reports/charts/:name", h.reports.Chart)
	v1.GET("/reports/:kind", h.reports.Generate)

	v1.GET("/settings", h.settings.GetSettings)
	v1.PUT("/settings/profile", h.settings.UpdateProfile)
	v1.PUT("/settings/property", h.settings.UpdateProperty)
	v1.PUT("/settings/payment", h.settings.UpdatePayment)
	v1.PUT("/settings/notifications", h.settings.SetNotifications)

	v1.POST("/assistant/conversations", h.assistant.StartConversation)
	v1.GET("/assistant/conversations/:id", h.assistant.GetConversation)
	v1.POST("/assistant/conversations/:id/messages", h.assistant.Ask)
	v1.DELETE("/assistant/conversations/:id", h.assistant.EndConversation)

	v1.GET("/jobs", h.system.JobStatus)
	v1.POST("/jobs/:name/run", h.system.RunJob)
	v1.POST("/reset", h.system.Reset)

	return e
}
