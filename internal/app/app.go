package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"renti/internal/analytics"
	"renti/internal/caching"
	"renti/internal/config"
	"renti/internal/handlers"
	"renti/internal/jobs"
	"renti/internal/jobs/background"
	"renti/internal/reports"
	"renti/internal/repositories"
	"renti/internal/services"
)

const (
	notifyTimeout   = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App is the composition root: every repository, service, job and handler
// is created and wired here.
type App struct {
	config *config.AppConfig
	clock  clockwork.Clock

	cache     caching.CacheService
	repos     *repositories.Repositories
	analytics *analytics.AnalyticsService
	greeting  services.GreetingService
	reminders *jobs.ReminderService
	notifier  *services.AsyncNotifier
	scheduler *background.JobScheduler

	echo *echo.Echo
}

// New builds the application around the demo dataset. cache may be nil, in
// which case one is created from the configuration.
func New(cfg *config.AppConfig, clock clockwork.Clock, cache caching.CacheService) (*App, error) {
	if cache == nil {
		cache = caching.NewCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	log.Printf("INFO: cache backend: %s", cache.Backend())

	repos := repositories.NewRepositories(repositories.SeedDataset(clock.Now()))

	activity := services.NewActivityService(repos.Activity, clock)
	tenantService := services.NewTenantService(repos.Tenants, activity, clock)
	roomService := services.NewRoomService(repos.Rooms, repos.Tenants, activity)
	maintenanceService := services.NewMaintenanceService(repos.Maintenance, activity, clock)
	leaseService := services.NewLeaseService(repos.Leases, activity, clock)
	paymentService := services.NewPaymentService(repos.Payments, activity, clock)
	settingsService := services.NewSettingsService(repos.Settings)
	assistantService := services.NewAssistantService(repos.Conversations, clock, cfg.AssistantDelay)
	greetingService := services.NewGreetingService(repos.Settings, repos.Tenants, repos.Maintenance, clock)
	feedService := services.NewNotificationFeedService(repos.Payments, repos.Leases, repos.Maintenance, clock)
	searchService := services.NewSearchService(repos.Tenants, repos.Rooms, clock)
	landingService, err := services.NewLandingService()
	if err != nil {
		return nil, fmt.Errorf("failed to load landing content: %w", err)
	}

	analyticsService := analytics.NewAnalyticsService(repos.Tenants, repos.Rooms, repos.Maintenance, cache, clock, cfg.CacheTTL)
	reportService := services.NewReportService(repos, analyticsService, clock)
	chartRenderer := reports.NewChartRenderer(analyticsService, cache, cfg.CacheTTL)

	smsService := services.NewSMSService(cfg.AfricasTalking)
	if smsService.Stubbed() {
		log.Printf("INFO: Africa's Talking credentials not set, SMS runs stubbed")
	}
	notifier := services.NewAsyncNotifier(smsService, notifyTimeout)
	ussdService := services.NewUSSDService(repos.Tenants, maintenanceService, notifier)

	reminders := jobs.NewReminderService(repos, settingsService, smsService, activity, clock)
	scheduler, err := background.NewJobScheduler(background.Intervals{
		Greeting:  cfg.GreetingInterval,
		Reminders: cfg.ReminderInterval,
	}, clock, greetingService, reminders)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:    cfg,
		clock:     clock,
		cache:     cache,
		repos:     repos,
		analytics: analyticsService,
		greeting:  greetingService,
		reminders: reminders,
		notifier:  notifier,
		scheduler: scheduler,
	}

	a.echo = newEcho(routeHandlers{
		tenants:     handlers.NewTenantHandlers(tenantService),
		rooms:       handlers.NewRoomHandlers(roomService),
		maintenance: handlers.NewMaintenanceHandlers(maintenanceService),
		leases:      handlers.NewLeaseHandlers(leaseService),
		payments:    handlers.NewPaymentHandlers(paymentService),
		settings:    handlers.NewSettingsHandlers(settingsService),
		assistant:   handlers.NewAssistantHandlers(assistantService),
		dashboard:   handlers.NewDashboardHandlers(analyticsService, greetingService, activity, feedService, searchService),
		reports:     handlers.NewReportHandlers(reportService, chartRenderer),
		landing:     handlers.NewLandingHandlers(landingService),
		system:      handlers.NewSystemHandlers(cache, scheduler, a.Reset, clock),
		ussd:        handlers.NewUSSDHandlers(ussdService, cfg.Debug),
	})
	return a, nil
}

// Echo exposes the router, mainly for tests.
func (a *App) Echo() *echo.Echo {
	return a.echo
}

// Overview computes the KPI block without starting the server.
func (a *App) Overview(ctx context.Context) (map[string]any, error) {
	overview, err := a.analytics.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"overview": overview,
		"trend":    analytics.RentCollectionTrend(overview.TotalCollected, a.clock.Now()),
	}, nil
}

// Reset restores the demo data and forgets dismissed alerts and sent
// reminders.
func (a *App) Reset(ctx context.Context) {
	a.repos.Reload(repositories.SeedDataset(a.clock.Now()))
	a.greeting.Reset()
	a.reminders.Reset()
	log.Printf("INFO: demo data reset")
}

// Run serves HTTP and the background jobs until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", a.config.Port)
		log.Printf("INFO: Renti server v%s starting on %s", handlers.Version, addr)
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Printf("INFO: shutdown signal received")
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown stops accepting requests, then stops jobs, waits for queued SMS
// and closes the cache.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.echo.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown: %w", err))
	}
	if err := a.scheduler.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("scheduler shutdown: %w", err))
	}
	a.notifier.Wait()
	if err := a.cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("cache close: %w", err))
	}
	log.Printf("INFO: shutdown complete")
	return errors.Join(errs...)
}
