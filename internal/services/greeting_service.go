package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"renti/internal/models"
	"renti/internal/repositories"
)

// Greeting alert ids.
const (
	AlertRentDue            = 1
	AlertPendingMaintenance = 2
)

// GreetingFor returns the salutation for an hour of the day.
func GreetingFor(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

type GreetingService interface {
	Current(ctx context.Context) (*models.Greeting, error)
	Dismiss(id int) error
	Refresh()
	Reset()
}

type greetingService struct {
	settingsRepo    repositories.SettingsRepository
	tenantRepo      repositories.TenantRepository
	maintenanceRepo repositories.MaintenanceRepository
	clock           clockwork.Clock

	mu        sync.RWMutex
	text      string
	dismissed map[int]bool
}

func NewGreetingService(settingsRepo repositories.SettingsRepository, tenantRepo repositories.TenantRepository, maintenanceRepo repositories.MaintenanceRepository, clock clockwork.Clock) GreetingService {
	s := &greetingService{
		settingsRepo:    settingsRepo,
		tenantRepo:      tenantRepo,
		maintenanceRepo: maintenanceRepo,
		clock:           clock,
		dismissed:       make(map[int]bool),
	}
	s.Refresh()
	return s
}

// Refresh recomputes the salutation from the clock. The scheduler calls it
// every minute; Current serves the last computed text.
func (s *greetingService) Refresh() {
	text := GreetingFor(s.clock.Now().Hour())
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

func (s *greetingService) Current(ctx context.Context) (*models.Greeting, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.alerts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	visible := make([]models.GreetingAlert, 0, len(alerts))
	for _, alert := range alerts {
		if !s.dismissed[alert.ID] {
			visible = append(visible, alert)
		}
	}
	return &models.Greeting{
		Text:   s.text,
		Name:   firstName(settings.Profile.Name),
		Alerts: visible,
	}, nil
}

func (s *greetingService) Dismiss(id int) error {
	if id != AlertRentDue && id != AlertPendingMaintenance {
		return fmt.Errorf("greeting alert %d: %w", id, repositories.ErrNotFound)
	}
	s.mu.Lock()
	s.dismissed[id] = true
	s.mu.Unlock()
	return nil
}

// Reset brings dismissed alerts back.
func (s *greetingService) Reset() {
	s.mu.Lock()
	s.dismissed = make(map[int]bool)
	s.mu.Unlock()
}

func (s *greetingService) alerts(ctx context.Context) ([]models.GreetingAlert, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	due := 0
	for _, tenant := range tenants {
		if tenant.Status == models.PaymentStatusDue {
			due++
		}
	}
	pending := 0
	for _, request := range requests {
		if request.Status == models.MaintenanceStatusPending {
			pending++
		}
	}

	var alerts []models.GreetingAlert
	if due > 0 {
		alerts = append(alerts, models.GreetingAlert{
			ID:      AlertRentDue,
			Type:    "rent",
			Message: fmt.Sprintf("Rent is due today for %d %s.", due, plural(due, "tenant", "tenants")),
		})
	}
	if pending > 0 {
		alerts = append(alerts, models.GreetingAlert{
			ID:      AlertPendingMaintenance,
			Type:    "maintenance",
			Message: fmt.Sprintf("%d maintenance %s pending.", pending, plural(pending, "request is", "requests are")),
		})
	}
	return alerts, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
