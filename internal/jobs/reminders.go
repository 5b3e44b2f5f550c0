package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
	"renti/internal/services"
)

// Reminder kinds.
const (
	ReminderLeaseExpiry = "lease_expiry"
	ReminderOverdueRent = "overdue_rent"
)

// Reminder is a text message due to one tenant.
type Reminder struct {
	Kind    string
	Key     string
	Tenant  string
	Room    string
	Message string
}

// ReminderService finds tenants to remind and texts them. Each reminder
// key is sent once until Reset.
type ReminderService struct {
	tenantRepo  repositories.TenantRepository
	leaseRepo   repositories.LeaseRepository
	paymentRepo repositories.PaymentRepository
	settings    services.SettingsService
	sms         services.SMSService
	activity    services.ActivityService
	clock       clockwork.Clock

	mu   sync.Mutex
	sent map[string]bool
}

func NewReminderService(repos *repositories.Repositories, settings services.SettingsService, sms services.SMSService, activity services.ActivityService, clock clockwork.Clock) *ReminderService {
	return &ReminderService{
		tenantRepo:  repos.Tenants,
		leaseRepo:   repos.Leases,
		paymentRepo: repos.Payments,
		settings:    settings,
		sms:         sms,
		activity:    activity,
		clock:       clock,
		sent:        make(map[string]bool),
	}
}

// LeaseExpiryReminders covers every lease flagged as expiring soon.
func (r *ReminderService) LeaseExpiryReminders(ctx context.Context) ([]Reminder, error) {
	leases, err := r.leaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	var reminders []Reminder
	for _, lease := range leases {
		if !services.IsExpiringSoon(lease.EndDate, now) {
			continue
		}
		message := fmt.Sprintf("Renti: your lease for room %s expires on %s. Please contact your landlord to renew.", lease.Room, lease.EndDate)
		if services.IsExpired(lease.EndDate, now) {
			message = fmt.Sprintf("Renti: your lease for room %s expired on %s. Please contact your landlord to renew.", lease.Room, lease.EndDate)
		}
		reminders = append(reminders, Reminder{
			Kind:    ReminderLeaseExpiry,
			Key:     fmt.Sprintf("lease:%d:%s", lease.ID, lease.EndDate),
			Tenant:  lease.Tenant,
			Room:    lease.Room,
			Message: message,
		})
	}
	return reminders, nil
}

// OverdueRentReminders covers every overdue payment.
func (r *ReminderService) OverdueRentReminders(ctx context.Context) ([]Reminder, error) {
	payments, err := r.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	var reminders []Reminder
	for _, payment := range payments {
		if payment.Status != models.PaymentRecordOverdue {
			continue
		}
		overdue := -services.DaysUntil(payment.DueDate, now)
		reminders = append(reminders, Reminder{
			Kind:    ReminderOverdueRent,
			Key:     fmt.Sprintf("payment:%d:%s", payment.ID, payment.DueDate),
			Tenant:  payment.Tenant,
			Room:    payment.Room,
			Message: fmt.Sprintf("Renti: rent of %s for room %s is %d days overdue. Please pay as soon as possible.", common.FormatKES(payment.Amount), payment.Room, overdue),
		})
	}
	return reminders, nil
}

// Send texts each reminder not sent before and returns how many went out.
// Nothing is sent while notifications are switched off in settings.
func (r *ReminderService) Send(ctx context.Context, reminders []Reminder) int {
	if len(reminders) == 0 {
		return 0
	}
	if !r.settings.NotificationsEnabled(ctx) {
		log.Printf("INFO: notifications disabled, skipping %d reminders", len(reminders))
		return 0
	}

	sent := 0
	for _, reminder := range reminders {
		if r.wasSent(reminder.Key) {
			continue
		}

		tenant, err := r.tenantRepo.GetByName(ctx, reminder.Tenant)
		if errors.Is(err, repositories.ErrNotFound) || (err == nil && tenant.Phone == "") {
			log.Printf("WARN: no phone number for %s, skipping %s reminder", reminder.Tenant, reminder.Kind)
			continue
		}
		if err != nil {
			log.Printf("WARN: failed to look up tenant %s: %v", reminder.Tenant, err)
			continue
		}

		if _, err := r.sms.Send(ctx, tenant.Phone, reminder.Message); err != nil {
			log.Printf("WARN: failed to send %s reminder to %s: %v", reminder.Kind, reminder.Tenant, err)
			continue
		}

		r.markSent(reminder.Key)
		r.activity.Record(ctx, models.ActivityReminder, reminderTitle(reminder.Kind),
			fmt.Sprintf("Reminder sent to %s (Room %s)", reminder.Tenant, reminder.Room))
		sent++
	}
	return sent
}

func (r *ReminderService) RunLeaseExpiry(ctx context.Context) (int, error) {
	reminders, err := r.LeaseExpiryReminders(ctx)
	if err != nil {
		return 0, err
	}
	return r.Send(ctx, reminders), nil
}

func (r *ReminderService) RunOverdueRent(ctx context.Context) (int, error) {
	reminders, err := r.OverdueRentReminders(ctx)
	if err != nil {
		return 0, err
	}
	return r.Send(ctx, reminders), nil
}

// Reset forgets which reminders went out.
func (r *ReminderService) Reset() {
	r.mu.Lock()
	r.sent = make(map[string]bool)
	r.mu.Unlock()
}

func (r *ReminderService) wasSent(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sent[key]
}

func (r *ReminderService) markSent(key string) {
	r.mu.Lock()
	r.sent[key] = true
	r.mu.Unlock()
}

func reminderTitle(kind string) string {
	if kind == ReminderLeaseExpiry {
		return "Lease Expiry Reminder"
	}
	return "Rent Reminder"
}
