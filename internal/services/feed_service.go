package services

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"renti/internal/models"
	"renti/internal/repositories"
)

// Feed item types.
const (
	FeedLatePayment = "late_payment"
	FeedLeaseExpiry = "lease_expiry"
	FeedMaintenance = "maintenance"
)

// NotificationFeedService builds the top bar notifications from live data.
type NotificationFeedService interface {
	Feed(ctx context.Context) (*models.NotificationFeed, error)
}

type notificationFeedService struct {
	paymentRepo     repositories.PaymentRepository
	leaseRepo       repositories.LeaseRepository
	maintenanceRepo repositories.MaintenanceRepository
	clock           clockwork.Clock
}

func NewNotificationFeedService(paymentRepo repositories.PaymentRepository, leaseRepo repositories.LeaseRepository, maintenanceRepo repositories.MaintenanceRepository, clock clockwork.Clock) NotificationFeedService {
	return &notificationFeedService{
		paymentRepo:     paymentRepo,
		leaseRepo:       leaseRepo,
		maintenanceRepo: maintenanceRepo,
		clock:           clock,
	}
}

func (s *notificationFeedService) Feed(ctx context.Context) (*models.NotificationFeed, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	leases, err := s.leaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	feed := &models.NotificationFeed{Items: []models.FeedItem{}}

	for _, payment := range payments {
		if payment.Status != models.PaymentRecordOverdue {
			continue
		}
		feed.Items = append(feed.Items, models.FeedItem{
			Type:    FeedLatePayment,
			Title:   "Late Payment Alert",
			Message: fmt.Sprintf("%s (Room %s) - %s overdue", payment.Tenant, payment.Room, days(-DaysUntil(payment.DueDate, now))),
		})
		feed.LatePayments++
	}

	for _, lease := range leases {
		if !IsExpiringSoon(lease.EndDate, now) {
			continue
		}
		feed.Items = append(feed.Items, models.FeedItem{
			Type:    FeedLeaseExpiry,
			Title:   "Lease Expiry Alert",
			Message: fmt.Sprintf("%s (Room %s) - %s", lease.Tenant, lease.Room, ExpiryPhrase(DaysUntil(lease.EndDate, now))),
		})
		feed.LeaseAlerts++
	}

	for _, request := range requests {
		if request.Status != models.MaintenanceStatusPending {
			continue
		}
		feed.Items = append(feed.Items, models.FeedItem{
			Type:    FeedMaintenance,
			Title:   "Pending Maintenance Approval",
			Message: fmt.Sprintf("%s (Room %s) - %s request awaiting approval", request.Tenant, request.Room, request.Type),
		})
		feed.MaintenancePending++
	}

	feed.Total = len(feed.Items)
	return feed, nil
}

// ExpiryPhrase renders a days-left count as "Expires in 5 days",
// "Expires today" or "Expired 3 days ago".
func ExpiryPhrase(daysLeft int) string {
	switch {
	case daysLeft > 0:
		return "Expires in " + days(daysLeft)
	case daysLeft == 0:
		return "Expires today"
	default:
		return "Expired " + days(-daysLeft) + " ago"
	}
}

func days(n int) string {
	return fmt.Sprintf("%d %s", n, plural(n, "day", "days"))
}
