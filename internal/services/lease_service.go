package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type LeaseService interface {
	List(ctx context.Context) ([]*models.LeaseView, error)
	Expiring(ctx context.Context) ([]*models.LeaseView, error)
	Renew(ctx context.Context, id int, endDate models.Date) (*models.LeaseView, error)
}

type leaseService struct {
	leaseRepo repositories.LeaseRepository
	activity  ActivityService
	clock     clockwork.Clock
}

func NewLeaseService(leaseRepo repositories.LeaseRepository, activity ActivityService, clock clockwork.Clock) LeaseService {
	return &leaseService{
		leaseRepo: leaseRepo,
		activity:  activity,
		clock:     clock,
	}
}

func (s *leaseService) List(ctx context.Context) ([]*models.LeaseView, error) {
	leases, err := s.leaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	views := make([]*models.LeaseView, 0, len(leases))
	for _, lease := range leases {
		views = append(views, LeaseViewAt(lease, now))
	}
	return views, nil
}

// Expiring lists the leases flagged as expiring soon, expired ones included.
func (s *leaseService) Expiring(ctx context.Context) ([]*models.LeaseView, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	expiring := make([]*models.LeaseView, 0, len(views))
	for _, view := range views {
		if view.ExpiringSoon {
			expiring = append(expiring, view)
		}
	}
	return expiring, nil
}

// Renew moves the end date of a lease forward.
func (s *leaseService) Renew(ctx context.Context, id int, endDate models.Date) (*models.LeaseView, error) {
	if endDate.IsZero() {
		return nil, common.NewFieldError("end_date", "is required")
	}
	lease, err := s.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !endDate.After(lease.EndDate.Time) {
		return nil, common.NewFieldError("end_date", fmt.Sprintf("must be after %s", lease.EndDate))
	}

	lease.EndDate = endDate
	if err := s.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.ActivityLease, "Lease Updated", fmt.Sprintf("%s's lease renewed until %s", lease.Tenant, endDate))
	return LeaseViewAt(lease, s.clock.Now()), nil
}

// LeaseViewAt derives the expiry flags of lease as of now.
func LeaseViewAt(lease *models.Lease, now time.Time) *models.LeaseView {
	return &models.LeaseView{
		Lease:        *lease,
		ExpiringSoon: IsExpiringSoon(lease.EndDate, now),
		Expired:      IsExpired(lease.EndDate, now),
		DaysLeft:     DaysUntil(lease.EndDate, now),
	}
}
