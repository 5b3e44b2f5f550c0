package repositories

import (
	"context"
	"fmt"

	"renti/internal/models"
)

type LeaseRepository interface {
	Create(ctx context.Context, lease *models.Lease) error
	GetByID(ctx context.Context, id int) (*models.Lease, error)
	Update(ctx context.Context, lease *models.Lease) error
	List(ctx context.Context) ([]*models.Lease, error)
	Load(seed []models.Lease)
	Revision() uint64
}

type leaseRepo struct {
	leases *collection[models.Lease]
}

func NewLeaseRepository(seed []models.Lease) LeaseRepository {
	r := &leaseRepo{
		leases: newCollection(
			func(l *models.Lease) int { return l.ID },
			func(l *models.Lease, id int) { l.ID = id },
		),
	}
	r.leases.load(seed)
	return r
}

func (r *leaseRepo) Create(ctx context.Context, lease *models.Lease) error {
	r.leases.insert(lease)
	return nil
}

func (r *leaseRepo) GetByID(ctx context.Context, id int) (*models.Lease, error) {
	lease, ok := r.leases.get(id)
	if !ok {
		return nil, fmt.Errorf("lease %d: %w", id, ErrNotFound)
	}
	return lease, nil
}

func (r *leaseRepo) Update(ctx context.Context, lease *models.Lease) error {
	if !r.leases.replace(lease) {
		return fmt.Errorf("lease %d: %w", lease.ID, ErrNotFound)
	}
	return nil
}

func (r *leaseRepo) List(ctx context.Context) ([]*models.Lease, error) {
	return r.leases.list(), nil
}

func (r *leaseRepo) Load(seed []models.Lease) {
	r.leases.load(seed)
}

func (r *leaseRepo) Revision() uint64 {
	return r.leases.rev()
}
