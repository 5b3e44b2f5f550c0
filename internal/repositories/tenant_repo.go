package repositories

import (
	"context"
	"fmt"

	"renti/internal/models"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id int) (*models.Tenant, error)
	GetByName(ctx context.Context, name string) (*models.Tenant, error)
	FindByPhone(ctx context.Context, match func(phone string) bool) (*models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	SetStatus(ctx context.Context, id int, status func(models.PaymentStatus) models.PaymentStatus) (*models.Tenant, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.Tenant, error)
	Load(seed []models.Tenant)
	Revision() uint64
}

type tenantRepo struct {
	tenants *collection[models.Tenant]
}

func NewTenantRepository(seed []models.Tenant) TenantRepository {
	r := &tenantRepo{
		tenants: newCollection(
			func(t *models.Tenant) int { return t.ID },
			func(t *models.Tenant, id int) { t.ID = id },
		),
	}
	r.tenants.load(seed)
	return r
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	r.tenants.insert(tenant)
	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id int) (*models.Tenant, error) {
	tenant, ok := r.tenants.get(id)
	if !ok {
		return nil, fmt.Errorf("tenant %d: %w", id, ErrNotFound)
	}
	return tenant, nil
}

func (r *tenantRepo) GetByName(ctx context.Context, name string) (*models.Tenant, error) {
	tenant, ok := r.tenants.find(func(t *models.Tenant) bool { return t.Name == name })
	if !ok {
		return nil, fmt.Errorf("tenant %q: %w", name, ErrNotFound)
	}
	return tenant, nil
}

func (r *tenantRepo) FindByPhone(ctx context.Context, match func(phone string) bool) (*models.Tenant, error) {
	tenant, ok := r.tenants.find(func(t *models.Tenant) bool { return match(t.Phone) })
	if !ok {
		return nil, fmt.Errorf("tenant by phone: %w", ErrNotFound)
	}
	return tenant, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	if !r.tenants.replace(tenant) {
		return fmt.Errorf("tenant %d: %w", tenant.ID, ErrNotFound)
	}
	return nil
}

// SetStatus rewrites only the status field, atomically with respect to
// other writers.
func (r *tenantRepo) SetStatus(ctx context.Context, id int, status func(models.PaymentStatus) models.PaymentStatus) (*models.Tenant, error) {
	tenant, ok := r.tenants.mutate(id, func(t *models.Tenant) {
		t.Status = status(t.Status)
	})
	if !ok {
		return nil, fmt.Errorf("tenant %d: %w", id, ErrNotFound)
	}
	return tenant, nil
}

func (r *tenantRepo) Delete(ctx context.Context, id int) error {
	if !r.tenants.remove(id) {
		return fmt.Errorf("tenant %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	return r.tenants.list(), nil
}

func (r *tenantRepo) Load(seed []models.Tenant) {
	r.tenants.load(seed)
}

func (r *tenantRepo) Revision() uint64 {
	return r.tenants.rev()
}
