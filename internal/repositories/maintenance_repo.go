package repositories

import (
	"context"
	"fmt"

	"renti/internal/models"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id int) (*models.MaintenanceRequest, error)
	Mutate(ctx context.Context, id int, fn func(*models.MaintenanceRequest)) (*models.MaintenanceRequest, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*models.MaintenanceRequest, error)
	Load(seed []models.MaintenanceRequest)
	Revision() uint64
}

type maintenanceRepo struct {
	requests *collection[models.MaintenanceRequest]
}

func NewMaintenanceRepository(seed []models.MaintenanceRequest) MaintenanceRepository {
	r := &maintenanceRepo{
		requests: newCollection(
			func(m *models.MaintenanceRequest) int { return m.ID },
			func(m *models.MaintenanceRequest, id int) {
				m.ID = id
				m.Code = models.MaintenanceCode(id)
			},
		),
	}
	r.requests.load(seed)
	return r
}

// Create assigns both the numeric id and the MR-nnn display code.
func (r *maintenanceRepo) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	r.requests.insert(request)
	return nil
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	request, ok := r.requests.get(id)
	if !ok {
		return nil, fmt.Errorf("maintenance request %d: %w", id, ErrNotFound)
	}
	return request, nil
}

func (r *maintenanceRepo) Mutate(ctx context.Context, id int, fn func(*models.MaintenanceRequest)) (*models.MaintenanceRequest, error) {
	request, ok := r.requests.mutate(id, fn)
	if !ok {
		return nil, fmt.Errorf("maintenance request %d: %w", id, ErrNotFound)
	}
	return request, nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id int) error {
	if !r.requests.remove(id) {
		return fmt.Errorf("maintenance request %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *maintenanceRepo) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	return r.requests.list(), nil
}

func (r *maintenanceRepo) Load(seed []models.MaintenanceRequest) {
	r.requests.load(seed)
}

func (r *maintenanceRepo) Revision() uint64 {
	return r.requests.rev()
}
