package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

// maxRent caps rent inputs (KES).
const maxRent int64 = 10_000_000

type TenantService interface {
	List(ctx context.Context, filter models.TenantFilter) ([]*models.TenantView, error)
	GetByID(ctx context.Context, id int) (*models.TenantView, error)
	Create(ctx context.Context, req *CreateTenantRequest) (*models.TenantView, error)
	Update(ctx context.Context, id int, req *UpdateTenantRequest) (*models.TenantView, error)
	Delete(ctx context.Context, id int) error
	TogglePaymentStatus(ctx context.Context, id int) (*models.TenantView, error)
}

// CreateTenantRequest is the add tenant form.
type CreateTenantRequest struct {
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Room        string               `json:"room"`
	Rent        int64                `json:"rent"`
	Status      models.PaymentStatus `json:"status"`
	MoveInDate  models.Date          `json:"move_in_date"`
	LeaseExpiry models.Date          `json:"lease_expiry"`
}

// UpdateTenantRequest carries optional field changes.
type UpdateTenantRequest struct {
	Name        *string               `json:"name"`
	Phone       *string               `json:"phone"`
	Email       *string               `json:"email"`
	Room        *string               `json:"room"`
	Rent        *int64                `json:"rent"`
	Status      *models.PaymentStatus `json:"status"`
	MoveInDate  *models.Date          `json:"move_in_date"`
	LeaseExpiry *models.Date          `json:"lease_expiry"`
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
	activity   ActivityService
	clock      clockwork.Clock
}

func NewTenantService(tenantRepo repositories.TenantRepository, activity ActivityService, clock clockwork.Clock) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		activity:   activity,
		clock:      clock,
	}
}

// MatchesTenantSearch is the tenants tab search predicate: a case-insensitive
// substring of the name, room or phone.
func MatchesTenantSearch(tenant *models.Tenant, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return common.ContainsFold(tenant.Name, search) ||
		common.ContainsFold(tenant.Room, search) ||
		common.ContainsFold(tenant.Phone, search)
}

func (s *tenantService) List(ctx context.Context, filter models.TenantFilter) ([]*models.TenantView, error) {
	if err := filter.ValidateStatus(); err != nil {
		return nil, common.NewFieldError("status", err.Error())
	}

	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := make([]*models.TenantView, 0, len(tenants))
	for _, tenant := range tenants {
		if !MatchesTenantSearch(tenant, filter.Search) {
			continue
		}
		if filter.Status != "" && filter.Status != "All" && tenant.Status != filter.Status {
			continue
		}
		result = append(result, s.view(tenant, now))
	}
	return result, nil
}

func (s *tenantService) GetByID(ctx context.Context, id int) (*models.TenantView, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(tenant, s.clock.Now()), nil
}

func (s *tenantService) Create(ctx context.Context, req *CreateTenantRequest) (*models.TenantView, error) {
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(req.Room, "room"); err != nil {
		return nil, err
	}
	if req.Rent != 0 {
		if err := common.ValidatePositiveAmount(req.Rent, "rent", maxRent); err != nil {
			return nil, err
		}
	}
	status := req.Status
	if status == "" {
		status = models.PaymentStatusDue
	}
	if !status.Valid() {
		return nil, common.NewFieldError("status", "must be one of: Paid, Due, Overdue")
	}
	if !req.LeaseExpiry.IsZero() && !req.MoveInDate.IsZero() && req.LeaseExpiry.Before(req.MoveInDate.Time) {
		return nil, common.NewFieldError("lease_expiry", "cannot be before move_in_date")
	}

	tenant := &models.Tenant{
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Room:        strings.TrimSpace(req.Room),
		Rent:        req.Rent,
		Status:      status,
		MoveInDate:  req.MoveInDate,
		LeaseExpiry: req.LeaseExpiry,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	s.activity.Record(ctx, models.ActivityTenant, "Tenant Added", fmt.Sprintf("%s moved into room %s", tenant.Name, tenant.Room))
	return s.view(tenant, s.clock.Now()), nil
}

func (s *tenantService) Update(ctx context.Context, id int, req *UpdateTenantRequest) (*models.TenantView, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := common.ValidateRequiredString(*req.Name, "name"); err != nil {
			return nil, err
		}
		tenant.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		tenant.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		tenant.Email = strings.TrimSpace(*req.Email)
	}
	if req.Room != nil {
		if err := common.ValidateRequiredString(*req.Room, "room"); err != nil {
			return nil, err
		}
		tenant.Room = strings.TrimSpace(*req.Room)
	}
	if req.Rent != nil {
		if err := common.ValidatePositiveAmount(*req.Rent, "rent", maxRent); err != nil {
			return nil, err
		}
		tenant.Rent = *req.Rent
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, common.NewFieldError("status", "must be one of: Paid, Due, Overdue")
		}
		tenant.Status = *req.Status
	}
	if req.MoveInDate != nil {
		tenant.MoveInDate = *req.MoveInDate
	}
	if req.LeaseExpiry != nil {
		tenant.LeaseExpiry = *req.LeaseExpiry
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return s.view(tenant, s.clock.Now()), nil
}

// Delete removes the tenant only; rooms that reference the name are left as they are.
func (s *tenantService) Delete(ctx context.Context, id int) error {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, models.ActivityTenant, "Tenant Removed", fmt.Sprintf("%s removed from room %s", tenant.Name, tenant.Room))
	return nil
}

// TogglePaymentStatus flips Paid to Due and anything else to Paid. No other
// field changes.
func (s *tenantService) TogglePaymentStatus(ctx context.Context, id int) (*models.TenantView, error) {
	tenant, err := s.tenantRepo.SetStatus(ctx, id, models.PaymentStatus.Toggled)
	if err != nil {
		return nil, err
	}
	return s.view(tenant, s.clock.Now()), nil
}

func (s *tenantService) view(tenant *models.Tenant, now time.Time) *models.TenantView {
	return &models.TenantView{
		Tenant:      *tenant,
		LeaseStatus: LeaseLabel(tenant.LeaseExpiry, now),
	}
}
