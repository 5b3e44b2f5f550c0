package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

const maxIssueLength = 500

type MaintenanceService interface {
	List(ctx context.Context, status models.MaintenanceStatus) ([]*models.MaintenanceRequest, error)
	GetByID(ctx context.Context, id int) (*models.MaintenanceRequest, error)
	Create(ctx context.Context, req *CreateMaintenanceRequest) (*models.MaintenanceRequest, error)
	Approve(ctx context.Context, id int) (*models.MaintenanceRequest, error)
	Reject(ctx context.Context, id int) error
	SetStatus(ctx context.Context, id int, status models.MaintenanceStatus) (*models.MaintenanceRequest, error)
	AssignVendor(ctx context.Context, id int, vendor string) (*models.MaintenanceRequest, error)
}

type CreateMaintenanceRequest struct {
	Tenant   string                     `json:"tenant"`
	Room     string                     `json:"room"`
	Issue    string                     `json:"issue"`
	Type     models.MaintenanceType     `json:"type"`
	Priority models.MaintenancePriority `json:"priority"`
}

type maintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	activity        ActivityService
	clock           clockwork.Clock
}

func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository, activity ActivityService, clock clockwork.Clock) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		activity:        activity,
		clock:           clock,
	}
}

// List returns all requests, or those with the given status. Empty and
// "All" disable the filter.
func (s *maintenanceService) List(ctx context.Context, status models.MaintenanceStatus) ([]*models.MaintenanceRequest, error) {
	if status != "" && status != "All" && !status.Valid() {
		return nil, common.NewFieldError("status", "must be one of: All, Pending, In Progress, Completed")
	}

	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == "All" {
		return requests, nil
	}

	result := make([]*models.MaintenanceRequest, 0, len(requests))
	for _, request := range requests {
		if request.Status == status {
			result = append(result, request)
		}
	}
	return result, nil
}

func (s *maintenanceService) GetByID(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) Create(ctx context.Context, req *CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if err := common.ValidateRequiredString(req.Issue, "issue"); err != nil {
		return nil, err
	}
	if err := common.ValidateMaxLength(req.Issue, "issue", maxIssueLength); err != nil {
		return nil, err
	}
	requestType := req.Type
	if requestType == "" {
		requestType = models.MaintenanceTypeOther
	}
	if !requestType.Valid() {
		return nil, common.NewFieldError("type", "must be one of: Plumbing, Electrical, Other")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, common.NewFieldError("priority", "must be one of: Critical, High, Medium, Low")
	}

	request := &models.MaintenanceRequest{
		Tenant:        strings.TrimSpace(req.Tenant),
		Room:          strings.TrimSpace(req.Room),
		Issue:         strings.TrimSpace(req.Issue),
		Type:          requestType,
		Priority:      priority,
		Status:        models.MaintenanceStatusPending,
		SubmittedDate: models.DateOf(s.clock.Now()),
	}
	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	s.activity.Record(ctx, models.ActivityMaintenance, "Maintenance Request", describeRequest(request))
	return request, nil
}

// Approve moves the request to In Progress whatever its current status.
func (s *maintenanceService) Approve(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.Mutate(ctx, id, func(r *models.MaintenanceRequest) {
		r.Status = models.MaintenanceStatusInProgress
	})
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.ActivityMaintenance, "Maintenance Approved", describeRequest(request))
	return request, nil
}

// Reject removes the request.
func (s *maintenanceService) Reject(ctx context.Context, id int) error {
	request, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.maintenanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, models.ActivityMaintenance, "Maintenance Rejected", describeRequest(request))
	return nil
}

func (s *maintenanceService) SetStatus(ctx context.Context, id int, status models.MaintenanceStatus) (*models.MaintenanceRequest, error) {
	if !status.Valid() {
		return nil, common.NewFieldError("status", "must be one of: Pending, In Progress, Completed")
	}
	request, err := s.maintenanceRepo.Mutate(ctx, id, func(r *models.MaintenanceRequest) {
		r.Status = status
	})
	if err != nil {
		return nil, err
	}
	if status == models.MaintenanceStatusCompleted {
		s.activity.Record(ctx, models.ActivityMaintenance, "Maintenance Completed", describeRequest(request))
	}
	return request, nil
}

func (s *maintenanceService) AssignVendor(ctx context.Context, id int, vendor string) (*models.MaintenanceRequest, error) {
	if err := common.ValidateRequiredString(vendor, "vendor"); err != nil {
		return nil, err
	}
	vendor = strings.TrimSpace(vendor)
	return s.maintenanceRepo.Mutate(ctx, id, func(r *models.MaintenanceRequest) {
		r.Vendor = vendor
	})
}

func describeRequest(r *models.MaintenanceRequest) string {
	if r.Room == "" {
		return fmt.Sprintf("%s: %s", r.Code, r.Issue)
	}
	return fmt.Sprintf("%s: %s in room %s", r.Code, r.Issue, r.Room)
}
