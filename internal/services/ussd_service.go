package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

const (
	USSDMainMenu      = "CON Karibu Renti\n1. Check Rent Balance\n2. Report Maintenance"
	USSDIssueMenu     = "CON Select Issue Type\n1. Plumbing\n2. Electricity\n3. Other"
	USSDInvalidOption = "END Invalid option"
	USSDInvalidChoice = "END Invalid selection"
	USSDUnregistered  = "END This phone number is not registered with Renti."
	USSDFailure       = "END An error occurred. Please try again later."
)

type ussdIssue struct {
	label       string
	requestType models.MaintenanceType
}

// Keyed by the menu digit; anything else reports Other.
var ussdIssues = map[string]ussdIssue{
	"1": {"Plumbing", models.MaintenanceTypePlumbing},
	"2": {"Electricity", models.MaintenanceTypeElectrical},
	"3": {"Other", models.MaintenanceTypeOther},
}

// USSDService answers USSD gateway callbacks. Replies start with CON when
// the session continues and END when it closes.
type USSDService interface {
	Handle(ctx context.Context, req *models.USSDRequest) string
}

type ussdService struct {
	tenantRepo  repositories.TenantRepository
	maintenance MaintenanceService
	notifier    Notifier
}

func NewUSSDService(tenantRepo repositories.TenantRepository, maintenance MaintenanceService, notifier Notifier) USSDService {
	return &ussdService{
		tenantRepo:  tenantRepo,
		maintenance: maintenance,
		notifier:    notifier,
	}
}

func (s *ussdService) Handle(ctx context.Context, req *models.USSDRequest) string {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return USSDMainMenu
	}

	parts := strings.Split(text, "*")
	var (
		reply string
		err   error
	)
	switch parts[0] {
	case "1":
		reply, err = s.rentBalance(ctx, req.PhoneNumber)
	case "2":
		switch len(parts) {
		case 1:
			reply = USSDIssueMenu
		case 2:
			reply, err = s.reportIssue(ctx, req.PhoneNumber, parts[1])
		default:
			reply = USSDInvalidChoice
		}
	default:
		reply = USSDInvalidOption
	}

	if err != nil {
		log.Printf("WARN: failed to handle USSD request (session=%s phone=%s): %v", req.SessionID, req.PhoneNumber, err)
		return USSDFailure
	}
	return reply
}

func (s *ussdService) rentBalance(ctx context.Context, phone string) (string, error) {
	tenant, err := s.tenantByPhone(ctx, phone)
	if errors.Is(err, repositories.ErrNotFound) {
		return USSDUnregistered, nil
	}
	if err != nil {
		return "", err
	}

	var balance int64
	if tenant.Status == models.PaymentStatusDue || tenant.Status == models.PaymentStatusOverdue {
		balance = tenant.Rent
	}
	return "END Your rent balance is " + common.FormatKES(balance), nil
}

// reportIssue files a request for the caller. Unknown numbers can still
// report; the request then carries the phone number as tenant.
func (s *ussdService) reportIssue(ctx context.Context, phone, choice string) (string, error) {
	issue, ok := ussdIssues[choice]
	if !ok {
		issue = ussdIssues["3"]
	}

	req := &CreateMaintenanceRequest{
		Tenant: phone,
		Issue:  issue.label + " issue reported via USSD",
		Type:   issue.requestType,
	}
	tenant, err := s.tenantByPhone(ctx, phone)
	switch {
	case err == nil:
		req.Tenant = tenant.Name
		req.Room = tenant.Room
	case !errors.Is(err, repositories.ErrNotFound):
		return "", err
	}

	request, err := s.maintenance.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("file maintenance request: %w", err)
	}

	if phone != "" {
		s.notifier.Notify(ctx, phone, fmt.Sprintf("Renti: your %s request %s has been received.", strings.ToLower(issue.label), request.Code))
	}
	return fmt.Sprintf("END Maintenance request for %s submitted successfully.", issue.label), nil
}

func (s *ussdService) tenantByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, repositories.ErrNotFound
	}
	return s.tenantRepo.FindByPhone(ctx, func(candidate string) bool {
		return common.SamePhone(candidate, phone)
	})
}
