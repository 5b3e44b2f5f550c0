package models

import "fmt"

type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "Pending"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

type MaintenancePriority string

const (
	PriorityCritical MaintenancePriority = "Critical"
	PriorityHigh     MaintenancePriority = "High"
	PriorityMedium   MaintenancePriority = "Medium"
	PriorityLow      MaintenancePriority = "Low"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type MaintenanceType string

const (
	MaintenanceTypePlumbing   MaintenanceType = "Plumbing"
	MaintenanceTypeElectrical MaintenanceType = "Electrical"
	MaintenanceTypeOther      MaintenanceType = "Other"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceTypePlumbing, MaintenanceTypeElectrical, MaintenanceTypeOther:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID            int                 `json:"id"`
	Code          string              `json:"code"`
	Tenant        string              `json:"tenant"`
	Room          string              `json:"room"`
	Issue         string              `json:"issue"`
	Type          MaintenanceType     `json:"type"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	Vendor        string              `json:"vendor,omitempty"`
	SubmittedDate Date                `json:"submitted_date"`
}

// MaintenanceCode formats the display code for a request id, e.g. MR-007.
func MaintenanceCode(id int) string {
	return fmt.Sprintf("MR-%03d", id)
}
