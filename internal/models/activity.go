package models

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityPayment     ActivityType = "payment"
	ActivityMaintenance ActivityType = "maintenance"
	ActivityLease       ActivityType = "lease"
	ActivityTenant      ActivityType = "tenant"
	ActivityRoom        ActivityType = "room"
	ActivityReminder    ActivityType = "reminder"
)

// Activity is an entry in the recent activity timeline.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}
