package services

import (
	"time"

	"renti/internal/models"
)

// ExpiryWindow is how close an end date must be to count as expiring soon.
const ExpiryWindow = 30 * 24 * time.Hour

// IsExpiringSoon reports whether end is less than ExpiryWindow away from
// now. The test is one-sided: dates already in the past are expiring soon
// too. A zero date never expires.
func IsExpiringSoon(end models.Date, now time.Time) bool {
	if end.IsZero() {
		return false
	}
	return end.Sub(now) < ExpiryWindow
}

// IsExpired reports whether end is strictly before today.
func IsExpired(end models.Date, now time.Time) bool {
	if end.IsZero() {
		return false
	}
	return end.Before(models.DateOf(now).Time)
}

// DaysUntil counts calendar days from today to end; negative once past.
func DaysUntil(end models.Date, now time.Time) int {
	return int(end.Sub(models.DateOf(now).Time).Hours() / 24)
}

// LeaseLabel is the status label shown next to a tenant.
func LeaseLabel(expiry models.Date, now time.Time) string {
	if IsExpiringSoon(expiry, now) {
		return models.LeaseLabelExpiringSoon
	}
	return models.LeaseLabelActive
}
