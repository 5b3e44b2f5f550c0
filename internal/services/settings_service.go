package services

import (
	"context"
	"net/mail"
	"strings"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	UpdateProfile(ctx context.Context, profile models.ProfileSettings) (*models.Settings, error)
	UpdateProperty(ctx context.Context, property models.PropertySettings) (*models.Settings, error)
	UpdatePayment(ctx context.Context, payment models.PaymentSettings) (*models.Settings, error)
	SetNotifications(ctx context.Context, enabled bool) (*models.Settings, error)
	NotificationsEnabled(ctx context.Context) bool
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) UpdateProfile(ctx context.Context, profile models.ProfileSettings) (*models.Settings, error) {
	if err := common.ValidateRequiredString(profile.Name, "name"); err != nil {
		return nil, err
	}
	if _, err := mail.ParseAddress(profile.Email); err != nil {
		return nil, common.NewFieldError("email", "must be a valid email address")
	}
	return s.settingsRepo.Update(ctx, func(settings *models.Settings) {
		settings.Profile = models.ProfileSettings{
			Name:  strings.TrimSpace(profile.Name),
			Email: strings.TrimSpace(profile.Email),
		}
	})
}

func (s *settingsService) UpdateProperty(ctx context.Context, property models.PropertySettings) (*models.Settings, error) {
	if err := common.ValidateRequiredString(property.Name, "name"); err != nil {
		return nil, err
	}
	return s.settingsRepo.Update(ctx, func(settings *models.Settings) {
		settings.Property = models.PropertySettings{
			Name:    strings.TrimSpace(property.Name),
			Address: strings.TrimSpace(property.Address),
		}
	})
}

func (s *settingsService) UpdatePayment(ctx context.Context, payment models.PaymentSettings) (*models.Settings, error) {
	if err := common.ValidateRequiredString(payment.Method, "method"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(payment.Account, "account"); err != nil {
		return nil, err
	}
	return s.settingsRepo.Update(ctx, func(settings *models.Settings) {
		settings.Payment = models.PaymentSettings{
			Method:  strings.TrimSpace(payment.Method),
			Account: strings.TrimSpace(payment.Account),
		}
	})
}

func (s *settingsService) SetNotifications(ctx context.Context, enabled bool) (*models.Settings, error) {
	return s.settingsRepo.Update(ctx, func(settings *models.Settings) {
		settings.Notifications = enabled
	})
}

// NotificationsEnabled treats a settings read failure as disabled.
func (s *settingsService) NotificationsEnabled(ctx context.Context) bool {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false
	}
	return settings.Notifications
}
