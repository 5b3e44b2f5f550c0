package repositories

import (
	"context"
	"sync"

	"renti/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, fn func(*models.Settings)) (*models.Settings, error)
	Load(seed models.Settings)
}

type settingsRepo struct {
	mu       sync.RWMutex
	settings models.Settings
}

func NewSettingsRepository(seed models.Settings) SettingsRepository {
	return &settingsRepo{settings: seed}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings := r.settings
	return &settings, nil
}

func (r *settingsRepo) Update(ctx context.Context, fn func(*models.Settings)) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.settings)
	settings := r.settings
	return &settings, nil
}

func (r *settingsRepo) Load(seed models.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = seed
}
