package repositories

import (
	"context"
	"sort"
	"sync"

	"renti/internal/models"
)

// maxActivity bounds the timeline; older entries fall off.
const maxActivity = 200

type ActivityRepository interface {
	Append(ctx context.Context, activity *models.Activity) error
	Recent(ctx context.Context, limit int) ([]*models.Activity, error)
	Load(seed []models.Activity)
}

type activityRepo struct {
	mu      sync.RWMutex
	entries []models.Activity
}

func NewActivityRepository(seed []models.Activity) ActivityRepository {
	r := &activityRepo{}
	r.Load(seed)
	return r
}

func (r *activityRepo) Append(ctx context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *activity)
	if len(r.entries) > maxActivity {
		r.entries = r.entries[len(r.entries)-maxActivity:]
	}
	return nil
}

// Recent returns entries newest first. A non-positive limit returns all.
func (r *activityRepo) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	r.mu.RLock()
	out := make([]*models.Activity, 0, len(r.entries))
	for i := range r.entries {
		entry := r.entries[i]
		out = append(out, &entry)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *activityRepo) Load(seed []models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]models.Activity(nil), seed...)
}
