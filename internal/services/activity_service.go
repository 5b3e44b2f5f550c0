package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"renti/internal/models"
	"renti/internal/repositories"
)

type ActivityService interface {
	Record(ctx context.Context, activityType models.ActivityType, title, description string)
	Recent(ctx context.Context, limit int) ([]*models.Activity, error)
}

type activityService struct {
	activityRepo repositories.ActivityRepository
	clock        clockwork.Clock
}

func NewActivityService(activityRepo repositories.ActivityRepository, clock clockwork.Clock) ActivityService {
	return &activityService{activityRepo: activityRepo, clock: clock}
}

// Record appends to the timeline. Failures are logged, never returned: the
// timeline must not fail the mutation that produced it.
func (s *activityService) Record(ctx context.Context, activityType models.ActivityType, title, description string) {
	activity := &models.Activity{
		ID:          uuid.New(),
		Type:        activityType,
		Title:       title,
		Description: description,
		Timestamp:   s.clock.Now(),
	}
	if err := s.activityRepo.Append(ctx, activity); err != nil {
		log.Printf("WARN: failed to record activity %q: %v", title, err)
	}
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	return s.activityRepo.Recent(ctx, limit)
}
