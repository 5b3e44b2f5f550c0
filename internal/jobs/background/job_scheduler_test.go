package background

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renti/internal/config"
	"renti/internal/jobs"
	"renti/internal/models"
	"renti/internal/repositories"
	"renti/internal/services"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Current(ctx context.Context) (*models.Greeting, error) {
	args := m.Called(ctx)
	return args.Get(0).(*models.Greeting), args.Error(1)
}

func (m *MockGreetingService) Dismiss(id int) error {
	return m.Called(id).Error(0)
}

func (m *MockGreetingService) Refresh() {
	m.Called()
}

func (m *MockGreetingService) Reset() {
	m.Called()
}

func newTestScheduler(t *testing.T, greeting services.GreetingService) *JobScheduler {
	t.Helper()
	now := time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	repos := repositories.NewRepositories(repositories.SeedDataset(now))
	settings := services.NewSettingsService(repos.Settings)
	_, err := settings.SetNotifications(context.Background(), false)
	require.NoError(t, err)
	reminders := jobs.NewReminderService(repos, settings, services.NewSMSService(config.AfricasTalkingConfig{}), services.NewActivityService(repos.Activity, clock), clock)

	scheduler, err := NewJobScheduler(Intervals{Greeting: time.Minute, Reminders: 24 * time.Hour}, clock, greeting, reminders)
	require.NoError(t, err)
	t.Cleanup(func() { scheduler.Stop() })
	return scheduler
}

func TestJobScheduler_RegistersJobs(t *testing.T) {
	scheduler := newTestScheduler(t, new(MockGreetingService))

	statuses := scheduler.GetJobStatus()
	require.Len(t, statuses, 3)
	assert.Equal(t, JobGreetingRefresh, statuses[0].Name)
	assert.Equal(t, JobLeaseExpiryReminders, statuses[1].Name)
	assert.Equal(t, JobOverdueRentReminders, statuses[2].Name)
}

func TestJobScheduler_RunNow(t *testing.T) {
	greeting := new(MockGreetingService)
	refreshed := make(chan struct{}, 1)
	greeting.On("Refresh").Run(func(mock.Arguments) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	})

	scheduler := newTestScheduler(t, greeting)
	scheduler.Start()

	require.NoError(t, scheduler.RunNow(JobGreetingRefresh))
	select {
	case <-refreshed:
	case <-time.After(5 * time.Second):
		t.Fatal("greeting refresh did not run")
	}

	err := scheduler.RunNow("nightly-backup")
	assert.True(t, errors.Is(err, ErrUnknownJob))
}

func TestNewJobScheduler_RejectsBadInterval(t *testing.T) {
	now := time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	repos := repositories.NewRepositories(repositories.SeedDataset(now))
	reminders := jobs.NewReminderService(repos, services.NewSettingsService(repos.Settings), services.NewSMSService(config.AfricasTalkingConfig{}), services.NewActivityService(repos.Activity, clock), clock)

	_, err := NewJobScheduler(Intervals{Greeting: 0, Reminders: time.Hour}, clock, new(MockGreetingService), reminders)
	assert.Error(t, err)
}
