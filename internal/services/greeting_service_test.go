package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renti/internal/models"
	"renti/internal/repositories"
)

func TestGreetingFor(t *testing.T) {
	assert.Equal(t, "Good Morning", GreetingFor(0))
	assert.Equal(t, "Good Morning", GreetingFor(11))
	assert.Equal(t, "Good Afternoon", GreetingFor(12))
	assert.Equal(t, "Good Afternoon", GreetingFor(17))
	assert.Equal(t, "Good Evening", GreetingFor(18))
	assert.Equal(t, "Good Evening", GreetingFor(23))
}

func TestGreetingService_Current(t *testing.T) {
	repos := newTestRepositories()
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewGreetingService(repos.Settings, repos.Tenants, repos.Maintenance, clock)
	ctx := context.Background()

	greeting, err := service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Good Morning", greeting.Text)
	assert.Equal(t, "Frank", greeting.Name)
	assert.Equal(t, []models.GreetingAlert{
		{ID: AlertRentDue, Type: "rent", Message: "Rent is due today for 2 tenants."},
		{ID: AlertPendingMaintenance, Type: "maintenance", Message: "2 maintenance requests are pending."},
	}, greeting.Alerts)

	// the text only moves on refresh
	clock.Advance(8 * time.Hour)
	greeting, err = service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Good Morning", greeting.Text)

	service.Refresh()
	greeting, err = service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Good Evening", greeting.Text)
}

func TestGreetingService_Dismiss(t *testing.T) {
	repos := newTestRepositories()
	service := NewGreetingService(repos.Settings, repos.Tenants, repos.Maintenance, newTestClock())
	ctx := context.Background()

	require.NoError(t, service.Dismiss(AlertRentDue))
	greeting, err := service.Current(ctx)
	require.NoError(t, err)
	require.Len(t, greeting.Alerts, 1)
	assert.Equal(t, AlertPendingMaintenance, greeting.Alerts[0].ID)

	assert.True(t, errors.Is(service.Dismiss(7), repositories.ErrNotFound))

	service.Reset()
	greeting, err = service.Current(ctx)
	require.NoError(t, err)
	assert.Len(t, greeting.Alerts, 2)
}
