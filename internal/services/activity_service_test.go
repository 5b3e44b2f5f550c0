package services

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renti/internal/models"
)

func TestActivityService_RecordAndRecent(t *testing.T) {
	repos := newTestRepositories()
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewActivityService(repos.Activity, clock)
	ctx := context.Background()

	service.Record(ctx, models.ActivityRoom, "Room Added", "Room 5A added on floor 5")
	clock.Advance(time.Minute)
	service.Record(ctx, models.ActivityTenant, "Tenant Added", "Grace moved into room 5A")

	recent, err := service.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Tenant Added", recent[0].Title)
	assert.Equal(t, "Room Added", recent[1].Title)
	assert.Equal(t, "Payment Received", recent[2].Title)
	assert.NotEqual(t, recent[0].ID, recent[1].ID)

	all, err := service.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
