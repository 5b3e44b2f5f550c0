package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

func TestAssistantReply(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"When is RENT due?", assistantRules[0].reply},
		{"how do I find a tenant", assistantRules[1].reply},
		{"record a payment", assistantRules[2].reply},
		{"Maintenance status", assistantRules[3].reply},
		// rent is checked before payment
		{"rent payment", assistantRules[0].reply},
		{"hello", AssistantFallback},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssistantReply(tt.input))
		})
	}
}

func TestAssistantService_Conversation(t *testing.T) {
	repos := newTestRepositories()
	service := NewAssistantService(repos.Conversations, newTestClock(), 0)
	ctx := context.Background()

	conversation, err := service.Start(ctx)
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, models.SenderBot, conversation.Messages[0].Sender)
	assert.Equal(t, AssistantWelcome, conversation.Messages[0].Text)

	conversation, err = service.Ask(ctx, conversation.ID, "  tenant details? ")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 3)
	assert.Equal(t, models.SenderUser, conversation.Messages[1].Sender)
	assert.Equal(t, "tenant details?", conversation.Messages[1].Text)
	assert.Equal(t, assistantRules[1].reply, conversation.Messages[2].Text)

	_, err = service.Ask(ctx, conversation.ID, "   ")
	_, ok := common.AsFieldError(err)
	assert.True(t, ok)

	require.NoError(t, service.End(ctx, conversation.ID))
	_, err = service.Get(ctx, conversation.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestAssistantService_WaitsForDelay(t *testing.T) {
	repos := newTestRepositories()
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewAssistantService(repos.Conversations, clock, 600*time.Millisecond)
	ctx := context.Background()

	conversation, err := service.Start(ctx)
	require.NoError(t, err)

	done := make(chan *models.Conversation, 1)
	go func() {
		answered, err := service.Ask(ctx, conversation.ID, "payment")
		if err == nil {
			done <- answered
		}
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	select {
	case <-done:
		t.Fatal("reply arrived before the delay elapsed")
	default:
	}

	clock.Advance(600 * time.Millisecond)
	answered := <-done
	require.NotNil(t, answered)
	assert.Len(t, answered.Messages, 3)
}

func TestAssistantService_CancelledWhileWaiting(t *testing.T) {
	repos := newTestRepositories()
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewAssistantService(repos.Conversations, clock, time.Minute)

	conversation, err := service.Start(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := service.Ask(ctx, conversation.ID, "rent")
		errs <- err
	}()

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	cancel()
	assert.ErrorIs(t, <-errs, context.Canceled)

	stored, err := service.Get(context.Background(), conversation.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 2, "question is kept, reply is dropped")
}
