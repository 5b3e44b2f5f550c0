package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

const (
	AssistantWelcome  = "Hi! I'm your Renti AI assistant. Ask me anything about rent, tenants, payments, or maintenance."
	AssistantFallback = "I'm here to help! Ask me about rent, tenants, payments, or maintenance."

	maxQuestionLength = 1000
)

type assistantRule struct {
	keyword string
	reply   string
}

// Checked in order; the first keyword found wins.
var assistantRules = []assistantRule{
	{"rent", "Rent is due on the 1st of every month. Overdue tenants are highlighted in the dashboard."},
	{"tenant", "You can view tenant details by clicking on a room in the Rooms grid or searching in the Tenants tab."},
	{"payment", "Payments can be recorded in the Payments tab or via Quick Actions."},
	{"maintenance", "Maintenance requests are managed in the Maintenance tab. Pending requests are shown in alerts."},
}

// AssistantReply picks the canned reply for text.
func AssistantReply(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range assistantRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.reply
		}
	}
	return AssistantFallback
}

type AssistantService interface {
	Start(ctx context.Context) (*models.Conversation, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	Ask(ctx context.Context, id uuid.UUID, text string) (*models.Conversation, error)
	End(ctx context.Context, id uuid.UUID) error
}

type assistantService struct {
	conversationRepo repositories.ConversationRepository
	clock            clockwork.Clock
	delay            time.Duration
}

// NewAssistantService answers after delay, simulating a thinking pause.
func NewAssistantService(conversationRepo repositories.ConversationRepository, clock clockwork.Clock, delay time.Duration) AssistantService {
	return &assistantService{
		conversationRepo: conversationRepo,
		clock:            clock,
		delay:            delay,
	}
}

func (s *assistantService) Start(ctx context.Context) (*models.Conversation, error) {
	now := s.clock.Now()
	conversation := &models.Conversation{
		ID:        uuid.New(),
		CreatedAt: now,
		Messages: []models.ChatMessage{
			{Sender: models.SenderBot, Text: AssistantWelcome, SentAt: now},
		},
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (s *assistantService) Get(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	return s.conversationRepo.GetByID(ctx, id)
}

// Ask records the question, waits for the reply delay and records the
// reply. A cancelled ctx abandons the reply; the question stays recorded.
func (s *assistantService) Ask(ctx context.Context, id uuid.UUID, text string) (*models.Conversation, error) {
	text = strings.TrimSpace(text)
	if err := common.ValidateRequiredString(text, "text"); err != nil {
		return nil, err
	}
	if err := common.ValidateMaxLength(text, "text", maxQuestionLength); err != nil {
		return nil, err
	}

	question := models.ChatMessage{Sender: models.SenderUser, Text: text, SentAt: s.clock.Now()}
	if _, err := s.conversationRepo.AppendMessage(ctx, id, question); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.clock.After(s.delay):
		}
	}

	reply := models.ChatMessage{Sender: models.SenderBot, Text: AssistantReply(text), SentAt: s.clock.Now()}
	return s.conversationRepo.AppendMessage(ctx, id, reply)
}

func (s *assistantService) End(ctx context.Context, id uuid.UUID) error {
	return s.conversationRepo.Delete(ctx, id)
}
