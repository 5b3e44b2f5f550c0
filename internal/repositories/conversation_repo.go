package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"renti/internal/models"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	AppendMessage(ctx context.Context, id uuid.UUID, message models.ChatMessage) (*models.Conversation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear()
}

type conversationRepo struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*models.Conversation
}

func NewConversationRepository() ConversationRepository {
	return &conversationRepo{conversations: make(map[uuid.UUID]*models.Conversation)}
}

func (r *conversationRepo) Create(ctx context.Context, conversation *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conversation.ID]; exists {
		return fmt.Errorf("conversation %s already exists", conversation.ID)
	}
	r.conversations[conversation.ID] = cloneConversation(conversation)
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}
	return cloneConversation(conversation), nil
}

func (r *conversationRepo) AppendMessage(ctx context.Context, id uuid.UUID, message models.ChatMessage) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}
	conversation.Messages = append(conversation.Messages, message)
	return cloneConversation(conversation), nil
}

func (r *conversationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[id]; !ok {
		return fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}
	delete(r.conversations, id)
	return nil
}

func (r *conversationRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations = make(map[uuid.UUID]*models.Conversation)
}

func cloneConversation(c *models.Conversation) *models.Conversation {
	out := *c
	out.Messages = append([]models.ChatMessage(nil), c.Messages...)
	return &out
}
