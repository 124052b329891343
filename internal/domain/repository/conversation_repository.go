package repository

import (
	"context"
	"time"

	"hirelink/internal/domain/entity"
)

type ConversationRepository interface {
	// FindOrCreate returns the conversation for the pair, creating the parent
	// document only when absent. It never overwrites an existing thread.
	FindOrCreate(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)

	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)

	// UpdateLastMessage refreshes the parent's inbox-preview fields and the
	// sender's lastRead entry. It is a separate write from CreateMessage.
	UpdateLastMessage(ctx context.Context, conversationID, text, senderID string, at time.Time) error
	MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error
}

type GroupChatRepository interface {
	CreateMessage(ctx context.Context, message *entity.GroupMessage) error
	GetMessageByID(ctx context.Context, id string) (*entity.GroupMessage, error)
	ListMessages(ctx context.Context, limit, offset int) ([]*entity.GroupMessage, int64, error)
}
