package usecase

import (
	"context"
	"fmt"
	"time"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/internal/infrastructure/ratelimit"
	"hirelink/pkg/errors"
	"hirelink/pkg/logger"
)

type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	publisher        EventPublisher
	rateLimiter      *ratelimit.RateLimiter
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
	rateLimiter *ratelimit.RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		rateLimiter:      rateLimiter,
	}
}

// ConversationView is a conversation decorated for the viewer's inbox: the
// other party's display fields and the computed unread flag.
type ConversationView struct {
	*entity.Conversation
	OtherUserID     string `json:"other_user_id"`
	OtherUserName   string `json:"other_user_name,omitempty"`
	OtherUserAvatar string `json:"other_user_avatar,omitempty"`
	Unread          bool   `json:"unread"`
}

type SendMessageInput struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// StartConversation finds or creates the thread between the caller and the
// other user. The thread ID is the sorted pair, so repeated calls always
// land on the same document.
func (uc *ChatUseCase) StartConversation(ctx context.Context, callerID, otherUserID string) (*entity.Conversation, error) {
	if otherUserID == "" {
		return nil, errors.BadRequest("Missing recipient user id", nil)
	}
	if otherUserID == callerID {
		return nil, errors.InvalidOperation("You cannot start a conversation with yourself")
	}

	if allowed, retryAfter := uc.rateLimiter.Allow(callerID, "start_conversation"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Too many new conversations, retry in %s", retryAfter.Round(time.Second)))
	}

	if _, err := uc.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}

	conversation := &entity.Conversation{
		ID:           entity.ConversationID(callerID, otherUserID),
		Participants: []string{callerID, otherUserID},
	}

	return uc.conversationRepo.FindOrCreate(ctx, conversation)
}

// GetConversation returns the thread decorated for the viewer. Only
// participants may open it.
func (uc *ChatUseCase) GetConversation(ctx context.Context, conversationID, callerID string) (*ConversationView, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(callerID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	view := &ConversationView{
		Conversation: conversation,
		OtherUserID:  conversation.OtherParticipant(callerID),
		Unread:       conversation.UnreadFor(callerID),
	}
	if other, err := uc.userRepo.GetByID(ctx, view.OtherUserID); err == nil {
		view.OtherUserName = other.Name
		view.OtherUserAvatar = other.AvatarURL
	}

	return view, nil
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, conversationID, senderID string, input SendMessageInput) (*entity.Message, error) {
	if allowed, retryAfter := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Sending too fast, retry in %s", retryAfter.Round(time.Second)))
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           input.Text,
	}
	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	// The preview update is a second, non-atomic write. If it fails the
	// message is already stored; the inbox preview lags until the next send.
	if err := uc.conversationRepo.UpdateLastMessage(ctx, conversationID, message.Text, senderID, message.CreatedAt); err != nil {
		logger.Warn("Failed to update conversation preview for %s: %v", conversationID, err)
	}

	if err := uc.publisher.PublishToUsers(ctx, "message", conversation.Participants, message); err != nil {
		logger.Warn("Failed to publish message event for %s: %v", conversationID, err)
	}

	return message, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*ConversationView, int64, error) {
	conversations, total, err := uc.conversationRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		view := &ConversationView{
			Conversation: conversation,
			OtherUserID:  conversation.OtherParticipant(userID),
			Unread:       conversation.UnreadFor(userID),
		}
		// Inbox rows show the counterpart's current profile, not a snapshot.
		if other, err := uc.userRepo.GetByID(ctx, view.OtherUserID); err == nil {
			view.OtherUserName = other.Name
			view.OtherUserAvatar = other.AvatarURL
		}
		views = append(views, view)
	}

	return views, total, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, conversationID, callerID string, limit, offset int) ([]*entity.Message, int64, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conversation.HasParticipant(callerID) {
		return nil, 0, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	return uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, conversationID, callerID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(callerID) {
		return errors.Forbidden("You are not a participant in this conversation", nil)
	}

	return uc.conversationRepo.MarkRead(ctx, conversationID, callerID, time.Now())
}
