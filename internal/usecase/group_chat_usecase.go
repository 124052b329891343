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

// GroupChatUseCase serves the single shared community room. Messages carry
// denormalized sender identity and optional reply snapshots instead of a
// parent conversation document.
type GroupChatUseCase struct {
	groupChatRepo repository.GroupChatRepository
	userRepo      repository.UserRepository
	publisher     EventPublisher
	rateLimiter   *ratelimit.RateLimiter
}

func NewGroupChatUseCase(
	groupChatRepo repository.GroupChatRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
	rateLimiter *ratelimit.RateLimiter,
) *GroupChatUseCase {
	return &GroupChatUseCase{
		groupChatRepo: groupChatRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		rateLimiter:   rateLimiter,
	}
}

type SendGroupMessageInput struct {
	Text      string `json:"text" validate:"required,min=1,max=4000"`
	ReplyToID string `json:"reply_to_id"`
}

func (uc *GroupChatUseCase) SendMessage(ctx context.Context, senderID string, input SendGroupMessageInput) (*entity.GroupMessage, error) {
	if allowed, retryAfter := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Sending too fast, retry in %s", retryAfter.Round(time.Second)))
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	message := &entity.GroupMessage{
		SenderID:     senderID,
		SenderName:   sender.Name,
		SenderAvatar: sender.AvatarURL,
		Text:         input.Text,
	}

	if input.ReplyToID != "" {
		quoted, err := uc.groupChatRepo.GetMessageByID(ctx, input.ReplyToID)
		if err != nil {
			return nil, errors.BadRequest("Replied-to message not found", err)
		}
		message.ReplyTo = &entity.ReplyRef{
			MessageID:  quoted.ID,
			SenderName: quoted.SenderName,
			Text:       quoted.Text,
		}
	}

	if err := uc.groupChatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.publisher.Broadcast(ctx, "group_message", message); err != nil {
		logger.Warn("Failed to broadcast group message %s: %v", message.ID, err)
	}

	return message, nil
}

func (uc *GroupChatUseCase) ListMessages(ctx context.Context, limit, offset int) ([]*entity.GroupMessage, int64, error) {
	return uc.groupChatRepo.ListMessages(ctx, limit, offset)
}
