package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelink/internal/domain/entity"
	"hirelink/internal/infrastructure/ratelimit"
	"hirelink/pkg/errors"
)

func newGroupChatFixture() (*GroupChatUseCase, *fakeGroupChatRepo, *fakePublisher) {
	groupChatRepo := newFakeGroupChatRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: "alice", Name: "Alice", AvatarURL: "https://cdn.example/alice.png"},
		&entity.User{ID: "bob", Name: "Bob"},
	)
	publisher := &fakePublisher{}
	uc := NewGroupChatUseCase(groupChatRepo, userRepo, publisher, ratelimit.NewRateLimiter())
	return uc, groupChatRepo, publisher
}

func TestGroupMessageDenormalizesSender(t *testing.T) {
	uc, _, publisher := newGroupChatFixture()

	message, err := uc.SendMessage(context.Background(), "alice", SendGroupMessageInput{Text: "hello room"})
	require.NoError(t, err)

	assert.Equal(t, "Alice", message.SenderName)
	assert.Equal(t, "https://cdn.example/alice.png", message.SenderAvatar)
	assert.Nil(t, message.ReplyTo)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "group_message", publisher.events[0].eventType)
	assert.Empty(t, publisher.events[0].recipients)
}

func TestGroupMessageReplySnapshot(t *testing.T) {
	uc, groupChatRepo, _ := newGroupChatFixture()

	original, err := uc.SendMessage(context.Background(), "alice", SendGroupMessageInput{Text: "anyone recommend a plumber?"})
	require.NoError(t, err)

	reply, err := uc.SendMessage(context.Background(), "bob", SendGroupMessageInput{
		Text:      "try HydroFix",
		ReplyToID: original.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, reply.ReplyTo)
	assert.Equal(t, original.ID, reply.ReplyTo.MessageID)
	assert.Equal(t, "Alice", reply.ReplyTo.SenderName)
	assert.Equal(t, "anyone recommend a plumber?", reply.ReplyTo.Text)

	// The snapshot is a copy, not a live reference.
	groupChatRepo.messages[original.ID].Text = "edited"
	assert.Equal(t, "anyone recommend a plumber?", reply.ReplyTo.Text)
}

func TestGroupMessageReplyToMissingMessage(t *testing.T) {
	uc, _, _ := newGroupChatFixture()

	_, err := uc.SendMessage(context.Background(), "alice", SendGroupMessageInput{
		Text:      "replying to nothing",
		ReplyToID: "gm-404",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGroupMessagesListedInOrder(t *testing.T) {
	uc, _, _ := newGroupChatFixture()

	first, err := uc.SendMessage(context.Background(), "alice", SendGroupMessageInput{Text: "first"})
	require.NoError(t, err)
	second, err := uc.SendMessage(context.Background(), "bob", SendGroupMessageInput{Text: "second"})
	require.NoError(t, err)

	messages, total, err := uc.ListMessages(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID)
	assert.Equal(t, second.ID, messages[1].ID)
}
