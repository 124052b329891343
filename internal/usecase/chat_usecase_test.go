package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelink/internal/domain/entity"
	"hirelink/internal/infrastructure/ratelimit"
	"hirelink/pkg/errors"
)

func newChatFixture(conversations ...*entity.Conversation) (*ChatUseCase, *fakeConversationRepo, *fakeUserRepo, *fakePublisher) {
	conversationRepo := newFakeConversationRepo(conversations...)
	userRepo := newFakeUserRepo(
		&entity.User{ID: "alice", Name: "Alice", Role: entity.RoleSeeker},
		&entity.User{ID: "bob", Name: "Bob", Role: entity.RoleProvider},
	)
	publisher := &fakePublisher{}
	uc := NewChatUseCase(conversationRepo, userRepo, publisher, ratelimit.NewRateLimiter())
	return uc, conversationRepo, userRepo, publisher
}

func TestStartConversationSelfChatRejected(t *testing.T) {
	uc, _, _, _ := newChatFixture()

	_, err := uc.StartConversation(context.Background(), "alice", "alice")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_OPERATION"))
}

func TestStartConversationUnknownUser(t *testing.T) {
	uc, _, _, _ := newChatFixture()

	_, err := uc.StartConversation(context.Background(), "alice", "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestStartConversationIdempotent(t *testing.T) {
	uc, _, _, _ := newChatFixture()

	first, err := uc.StartConversation(context.Background(), "alice", "bob")
	require.NoError(t, err)

	// Starting from the other side lands on the same thread.
	second, err := uc.StartConversation(context.Background(), "bob", "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice_bob", first.ID)
}

func TestSendMessageRequiresParticipant(t *testing.T) {
	uc, _, _, _ := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})

	_, err := uc.SendMessage(context.Background(), "alice_bob", "mallory", SendMessageInput{Text: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSendMessageUpdatesPreviewAndPublishes(t *testing.T) {
	uc, conversationRepo, _, publisher := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})

	message, err := uc.SendMessage(context.Background(), "alice_bob", "alice", SendMessageInput{Text: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)

	conversation := conversationRepo.conversations["alice_bob"]
	assert.Equal(t, "hello", conversation.LastMessageText)
	assert.Equal(t, "alice", conversation.LastSenderID)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "message", publisher.events[0].eventType)
	assert.ElementsMatch(t, []string{"alice", "bob"}, publisher.events[0].recipients)

	// Sending marks the thread read for the sender, unread for the other.
	assert.False(t, conversation.UnreadFor("alice"))
	assert.True(t, conversation.UnreadFor("bob"))
}

func TestSendMessageSurvivesPreviewFailure(t *testing.T) {
	uc, conversationRepo, _, _ := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})
	conversationRepo.failPreview = true

	message, err := uc.SendMessage(context.Background(), "alice_bob", "alice", SendMessageInput{Text: "hello"})

	// The message write already landed; a failed preview update only makes
	// the inbox stale, it never loses the message.
	require.NoError(t, err)
	require.Len(t, conversationRepo.messages["alice_bob"], 1)
	assert.Equal(t, message.ID, conversationRepo.messages["alice_bob"][0].ID)
}

func TestListConversationsComputesUnread(t *testing.T) {
	now := time.Now()
	uc, _, _, _ := newChatFixture(&entity.Conversation{
		ID:            "alice_bob",
		Participants:  []string{"alice", "bob"},
		LastMessageAt: now,
		LastSenderID:  "bob",
		LastRead: map[string]time.Time{
			"alice": now.Add(-time.Hour),
			"bob":   now,
		},
	})

	views, total, err := uc.ListConversations(context.Background(), "alice", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)

	assert.True(t, views[0].Unread)
	assert.Equal(t, "bob", views[0].OtherUserID)
	assert.Equal(t, "Bob", views[0].OtherUserName)
}

func TestGetConversationRequiresParticipant(t *testing.T) {
	uc, _, _, _ := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})

	_, err := uc.GetConversation(context.Background(), "alice_bob", "mallory")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	view, err := uc.GetConversation(context.Background(), "alice_bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", view.OtherUserID)
}

func TestListMessagesRequiresParticipant(t *testing.T) {
	uc, _, _, _ := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})

	_, _, err := uc.ListMessages(context.Background(), "alice_bob", "mallory", 20, 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkRead(t *testing.T) {
	now := time.Now()
	conversation := &entity.Conversation{
		ID:            "alice_bob",
		Participants:  []string{"alice", "bob"},
		LastMessageAt: now,
		LastSenderID:  "bob",
	}
	uc, conversationRepo, _, _ := newChatFixture(conversation)

	require.True(t, conversation.UnreadFor("alice"))
	require.NoError(t, uc.MarkRead(context.Background(), "alice_bob", "alice"))

	assert.Equal(t, 1, conversationRepo.readMarks)
	assert.False(t, conversation.UnreadFor("alice"))
}

func TestSendMessageRateLimited(t *testing.T) {
	uc, _, _, _ := newChatFixture(&entity.Conversation{
		ID:           "alice_bob",
		Participants: []string{"alice", "bob"},
	})

	var err error
	for i := 0; i < 30; i++ {
		_, err = uc.SendMessage(context.Background(), "alice_bob", "alice", SendMessageInput{Text: "spam"})
		if err != nil {
			break
		}
	}

	require.Error(t, err)
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}
