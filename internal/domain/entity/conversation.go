package entity

import (
	"sort"
	"strings"
	"time"
)

// Conversation is a direct two-party chat thread. Its ID is derived from the
// sorted participant pair, so either side can compute it without a lookup and
// there is at most one conversation document per pair.
type Conversation struct {
	ID           string   `json:"id" firestore:"id"`
	Participants []string `json:"participants" firestore:"participants"`

	LastMessageText string    `json:"last_message_text,omitempty" firestore:"lastMessageText,omitempty"`
	LastMessageAt   time.Time `json:"last_message_at" firestore:"lastMessageTimestamp"`
	LastSenderID    string    `json:"last_sender_id,omitempty" firestore:"lastSenderId,omitempty"`

	// LastRead maps participant ID to the time they last opened the thread.
	LastRead map[string]time.Time `json:"last_read,omitempty" firestore:"lastRead,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ConversationID returns the canonical thread ID for a participant pair.
// ConversationID(a, b) == ConversationID(b, a).
func ConversationID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

// OtherParticipant returns the participant that is not the given user.
func (c *Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// UnreadFor reports whether the thread is unread for the viewer: something
// arrived after they last read it, and they were not the one who sent it.
// A missing lastRead entry counts as the zero time, so a thread with no
// messages yet is never unread.
func (c *Conversation) UnreadFor(viewerID string) bool {
	return c.LastMessageAt.After(c.LastRead[viewerID]) && c.LastSenderID != viewerID
}
