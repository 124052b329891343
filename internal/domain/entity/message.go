package entity

import "time"

// Message is one entry in a conversation's append-only sub-collection,
// ordered by CreatedAt.
type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	Text           string    `json:"text" firestore:"text"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

// ReplyRef is a snapshot of a quoted message, copied at send time. It is not
// a live reference: if the original is deleted the quote keeps the old text.
type ReplyRef struct {
	MessageID  string `json:"message_id" firestore:"messageId"`
	SenderName string `json:"sender_name" firestore:"senderName"`
	Text       string `json:"text" firestore:"text"`
}

// GroupMessage belongs to the single shared room. There is no parent
// conversation document, so sender identity is denormalized onto every
// message.
type GroupMessage struct {
	ID           string    `json:"id" firestore:"id"`
	SenderID     string    `json:"sender_id" firestore:"userId"`
	SenderName   string    `json:"sender_name" firestore:"userName"`
	SenderAvatar string    `json:"sender_avatar,omitempty" firestore:"profilePicUrl,omitempty"`
	Text         string    `json:"text" firestore:"text"`
	ReplyTo      *ReplyRef `json:"reply_to,omitempty" firestore:"replyTo,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
