package entity

import "time"

// Review lives in a sub-collection under its service. The document ID equals
// the reviewer's user ID, which is what enforces at-most-one-review-per-
// reviewer: a second submission collides with the existing document.
type Review struct {
	ID         string `json:"id" firestore:"id"`
	ServiceID  string `json:"service_id" firestore:"serviceId"`
	ReviewerID string `json:"reviewer_id" firestore:"reviewerId"`
	ProviderID string `json:"provider_id" firestore:"providerId"`
	Rating     int    `json:"rating" firestore:"rating"`
	Text       string `json:"text" firestore:"text"`

	ReviewerName   string `json:"reviewer_name,omitempty" firestore:"reviewerName,omitempty"`
	ReviewerAvatar string `json:"reviewer_avatar,omitempty" firestore:"reviewerAvatar,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
