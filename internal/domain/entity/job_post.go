package entity

import "time"

const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// JobPost is a seeker's listing: work they want done, with a budget instead
// of a price. Seeker name/avatar are denormalized the same way a service
// snapshots its provider.
type JobPost struct {
	ID          string  `json:"id" firestore:"id"`
	SeekerID    string  `json:"seeker_id" firestore:"seekerId"`
	Title       string  `json:"title" firestore:"title"`
	Category    string  `json:"category" firestore:"category"`
	Description string  `json:"description" firestore:"description"`
	Budget      float64 `json:"budget" firestore:"budget"`
	Location    string  `json:"location,omitempty" firestore:"location,omitempty"`
	Status      string  `json:"status" firestore:"status"`

	SeekerName   string `json:"seeker_name,omitempty" firestore:"seekerName,omitempty"`
	SeekerAvatar string `json:"seeker_avatar,omitempty" firestore:"seekerAvatar,omitempty"`

	ProposalCount int `json:"proposal_count" firestore:"proposalCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
