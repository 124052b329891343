package entity

import (
	"time"
)

const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
)

// ProviderProfile carries the business fields that only exist for provider
// accounts. Seekers never have one, so role-dependent data stays off their
// documents instead of living as conditionally-present fields.
type ProviderProfile struct {
	BusinessName string `json:"business_name,omitempty" firestore:"businessName,omitempty"`
	Category     string `json:"category,omitempty" firestore:"category,omitempty"`
	Location     string `json:"location,omitempty" firestore:"location,omitempty"`
	About        string `json:"about,omitempty" firestore:"about,omitempty"`
}

type User struct {
	ID        string           `json:"id" firestore:"id"`
	Name      string           `json:"name" firestore:"name"`
	Email     string           `json:"email" firestore:"email"`
	Phone     string           `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location  string           `json:"location,omitempty" firestore:"location,omitempty"`
	Bio       string           `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role      string           `json:"role" firestore:"role"`
	IsAdmin   bool             `json:"is_admin" firestore:"isAdmin"`
	AvatarURL string           `json:"avatar_url,omitempty" firestore:"profilePicUrl,omitempty"`
	Provider  *ProviderProfile `json:"provider,omitempty" firestore:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}
