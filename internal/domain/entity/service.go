package entity

import (
	"strings"
	"time"
)

// Service is a provider's listing. Owner name and avatar are denormalized
// snapshots taken at write time; they drift until the next edit or a
// provider-profile fan-out refreshes them.
type Service struct {
	ID          string  `json:"id" firestore:"id"`
	ProviderID  string  `json:"provider_id" firestore:"providerId"`
	Title       string  `json:"title" firestore:"title"`
	Category    string  `json:"category" firestore:"category"`
	Description string  `json:"description" firestore:"description"`
	Location    string  `json:"location" firestore:"location"`
	Price       float64 `json:"price" firestore:"price"`
	PriceUnit   string  `json:"price_unit,omitempty" firestore:"priceUnit,omitempty"`

	CoverImageURL  string `json:"cover_image_url,omitempty" firestore:"coverImageUrl,omitempty"`
	ProviderName   string `json:"provider_name,omitempty" firestore:"providerName,omitempty"`
	ProviderAvatar string `json:"provider_avatar,omitempty" firestore:"providerAvatar,omitempty"`

	ReviewCount   int     `json:"review_count" firestore:"reviewCount"`
	AverageRating float64 `json:"average_rating" firestore:"averageRating"`

	Keywords []string `json:"keywords,omitempty" firestore:"keywords,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ApplyReview folds one more rating into the denormalized count/average pair.
// newAverage = (oldAverage*oldCount + rating) / newCount, so the pair never
// needs a separate running total.
func (s *Service) ApplyReview(rating int) {
	newCount := s.ReviewCount + 1
	s.AverageRating = (s.AverageRating*float64(s.ReviewCount) + float64(rating)) / float64(newCount)
	s.ReviewCount = newCount
}

// SearchRecord builds the denormalized index document, keyed by objectID.
func (s *Service) SearchRecord() map[string]interface{} {
	return map[string]interface{}{
		"objectID":       s.ID,
		"providerId":     s.ProviderID,
		"title":          s.Title,
		"category":       s.Category,
		"description":    s.Description,
		"location":       s.Location,
		"price":          s.Price,
		"priceUnit":      s.PriceUnit,
		"coverImageUrl":  s.CoverImageURL,
		"providerName":   s.ProviderName,
		"providerAvatar": s.ProviderAvatar,
		"reviewCount":    s.ReviewCount,
		"averageRating":  s.AverageRating,
		"keywords":       s.Keywords,
		"createdAt":      s.CreatedAt,
	}
}

// BuildKeywords derives the search keyword set from the listing's visible
// text fields, lowercased and de-duplicated.
func BuildKeywords(parts ...string) []string {
	seen := make(map[string]bool)
	var keywords []string

	for _, part := range parts {
		for _, word := range strings.Fields(strings.ToLower(part)) {
			word = strings.Trim(word, ".,!?()[]\"'")
			if len(word) < 2 || seen[word] {
				continue
			}
			seen[word] = true
			keywords = append(keywords, word)
		}
	}

	return keywords
}
