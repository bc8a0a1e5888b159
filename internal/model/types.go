package model

import "time"

// Canonical mood labels the mobile client offers. The API accepts any
// short label; these are the ones the first-party UI produces.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodAngry   = "angry"
	MoodAnxious = "anxious"
)

// Moods lists the canonical mood labels in display order.
var Moods = []string{MoodHappy, MoodNeutral, MoodSad, MoodAngry, MoodAnxious}

// KnownMood reports whether mood is one of the canonical labels.
func KnownMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Entry is one journaled mood record owned by a single user.
type Entry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Mood      string     `json:"mood,omitempty"`
	Note      *string    `json:"note,omitempty"`
	Image     *string    `json:"image,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CreateEntryRequest carries the caller-supplied fields for a new entry.
// ID and CreatedAt are always server-assigned.
type CreateEntryRequest struct {
	UserID string  `json:"userId"`
	Mood   string  `json:"mood,omitempty"`
	Note   *string `json:"note,omitempty"`
	Image  *string `json:"image,omitempty"`
}

// UpdateEntryRequest carries a partial update. Nil fields are left
// untouched on the stored record; UserID is the requester's identity
// used for the ownership check, never written.
type UpdateEntryRequest struct {
	UserID string  `json:"userId"`
	Mood   *string `json:"mood,omitempty"`
	Note   *string `json:"note,omitempty"`
	Image  *string `json:"image,omitempty"`
}

// Quote is the normalized shape returned by the quote proxy.
type Quote struct {
	ID     int    `json:"id,omitempty"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}
