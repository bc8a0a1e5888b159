package validate

import (
	"fmt"

	"github.com/wellnessio/wellness-backend/internal/model"
)

// UserID checks that a user identifier is present. The API layer does
// not constrain its format: identities come from an external provider.
func UserID(v string) error {
	if v == "" {
		return fmt.Errorf("userId is required")
	}
	return nil
}

// Mood checks a mood label against the canonical set. Only first-party
// tooling applies this; the API accepts any label by design.
func Mood(v string) error {
	if v == "" {
		return fmt.Errorf("mood is required")
	}
	if !model.KnownMood(v) {
		return fmt.Errorf("unknown mood %q; expected one of %v", v, model.Moods)
	}
	return nil
}

// NoteLen bounds free-text notes for first-party tooling.
func NoteLen(v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("note exceeds %d characters", limit)
	}
	return nil
}
