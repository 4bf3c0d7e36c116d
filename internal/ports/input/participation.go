package input

import "context"

// ToggleResult reports the direction a toggle settled on and the event's
// participant count after the write.
type ToggleResult struct {
	Joined           bool
	ParticipantCount int
}

type ParticipationUseCase interface {
	// Toggle flips the user's RSVP on the event: join when absent, leave
	// when present.
	Toggle(ctx context.Context, userID, eventID string) (ToggleResult, error)
}
