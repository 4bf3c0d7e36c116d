package entities

import "time"

// PrayerRequest is a prayer request submitted by a member. Anonymous requests
// keep the author id for moderation but hide the name on listing.
type PrayerRequest struct {
	ID         string
	AuthorID   string
	AuthorName string
	Title      string
	Body       string
	Anonymous  bool
	CreatedAt  time.Time
}
