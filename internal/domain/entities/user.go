package entities

import "time"

// User is the per-member profile document. The identity provider owns the ID
// and e-mail; everything else belongs to the profile store.
type User struct {
	ID                 string
	Email              string
	DisplayName        string
	Phone              string
	Address            string
	Role               string
	SubscribedEventIDs []string
	PushToken          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// IsSubscribed reports whether eventID is in the user's subscribed-event set.
func (u *User) IsSubscribed(eventID string) bool {
	for _, id := range u.SubscribedEventIDs {
		if id == eventID {
			return true
		}
	}
	return false
}

// ProfilePatch is a typed partial update for a profile. Nil fields are left
// untouched by the store.
type ProfilePatch struct {
	DisplayName *string
	Phone       *string
	Address     *string
}

func (p ProfilePatch) IsZero() bool {
	return p.DisplayName == nil && p.Phone == nil && p.Address == nil
}
