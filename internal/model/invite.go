package model

import "time"

// Invite is one outstanding invitation. Its id is the UUID token mailed to
// the invitee; once feedback arrives the invite only flips Submitted, the
// feedback record itself never references it.
type Invite struct {
	Id         string    `bson:"_id" json:"id"`
	Email      string    `bson:"email" json:"email"`
	Submitted  bool      `bson:"submitted" json:"submitted"`
	InvitedAt  time.Time `bson:"invitedAt" json:"invitedAt"`
	RemindedAt time.Time `bson:"remindedAt,omitempty" json:"remindedAt,omitempty"`
	ExpiresAt  time.Time `bson:"expiresAt" json:"expiresAt"`
}

func (i Invite) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
