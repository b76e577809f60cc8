package model

import "time"

// Feedback carries no email, user id or invite reference. The id is a fresh
// UUID, not the invite token, so stored feedback cannot be joined back to
// the address it was solicited from.
type Feedback struct {
	Id          string    `bson:"_id" json:"id"`
	Text        string    `bson:"text" json:"text"`
	Lang        string    `bson:"lang" json:"lang"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}
