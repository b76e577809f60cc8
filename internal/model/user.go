package model

import "go.mongodb.org/mongo-driver/v2/bson"

type User struct {
	Id       bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string        `bson:"email" json:"email"`
	Password string        `bson:"password,omitempty" json:"-"`
	Active   bool          `bson:"active" json:"active"`
}
